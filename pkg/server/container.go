package server

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/chaos"
	"github.com/Yusaku-KASAI/serverless-terraform/internal/config"
	"github.com/Yusaku-KASAI/serverless-terraform/internal/handlers"
	"github.com/Yusaku-KASAI/serverless-terraform/internal/logging"
	"github.com/Yusaku-KASAI/serverless-terraform/pkg/lambda"
)

// ErrUnknownHandler is returned when a handler name is not registered
var ErrUnknownHandler = errors.New("unknown handler")

// Container holds all process dependencies
type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	First  *handlers.FirstHandler
	Second *handlers.SecondHandler

	registry map[string]lambda.HandlerFunc
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return NewContainerWithLogger(cfg, logger), nil
}

// NewContainerWithLogger wires the handlers around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger) *Container {
	base := logger.WithFields(logging.BaseFields(cfg))
	decider := chaos.NewSeededDecider(cfg.Failure.Rate, cfg.Failure.Seed)

	container := &Container{
		Config: cfg,
		Logger: logger,
		First:  handlers.NewFirstHandler(base),
		Second: handlers.NewSecondHandler(base, decider, cfg.Failure.Delay),
	}

	container.registry = map[string]lambda.HandlerFunc{
		handlers.FirstName:  container.First.Handle,
		handlers.SecondName: container.Second.Handle,
	}

	logger.WithFields(logrus.Fields{
		"deployment_mode": cfg.GetDeploymentMode(),
		"failure_rate":    cfg.Failure.Rate,
		"failure_delay":   cfg.Failure.Delay.String(),
	}).Debug("Container initialized")

	return container
}

// Handler resolves a registered handler by name
func (c *Container) Handler(name string) (lambda.HandlerFunc, error) {
	h, ok := c.registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownHandler, name)
	}
	return h, nil
}

// HandlerNames lists the registered handler names in order
func (c *Container) HandlerNames() []string {
	names := make([]string, 0, len(c.registry))
	for name := range c.registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
