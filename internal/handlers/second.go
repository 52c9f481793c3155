package handlers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/chaos"
	"github.com/Yusaku-KASAI/serverless-terraform/internal/logging"
	"github.com/Yusaku-KASAI/serverless-terraform/pkg/lambda"
)

// DefaultFailureDelay is how long a failing invocation blocks before it
// returns its error
const DefaultFailureDelay = 2 * time.Second

// SecondHandler behaves like FirstHandler but fails some invocations on
// purpose, after a fixed delay
type SecondHandler struct {
	logger  logrus.FieldLogger
	decider chaos.Decider
	delay   time.Duration
	sleep   func(time.Duration)
}

// NewSecondHandler creates a new second handler. The decider is consulted
// once per invocation.
func NewSecondHandler(logger logrus.FieldLogger, decider chaos.Decider, delay time.Duration) *SecondHandler {
	return &SecondHandler{
		logger:  logger,
		decider: decider,
		delay:   delay,
		sleep:   time.Sleep,
	}
}

// Handle implements lambda.HandlerFunc
func (h *SecondHandler) Handle(ctx context.Context, event lambda.Event) (lambda.Response, error) {
	entry := logging.ForInvocation(ctx, h.logger, SecondName)

	logEvent(entry, event)
	entry.Info("Second!")

	if h.decider.Decide() == chaos.Fail {
		// Blocks only this invocation
		h.sleep(h.delay)
		return lambda.Response{}, ErrRandomFailure
	}

	return SuccessResponse(), nil
}
