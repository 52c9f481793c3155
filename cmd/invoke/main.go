package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/config"
	"github.com/Yusaku-KASAI/serverless-terraform/internal/logging"
	"github.com/Yusaku-KASAI/serverless-terraform/pkg/lambda"
	"github.com/Yusaku-KASAI/serverless-terraform/pkg/server"

	"github.com/sirupsen/logrus"
)

// summary is printed after repeated invocations
type summary struct {
	Handler     string  `json:"handler"`
	Invocations int     `json:"invocations"`
	Successes   int     `json:"successes"`
	Failures    int     `json:"failures"`
	FailureRate float64 `json:"failure_rate"`
	LastError   string  `json:"last_error,omitempty"`
}

func main() {
	var (
		handlerName = flag.String("handler", "first", "Handler to invoke: first, second")
		eventPath   = flag.String("event", "", "Event JSON file path, - for stdin (default {})")
		count       = flag.Int("count", 1, "Number of invocations")
		delay       = flag.Duration("delay", -1, "Override the simulated failure delay")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if *verbose {
		cfg.Logging.Level = "debug"
	}
	if *delay >= 0 {
		cfg.Failure.Delay = *delay
	}

	// stdout carries responses only
	logger, err := logging.NewWithOutput(cfg, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create logger")
	}

	container := server.NewContainerWithLogger(cfg, logger)

	handler, err := container.Handler(*handlerName)
	if err != nil {
		logger.WithError(err).WithField("available", strings.Join(container.HandlerNames(), ", ")).Fatal("Unknown handler")
	}

	event, err := readEvent(*eventPath, os.Stdin)
	if err != nil {
		logger.WithError(err).Fatal("Failed to read event")
	}

	logger.WithFields(logrus.Fields{
		"handler": *handlerName,
		"count":   *count,
		"delay":   cfg.Failure.Delay.String(),
	}).Debug("Starting local invocation")

	if *count <= 1 {
		if err := invokeOnce(context.Background(), handler, event, os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	start := time.Now()
	result := invokeMany(context.Background(), *handlerName, handler, event, *count)
	logger.WithField("elapsed", time.Since(start).String()).Debug("Invocations completed")

	if err := json.NewEncoder(os.Stdout).Encode(result); err != nil {
		logger.WithError(err).Fatal("Failed to write summary")
	}
}

// readEvent loads the event from path, from stdin for "-", or returns an
// empty event when path is empty
func readEvent(path string, stdin io.Reader) (lambda.Event, error) {
	var data []byte
	var err error

	switch path {
	case "":
		return lambda.Event{}, nil
	case "-":
		data, err = io.ReadAll(stdin)
	default:
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read event: %w", err)
	}

	var event lambda.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, fmt.Errorf("failed to parse event: %w", err)
	}
	return event, nil
}

func invokeOnce(ctx context.Context, handler lambda.HandlerFunc, event lambda.Event, out io.Writer) error {
	response, err := handler(ctx, event)
	if err != nil {
		return err
	}
	return json.NewEncoder(out).Encode(response)
}

func invokeMany(ctx context.Context, name string, handler lambda.HandlerFunc, event lambda.Event, count int) summary {
	result := summary{Handler: name, Invocations: count}

	for i := 0; i < count; i++ {
		if _, err := handler(ctx, event); err != nil {
			result.Failures++
			result.LastError = err.Error()
			continue
		}
		result.Successes++
	}

	result.FailureRate = float64(result.Failures) / float64(count)
	return result
}
