package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/config"
)

// Field keys shared by every log line a function writes
const (
	HandlerKey   = "handler"
	RequestIDKey = "request_id"
)

// New builds the process-wide logger from configuration. The hosting process
// owns it and hands it to each handler.
func New(cfg *config.Config) (*logrus.Logger, error) {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput is New writing to out instead of stdout
func NewWithOutput(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	switch cfg.Logging.Format {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	default:
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}

// BaseFields returns the fields describing the running function, empty
// outside Lambda
func BaseFields(cfg *config.Config) logrus.Fields {
	if !cfg.Serverless.IsLambda {
		return logrus.Fields{}
	}

	return logrus.Fields{
		"function_name":    cfg.Serverless.FunctionName,
		"function_version": cfg.Serverless.FunctionVersion,
		"stage":            cfg.Serverless.Stage,
	}
}

// ForInvocation returns an entry tagged with the handler name and the
// request ID of the current invocation. Outside Lambda there is no request
// ID in the context, so one is generated.
func ForInvocation(ctx context.Context, logger logrus.FieldLogger, handler string) *logrus.Entry {
	return logger.WithFields(logrus.Fields{
		HandlerKey:   handler,
		RequestIDKey: RequestID(ctx),
	})
}

// RequestID extracts the platform request ID from ctx
func RequestID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return uuid.New().String()
}
