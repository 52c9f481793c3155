package handlers

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/logging"
	"github.com/Yusaku-KASAI/serverless-terraform/pkg/lambda"
)

// FirstHandler logs the event and always answers with the greeting
type FirstHandler struct {
	logger logrus.FieldLogger
}

// NewFirstHandler creates a new first handler
func NewFirstHandler(logger logrus.FieldLogger) *FirstHandler {
	return &FirstHandler{
		logger: logger,
	}
}

// Handle implements lambda.HandlerFunc. It never returns an error.
func (h *FirstHandler) Handle(ctx context.Context, event lambda.Event) (lambda.Response, error) {
	entry := logging.ForInvocation(ctx, h.logger, FirstName)

	logEvent(entry, event)
	entry.Info("First!")

	return SuccessResponse(), nil
}
