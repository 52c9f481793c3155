package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yusaku-KASAI/serverless-terraform/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{Logging: config.LoggingConfig{Level: "info", Format: "json"}}

		logger, err := NewWithOutput(cfg, &buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.InfoLevel, logger.GetLevel())

		logger.WithField("k", "v").Info("hello")

		var line map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "hello", line["msg"])
		assert.Equal(t, "info", line["level"])
		assert.Equal(t, "v", line["k"])
	})

	t.Run("TextFormat", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &config.Config{Logging: config.LoggingConfig{Level: "debug", Format: "text"}}

		logger, err := NewWithOutput(cfg, &buf)
		require.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

		logger.Debug("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("InvalidLevel", func(t *testing.T) {
		cfg := &config.Config{Logging: config.LoggingConfig{Level: "loud"}}
		_, err := New(cfg)
		assert.Error(t, err)
	})
}

func TestBaseFields(t *testing.T) {
	assert.Empty(t, BaseFields(&config.Config{}))

	cfg := &config.Config{Serverless: config.ServerlessConfig{
		IsLambda:        true,
		FunctionName:    "lambda_first",
		FunctionVersion: "3",
		Stage:           "prod",
	}}
	assert.Equal(t, logrus.Fields{
		"function_name":    "lambda_first",
		"function_version": "3",
		"stage":            "prod",
	}, BaseFields(cfg))
}

func TestForInvocation(t *testing.T) {
	logger, hook := test.NewNullLogger()

	t.Run("UsesLambdaRequestID", func(t *testing.T) {
		hook.Reset()
		ctx := lambdacontext.NewContext(context.Background(), &lambdacontext.LambdaContext{
			AwsRequestID: "req-123",
		})

		ForInvocation(ctx, logger, "first").Info("First!")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, "first", entry.Data[HandlerKey])
		assert.Equal(t, "req-123", entry.Data[RequestIDKey])
	})

	t.Run("GeneratesRequestIDOutsideLambda", func(t *testing.T) {
		hook.Reset()

		ForInvocation(context.Background(), logger, "second").Info("Second!")

		entry := hook.LastEntry()
		require.NotNil(t, entry)
		id, ok := entry.Data[RequestIDKey].(string)
		require.True(t, ok)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
	})
}
