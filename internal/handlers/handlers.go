package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/Yusaku-KASAI/serverless-terraform/pkg/lambda"
)

// Greeting is the body of every successful response
const Greeting = "Hello from Lambda!"

// Handler names as they are registered with the hosting process
const (
	FirstName  = "first"
	SecondName = "second"
)

// SuccessResponse returns the fixed response both functions send on success
func SuccessResponse() lambda.Response {
	return lambda.Response{
		StatusCode: http.StatusOK,
		Body:       Greeting,
	}
}

// logEvent writes the serialized event at info level. A payload that cannot
// be encoded is reported but never fails the invocation.
func logEvent(entry *logrus.Entry, event lambda.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		entry.WithError(err).Warn("Failed to serialize event")
		return
	}
	entry.Infof("Event: %s", payload)
}
