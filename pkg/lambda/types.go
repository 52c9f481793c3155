package lambda

import "context"

// Event is the payload an invocation receives. It is opaque to the handlers
// and only serialized for logging.
type Event map[string]interface{}

// Response is the result returned to the platform on success
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// HandlerFunc is the invocation contract shared by every function
type HandlerFunc func(ctx context.Context, event Event) (Response, error)
