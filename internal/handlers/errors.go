package handlers

import (
	"errors"
)

// ErrRandomFailure is returned by the second function when its simulated
// failure is triggered. The message is surfaced verbatim by the platform.
var ErrRandomFailure = errors.New("Random failure occurred in lambda_second")

// IsRandomFailure reports whether err is the simulated failure
func IsRandomFailure(err error) bool {
	return errors.Is(err, ErrRandomFailure)
}
