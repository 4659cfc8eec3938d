// Package clients provides the instrumented HTTP client used for downstream
// services. Callers translate its errors into domain errors.
package clients

import (
	"errors"
	"fmt"
)

var (
	// ErrCircuitOpen is returned without sending while the breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrMaxRetriesExceeded wraps the last failure once every attempt is spent.
	ErrMaxRetriesExceeded = errors.New("max retries exceeded")
)

// StatusError is a non-2xx response read by GetJSON.
type StatusError struct {
	Service string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Service, e.Code)
}
