package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/quotebook/internal/adapters/clients"
	"github.com/jsamuelsen/quotebook/internal/domain"
)

// mapError turns client failures into domain errors. Remote 4xx answers
// other than rate limiting mean the request itself is wrong and are
// reported as validation errors; everything else is unavailability.
func mapError(service, operation string, err error) error {
	var statusErr *clients.StatusError

	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err

	case errors.Is(err, clients.ErrCircuitOpen):
		return domain.NewUnavailableError(service, "circuit breaker open during "+operation)

	case errors.Is(err, clients.ErrMaxRetriesExceeded):
		return domain.NewUnavailableError(service, "retries exhausted during "+operation)

	case errors.As(err, &statusErr):
		return mapStatus(service, operation, statusErr.Code)

	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s failed: %v", operation, err))
	}
}

func mapStatus(service, operation string, code int) error {
	switch {
	case code == http.StatusTooManyRequests:
		return domain.NewUnavailableError(service, "rate limit exceeded")
	case code == http.StatusNotFound:
		return domain.NewNotFoundError(service, operation)
	case code >= http.StatusBadRequest && code < http.StatusInternalServerError:
		return domain.NewValidationError("", fmt.Sprintf("%s rejected %s with HTTP %d", service, operation, code))
	default:
		return domain.NewUnavailableError(service, fmt.Sprintf("%s returned HTTP %d", operation, code))
	}
}
