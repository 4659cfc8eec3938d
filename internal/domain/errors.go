// Package domain contains the quote catalog entities, business rules and errors.
//
// Errors here describe catalog rules; the http adapter maps them to status codes.
package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinels matched with errors.Is.
var (
	// ErrNotFound indicates the requested entity does not exist or is inactive.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate name.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the caller is authenticated but not allowed to act.
	ErrForbidden = errors.New("forbidden")

	// ErrUnauthenticated indicates the operation needs a logged-in user.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")
)

// NonFieldErrors is the key used for form-level validation messages.
const NonFieldErrors = "__all__"

// NotFoundError names the missing or soft-deleted record.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError reports a uniqueness clash, such as a second source type with the same name.
type ConflictError struct {
	Entity string
	Reason string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// ValidationError describes a single rejected field.
// An empty Field marks a form-level error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewSourceCapacityError reports that a source already holds the maximum
// number of active quotes.
func NewSourceCapacityError(source string) error {
	return &ValidationError{
		Message: fmt.Sprintf("source %q already has %d active quotes", source, MaxActiveQuotesPerSource),
	}
}

// ValidationErrors collects messages per field so a form can show all of them at once.
type ValidationErrors map[string][]string

// Add records a message for field. An empty field is stored under NonFieldErrors.
func (v ValidationErrors) Add(field, message string) {
	if field == "" {
		field = NonFieldErrors
	}

	v[field] = append(v[field], message)
}

// Merge folds err into the collection. Non-validation errors are returned unchanged.
func (v ValidationErrors) Merge(err error) error {
	var many ValidationErrors
	if errors.As(err, &many) {
		for field, msgs := range many {
			v[field] = append(v[field], msgs...)
		}

		return nil
	}

	var single *ValidationError
	if errors.As(err, &single) {
		v.Add(single.Field, single.Message)
		return nil
	}

	return err
}

// Err returns nil when nothing was collected.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}

	return v
}

// Error implements the error interface with fields in a stable order.
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(v[field], "; "))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

func (v ValidationErrors) Unwrap() error {
	return ErrValidation
}

// ForbiddenError is returned when a logged-in user lacks staff rights.
type ForbiddenError struct {
	Operation string
	Reason    string
}

func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// UnavailableError reports that the remote quote catalog or the database is down.
type UnavailableError struct {
	Service string
	Reason  string
}

func (e *UnavailableError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	}

	return fmt.Sprintf("service %q unavailable", e.Service)
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

// NewUnavailableError creates an unavailable error with context.
func NewUnavailableError(service, reason string) error {
	return &UnavailableError{Service: service, Reason: reason}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnauthenticated checks if an error asks the caller to log in.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
