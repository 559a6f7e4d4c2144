package service

import (
	"errors"
	"fmt"

	"github.com/osa911/clipdesk/internal/repository"
)

// Sentinel errors for service layer
var (
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict error")
	ErrNotFound        = errors.New("not found")
	ErrReference       = errors.New("referenced record not found")
	ErrForbidden       = errors.New("unauthorized")
	ErrUnauthenticated = errors.New("authentication required")
)

// ValidationError reports a malformed or missing field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// storeError maps repository sentinels onto service sentinels.
// what names the entity for the message.
func storeError(err error, what string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%s %w", what, ErrNotFound)
	case errors.Is(err, repository.ErrForeignKey):
		return fmt.Errorf("%w: %v", ErrReference, err)
	case errors.Is(err, repository.ErrDuplicate):
		return fmt.Errorf("%s: %w", what, ErrConflict)
	}
	return err
}
