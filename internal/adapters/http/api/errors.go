package api

import (
	"errors"
	"fmt"
)

var (
	// ErrBadRequest is returned for malformed request payloads.
	ErrBadRequest = errors.New("bad request")
	// ErrMethodNotAllowed is returned when the verb does not match the route.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Wrap annotates err with the operation that produced it while keeping
// the original error in the chain for errors.Is checks.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

// NewKind creates a new error of the given kind with an operation tag.
func NewKind(op string, kind error) error {
	return fmt.Errorf("%s: %w", op, kind)
}

// WrapKind attaches both an operation tag and a sentinel kind to err,
// so callers can match the kind with errors.Is while the message keeps
// the underlying cause.
func WrapKind(op string, kind, err error) error {
	if err == nil {
		return NewKind(op, kind)
	}
	return fmt.Errorf("%s: %w: %v", op, kind, err)
}
