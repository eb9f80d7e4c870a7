package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUpstream     = errors.New("upstream error")
	ErrInternal     = errors.New("internal error")
)

// NotDueError is returned when a delayed event is delivered before its time.
type NotDueError struct {
	Remaining time.Duration
}

func (e *NotDueError) Error() string {
	return fmt.Sprintf("event not due for another %s", e.Remaining)
}

// RetryAfter reports how long the transport should hold the message back.
func (e *NotDueError) RetryAfter() time.Duration {
	return e.Remaining
}
