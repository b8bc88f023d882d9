package dashboard

import "errors"

// ErrNotFound is returned when the referenced order does not exist.
var ErrNotFound = errors.New("order not found")

// ValidationError wraps a user-facing validation message. The engine state is
// untouched whenever one is returned; the caller should re-prompt.
type ValidationError struct{ Msg string }

func (e *ValidationError) Error() string { return e.Msg }
