package vote

import (
	"errors"
	"fmt"
)

// ErrVoteNotFound is returned when a slug has no definition in the catalog.
var ErrVoteNotFound = errors.New("vote not found")

// ValidationError rejects a ballot whose shape breaks the vote's rules.
// It maps to HTTP 400 at the boundary.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// WindowReason distinguishes why a vote is not accepting ballots.
type WindowReason string

// Window rejection reasons
const (
	WindowNotOpen    WindowReason = "not_open"
	WindowNotStarted WindowReason = "not_started"
	WindowEnded      WindowReason = "ended"
)

// WindowError rejects a ballot because the vote is outside its accepting
// window. It maps to HTTP 403 at the boundary.
type WindowError struct {
	Reason  WindowReason
	Message string
}

func (e *WindowError) Error() string {
	return e.Message
}
