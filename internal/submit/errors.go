package submit

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// GenericFailure is shown when a dispatch fails without a usable message.
const GenericFailure = "Please try again later."

var (
	// ErrStaleResult marks a result that arrived after its form lost liveness
	// or belongs to an earlier submission. It is discarded silently.
	ErrStaleResult = errors.New("stale submission result")
	// ErrPending is returned when a submit arrives while one is in flight.
	ErrPending = errors.New("submission already pending")
	// ErrNotLive is returned when submitting on a detached form.
	ErrNotLive = errors.New("form is not live")
)

// ValidationError carries per-field messages. No dispatch happens when it is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for n := range e.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s: %s", n, e.Fields[n])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// DispatchError is a failed send. Message is what the user sees.
type DispatchError struct {
	Message string
	Err     error
}

func (e *DispatchError) Error() string { return e.Message }

func (e *DispatchError) Unwrap() error { return e.Err }

// dispatchError derives the user-facing message from a sender failure.
func dispatchError(err error) *DispatchError {
	msg := ""
	if err != nil {
		msg = strings.TrimSpace(err.Error())
	}
	if msg == "" {
		msg = GenericFailure
	}
	return &DispatchError{Message: msg, Err: err}
}
