package timeline

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEventDate is matched by every InvalidEventDateError.
	ErrInvalidEventDate = errors.New("invalid event date")

	// ErrInvalidConfig is returned when a Config cannot produce a layout.
	ErrInvalidConfig = errors.New("invalid draw config")

	// ErrUnknownMarker is returned by Interaction for indexes that do not
	// address a rendered marker.
	ErrUnknownMarker = errors.New("unknown marker")
)

// InvalidEventDateError identifies the event whose date could not be used.
type InvalidEventDateError struct {
	Index   int    // Position of the event in the input list
	Subject string // Subject of the offending event
	Value   string // Raw date value, if known
	Err     error  // Underlying parse error, if any
}

func (e *InvalidEventDateError) Error() string {
	msg := fmt.Sprintf("event %d (%q): invalid date", e.Index, e.Subject)
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrInvalidEventDate so callers can use errors.Is.
func (e *InvalidEventDateError) Is(target error) bool {
	return target == ErrInvalidEventDate
}

func (e *InvalidEventDateError) Unwrap() error {
	return e.Err
}
