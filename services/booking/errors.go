package booking

import (
	"errors"
	"fmt"
	"time"
)

// ValidationError reports a malformed booking candidate: bad range,
// empty owner, or a start in the past.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking: %s", e.Reason)
}

// ConflictError reports that a candidate interval overlaps an existing
// booked reservation.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("booking conflict: interval %s - %s overlaps an existing booking",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// NotFoundError reports an operation on a booking id that no longer exists.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("booking %s not found", e.ID)
}

// DisabledError reports that bookings are switched off site-wide.
type DisabledError struct {
	Message string
}

func (e *DisabledError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "bookings are currently disabled"
}

// TransportError wraps a failure from the persistence collaborator. The
// caller must know whether the write actually happened, so these are
// never swallowed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsDisabled reports whether err is a DisabledError.
func IsDisabled(err error) bool {
	var de *DisabledError
	return errors.As(err, &de)
}
