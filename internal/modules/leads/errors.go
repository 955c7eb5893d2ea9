package leads

import "errors"

var ErrDuplicateSubmission = errors.New("duplicate submission within window")

// ValidationError carries the first failed field's human-readable message,
// surfaced verbatim to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
