package transport

import (
	"errors"
	"fmt"
)

// FieldError is a backend validation failure scoped to one field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StructuredError is a machine-readable submission failure: an HTTP-like
// status, a stable code, a human message, and optionally the fields the
// backend rejected (e.g. an SSN already on file).
type StructuredError struct {
	Status  int          `json:"-"`
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *StructuredError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("submission failed (%d %s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("submission failed (%d %s): %s (%d field errors)", e.Status, e.Code, e.Message, len(e.Fields))
}

// AsStructuredError unwraps a *StructuredError from err.
func AsStructuredError(err error) (*StructuredError, bool) {
	var serr *StructuredError
	if errors.As(err, &serr) {
		return serr, true
	}
	return nil, false
}
