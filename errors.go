package scriptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Common errors.
var (
	// ErrUndefinedValue is returned when Undefined is serialized.
	ErrUndefinedValue = errors.New("scriptutils: undefined value")

	// ErrCyclicRecord is returned when a record contains itself while being
	// encoded.
	ErrCyclicRecord = errors.New("scriptutils: cyclic record")

	// ErrNoMember is returned when invoking a member a record does not have.
	ErrNoMember = errors.New("scriptutils: no such member")

	// ErrNotCallable is returned when invoking a member that is not a function.
	ErrNotCallable = errors.New("scriptutils: member is not callable")
)

// SerializationError reports a value the codec could not encode.
type SerializationError struct {
	Value any
	Err   error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("scriptutils: serialize %T: %v", e.Value, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// ParseError reports malformed input. Offset is the byte offset of the
// failure when the codec reports one, -1 otherwise.
type ParseError struct {
	Offset int64
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("scriptutils: parse at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("scriptutils: parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a document that does not match its schema.
type ValidationError struct {
	Violations []*SchemaViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("scriptutils: document does not match schema: %s", strings.Join(msgs, "; "))
}

// Unwrap returns every violation.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		errs[i] = v
	}
	return errs
}

// SchemaViolation is one schema rule a document breaks.
type SchemaViolation struct {
	gojsonschema.ResultError
}

func (v *SchemaViolation) Error() string { return v.String() }
