package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBookDNE indicates that a process attempted to retrieve a book that
	// does not exist.
	ErrBookDNE = errors.New("book dne")
)

// AsValidationError checks to see if the passed error is of type
// ValidationError.
func AsValidationError(err error) ValidationError {
	var valErr ValidationError
	if errors.As(err, &valErr) {
		return valErr
	}
	return nil
}

// FieldError describes a single input field that failed validation.
type FieldError struct {
	Field string
	Tag   string
}

// ValidationError indicates a client supplied input that failed one or more
// field validators.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fmt.Sprintf("%q failed %q validator", fe.Field, fe.Tag))
	}
	return fmt.Sprintf("input invalid; %s", strings.Join(msgs, ", "))
}

// Fields maps each invalid field to the validator it failed.
func (e ValidationError) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, fe := range e {
		fields[fe.Field] = fe.Tag
	}
	return fields
}
