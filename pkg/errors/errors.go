package errors

import (
	"fmt"
)

// ParseError represents a theme or settings file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures a field that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError reports a lookup by name that matched nothing, such as an
// unknown theme, component kind or gallery screen.
type NotFoundError struct {
	Kind  string
	Name  string
	Known []string
}

// NewNotFoundError constructs a NotFoundError. Known lists the valid names
// and is included in the message when present.
func NewNotFoundError(kind, name string, known ...string) error {
	return &NotFoundError{Kind: kind, Name: name, Known: known}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if len(e.Known) > 0 {
		return fmt.Sprintf("unknown %s %q (known: %v)", e.Kind, e.Name, e.Known)
	}
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Name)
}
