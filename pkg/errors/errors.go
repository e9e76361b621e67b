// Package errors provides structured error handling for the formbind library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates an invalid field or form configuration.
	KindConfig
	// KindSnapshot indicates a value snapshot read or write failure.
	KindSnapshot
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindSnapshot:
		return "snapshot"
	default:
		return "unknown"
	}
}

// FormError represents a structured error in the formbind library.
type FormError struct {
	// Op is the operation that failed (e.g., "form.New").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Field is the field name involved, if applicable.
	Field string
	// Err is the underlying error.
	Err error
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *FormError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s [%s] field=%s: %v", e.Op, e.Kind, e.Field, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *FormError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid field configuration detected at
// construction time.
type ConfigError struct {
	// Field is the configured field name, if one was supplied.
	Field string
	// Missing names the required configuration entry that was absent.
	Missing string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("field %q is missing required configuration %q", e.Field, e.Missing)
	}
	return fmt.Sprintf("field configuration is missing required entry %q", e.Missing)
}

// Handler receives errors reported by the formbind library.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *FormError)
}
