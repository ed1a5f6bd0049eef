package errors

import (
	"fmt"
)

// NotFoundError is returned when the input report does not exist.
type NotFoundError struct {
	Path string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the file %s does not exist", e.Path)
}

// NewNotFoundError creates a NotFoundError for the given path.
func NewNotFoundError(path string) error {
	return &NotFoundError{Path: path}
}

// ParseError is returned when the input is not a well-formed Nessus report.
type ParseError struct {
	Path string
	Err  error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse Nessus report: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse Nessus report %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps a decoding failure.
func NewParseError(path string, err error) error {
	return &ParseError{Path: path, Err: err}
}

// SchemaError is returned when a required field is missing from an otherwise well-formed report.
// Host and PluginID are filled in as far as they are known at the point of failure.
type SchemaError struct {
	Host     string
	PluginID string
	Field    string
	Reason   string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "is missing"
	}
	switch {
	case e.Host != "" && e.PluginID != "":
		return fmt.Sprintf("report item %q on host %q: field %q %s", e.PluginID, e.Host, e.Field, reason)
	case e.Host != "":
		return fmt.Sprintf("host %q: field %q %s", e.Host, e.Field, reason)
	default:
		return fmt.Sprintf("field %q %s", e.Field, reason)
	}
}

// NewSchemaError creates a SchemaError for a missing field.
func NewSchemaError(host, pluginID, field string) error {
	return &SchemaError{Host: host, PluginID: pluginID, Field: field}
}

// NewInvalidFieldError creates a SchemaError for a field that is present but unusable.
func NewInvalidFieldError(host, pluginID, field, reason string) error {
	return &SchemaError{Host: host, PluginID: pluginID, Field: field, Reason: reason}
}

// WriteError is returned when the output file could not be written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface for WriteError.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// NewWriteError wraps an output failure.
func NewWriteError(path string, err error) error {
	return &WriteError{Path: path, Err: err}
}
