// Package errors provides standardized error handling for folio.
// It defines the error kinds raised while building the page, loading
// configuration and reading content, plus helpers for creating, wrapping
// and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrElementMissing = NewElementError("required element missing", "", "", nil)
	ErrFileNotFound   = NewFileError("file not found", "", FileNotFound, nil)
	ErrInvalidConfig  = NewConfigError("invalid configuration", "", InvalidConfig, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Page error kinds
	ElementMissing
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	InvalidPattern
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Watch error kinds
	WatchFailed
)

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// ElementError reports a page element that could not be resolved.
type ElementError struct {
	ApplicationError
	scope   string
	element string
}

// NewElementError creates a new missing-element error. scope is the section
// the lookup ran against and element the identifier that failed.
func NewElementError(msg, scope, element string, err error) *ElementError {
	return &ElementError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: ElementMissing,
		},
		scope:   scope,
		element: element,
	}
}

// Error returns the element error message
func (e *ElementError) Error() string {
	switch {
	case e.scope != "" && e.element != "":
		return fmt.Sprintf("%s: %s#%s", e.msg, e.scope, e.element)
	case e.scope != "":
		return fmt.Sprintf("%s: %s", e.msg, e.scope)
	case e.element != "":
		return fmt.Sprintf("%s: #%s", e.msg, e.element)
	}
	return e.ApplicationError.Error()
}

// Is matches any other ElementError so callers can test against
// ErrElementMissing regardless of scope.
func (e *ElementError) Is(target error) bool {
	_, ok := target.(*ElementError)
	return ok
}

// Scope returns the section identifier the lookup ran against
func (e *ElementError) Scope() string {
	return e.scope
}

// Element returns the identifier of the element that was not found
func (e *ElementError) Element() string {
	return e.element
}

// FileError represents errors related to content files
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to configuration
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// NewKind creates a new error of the given kind
func NewKind(kind ErrorKind, msg string, err error) error {
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: kind,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the first kinded error in err's chain.
func KindOf(err error) ErrorKind {
	for err != nil {
		if k, ok := err.(interface{ Kind() ErrorKind }); ok && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsElementMissing checks if the error is a missing page element error
func IsElementMissing(err error) bool {
	var elemErr *ElementError
	return errors.As(err, &elemErr)
}

// IsFileNotFound checks if the error is a file not found error
func IsFileNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == FileNotFound
	}
	return false
}

// IsInvalidConfig checks if the error is an invalid configuration error
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == InvalidConfig
	}
	return false
}

// IsConfigNotFound checks if the error is a missing config file error
func IsConfigNotFound(err error) bool {
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return configErr.Kind() == ConfigNotFound
	}
	return false
}
