// Package errors provides standardized error handling for the iconview
// application. It defines common error types, kinds, and helper functions
// for consistent error creation, wrapping, and classification across the
// index store, path resolver, and image loader.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package functions re-exported for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// Index error kinds
	IndexFormat
	IndexNotFound
	// Path error kinds
	RootNotSet
	InvalidPath
	// Image error kinds
	ImageNotFound
	ImageDecode
	// Config error kinds
	InvalidConfig
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

// IndexError represents errors raised while loading or querying the icon index
type IndexError struct {
	ApplicationError
	path string
}

// NewIndexError creates a new index error
func NewIndexError(msg string, path string, kind ErrorKind, err error) *IndexError {
	return &IndexError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the index error message
func (e *IndexError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the index file path associated with the error
func (e *IndexError) Path() string {
	return e.path
}

// PathError represents errors raised while resolving an entry path
type PathError struct {
	ApplicationError
	relPath string
}

// NewPathError creates a new path resolution error
func NewPathError(msg string, relPath string, kind ErrorKind, err error) *PathError {
	return &PathError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		relPath: relPath,
	}
}

// Error returns the path error message
func (e *PathError) Error() string {
	if e.relPath != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.relPath, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.relPath)
	}
	return e.ApplicationError.Error()
}

// RelPath returns the relative path associated with the error
func (e *PathError) RelPath() string {
	return e.relPath
}

// ImageError represents errors raised while loading a preview image.
// It always carries the attempted absolute path so the front end can
// display it next to the failure.
type ImageError struct {
	ApplicationError
	path string
}

// NewImageError creates a new image loading error
func NewImageError(msg string, path string, kind ErrorKind, err error) *ImageError {
	return &ImageError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the image error message
func (e *ImageError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the attempted absolute path associated with the error
func (e *ImageError) Path() string {
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

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
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

// IsIndexFormat checks if the error reports a malformed index document
func IsIndexFormat(err error) bool {
	var idxErr *IndexError
	if errors.As(err, &idxErr) {
		return idxErr.Kind() == IndexFormat
	}
	return false
}

// IsRootNotSet checks if the error reports a missing root directory
func IsRootNotSet(err error) bool {
	var pathErr *PathError
	if errors.As(err, &pathErr) {
		return pathErr.Kind() == RootNotSet
	}
	return false
}

// IsImageNotFound checks if the error reports a missing image file
func IsImageNotFound(err error) bool {
	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		return imgErr.Kind() == ImageNotFound
	}
	return false
}

// IsImageDecode checks if the error reports an undecodable image file
func IsImageDecode(err error) bool {
	var imgErr *ImageError
	if errors.As(err, &imgErr) {
		return imgErr.Kind() == ImageDecode
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
