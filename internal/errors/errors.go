// Package errors provides centralized error definitions and error handling
// utilities for the summon-python plugin. It defines domain-specific errors,
// sentinel errors, error constructors with context wrapping, and
// classification helpers.
//
// # Error Types
//
// Domain-specific errors represent errors from specific subsystems:
//   - ConfigError: malformed or missing declarative project configuration
//   - TaskError: errors related to task lookup and registration
//   - ToolError: errors starting an external developer tool
//
// A tool that starts and exits non-zero is NOT an error: its exit code is
// surfaced verbatim as the task result. ToolError is reserved for processes
// that could not be started at all.
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewConfigError("test-modules must be a list of strings", errors.ErrBadOptionType)
//	err = err.WithOption("test-modules").WithFile(path)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrUnknownTask) { ... }
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Task-related sentinel errors
var (
	// ErrUnknownTask indicates a task name that is not registered.
	ErrUnknownTask = New("unknown task")
	// ErrTaskExists indicates a duplicate task name at registration time.
	ErrTaskExists = New("task already registered")
)

// Configuration-related sentinel errors
var (
	// ErrProjectFileMissing indicates that no project config file was found.
	ErrProjectFileMissing = New("project config file not found")
	// ErrBadOptionType indicates a config option with the wrong shape.
	ErrBadOptionType = New("config option has wrong type")
	// ErrNoProjectModules indicates that project modules could not be determined.
	ErrNoProjectModules = New("project modules could not be determined")
)

// Tool-related sentinel errors
var (
	// ErrToolNotFound indicates that an external tool executable is missing.
	ErrToolNotFound = New("tool executable not found")
	// ErrToolStartFailed indicates that an external tool failed to start.
	ErrToolStartFailed = New("tool failed to start")
)

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message string
	cause   error
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ConfigError represents malformed or missing declarative configuration.
//
// Example:
//
//	err := errors.NewConfigError("reading test-modules", errors.ErrBadOptionType)
//	err = err.WithOption("test-modules").WithFile("/proj/pyproject.toml")
type ConfigError struct {
	baseError
	Option string
	File   string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{message: message, cause: cause},
	}
}

// WithOption adds the offending option name to the error context.
func (e *ConfigError) WithOption(option string) *ConfigError {
	e.Option = option
	return e
}

// WithFile adds the config file path to the error context.
func (e *ConfigError) WithFile(file string) *ConfigError {
	e.File = file
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	var parts []string
	if e.Option != "" {
		parts = append(parts, fmt.Sprintf("option=%s", e.Option))
	}
	if e.File != "" {
		parts = append(parts, fmt.Sprintf("file=%s", e.File))
	}

	prefix := "config error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("config error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// TaskError represents errors related to task lookup and registration.
//
// Example:
//
//	err := errors.NewTaskError("lookup failed", errors.ErrUnknownTask).WithTask("lnt")
type TaskError struct {
	baseError
	Task string
}

// NewTaskError creates a new TaskError.
func NewTaskError(message string, cause error) *TaskError {
	return &TaskError{
		baseError: baseError{message: message, cause: cause},
	}
}

// WithTask adds the task name to the error context.
func (e *TaskError) WithTask(name string) *TaskError {
	e.Task = name
	return e
}

// Error returns the formatted error message.
func (e *TaskError) Error() string {
	prefix := "task error"
	if e.Task != "" {
		prefix = fmt.Sprintf("task error [task=%s]", e.Task)
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *TaskError) Is(target error) bool {
	if _, ok := target.(*TaskError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ToolError represents a failure to start an external developer tool.
//
// Example:
//
//	err := errors.NewToolError("spawning linter", errors.ErrToolNotFound).WithTool("flake8")
type ToolError struct {
	baseError
	Tool string
	Dir  string
}

// NewToolError creates a new ToolError.
func NewToolError(message string, cause error) *ToolError {
	return &ToolError{
		baseError: baseError{message: message, cause: cause},
	}
}

// WithTool adds the tool executable name to the error context.
func (e *ToolError) WithTool(tool string) *ToolError {
	e.Tool = tool
	return e
}

// WithDir adds the working directory to the error context.
func (e *ToolError) WithDir(dir string) *ToolError {
	e.Dir = dir
	return e
}

// Error returns the formatted error message.
func (e *ToolError) Error() string {
	var parts []string
	if e.Tool != "" {
		parts = append(parts, fmt.Sprintf("tool=%s", e.Tool))
	}
	if e.Dir != "" {
		parts = append(parts, fmt.Sprintf("dir=%s", e.Dir))
	}

	prefix := "tool error"
	if len(parts) > 0 {
		prefix = fmt.Sprintf("tool error [%s]", strings.Join(parts, ", "))
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ToolError) Is(target error) bool {
	if _, ok := target.(*ToolError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsConfigError returns true if the error is (or wraps) a ConfigError.
func IsConfigError(err error) bool {
	var cfgErr *ConfigError
	return As(err, &cfgErr)
}

// IsUnknownTask returns true if the error indicates a task lookup miss.
func IsUnknownTask(err error) bool {
	return Is(err, ErrUnknownTask)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "loading project config")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "running task %s", name)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
