package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error types for common failure scenarios.
var (
	ErrNoCurrentPlaylist = errors.New("no current playlist")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrListenerFailure   = errors.New("listener failed")
	ErrConfigNotFound    = errors.New("config file not found")
	ErrInvalidConfig     = errors.New("invalid configuration")
)

// ChorusError wraps an error with a user-friendly suggestion.
type ChorusError struct {
	Err        error
	Suggestion string
}

func (e *ChorusError) Error() string {
	return e.Err.Error()
}

func (e *ChorusError) Unwrap() error {
	return e.Err
}

// WithSuggestion wraps an error with a helpful suggestion.
func WithSuggestion(err error, suggestion string) error {
	return &ChorusError{
		Err:        err,
		Suggestion: suggestion,
	}
}

// ListenerError records a failure raised by a single listener during dispatch.
type ListenerError struct {
	Listener string
	Event    string
	Err      error
}

func (e *ListenerError) Error() string {
	return fmt.Sprintf("%s: listener %q on %s: %v", ErrListenerFailure, e.Listener, e.Event, e.Err)
}

func (e *ListenerError) Unwrap() []error {
	return []error{ErrListenerFailure, e.Err}
}

// GetSuggestion returns a suggestion for the given error.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	var chorusErr *ChorusError
	if errors.As(err, &chorusErr) && chorusErr.Suggestion != "" {
		return chorusErr.Suggestion
	}

	errStr := strings.ToLower(err.Error())

	if errors.Is(err, ErrConfigNotFound) {
		return "Create ~/.chorusrc or pass --config with an existing file"
	}

	if errors.Is(err, ErrInvalidConfig) || strings.Contains(errStr, "toml") {
		return "Check the config file; run with no config to use the defaults"
	}

	if errors.Is(err, ErrNoCurrentPlaylist) {
		return "Set a current playlist before adding tracks"
	}

	if strings.Contains(errStr, "permission denied") {
		return "Check that the log file location is writable"
	}

	return ""
}

// Format returns a formatted error message with suggestion if available.
func Format(err error) string {
	if err == nil {
		return ""
	}

	suggestion := GetSuggestion(err)
	if suggestion != "" {
		return fmt.Sprintf("Error: %s\n\nSuggestion: %s", err.Error(), suggestion)
	}

	return fmt.Sprintf("Error: %s", err.Error())
}
