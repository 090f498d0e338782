// Package errors provides sentinel errors and custom error types for the zikkycal application.
// Use errors.Is() and errors.As() to check for specific error types.
//
// The calculator engine itself never returns errors: invalid arithmetic shows up as
// NaN or Infinity on the display. These errors belong to the outer surfaces that feed
// events into the engine (dispatch table, CLI tokens, configuration).
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrUnknownEvent indicates an event with a value or action the dispatch table does not route
	ErrUnknownEvent = errors.New("unknown calculator event")

	// ErrUnknownToken indicates a CLI token that does not name a key or action
	ErrUnknownToken = errors.New("unknown token")

	// ErrUnknownConfigKey indicates a configuration key that does not exist
	ErrUnknownConfigKey = errors.New("unknown configuration key")

	// ErrInvalidConfigValue indicates a value rejected by a configuration key
	ErrInvalidConfigValue = errors.New("invalid configuration value")

	// ErrInteractiveDisabled is returned when interactive prompts are disabled via ZIKKYCAL_TEST_NO_INTERACTIVE
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled (ZIKKYCAL_TEST_NO_INTERACTIVE is set)")
)

// UnknownTokenError represents a token that could not be mapped to a calculator event
type UnknownTokenError struct {
	Token      string
	Suggestion string
}

func (e *UnknownTokenError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown token %q (did you mean %q?)", e.Token, e.Suggestion)
	}
	return fmt.Sprintf("unknown token %q", e.Token)
}

// Is returns true if the target error is ErrUnknownToken
func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

// NewUnknownTokenError creates a new UnknownTokenError
func NewUnknownTokenError(token, suggestion string) *UnknownTokenError {
	return &UnknownTokenError{Token: token, Suggestion: suggestion}
}

// ConfigKeyError represents a configuration key that does not exist
type ConfigKeyError struct {
	Key        string
	Suggestion string
}

func (e *ConfigKeyError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown configuration key: %s (did you mean %s?)", e.Key, e.Suggestion)
	}
	return fmt.Sprintf("unknown configuration key: %s", e.Key)
}

// Is returns true if the target error is ErrUnknownConfigKey
func (e *ConfigKeyError) Is(target error) bool {
	return target == ErrUnknownConfigKey
}

// NewConfigKeyError creates a new ConfigKeyError
func NewConfigKeyError(key, suggestion string) *ConfigKeyError {
	return &ConfigKeyError{Key: key, Suggestion: suggestion}
}

// ConfigValueError represents a value that a configuration key does not accept
type ConfigValueError struct {
	Key     string
	Value   string
	Allowed []string
}

func (e *ConfigValueError) Error() string {
	if len(e.Allowed) > 0 {
		return fmt.Sprintf("invalid value for %s: %s (must be one of %v)", e.Key, e.Value, e.Allowed)
	}
	return fmt.Sprintf("invalid value for %s: %s", e.Key, e.Value)
}

// Is returns true if the target error is ErrInvalidConfigValue
func (e *ConfigValueError) Is(target error) bool {
	return target == ErrInvalidConfigValue
}

// NewConfigValueError creates a new ConfigValueError
func NewConfigValueError(key, value string, allowed []string) *ConfigValueError {
	return &ConfigValueError{Key: key, Value: value, Allowed: allowed}
}
