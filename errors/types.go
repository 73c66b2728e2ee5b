package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// ErrorCode classifies an error so callers can react to the condition
// rather than match on message text.
type ErrorCode string

const (
	// Configuration
	ErrCodeConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrCodeConfigInvalid    ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigValidation ErrorCode = "CONFIG_VALIDATION"

	// Docks and panels
	ErrCodePanelNotFound    ErrorCode = "PANEL_NOT_FOUND"
	ErrCodePanelDuplicate   ErrorCode = "PANEL_DUPLICATE"
	ErrCodeInvalidPosition  ErrorCode = "INVALID_POSITION"
	ErrCodePositionRejected ErrorCode = "POSITION_REJECTED"

	// Settings persistence
	ErrCodeSettingsLoad  ErrorCode = "SETTINGS_LOAD"
	ErrCodeSettingsSave  ErrorCode = "SETTINGS_SAVE"
	ErrCodeSettingsWatch ErrorCode = "SETTINGS_WATCH"

	// Event bridge
	ErrCodeBridgeListen ErrorCode = "BRIDGE_LISTEN"
	ErrCodeBridgeClosed ErrorCode = "BRIDGE_CLOSED"

	// General
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
	ErrCodeInvalidInput     ErrorCode = "INVALID_INPUT"
	ErrCodePermissionDenied ErrorCode = "PERMISSION_DENIED"
)

// WorkbenchError pairs a code with a human-readable message, optional
// structured details, and the wrapped cause.
type WorkbenchError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// New builds a WorkbenchError with the given code and message.
func New(code ErrorCode, message string) *WorkbenchError {
	return &WorkbenchError{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(cause error, code ErrorCode, message string) *WorkbenchError {
	return &WorkbenchError{Code: code, Message: message, Cause: cause}
}

func (e *WorkbenchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the cause to the standard errors helpers.
func (e *WorkbenchError) Unwrap() error {
	return e.Cause
}

// WithDetail records a named value on the error and returns the
// receiver, so constructors can chain details.
func (e *WorkbenchError) WithDetail(key string, value interface{}) *WorkbenchError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON renders the error for machine consumers. The cause is already
// folded into Error() output and is left out of the JSON form.
func (e *WorkbenchError) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// find returns the first WorkbenchError in the wrap chain, or nil.
func find(err error) *WorkbenchError {
	var wbErr *WorkbenchError
	if stderrors.As(err, &wbErr) {
		return wbErr
	}
	return nil
}

// Is reports whether err, or any error it wraps, carries the code.
func Is(err error, code ErrorCode) bool {
	for wbErr := find(err); wbErr != nil; wbErr = find(wbErr.Cause) {
		if wbErr.Code == code {
			return true
		}
	}
	return false
}

// GetCode returns the code of the outermost WorkbenchError in the
// chain, or the empty string when there is none.
func GetCode(err error) ErrorCode {
	if wbErr := find(err); wbErr != nil {
		return wbErr.Code
	}
	return ""
}
