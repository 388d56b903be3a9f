package apierrors

import (
	"errors"
	"fmt"
	"strings"
)

// AuthError is an authentication failure (HTTP 401). It is handled
// centrally by the transport (session cleared, login redirect signaled)
// before it is returned; callers only use it to stop what they were
// doing.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// ValidationError is a rejected request (4xx other than 401) carrying
// the server-provided message. Code and Field are set when the server
// returns a machine-readable shape, e.g. code "duplicate_key" with the
// conflicting field.
type ValidationError struct {
	Message    string
	Code       string
	Field      string
	StatusCode int
}

func (e *ValidationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%d] %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("[%d] %s", e.StatusCode, e.Message)
}

// NetworkError means no response was received at all
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string {
	return "could not reach the server"
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// ServerError is a 5xx response
type ServerError struct {
	StatusCode int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error (%d)", e.StatusCode)
}

// NewAuthError creates an authentication error
func NewAuthError(message string) *AuthError {
	if message == "" {
		message = "authentication required"
	}
	return &AuthError{Message: message}
}

// IsAuth reports whether err is an authentication failure
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsValidation reports whether err is a validation failure
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsNetwork reports whether err is a network failure
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

// IsServer reports whether err is a server-side failure
func IsServer(err error) bool {
	var srvErr *ServerError
	return errors.As(err, &srvErr)
}

// IsDuplicate reports whether err is a duplicate-key validation failure
func IsDuplicate(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr) && valErr.Code == "duplicate_key"
}

// FormatError returns a user-friendly message with a suggestion where
// one helps
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	var valErr *ValidationError
	var srvErr *ServerError

	switch {
	case IsAuth(err):
		sb.WriteString("Session expired, please log in again.\n")
		sb.WriteString("Run 'mingle auth login' to start a new session.")
	case errors.As(err, &valErr):
		if valErr.Code == "duplicate_key" && valErr.Field != "" {
			fmt.Fprintf(&sb, "That %s is already registered.", valErr.Field)
		} else {
			sb.WriteString(valErr.Message)
		}
	case IsNetwork(err):
		sb.WriteString("Could not reach the server.\n")
		sb.WriteString("Check your internet connection and try again.")
	case errors.As(err, &srvErr):
		sb.WriteString("The server encountered an error. Try again in a few moments.")
	default:
		sb.WriteString(err.Error())
	}

	return sb.String()
}
