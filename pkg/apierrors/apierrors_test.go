package apierrors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestPredicates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want func(error) bool
	}{
		{"auth", NewAuthError("expired"), IsAuth},
		{"validation", &ValidationError{Message: "bad", StatusCode: 400}, IsValidation},
		{"network", &NetworkError{Cause: errors.New("refused")}, IsNetwork},
		{"server", &ServerError{StatusCode: 500}, IsServer},
	}

	for _, tt := range tests {
		if !tt.want(tt.err) {
			t.Errorf("%s: predicate did not match its own error", tt.name)
		}
	}
}

func TestPredicatesDoNotCrossMatch(t *testing.T) {
	valErr := &ValidationError{Message: "bad", StatusCode: 400}

	if IsAuth(valErr) || IsNetwork(valErr) || IsServer(valErr) {
		t.Error("validation error matched a foreign predicate")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("plain error should not match IsValidation")
	}
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetching feed: %w", NewAuthError("expired"))
	if !IsAuth(wrapped) {
		t.Error("IsAuth should see through wrapping")
	}
}

func TestIsDuplicate(t *testing.T) {
	dup := &ValidationError{Message: "exists", Code: "duplicate_key", Field: "email", StatusCode: 409}
	if !IsDuplicate(dup) {
		t.Error("duplicate-key error not detected")
	}

	plain := &ValidationError{Message: "bad", StatusCode: 400}
	if IsDuplicate(plain) {
		t.Error("plain validation error should not be a duplicate")
	}
}

func TestNetworkErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("NetworkError should unwrap to its cause")
	}
}

func TestAuthErrorDefaultMessage(t *testing.T) {
	err := NewAuthError("")
	if err.Message == "" {
		t.Error("empty message should get a default")
	}
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil", nil, ""},
		{"auth", NewAuthError("expired"), "log in again"},
		{"validation", &ValidationError{Message: "title is required", StatusCode: 400}, "title is required"},
		{"duplicate", &ValidationError{Code: "duplicate_key", Field: "email", StatusCode: 409}, "email is already registered"},
		{"network", &NetworkError{}, "Could not reach the server"},
		{"server", &ServerError{StatusCode: 502}, "server encountered an error"},
		{"plain", errors.New("oops"), "oops"},
	}

	for _, tt := range tests {
		got := FormatError(tt.err)
		if tt.contains == "" {
			if got != "" {
				t.Errorf("%s: expected empty, got %q", tt.name, got)
			}
			continue
		}
		if !strings.Contains(got, tt.contains) {
			t.Errorf("%s: %q does not contain %q", tt.name, got, tt.contains)
		}
	}
}

func TestValidationErrorString(t *testing.T) {
	err := &ValidationError{Message: "exists", Code: "duplicate_key", StatusCode: 409}
	if !strings.Contains(err.Error(), "409") || !strings.Contains(err.Error(), "duplicate_key") {
		t.Errorf("error string missing detail: %q", err.Error())
	}
}
