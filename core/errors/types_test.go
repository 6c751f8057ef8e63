package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&ConnectivityError{}, "no network connection"},
		{&ServerError{StatusCode: 503}, "server error: status 503"},
		{&DecodingError{}, "failed to decode response"},
		{&CancelledError{}, "request cancelled"},
		{&UnknownError{}, "unknown error"},
		{&ValidationError{Field: "page", Message: "must be a positive integer"}, "validation error on field 'page': must be a positive integer"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestTypeChecks(t *testing.T) {
	if !IsConnectivity(&ConnectivityError{}) {
		t.Error("IsConnectivity should match ConnectivityError")
	}
	if !IsServer(&ServerError{StatusCode: 500}) {
		t.Error("IsServer should match ServerError")
	}
	if !IsDecoding(&DecodingError{}) {
		t.Error("IsDecoding should match DecodingError")
	}
	if !IsCancelled(&CancelledError{}) {
		t.Error("IsCancelled should match CancelledError")
	}
	if !IsValidation(&ValidationError{}) {
		t.Error("IsValidation should match ValidationError")
	}

	if IsServer(&ConnectivityError{}) {
		t.Error("IsServer should not match ConnectivityError")
	}
	if IsConnectivity(errors.New("plain")) {
		t.Error("IsConnectivity should not match a plain error")
	}
}

func TestTypeChecks_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("fetch failed: %w", &ServerError{StatusCode: 502})

	if !IsServer(wrapped) {
		t.Error("IsServer should match a wrapped ServerError")
	}
}

func TestIsRetriable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{&ConnectivityError{}, true},
		{&ServerError{StatusCode: 500}, true},
		{&ServerError{StatusCode: 503}, true},
		{&ServerError{StatusCode: 404}, false},
		{&ServerError{StatusCode: 429}, false},
		{&DecodingError{}, false},
		{&CancelledError{}, false},
		{&UnknownError{}, false},
		{errors.New("plain"), false},
	}

	for _, tt := range tests {
		if got := IsRetriable(tt.err); got != tt.want {
			t.Errorf("IsRetriable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("socket closed")
	err := &ConnectivityError{Err: inner}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}

	inner := errors.New("boom")
	wrapped := WrapError(inner, "while fetching")

	if !errors.Is(wrapped, inner) {
		t.Error("WrapError should preserve the wrapped error")
	}
	if wrapped.Error() != "while fetching: boom" {
		t.Errorf("WrapError message = %q", wrapped.Error())
	}
}
