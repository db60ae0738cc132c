package apierror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/minne100/ViduUI/internal/infrastructure/vidu/apierror"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantErr  bool
		wantCode apierror.Code
	}{
		{"success code", "0", false, ""},
		{"empty code", "", false, ""},
		{"task not found", "404001", true, apierror.CodeTaskNotFound},
		{"unknown code still errors", "999999", true, apierror.Code("999999")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apierror.Check(tt.code, nil)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Check(%q) = %v, want nil", tt.code, err)
				}
				return
			}
			apiErr, ok := apierror.As(err)
			if !ok {
				t.Fatalf("Check(%q) returned %T, want *apierror.Error", tt.code, err)
			}
			if apiErr.Code != tt.wantCode {
				t.Errorf("Check(%q) code = %q, want %q", tt.code, apiErr.Code, tt.wantCode)
			}
		})
	}
}

func TestCheck_WrappedError(t *testing.T) {
	err := fmt.Errorf("submit image-to-video: %w", apierror.Check("401001", nil))
	apiErr, ok := apierror.As(err)
	if !ok {
		t.Fatal("As() did not find *apierror.Error through a wrapped chain")
	}
	if apiErr.Code != apierror.CodeInvalidAPIKey {
		t.Errorf("wrapped code = %q, want %q", apiErr.Code, apierror.CodeInvalidAPIKey)
	}
	var target *apierror.Error
	if !errors.As(err, &target) {
		t.Error("errors.As() did not match *apierror.Error")
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code apierror.Code
		want int
	}{
		{apierror.CodeMissingRequiredParameter, http.StatusBadRequest},
		{apierror.CodeInvalidAPIKey, http.StatusUnauthorized},
		{apierror.CodeQuotaExceeded, http.StatusForbidden},
		{apierror.CodeTaskNotFound, http.StatusNotFound},
		{apierror.CodeRateLimitHit, http.StatusTooManyRequests},
		{apierror.CodeTaskAlreadyCancelled, http.StatusConflict},
		{apierror.CodeFileTooLarge, http.StatusRequestEntityTooLarge},
		{apierror.CodeUnsupportedFileFormat, http.StatusUnsupportedMediaType},
		{apierror.CodeFileCorrupted, http.StatusUnprocessableEntity},
		{apierror.Code("999999"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := apierror.HTTPStatus(tt.code); got != tt.want {
				t.Errorf("HTTPStatus(%q) = %d, want %d", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	retryable := []apierror.Code{
		apierror.CodeInternalServerError,
		apierror.CodeServiceUnavailable,
		apierror.CodeProcessingError,
		apierror.CodeModelError,
		apierror.CodeStorageError,
		apierror.CodeTooManyRequests,
		apierror.CodeRateLimitHit,
	}
	for _, code := range retryable {
		if !apierror.IsRetryable(code) {
			t.Errorf("IsRetryable(%q) = false, want true", code)
		}
	}

	permanent := []apierror.Code{
		apierror.CodeInvalidAPIKey,
		apierror.CodeInvalidModel,
		apierror.CodeTaskNotFound,
		apierror.CodeQuotaExceeded,
	}
	for _, code := range permanent {
		if apierror.IsRetryable(code) {
			t.Errorf("IsRetryable(%q) = true, want false", code)
		}
	}
}

func TestRetryDelay(t *testing.T) {
	tests := []struct {
		name    string
		code    apierror.Code
		attempt int
		want    time.Duration
	}{
		{"rate limit first attempt", apierror.CodeTooManyRequests, 1, 60 * time.Second},
		{"rate limit second attempt", apierror.CodeTooManyRequests, 2, 120 * time.Second},
		{"rate limit caps at five minutes", apierror.CodeTooManyRequests, 4, 5 * time.Minute},
		{"server error grows from two seconds", apierror.CodeInternalServerError, 3, 8 * time.Second},
		{"unknown code backs off from one second", apierror.Code("999999"), 2, 2 * time.Second},
		{"attempt floor is one", apierror.CodeServiceUnavailable, 0, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := apierror.RetryDelay(tt.code, tt.attempt); got != tt.want {
				t.Errorf("RetryDelay(%q, %d) = %v, want %v", tt.code, tt.attempt, got, tt.want)
			}
		})
	}
}

func TestMessage_UnknownCode(t *testing.T) {
	got := apierror.Message(apierror.Code("777"))
	if got != "unknown error: 777" {
		t.Errorf("Message(777) = %q, want unknown-code fallback", got)
	}
}
