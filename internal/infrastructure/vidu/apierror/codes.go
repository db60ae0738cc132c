// Package apierror maps the remote service's machine-readable error
// codes to messages, HTTP statuses, and retry guidance. A non-zero
// error_code in an HTTP 200 body becomes an *Error; transport-level
// failures never reach this package.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Code is a machine-readable error code returned by the remote API.
type Code string

const (
	CodeSuccess Code = "0"

	// Parameter errors (400)
	CodeInvalidParameter         Code = "400"
	CodeMissingRequiredParameter Code = "400001"
	CodeInvalidModel             Code = "400002"
	CodeInvalidImageFormat       Code = "400003"
	CodeInvalidImageSize         Code = "400004"
	CodeInvalidImageRatio        Code = "400005"
	CodeInvalidPromptLength      Code = "400006"
	CodeInvalidDuration          Code = "400007"
	CodeInvalidResolution        Code = "400008"
	CodeInvalidAspectRatio       Code = "400009"
	CodeInvalidMovementAmplitude Code = "400010"
	CodeInvalidSeed              Code = "400011"
	CodeInvalidPayloadLength     Code = "400012"
	CodeInvalidCallbackURL       Code = "400013"
	CodeInvalidVideoURL          Code = "400014"
	CodeInvalidAudioURL          Code = "400015"
	CodeInvalidVoiceID           Code = "400016"
	CodeInvalidTimingParameters  Code = "400017"

	// Authentication errors (401)
	CodeUnauthorized  Code = "401"
	CodeInvalidAPIKey Code = "401001"
	CodeAPIKeyExpired Code = "401002"
	CodeInvalidToken  Code = "401003"

	// Permission errors (403)
	CodeForbidden               Code = "403"
	CodeInsufficientPermissions Code = "403001"
	CodeAccountSuspended        Code = "403002"
	CodeRateLimitExceeded       Code = "403003"
	CodeQuotaExceeded           Code = "403004"

	// Resource errors (404)
	CodeNotFound      Code = "404"
	CodeTaskNotFound  Code = "404001"
	CodeModelNotFound Code = "404002"
	CodeVoiceNotFound Code = "404003"

	// Throttling errors (429)
	CodeTooManyRequests Code = "429"
	CodeRateLimitHit    Code = "429001"

	// Server errors (500)
	CodeInternalServerError Code = "500"
	CodeServiceUnavailable  Code = "500001"
	CodeProcessingError     Code = "500002"
	CodeModelError          Code = "500003"
	CodeStorageError        Code = "500004"

	// Task state conflicts (409)
	CodeTaskAlreadyCompleted Code = "409001"
	CodeTaskAlreadyCancelled Code = "409002"
	CodeTaskInProgress       Code = "409003"

	// File errors
	CodeFileTooLarge          Code = "413001"
	CodeUnsupportedFileFormat Code = "415001"
	CodeFileCorrupted         Code = "422001"
)

type entry struct {
	message string
	status  int
}

var catalog = map[Code]entry{
	CodeInvalidParameter:         {"invalid request parameter", http.StatusBadRequest},
	CodeMissingRequiredParameter: {"missing required parameter", http.StatusBadRequest},
	CodeInvalidModel:             {"invalid model name", http.StatusBadRequest},
	CodeInvalidImageFormat:       {"invalid image format", http.StatusBadRequest},
	CodeInvalidImageSize:         {"image size exceeds the limit", http.StatusBadRequest},
	CodeInvalidImageRatio:        {"image aspect ratio out of range", http.StatusBadRequest},
	CodeInvalidPromptLength:      {"prompt length exceeds the limit", http.StatusBadRequest},
	CodeInvalidDuration:          {"invalid clip duration", http.StatusBadRequest},
	CodeInvalidResolution:        {"invalid resolution", http.StatusBadRequest},
	CodeInvalidAspectRatio:       {"invalid aspect ratio", http.StatusBadRequest},
	CodeInvalidMovementAmplitude: {"invalid movement amplitude", http.StatusBadRequest},
	CodeInvalidSeed:              {"invalid seed", http.StatusBadRequest},
	CodeInvalidPayloadLength:     {"payload length exceeds the limit", http.StatusBadRequest},
	CodeInvalidCallbackURL:       {"invalid callback URL", http.StatusBadRequest},
	CodeInvalidVideoURL:          {"invalid video URL", http.StatusBadRequest},
	CodeInvalidAudioURL:          {"invalid audio URL", http.StatusBadRequest},
	CodeInvalidVoiceID:           {"invalid voice ID", http.StatusBadRequest},
	CodeInvalidTimingParameters:  {"invalid timing parameters", http.StatusBadRequest},

	CodeUnauthorized:  {"authentication failed", http.StatusUnauthorized},
	CodeInvalidAPIKey: {"invalid API key", http.StatusUnauthorized},
	CodeAPIKeyExpired: {"API key expired", http.StatusUnauthorized},
	CodeInvalidToken:  {"invalid access token", http.StatusUnauthorized},

	CodeForbidden:               {"forbidden", http.StatusForbidden},
	CodeInsufficientPermissions: {"insufficient permissions", http.StatusForbidden},
	CodeAccountSuspended:        {"account suspended", http.StatusForbidden},
	CodeRateLimitExceeded:       {"request rate limit exceeded", http.StatusForbidden},
	CodeQuotaExceeded:           {"quota exhausted", http.StatusForbidden},

	CodeNotFound:      {"resource not found", http.StatusNotFound},
	CodeTaskNotFound:  {"task not found", http.StatusNotFound},
	CodeModelNotFound: {"model not found", http.StatusNotFound},
	CodeVoiceNotFound: {"voice not found", http.StatusNotFound},

	CodeTooManyRequests: {"too many requests", http.StatusTooManyRequests},
	CodeRateLimitHit:    {"rate limit hit", http.StatusTooManyRequests},

	CodeInternalServerError: {"internal server error", http.StatusInternalServerError},
	CodeServiceUnavailable:  {"service unavailable", http.StatusInternalServerError},
	CodeProcessingError:     {"processing error", http.StatusInternalServerError},
	CodeModelError:          {"model processing error", http.StatusInternalServerError},
	CodeStorageError:        {"storage error", http.StatusInternalServerError},

	CodeTaskAlreadyCompleted: {"task already completed", http.StatusConflict},
	CodeTaskAlreadyCancelled: {"task already cancelled", http.StatusConflict},
	CodeTaskInProgress:       {"task still in progress", http.StatusConflict},

	CodeFileTooLarge:          {"file too large", http.StatusRequestEntityTooLarge},
	CodeUnsupportedFileFormat: {"unsupported file format", http.StatusUnsupportedMediaType},
	CodeFileCorrupted:         {"file corrupted", http.StatusUnprocessableEntity},
}

// Error is a non-zero error code carried in an otherwise successful
// response body from the remote API.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return fmt.Sprintf("remote error %s: %s", e.Code, e.Message)
}

// New builds an Error for a code using the catalog message.
func New(code Code, details map[string]any) *Error {
	return &Error{Code: code, Message: Message(code), Details: details}
}

// Check inspects a decoded response body's error code and returns a
// typed error when it is non-zero. An empty code means the response
// carried no error envelope at all.
func Check(code string, details map[string]any) error {
	if code == "" || Code(code) == CodeSuccess {
		return nil
	}
	return New(Code(code), details)
}

// As unwraps err into an *Error when possible.
func As(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// Message returns the catalog message for a code.
func Message(code Code) string {
	if e, ok := catalog[code]; ok {
		return e.message
	}
	return fmt.Sprintf("unknown error: %s", code)
}

// HTTPStatus returns the HTTP status the remote associates with a code.
func HTTPStatus(code Code) int {
	if e, ok := catalog[code]; ok {
		return e.status
	}
	return http.StatusInternalServerError
}

// IsRetryable reports whether a request failing with this code may
// succeed on retry. The client never retries on its own; this guides
// callers.
func IsRetryable(code Code) bool {
	switch code {
	case CodeInternalServerError, CodeServiceUnavailable, CodeProcessingError,
		CodeModelError, CodeStorageError, CodeTooManyRequests, CodeRateLimitHit:
		return true
	}
	return false
}

var retryBaseDelays = map[Code]time.Duration{
	CodeTooManyRequests:     60 * time.Second,
	CodeRateLimitHit:        30 * time.Second,
	CodeServiceUnavailable:  5 * time.Second,
	CodeInternalServerError: 2 * time.Second,
	CodeProcessingError:     2 * time.Second,
	CodeModelError:          2 * time.Second,
	CodeStorageError:        2 * time.Second,
}

// RetryDelay returns the suggested backoff before the given retry
// attempt (1-based). Delays double per attempt and cap at five minutes.
func RetryDelay(code Code, attempt int) time.Duration {
	base, ok := retryBaseDelays[code]
	if !ok {
		base = time.Second
	}
	if attempt < 1 {
		attempt = 1
	}
	delay := base << (attempt - 1)
	if delay > 5*time.Minute || delay < base {
		return 5 * time.Minute
	}
	return delay
}

// SuggestedAction returns operator guidance for a code.
func SuggestedAction(code Code) string {
	switch code {
	case CodeInvalidAPIKey:
		return "check that the API key is correct"
	case CodeAPIKeyExpired:
		return "renew the API key"
	case CodeQuotaExceeded:
		return "upgrade the account or wait for the quota to reset"
	case CodeRateLimitExceeded:
		return "reduce the request rate"
	case CodeInvalidImageSize:
		return "keep images under 50MB"
	case CodeInvalidImageRatio:
		return "keep the image aspect ratio between 1:4 and 4:1"
	case CodeInvalidPromptLength:
		return "shorten the prompt to at most 1500 characters"
	case CodeInvalidPayloadLength:
		return "shorten the payload to at most 1048576 characters"
	case CodeTaskNotFound:
		return "check the task ID"
	case CodeModelNotFound:
		return "check the model name"
	case CodeVoiceNotFound:
		return "check the voice ID"
	case CodeFileTooLarge:
		return "compress the file or use a smaller one"
	case CodeUnsupportedFileFormat:
		return "use a supported image format (png, jpeg, jpg, webp)"
	case CodeServiceUnavailable:
		return "retry later"
	case CodeInternalServerError:
		return "retry later and contact support if the problem persists"
	}
	return "check the request parameters and retry"
}
