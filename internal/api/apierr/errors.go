package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/luckyroad/casinohub/internal/model"
	"github.com/luckyroad/casinohub/internal/services/auth"
)

// Business error codes carried in game-api envelopes. The numbering is part
// of the wire contract and must not change.
const (
	CodeOK              = 0
	CodeAlreadyExists   = 1
	CodeVendorNotFound  = 9
	CodeLaunchFailed    = 10
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeForbidden       = 403
	CodeNotFound        = 404
	CodeUnprocessable   = 422
	CodeTooManyRequests = 429
	CodeInternal        = 500
)

// Messages returns the human-readable message for a game-api business error
// code, or a generic fallback for codes outside the table
func Messages(code int) string {
	switch code {
	case CodeOK:
		return "success"
	case CodeAlreadyExists:
		return "already exists"
	case CodeVendorNotFound:
		return "vendor not found"
	case CodeLaunchFailed:
		return "failed to get launch URL"
	case CodeBadRequest:
		return "bad request"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeForbidden:
		return "forbidden"
	case CodeNotFound:
		return "not found"
	case CodeUnprocessable:
		return "missing required parameters"
	case CodeTooManyRequests:
		return "too many requests"
	case CodeInternal:
		return "internal server error"
	default:
		return "unknown error"
	}
}

// AuthEnvelope is the response shape for /api/auth endpoints
type AuthEnvelope struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

// GameEnvelope is the response shape for /api/game-api endpoints. Message
// carries data on success and a human-readable string on failure.
type GameEnvelope struct {
	Success   bool `json:"success"`
	ErrorCode int  `json:"errorCode"`
	Message   any  `json:"message"`
}

// authError combines an HTTP status with an auth-envelope message
type authError struct {
	status  int
	message string
}

func (e *authError) Error() string {
	return e.message
}

// gameError combines an HTTP status with a game-api business code
type gameError struct {
	status  int
	code    int
	message string
}

func (e *gameError) Error() string {
	return e.message
}

// NewAuthError creates an auth-envelope error with an explicit status
func NewAuthError(status int, message string) error {
	return &authError{status, message}
}

// NewGameError creates a game-envelope error with explicit status and code
func NewGameError(status, code int, message string) error {
	return &gameError{status, code, message}
}

// NewValidationError is a 400/422 game-envelope error for missing or
// malformed request parameters
func NewValidationError(message string) error {
	return &gameError{http.StatusBadRequest, CodeUnprocessable, message}
}

// WriteAuthSuccess writes a success auth envelope
func WriteAuthSuccess(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, AuthEnvelope{
		Status:  "success",
		Code:    http.StatusOK,
		Data:    data,
		Message: message,
	})
}

// WriteAuthError writes an error auth envelope, mapping service errors to
// HTTP statuses
func WriteAuthError(w http.ResponseWriter, err error) {
	var ae *authError
	if !errors.As(err, &ae) {
		ae = toAuthError(err)
	}
	writeJSON(w, ae.status, AuthEnvelope{
		Status:  "error",
		Code:    ae.status,
		Message: ae.message,
	})
}

// WriteGameSuccess writes a success game envelope with errorCode 0
func WriteGameSuccess(w http.ResponseWriter, message any) {
	writeJSON(w, http.StatusOK, GameEnvelope{
		Success:   true,
		ErrorCode: CodeOK,
		Message:   message,
	})
}

// WriteGameExists writes the idempotent "already exists" game envelope:
// success with errorCode 1
func WriteGameExists(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, GameEnvelope{
		Success:   true,
		ErrorCode: CodeAlreadyExists,
		Message:   message,
	})
}

// WriteGameError writes an error game envelope, mapping service errors to
// business codes
func WriteGameError(w http.ResponseWriter, err error) {
	var ge *gameError
	if !errors.As(err, &ge) {
		ge = toGameError(err)
	}
	writeJSON(w, ge.status, GameEnvelope{
		Success:   false,
		ErrorCode: ge.code,
		Message:   ge.message,
	})
}

func toAuthError(err error) *authError {
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &authError{http.StatusUnauthorized, "invalid name or password"}
	case errors.Is(err, auth.ErrInvalidToken):
		return &authError{http.StatusUnauthorized, "invalid or expired token"}
	case errors.Is(err, auth.ErrPasswordMismatch):
		return &authError{http.StatusBadRequest, "passwords do not match"}
	case errors.Is(err, model.ErrAccountExists):
		return &authError{http.StatusBadRequest, "name or email already taken"}
	case errors.Is(err, model.ErrAccountNotFound):
		return &authError{http.StatusNotFound, "account not found"}
	case errors.Is(err, model.ErrCaptchaMismatch), errors.Is(err, model.ErrCaptchaNotFound):
		return &authError{http.StatusBadRequest, "captcha incorrect"}
	default:
		return &authError{http.StatusInternalServerError, "internal server error"}
	}
}

func toGameError(err error) *gameError {
	switch {
	case errors.Is(err, model.ErrVendorNotFound):
		return &gameError{http.StatusOK, CodeVendorNotFound, Messages(CodeVendorNotFound)}
	case errors.Is(err, model.ErrProviderUserNotFound):
		return &gameError{http.StatusNotFound, CodeNotFound, "user not found"}
	case errors.Is(err, model.ErrInsufficientBalance):
		return &gameError{http.StatusBadRequest, CodeBadRequest, "insufficient balance"}
	case errors.Is(err, model.ErrInvalidAmount):
		return &gameError{http.StatusBadRequest, CodeUnprocessable, Messages(CodeUnprocessable)}
	case errors.Is(err, auth.ErrInvalidToken):
		return &gameError{http.StatusUnauthorized, CodeUnauthorized, Messages(CodeUnauthorized)}
	default:
		return &gameError{http.StatusInternalServerError, CodeInternal, Messages(CodeInternal)}
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
