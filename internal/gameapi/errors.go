package gameapi

import (
	"errors"
	"fmt"
)

// ErrorKind classifies transport and API failures so callers can branch on
// them
type ErrorKind int

const (
	// ErrorKindNetwork is a connection-level failure
	ErrorKindNetwork ErrorKind = iota
	// ErrorKindTimeout is a request that hit the transport deadline
	ErrorKindTimeout
	// ErrorKindParse is a malformed or non-JSON response body
	ErrorKindParse
	// ErrorKindHTTPStatus is a 4xx/5xx response
	ErrorKindHTTPStatus
	// ErrorKindBusiness is an HTTP 200 with errorCode != 0 or success false
	ErrorKindBusiness
	// ErrorKindValidation is a caller-side parameter check failure; no
	// request is issued
	ErrorKindValidation
)

// String returns the kind's name
func (k ErrorKind) String() string {
	switch k {
	case ErrorKindNetwork:
		return "network"
	case ErrorKindTimeout:
		return "timeout"
	case ErrorKindParse:
		return "parse"
	case ErrorKindHTTPStatus:
		return "http_status"
	case ErrorKindBusiness:
		return "business"
	case ErrorKindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a classified game-api failure. Code carries the business error
// code for ErrorKindBusiness and the HTTP status for ErrorKindHTTPStatus.
type Error struct {
	Kind    ErrorKind
	Code    int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.cause != nil {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s error (code %d)", e.Kind, e.Code)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// AsError extracts a classified *Error from an error chain
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsKind reports whether err is a classified error of the given kind
func IsKind(err error, kind ErrorKind) bool {
	ge, ok := AsError(err)
	return ok && ge.Kind == kind
}

// IsBusinessCode reports whether err is a business error with the given code
func IsBusinessCode(err error, code int) bool {
	ge, ok := AsError(err)
	return ok && ge.Kind == ErrorKindBusiness && ge.Code == code
}

// NewValidationError creates a caller-side validation failure
func NewValidationError(message string) *Error {
	return &Error{Kind: ErrorKindValidation, Message: message}
}

// Business error codes from the provider contract
const (
	CodeAlreadyExists  = 1
	CodeVendorNotFound = 9
	CodeLaunchFailed   = 10
)

// fallbackMessage supplies a human-readable message for envelopes that carry
// an error code without one. The table mirrors the provider contract.
func fallbackMessage(code int) string {
	switch code {
	case CodeAlreadyExists:
		return "user already exists"
	case CodeVendorNotFound:
		return "vendor not found or has no games"
	case CodeLaunchFailed:
		return "game launch failed: user may not exist or parameters are invalid"
	case 401:
		return "authentication failed: token invalid or expired"
	case 403:
		return "access denied: IP not whitelisted"
	case 404:
		return "resource not found: game or vendor does not exist"
	case 422:
		return "parameter validation failed"
	case 429:
		return "too many requests: try again later"
	case 500:
		return "server internal error: try again later"
	default:
		return fmt.Sprintf("request failed (error code %d)", code)
	}
}
