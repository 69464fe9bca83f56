package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Details optionally carries an upstream payload (e.g. the raw identity
// provider response) for diagnosis; it is exposed to the client the way
// the original admin flow exposed provider bodies.
type AppError struct {
	Code       string      `json:"error_code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	HTTPStatus int         `json:"-"`
	Err        error       `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// WithDetails attaches a diagnostic payload and returns the error.
func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// ---- Input validation (VAL) ----

// Validation reports caller-supplied input that is missing or malformed.
// Recoverable by correcting the input; never retried automatically.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Identity provider (PRV) ----

// Provider reports a non-success status or unexpected payload shape from
// the identity provider. The provider response travels in Details.
func Provider(message string, err error) *AppError {
	return Wrap("PRV_001", message, http.StatusInternalServerError, err)
}

// ---- Session store (STO) ----

// ErrDuplicateNGOName reports a unique-key conflict on the NGO name.
func ErrDuplicateNGOName(name string) *AppError {
	return New("STO_001", fmt.Sprintf("an NGO session named %q already exists", name), http.StatusConflict)
}

// ErrNotFound reports a missing entity.
func ErrNotFound(entity string) *AppError {
	return New("STO_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- On-chain submission (CHN) ----

// ErrChainSubmission reports a failure to broadcast a contract call.
func ErrChainSubmission(err error) *AppError {
	return Wrap("CHN_001", "Failed to submit transaction", http.StatusInternalServerError, err)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
