package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Ledger Business Logic (LED) ----

func ErrInvalidIdentity() *AppError {
	return New("LED_001", "Null or empty account where a real account is required", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("LED_002", "Invalid amount", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("LED_003", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrSupplyCapExceeded() *AppError {
	return New("LED_004", "Mint would exceed the maximum supply", http.StatusUnprocessableEntity)
}

func ErrDurationNotMet() *AppError {
	return New("LED_005", "Minimum staking duration has not elapsed", http.StatusUnprocessableEntity)
}

// ErrNoStakedTokens is declared for API completeness but is never raised by
// the current code paths: claiming with nothing staked is still valid while a
// banked residual exists, and a zero pending reward fails with LED_002.
func ErrNoStakedTokens() *AppError {
	return New("LED_006", "No staked tokens", http.StatusUnprocessableEntity)
}

func ErrOperationsPaused() *AppError {
	return New("LED_007", "Ledger operations are paused", http.StatusServiceUnavailable)
}

// ---- Authentication & Authorization (AUTH) ----

func ErrUnauthorized() *AppError {
	return New("AUTH_001", "Caller lacks the required role", http.StatusForbidden)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidAPIKey() *AppError {
	return New("AUTH_003", "Invalid API key", http.StatusUnauthorized)
}

// ---- Initialization Guard (INIT) ----

func ErrAlreadyInitialized(version uint32) *AppError {
	return New("INIT_001", fmt.Sprintf("Setup for schema version %d has already run", version), http.StatusConflict)
}

func ErrVersionTooLow(requested, current uint32) *AppError {
	return New("INIT_002",
		fmt.Sprintf("Setup version %d is below the active schema version %d", requested, current),
		http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a LED_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("LED_002", message, http.StatusBadRequest)
}
