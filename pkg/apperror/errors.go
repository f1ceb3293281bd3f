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

// ---- Ledger (LED) ----

func ErrInsufficientFunds() *AppError {
	return New("LED_001", "Insufficient available balance", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New("LED_002", "Invalid amount", http.StatusBadRequest)
}

func ErrAccountNotFound() *AppError {
	return New("LED_003", "Account not found", http.StatusNotFound)
}

// ErrLedgerCorruption signals a broken balance invariant, such as releasing
// more than is locked. It is a bug upstream, never a user error.
func ErrLedgerCorruption(err error) *AppError {
	return Wrap("LED_004", "Ledger invariant violated", http.StatusInternalServerError, err)
}

// ---- Wager sessions (SES) ----

func ErrStakeOutOfRange(min, max int64) *AppError {
	return New("SES_001", fmt.Sprintf("Stake must be between %d and %d cents", min, max), http.StatusBadRequest)
}

func ErrSessionNotFound() *AppError {
	return New("SES_002", "Session not found", http.StatusNotFound)
}

func ErrSessionClosed() *AppError {
	return New("SES_003", "Session is already closed", http.StatusConflict)
}

func ErrInvalidValue() *AppError {
	return New("SES_004", "Invalid session value", http.StatusBadRequest)
}

// ---- Deposits & payments (DEP) ----

func ErrPaymentNotFound() *AppError {
	return New("DEP_001", "Payment not found", http.StatusNotFound)
}

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("DEP_002", "Payment gateway unavailable", http.StatusBadGateway, err)
}

func ErrInvalidWebhookSignature() *AppError {
	return New("DEP_003", "Invalid webhook signature", http.StatusUnauthorized)
}

// ---- Authentication (AUTH) ----

func ErrUnauthenticated() *AppError {
	return New("AUTH_001", "Missing or invalid credentials", http.StatusUnauthorized)
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

// Validation returns a request validation error.
func Validation(message string) *AppError {
	return New("LED_002", message, http.StatusBadRequest)
}
