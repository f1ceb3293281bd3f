package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("LED_001", "Insufficient funds", http.StatusPaymentRequired),
			expected: "[LED_001] Insufficient funds",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("LED_001", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestLedgerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InsufficientFunds", ErrInsufficientFunds(), "LED_001", 402},
		{"InvalidAmount", ErrInvalidAmount(), "LED_002", 400},
		{"AccountNotFound", ErrAccountNotFound(), "LED_003", 404},
		{"LedgerCorruption", ErrLedgerCorruption(fmt.Errorf("locked underflow")), "LED_004", 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSessionErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"StakeOutOfRange", ErrStakeOutOfRange(100, 500), "SES_001", 400},
		{"SessionNotFound", ErrSessionNotFound(), "SES_002", 404},
		{"SessionClosed", ErrSessionClosed(), "SES_003", 409},
		{"InvalidValue", ErrInvalidValue(), "SES_004", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestStakeOutOfRange_Message(t *testing.T) {
	err := ErrStakeOutOfRange(100, 2000)
	assert.Contains(t, err.Message, "100")
	assert.Contains(t, err.Message, "2000")
}

func TestDepositErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"PaymentNotFound", ErrPaymentNotFound(), "DEP_001", 404},
		{"GatewayUnavailable", ErrGatewayUnavailable(fmt.Errorf("timeout")), "DEP_002", 502},
		{"InvalidWebhookSignature", ErrInvalidWebhookSignature(), "DEP_003", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestAuthAndRateErrors(t *testing.T) {
	assert.Equal(t, "AUTH_001", ErrUnauthenticated().Code)
	assert.Equal(t, 401, ErrUnauthenticated().HTTPStatus)
	assert.Equal(t, "RATE_001", ErrRateLimitExceeded().Code)
	assert.Equal(t, 429, ErrRateLimitExceeded().HTTPStatus)
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	sysErr := InternalError(inner)
	assert.Equal(t, "SYS_001", sysErr.Code)
	assert.Equal(t, 500, sysErr.HTTPStatus)
	assert.True(t, errors.Is(sysErr, inner))

	valErr := Validation("stake_amount is required")
	assert.Equal(t, 400, valErr.HTTPStatus)
	assert.Equal(t, "stake_amount is required", valErr.Message)
}
