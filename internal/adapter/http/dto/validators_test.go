package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := CreateDepositRequest{
		Amount:      2500,
		PayCurrency: "  eth  ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "eth", req.PayCurrency)
	assert.Equal(t, int64(2500), req.Amount)
}

func TestSanitizeStruct_EscapesHTML(t *testing.T) {
	req := EndSessionRequest{
		Reason: "eliminated <script>alert('x')</script>",
	}
	SanitizeStruct(&req)

	assert.Contains(t, req.Reason, "&lt;script&gt;")
	assert.NotContains(t, req.Reason, "<script>")
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	expires := "  2026-01-02T15:04:05Z  "
	resp := PaymentResponse{
		PaymentID: "pay-1",
		ExpiresAt: &expires,
	}
	SanitizeStruct(&resp)

	assert.Equal(t, "2026-01-02T15:04:05Z", *resp.ExpiresAt)
}

func TestSanitizeStruct_NilPointerIsNoOp(t *testing.T) {
	resp := PaymentResponse{
		PaymentID: "pay-1",
		ExpiresAt: nil,
	}
	SanitizeStruct(&resp)
	assert.Nil(t, resp.ExpiresAt)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
}

// --- Custom Validator tests ---

func TestSafeID_Valid(t *testing.T) {
	cases := []string{
		"eliminated",
		"disconnected",
		"eth",
		"usdt.trc20",
		"ABC-def_GHI.123",
	}
	for _, tc := range cases {
		assert.True(t, safeStringRe.MatchString(tc), "expected valid: %s", tc)
	}
}

func TestSafeID_Invalid(t *testing.T) {
	cases := []string{
		"eth btc",     // space
		"eth<btc>",    // angle brackets
		"eth;DROP",    // semicolon
		"",            // empty
		"hello world", // space
		"eth\nbtc",    // newline
	}
	for _, tc := range cases {
		assert.False(t, safeStringRe.MatchString(tc), "expected invalid: %s", tc)
	}
}
