package domain

import "time"

// PaymentStatus is the internal state of a pending deposit. Provider-native
// status strings are normalized into this enum; handlers never branch on raw
// provider vocabulary.
type PaymentStatus string

const (
	PaymentStatusCreated    PaymentStatus = "CREATED"
	PaymentStatusWaiting    PaymentStatus = "WAITING"
	PaymentStatusConfirming PaymentStatus = "CONFIRMING"
	PaymentStatusFinished   PaymentStatus = "FINISHED"
	PaymentStatusExpired    PaymentStatus = "EXPIRED"
	PaymentStatusFailed     PaymentStatus = "FAILED"
)

// IsTerminal returns true for states that accept no further transitions.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentStatusFinished || s == PaymentStatusExpired || s == PaymentStatusFailed
}

// statusRank orders the happy path so late or duplicate provider
// notifications cannot move a payment backwards.
var statusRank = map[PaymentStatus]int{
	PaymentStatusCreated:    0,
	PaymentStatusWaiting:    1,
	PaymentStatusConfirming: 2,
	PaymentStatusFinished:   3,
	PaymentStatusExpired:    3,
	PaymentStatusFailed:     3,
}

// CanTransition reports whether moving from -> to is a real state change.
// Terminal states, repeats and regressions all return false; callers treat
// a false result as an idempotent no-op, not an error. Any forward skip is
// allowed, CREATED straight to a terminal state included: the provider does
// not guarantee a notification per intermediate status, and the first report
// we see may already be the last.
func CanTransition(from, to PaymentStatus) bool {
	if from.IsTerminal() || from == to {
		return false
	}
	return statusRank[to] > statusRank[from]
}

// ParsePaymentStatus maps a provider-native status string onto the enum.
// The mapping is many-to-one; unknown strings return ok=false and must be
// treated as a no-op since the provider vocabulary may grow over time.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	switch raw {
	case "created":
		return PaymentStatusCreated, true
	case "waiting":
		return PaymentStatusWaiting, true
	case "confirming", "confirmed", "sending", "partially_paid":
		return PaymentStatusConfirming, true
	case "finished":
		return PaymentStatusFinished, true
	case "expired":
		return PaymentStatusExpired, true
	case "failed", "refunded":
		return PaymentStatusFailed, true
	default:
		return "", false
	}
}

// PendingPayment tracks one deposit request from creation at the provider
// until a terminal status. A transition into FINISHED triggers at most one
// DEPOSIT ledger entry for this payment id, ever.
type PendingPayment struct {
	ID              string        `json:"id"` // provider-assigned payment id
	AccountID       string        `json:"account_id"`
	RequestedAmount int64         `json:"requested_amount"` // cents
	Status          PaymentStatus `json:"status"`
	PayAddress      string        `json:"pay_address"`
	PayCurrency     string        `json:"pay_currency"`
	CreatedAt       time.Time     `json:"created_at"`
	LastStatusAt    time.Time     `json:"last_status_at"`
	ExpiresAt       *time.Time    `json:"expires_at,omitempty"`
}
