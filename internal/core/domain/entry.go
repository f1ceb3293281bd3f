package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryKind represents the kind of money movement.
type EntryKind string

const (
	EntryKindDeposit       EntryKind = "DEPOSIT"
	EntryKindStakeLock     EntryKind = "STAKE_LOCK"
	EntryKindStakeRelease  EntryKind = "STAKE_RELEASE"
	EntryKindCashoutCredit EntryKind = "CASHOUT_CREDIT"
	EntryKindFee           EntryKind = "FEE"
	EntryKindWithdrawal    EntryKind = "WITHDRAWAL"
)

// Entry is an immutable ledger record of a single balance-affecting event.
// Entries are append-only: never updated, never deleted. Replaying an
// account's entries reconstructs its available/locked split exactly.
type Entry struct {
	ID        uuid.UUID `json:"id"`
	AccountID string    `json:"account_id"`
	Kind      EntryKind `json:"kind"`
	Amount    int64     `json:"amount"` // cents, always positive; Kind carries the direction
	SessionID *string   `json:"session_id,omitempty"`
	PaymentID *string   `json:"payment_id,omitempty"` // idempotency key for DEPOSIT entries
	CreatedAt time.Time `json:"created_at"`
}

// AffectsTotal reports whether the entry changes the account's combined
// balance. Lock and release only shuffle funds between the two buckets.
func (e *Entry) AffectsTotal() bool {
	switch e.Kind {
	case EntryKindStakeLock, EntryKindStakeRelease:
		return false
	default:
		return true
	}
}
