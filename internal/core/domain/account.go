package domain

import "time"

// Account is the materialized balance record for one player. The ledger
// entries are the source of truth; this row is a cache the ledger keeps
// consistent inside the same database transaction.
type Account struct {
	ID        string    `json:"id"` // opaque, issued by the identity provider
	Available int64     `json:"available"`
	Locked    int64     `json:"locked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Total returns the account's combined balance.
func (a *Account) Total() int64 {
	return a.Available + a.Locked
}

// Balance is the available/locked pair returned by every ledger operation.
type Balance struct {
	Available int64 `json:"available"`
	Locked    int64 `json:"locked"`
}

// BalanceOf snapshots an account's balances.
func BalanceOf(a *Account) Balance {
	return Balance{Available: a.Available, Locked: a.Locked}
}
