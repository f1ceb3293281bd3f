package ports

import (
	"context"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx run inside transaction blocks; GetByIDForUpdate is
// the per-account critical section every balance mutation must pass through.
type AccountRepository interface {
	// Create inserts the account if it does not exist yet.
	// Returns true if a row was inserted.
	Create(ctx context.Context, account *domain.Account) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Account, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, id string, available, locked int64) error
}

// EntryRepository defines persistence for the append-only ledger log.
type EntryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.Entry) error
	// GetDepositByPaymentID returns the DEPOSIT entry recorded for the given
	// payment id, or nil if none exists. Backed by a unique index, this is the
	// persistent dedup check for deposit crediting.
	GetDepositByPaymentID(ctx context.Context, paymentID string) (*domain.Entry, error)
	ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Entry, error)
}

// SessionRepository defines persistence operations for wager sessions.
type SessionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Session, error)
	// UpdateValue sets current_value iff the session is still active.
	// Returns false when no active row matched.
	UpdateValue(ctx context.Context, id string, value int64) (bool, error)
	Close(ctx context.Context, tx pgx.Tx, id string, state domain.SessionState, closedAt time.Time) error
}

// PaymentRepository defines persistence operations for pending payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.PendingPayment) error
	GetByID(ctx context.Context, id string) (*domain.PendingPayment, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.PendingPayment, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status domain.PaymentStatus, at time.Time) error
	// ListNonTerminal returns payments still awaiting a terminal status,
	// oldest first, for the background reconciler.
	ListNonTerminal(ctx context.Context, limit int) ([]domain.PendingPayment, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
