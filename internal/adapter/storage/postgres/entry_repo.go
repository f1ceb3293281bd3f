package postgres

import (
	"context"
	"errors"
	"fmt"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// EntryRepo implements ports.EntryRepository. Ledger entries are insert-only;
// there is deliberately no update or delete here.
type EntryRepo struct {
	pool Pool
}

// NewEntryRepo creates a new EntryRepo.
func NewEntryRepo(pool Pool) *EntryRepo {
	return &EntryRepo{pool: pool}
}

// Create inserts a ledger entry within a database transaction. For DEPOSIT
// entries the partial unique index on payment_id turns a duplicate credit
// into a 23505 the caller maps to the idempotent path.
func (r *EntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Entry) error {
	query := `INSERT INTO ledger_entries (id, account_id, kind, amount, session_id, payment_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.AccountID, e.Kind, e.Amount, e.SessionID, e.PaymentID, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// GetDepositByPaymentID fetches the DEPOSIT entry recorded for a payment id.
func (r *EntryRepo) GetDepositByPaymentID(ctx context.Context, paymentID string) (*domain.Entry, error) {
	query := `SELECT id, account_id, kind, amount, session_id, payment_id, created_at
		FROM ledger_entries WHERE payment_id = $1 AND kind = $2`

	e := &domain.Entry{}
	err := r.pool.QueryRow(ctx, query, paymentID, domain.EntryKindDeposit).Scan(
		&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.SessionID, &e.PaymentID, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposit entry by payment id: %w", err)
	}
	return e, nil
}

// ListByAccount fetches an account's most recent entries.
func (r *EntryRepo) ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Entry, error) {
	query := `SELECT id, account_id, kind, amount, session_id, payment_id, created_at
		FROM ledger_entries WHERE account_id = $1
		ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.ID, &e.AccountID, &e.Kind, &e.Amount, &e.SessionID, &e.PaymentID, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}
