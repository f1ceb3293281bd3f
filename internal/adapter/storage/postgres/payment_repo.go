package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// PaymentRepo implements ports.PaymentRepository.
type PaymentRepo struct {
	pool Pool
}

// NewPaymentRepo creates a new PaymentRepo.
func NewPaymentRepo(pool Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Create inserts a new pending payment.
func (r *PaymentRepo) Create(ctx context.Context, p *domain.PendingPayment) error {
	query := `INSERT INTO pending_payments (id, account_id, requested_amount, status, pay_address, pay_currency, created_at, last_status_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		p.ID, p.AccountID, p.RequestedAmount, p.Status,
		p.PayAddress, p.PayCurrency, p.CreatedAt, p.LastStatusAt, p.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert pending payment: %w", err)
	}
	return nil
}

// GetByID fetches a payment without locking.
func (r *PaymentRepo) GetByID(ctx context.Context, id string) (*domain.PendingPayment, error) {
	query := `SELECT id, account_id, requested_amount, status, pay_address, pay_currency, created_at, last_status_at, expires_at
		FROM pending_payments WHERE id = $1`

	return scanPayment(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a payment with pessimistic locking, serializing
// concurrent webhook deliveries for the same payment id.
// This MUST be called within a transaction.
func (r *PaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.PendingPayment, error) {
	query := `SELECT id, account_id, requested_amount, status, pay_address, pay_currency, created_at, last_status_at, expires_at
		FROM pending_payments WHERE id = $1 FOR UPDATE`

	return scanPayment(tx.QueryRow(ctx, query, id))
}

// UpdateStatus writes a payment's status within a transaction.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status domain.PaymentStatus, at time.Time) error {
	query := `UPDATE pending_payments SET status = $1, last_status_at = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, status, at, id)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("payment not found: %s", id)
	}
	return nil
}

// ListNonTerminal returns payments that still need reconciling, oldest first.
func (r *PaymentRepo) ListNonTerminal(ctx context.Context, limit int) ([]domain.PendingPayment, error) {
	query := `SELECT id, account_id, requested_amount, status, pay_address, pay_currency, created_at, last_status_at, expires_at
		FROM pending_payments
		WHERE status NOT IN ($1, $2, $3)
		ORDER BY created_at ASC LIMIT $4`

	rows, err := r.pool.Query(ctx, query,
		domain.PaymentStatusFinished, domain.PaymentStatusExpired, domain.PaymentStatusFailed, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list non-terminal payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.PendingPayment
	for rows.Next() {
		var p domain.PendingPayment
		if err := rows.Scan(&p.ID, &p.AccountID, &p.RequestedAmount, &p.Status,
			&p.PayAddress, &p.PayCurrency, &p.CreatedAt, &p.LastStatusAt, &p.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan pending payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pending payments: %w", err)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*domain.PendingPayment, error) {
	p := &domain.PendingPayment{}
	err := row.Scan(&p.ID, &p.AccountID, &p.RequestedAmount, &p.Status,
		&p.PayAddress, &p.PayCurrency, &p.CreatedAt, &p.LastStatusAt, &p.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan pending payment: %w", err)
	}
	return p, nil
}
