package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// SessionRepo implements ports.SessionRepository.
type SessionRepo struct {
	pool Pool
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(pool Pool) *SessionRepo {
	return &SessionRepo{pool: pool}
}

// Create inserts a new session within a database transaction, in the same
// commit as the stake lock.
func (r *SessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.Session) error {
	query := `INSERT INTO wager_sessions (id, account_id, stake, current_value, state, opened_at, closed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		s.ID, s.AccountID, s.Stake, s.CurrentValue, s.State, s.OpenedAt, s.ClosedAt,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetByID fetches a session without locking.
func (r *SessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT id, account_id, stake, current_value, state, opened_at, closed_at
		FROM wager_sessions WHERE id = $1`

	return scanSession(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches a session with pessimistic locking. Cash-out and
// forfeit read current_value through here so the value used for payout is the
// one inside the committing transaction.
// This MUST be called within a transaction.
func (r *SessionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Session, error) {
	query := `SELECT id, account_id, stake, current_value, state, opened_at, closed_at
		FROM wager_sessions WHERE id = $1 FOR UPDATE`

	return scanSession(tx.QueryRow(ctx, query, id))
}

// UpdateValue sets current_value for an active session. The state predicate
// makes the engine's fire-and-forget updates safe against a concurrent close:
// once a session is terminal the update simply matches no row.
func (r *SessionRepo) UpdateValue(ctx context.Context, id string, value int64) (bool, error) {
	query := `UPDATE wager_sessions SET current_value = $1 WHERE id = $2 AND state = $3`

	tag, err := r.pool.Exec(ctx, query, value, id, domain.SessionStateActive)
	if err != nil {
		return false, fmt.Errorf("update session value: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Close transitions a session to a terminal state within a transaction.
func (r *SessionRepo) Close(ctx context.Context, tx pgx.Tx, id string, state domain.SessionState, closedAt time.Time) error {
	query := `UPDATE wager_sessions SET state = $1, closed_at = $2 WHERE id = $3 AND state = $4`

	tag, err := tx.Exec(ctx, query, state, closedAt, id, domain.SessionStateActive)
	if err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("session not active: %s", id)
	}
	return nil
}

func scanSession(row pgx.Row) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(&s.ID, &s.AccountID, &s.Stake, &s.CurrentValue, &s.State, &s.OpenedAt, &s.ClosedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan session: %w", err)
	}
	return s, nil
}
