package postgres

import (
	"context"
	"testing"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionColumns() []string {
	return []string{"id", "account_id", "stake", "current_value", "state", "opened_at", "closed_at"}
}

func newTestSession() *domain.Session {
	return &domain.Session{
		ID:           "01J8ZXA0000000000000000001",
		AccountID:    "acct-1",
		Stake:        500,
		CurrentValue: 500,
		State:        domain.SessionStateActive,
		OpenedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}
}

func sessionRow(s *domain.Session) *pgxmock.Rows {
	return pgxmock.NewRows(sessionColumns()).AddRow(
		s.ID, s.AccountID, s.Stake, s.CurrentValue, s.State, s.OpenedAt, s.ClosedAt,
	)
}

func TestSessionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO wager_sessions").
		WithArgs(s.ID, s.AccountID, s.Stake, s.CurrentValue, s.State, s.OpenedAt, s.ClosedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, s)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession()

	mock.ExpectQuery("SELECT .+ FROM wager_sessions WHERE id").
		WithArgs(s.ID).
		WillReturnRows(sessionRow(s))

	result, err := repo.GetByID(context.Background(), s.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.ID, result.ID)
	assert.Equal(t, domain.SessionStateActive, result.State)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM wager_sessions WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(sessionColumns()))

	result, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	s := newTestSession()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM wager_sessions WHERE id .+ FOR UPDATE").
		WithArgs(s.ID).
		WillReturnRows(sessionRow(s))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, s.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_UpdateValue(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)

	mock.ExpectExec("UPDATE wager_sessions SET current_value").
		WithArgs(int64(2000), "sess-1", domain.SessionStateActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	updated, err := repo.UpdateValue(context.Background(), "sess-1", 2000)
	require.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_UpdateValue_NotActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)

	mock.ExpectExec("UPDATE wager_sessions SET current_value").
		WithArgs(int64(2000), "sess-1", domain.SessionStateActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	updated, err := repo.UpdateValue(context.Background(), "sess-1", 2000)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Close(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	closedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wager_sessions SET state").
		WithArgs(domain.SessionStateCashedOut, closedAt, "sess-1", domain.SessionStateActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Close(context.Background(), tx, "sess-1", domain.SessionStateCashedOut, closedAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepo_Close_AlreadyClosed(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepo(mock)
	closedAt := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE wager_sessions SET state").
		WithArgs(domain.SessionStateForfeited, closedAt, "sess-1", domain.SessionStateActive).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Close(context.Background(), tx, "sess-1", domain.SessionStateForfeited, closedAt)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "session not active")
	assert.NoError(t, mock.ExpectationsWereMet())
}
