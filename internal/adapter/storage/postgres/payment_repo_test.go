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

func paymentColumns() []string {
	return []string{"id", "account_id", "requested_amount", "status", "pay_address", "pay_currency", "created_at", "last_status_at", "expires_at"}
}

func newTestPayment(status domain.PaymentStatus) *domain.PendingPayment {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.PendingPayment{
		ID:              "pay-123",
		AccountID:       "acct-1",
		RequestedAmount: 1000,
		Status:          status,
		PayAddress:      "0xdeadbeef",
		PayCurrency:     "eth",
		CreatedAt:       now,
		LastStatusAt:    now,
	}
}

func paymentRow(p *domain.PendingPayment) *pgxmock.Rows {
	return pgxmock.NewRows(paymentColumns()).AddRow(
		p.ID, p.AccountID, p.RequestedAmount, p.Status,
		p.PayAddress, p.PayCurrency, p.CreatedAt, p.LastStatusAt, p.ExpiresAt,
	)
}

func TestPaymentRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment(domain.PaymentStatusCreated)

	mock.ExpectExec("INSERT INTO pending_payments").
		WithArgs(p.ID, p.AccountID, p.RequestedAmount, p.Status,
			p.PayAddress, p.PayCurrency, p.CreatedAt, p.LastStatusAt, p.ExpiresAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), p)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment(domain.PaymentStatusWaiting)

	mock.ExpectQuery("SELECT .+ FROM pending_payments WHERE id").
		WithArgs(p.ID).
		WillReturnRows(paymentRow(p))

	result, err := repo.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, p.ID, result.ID)
	assert.Equal(t, domain.PaymentStatusWaiting, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM pending_payments WHERE id").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(paymentColumns()))

	result, err := repo.GetByID(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p := newTestPayment(domain.PaymentStatusConfirming)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM pending_payments WHERE id .+ FOR UPDATE").
		WithArgs(p.ID).
		WillReturnRows(paymentRow(p))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.PaymentStatusConfirming, result.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pending_payments SET status").
		WithArgs(domain.PaymentStatusFinished, at, "pay-123").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, "pay-123", domain.PaymentStatusFinished, at)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_UpdateStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE pending_payments SET status").
		WithArgs(domain.PaymentStatusExpired, at, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateStatus(context.Background(), tx, "missing", domain.PaymentStatusExpired, at)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "payment not found")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepo_ListNonTerminal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepo(mock)
	p1 := newTestPayment(domain.PaymentStatusWaiting)
	p2 := newTestPayment(domain.PaymentStatusConfirming)
	p2.ID = "pay-456"

	mock.ExpectQuery("SELECT .+ FROM pending_payments").
		WithArgs(domain.PaymentStatusFinished, domain.PaymentStatusExpired, domain.PaymentStatusFailed, 100).
		WillReturnRows(pgxmock.NewRows(paymentColumns()).
			AddRow(p1.ID, p1.AccountID, p1.RequestedAmount, p1.Status,
				p1.PayAddress, p1.PayCurrency, p1.CreatedAt, p1.LastStatusAt, p1.ExpiresAt).
			AddRow(p2.ID, p2.AccountID, p2.RequestedAmount, p2.Status,
				p2.PayAddress, p2.PayCurrency, p2.CreatedAt, p2.LastStatusAt, p2.ExpiresAt))

	payments, err := repo.ListNonTerminal(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "pay-123", payments[0].ID)
	assert.Equal(t, "pay-456", payments[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
