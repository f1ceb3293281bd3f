package service

import (
	"context"
	"fmt"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/rs/zerolog"
)

// paymentExpiry is how long the provider's pay address stays usable.
const paymentExpiry = 24 * time.Hour

// DepositServiceImpl implements ports.DepositService. It owns the pending
// payment state machine; the ledger owns the money. A status report only
// reaches the ledger on the single transition into FINISHED, and the credit
// commits in the same transaction as the status write.
type DepositServiceImpl struct {
	paymentRepo ports.PaymentRepository
	ledger      ports.LedgerService
	gateway     ports.PaymentGateway
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewDepositService creates a new DepositServiceImpl.
func NewDepositService(
	paymentRepo ports.PaymentRepository,
	ledger ports.LedgerService,
	gateway ports.PaymentGateway,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *DepositServiceImpl {
	return &DepositServiceImpl{
		paymentRepo: paymentRepo,
		ledger:      ledger,
		gateway:     gateway,
		transactor:  transactor,
		log:         log,
	}
}

// CreateDeposit registers a payment with the provider and records it as
// pending. The gateway call happens before any database writes; a provider
// failure leaves no local state behind.
func (s *DepositServiceImpl) CreateDeposit(ctx context.Context, accountID string, amount int64, currency string) (*domain.PendingPayment, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	now := time.Now().UTC()
	orderID := fmt.Sprintf("deposit_%s_%d", accountID, now.UnixMilli())

	created, err := s.gateway.CreatePayment(ctx, ports.CreatePaymentRequest{
		Amount:   amount,
		Currency: currency,
		OrderID:  orderID,
	})
	if err != nil {
		return nil, err
	}

	status, ok := domain.ParsePaymentStatus(created.Status)
	if !ok {
		status = domain.PaymentStatusCreated
	}

	expiresAt := now.Add(paymentExpiry)
	if created.ExpiresAt != nil {
		expiresAt = *created.ExpiresAt
	}

	payment := &domain.PendingPayment{
		ID:              created.PaymentID,
		AccountID:       accountID,
		RequestedAmount: amount,
		Status:          status,
		PayAddress:      created.PayAddress,
		PayCurrency:     created.PayCurrency,
		CreatedAt:       now,
		LastStatusAt:    now,
		ExpiresAt:       &expiresAt,
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create pending payment: %w", err))
	}

	s.log.Info().
		Str("payment_id", payment.ID).
		Str("account_id", accountID).
		Int64("amount", amount).
		Str("currency", currency).
		Msg("deposit created")

	return payment, nil
}

// GetPayment returns a payment, scoped to its owning account.
func (s *DepositServiceImpl) GetPayment(ctx context.Context, accountID, paymentID string) (*domain.PendingPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil || payment.AccountID != accountID {
		return nil, apperror.ErrPaymentNotFound()
	}
	return payment, nil
}

// RecordStatus applies one provider-reported status string to a payment.
// The payment row is locked for the whole decision, so concurrent webhook
// deliveries and poller runs serialize here. Unknown statuses, repeats and
// regressions leave the payment untouched; the transition into FINISHED
// writes the status and credits the deposit in the same transaction.
func (s *DepositServiceImpl) RecordStatus(ctx context.Context, paymentID string, reportedStatus string) (*domain.PendingPayment, error) {
	status, ok := domain.ParsePaymentStatus(reportedStatus)
	if !ok {
		s.log.Warn().
			Str("payment_id", paymentID).
			Str("reported_status", reportedStatus).
			Msg("unknown provider status ignored")
		payment, err := s.paymentRepo.GetByID(ctx, paymentID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
		}
		if payment == nil {
			return nil, apperror.ErrPaymentNotFound()
		}
		return payment, nil
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	payment, err := s.paymentRepo.GetByIDForUpdate(ctx, tx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}

	if !domain.CanTransition(payment.Status, status) {
		return payment, nil
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.UpdateStatus(ctx, tx, paymentID, status, now); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update payment status: %w", err))
	}

	if status == domain.PaymentStatusFinished {
		if _, err := s.ledger.CreditDepositTx(ctx, tx, payment.AccountID, payment.RequestedAmount, paymentID); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("payment_id", paymentID).
		Str("from", string(payment.Status)).
		Str("to", string(status)).
		Msg("payment status recorded")

	payment.Status = status
	payment.LastStatusAt = now
	return payment, nil
}

// PollAndReconcile asks the provider for a payment's current status and
// applies it. The gateway call runs before any lock is taken, so a slow
// provider cannot stall other work on the payment row.
func (s *DepositServiceImpl) PollAndReconcile(ctx context.Context, paymentID string) (*domain.PendingPayment, error) {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return nil, apperror.ErrPaymentNotFound()
	}
	if payment.Status.IsTerminal() {
		return payment, nil
	}

	remote, err := s.gateway.GetPaymentStatus(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return s.RecordStatus(ctx, paymentID, remote.Status)
}
