package service

import (
	"context"
	"testing"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type depositTestDeps struct {
	svc         *DepositServiceImpl
	paymentRepo *mocks.MockPaymentRepository
	ledger      *mocks.MockLedgerService
	gateway     *mocks.MockPaymentGateway
	transactor  *mocks.MockDBTransactor
	ctrl        *gomock.Controller
}

func setupDepositService(t *testing.T) *depositTestDeps {
	ctrl := gomock.NewController(t)
	d := &depositTestDeps{
		paymentRepo: mocks.NewMockPaymentRepository(ctrl),
		ledger:      mocks.NewMockLedgerService(ctrl),
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		transactor:  mocks.NewMockDBTransactor(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewDepositService(d.paymentRepo, d.ledger, d.gateway, d.transactor, zerolog.Nop())
	return d
}

func pendingPayment(id, accountID string, amount int64, status domain.PaymentStatus) *domain.PendingPayment {
	now := time.Now().UTC()
	return &domain.PendingPayment{
		ID:              id,
		AccountID:       accountID,
		RequestedAmount: amount,
		Status:          status,
		PayAddress:      "0xdeadbeef",
		PayCurrency:     "eth",
		CreatedAt:       now,
		LastStatusAt:    now,
	}
}

// ==================== CreateDeposit Tests ====================

func TestDepositService_CreateDeposit_Success(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.gateway.EXPECT().CreatePayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.CreatePaymentRequest) (*ports.CreatePaymentResponse, error) {
			assert.Equal(t, int64(2500), req.Amount)
			assert.Equal(t, "eth", req.Currency)
			assert.Contains(t, req.OrderID, "deposit_acct-1_")
			return &ports.CreatePaymentResponse{
				PaymentID:   "pay-1",
				PayAddress:  "0xdeadbeef",
				PayAmount:   "0.0089",
				PayCurrency: "eth",
				Status:      "waiting",
			}, nil
		})
	d.paymentRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.PendingPayment) error {
			assert.Equal(t, "pay-1", p.ID)
			assert.Equal(t, "acct-1", p.AccountID)
			assert.Equal(t, int64(2500), p.RequestedAmount)
			assert.Equal(t, domain.PaymentStatusWaiting, p.Status)
			require.NotNil(t, p.ExpiresAt)
			return nil
		})

	payment, err := d.svc.CreateDeposit(ctx, "acct-1", 2500, "eth")
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
}

func TestDepositService_CreateDeposit_InvalidAmount(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.CreateDeposit(context.Background(), "acct-1", 0, "eth")
	assertAppError(t, err, "LED_002")
}

func TestDepositService_CreateDeposit_GatewayFailureLeavesNoState(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.gateway.EXPECT().CreatePayment(ctx, gomock.Any()).Return(nil, assert.AnError)

	// No paymentRepo.Create expectation: nothing is persisted.
	_, err := d.svc.CreateDeposit(ctx, "acct-1", 2500, "eth")
	assert.Error(t, err)
}

// ==================== RecordStatus Tests ====================

func TestDepositService_RecordStatus_ProgressWithoutCredit(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)
	d.paymentRepo.EXPECT().UpdateStatus(ctx, tx, "pay-1", domain.PaymentStatusConfirming, gomock.Any()).Return(nil)

	// No ledger call below FINISHED.
	payment, err := d.svc.RecordStatus(ctx, "pay-1", "confirming")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusConfirming, payment.Status)
}

func TestDepositService_RecordStatus_FinishedCreditsOnce(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusConfirming), nil)
	d.paymentRepo.EXPECT().UpdateStatus(ctx, tx, "pay-1", domain.PaymentStatusFinished, gomock.Any()).Return(nil)
	d.ledger.EXPECT().CreditDepositTx(ctx, tx, "acct-1", int64(2500), "pay-1").
		Return(domain.Balance{Available: 12500, Locked: 0}, nil)

	payment, err := d.svc.RecordStatus(ctx, "pay-1", "finished")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFinished, payment.Status)
}

func TestDepositService_RecordStatus_DuplicateFinishedNoOp(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusFinished), nil)

	// Terminal state: no status write, no ledger call.
	payment, err := d.svc.RecordStatus(ctx, "pay-1", "finished")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFinished, payment.Status)
}

func TestDepositService_RecordStatus_RegressionNoOp(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusConfirming), nil)

	payment, err := d.svc.RecordStatus(ctx, "pay-1", "waiting")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusConfirming, payment.Status)
}

func TestDepositService_RecordStatus_UnknownStatusNoOp(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.paymentRepo.EXPECT().GetByID(ctx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)

	// Unknown vocabulary: no transaction at all.
	payment, err := d.svc.RecordStatus(ctx, "pay-1", "on_hold")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusWaiting, payment.Status)
}

func TestDepositService_RecordStatus_NotFound(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "missing").Return(nil, nil)

	_, err := d.svc.RecordStatus(ctx, "missing", "finished")
	assertAppError(t, err, "DEP_001")
}

func TestDepositService_RecordStatus_RefundedMapsToFailed(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)
	d.paymentRepo.EXPECT().UpdateStatus(ctx, tx, "pay-1", domain.PaymentStatusFailed, gomock.Any()).Return(nil)

	payment, err := d.svc.RecordStatus(ctx, "pay-1", "refunded")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFailed, payment.Status)
}

// ==================== PollAndReconcile Tests ====================

func TestDepositService_PollAndReconcile_AppliesRemoteStatus(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()
	tx := &mockTx{}

	d.paymentRepo.EXPECT().GetByID(ctx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)
	d.gateway.EXPECT().GetPaymentStatus(ctx, "pay-1").
		Return(&ports.PaymentStatusResponse{PaymentID: "pay-1", Status: "finished"}, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.paymentRepo.EXPECT().GetByIDForUpdate(ctx, tx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)
	d.paymentRepo.EXPECT().UpdateStatus(ctx, tx, "pay-1", domain.PaymentStatusFinished, gomock.Any()).Return(nil)
	d.ledger.EXPECT().CreditDepositTx(ctx, tx, "acct-1", int64(2500), "pay-1").
		Return(domain.Balance{Available: 12500, Locked: 0}, nil)

	payment, err := d.svc.PollAndReconcile(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFinished, payment.Status)
}

func TestDepositService_PollAndReconcile_TerminalSkipsGateway(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.paymentRepo.EXPECT().GetByID(ctx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusFinished), nil)

	payment, err := d.svc.PollAndReconcile(ctx, "pay-1")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusFinished, payment.Status)
}

// ==================== GetPayment Tests ====================

func TestDepositService_GetPayment_ScopedToAccount(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.paymentRepo.EXPECT().GetByID(ctx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)

	// Another account cannot read it.
	_, err := d.svc.GetPayment(ctx, "acct-2", "pay-1")
	assertAppError(t, err, "DEP_001")
}

func TestDepositService_GetPayment_Success(t *testing.T) {
	d := setupDepositService(t)
	defer d.ctrl.Finish()
	ctx := context.Background()

	d.paymentRepo.EXPECT().GetByID(ctx, "pay-1").
		Return(pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting), nil)

	payment, err := d.svc.GetPayment(ctx, "acct-1", "pay-1")
	require.NoError(t, err)
	assert.Equal(t, "pay-1", payment.ID)
}
