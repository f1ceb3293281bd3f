package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports/mocks"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestReconciler_SweepsNonTerminalPayments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deposits := mocks.NewMockDepositService(ctrl)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)

	payments := []domain.PendingPayment{
		*pendingPayment("pay-1", "acct-1", 2500, domain.PaymentStatusWaiting),
		*pendingPayment("pay-2", "acct-2", 1000, domain.PaymentStatusConfirming),
	}

	var mu sync.Mutex
	polled := map[string]bool{}

	paymentRepo.EXPECT().ListNonTerminal(gomock.Any(), reconcileBatchSize).Return(payments, nil).MinTimes(1)
	deposits.EXPECT().PollAndReconcile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (*domain.PendingPayment, error) {
			mu.Lock()
			polled[id] = true
			mu.Unlock()
			return nil, nil
		}).MinTimes(2)

	r := NewReconciler(deposits, paymentRepo, 10*time.Millisecond, 2, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := r.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, polled["pay-1"])
	assert.True(t, polled["pay-2"])
}

func TestReconciler_OneFailureDoesNotBlockBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deposits := mocks.NewMockDepositService(ctrl)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)

	payments := []domain.PendingPayment{
		*pendingPayment("pay-bad", "acct-1", 2500, domain.PaymentStatusWaiting),
		*pendingPayment("pay-good", "acct-2", 1000, domain.PaymentStatusWaiting),
	}

	var mu sync.Mutex
	polled := map[string]bool{}

	paymentRepo.EXPECT().ListNonTerminal(gomock.Any(), reconcileBatchSize).Return(payments, nil).MinTimes(1)
	deposits.EXPECT().PollAndReconcile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string) (*domain.PendingPayment, error) {
			mu.Lock()
			polled[id] = true
			mu.Unlock()
			if id == "pay-bad" {
				return nil, assert.AnError
			}
			return nil, nil
		}).MinTimes(2)

	r := NewReconciler(deposits, paymentRepo, 10*time.Millisecond, 4, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, polled["pay-good"], "failure on one payment must not stop the rest")
}

func TestReconciler_ListFailureRetriesNextTick(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	deposits := mocks.NewMockDepositService(ctrl)
	paymentRepo := mocks.NewMockPaymentRepository(ctrl)

	paymentRepo.EXPECT().ListNonTerminal(gomock.Any(), reconcileBatchSize).Return(nil, assert.AnError).MinTimes(2)

	r := NewReconciler(deposits, paymentRepo, 10*time.Millisecond, 2, zerolog.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_ = r.Run(ctx)
}
