package service

import (
	"context"
	"time"

	"wager-arena/internal/core/ports"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const reconcileBatchSize = 100

// Reconciler periodically sweeps non-terminal payments and polls the
// provider for each. It is the safety net behind webhooks: a payment whose
// IPN delivery was lost still reaches its terminal status within one sweep
// interval.
type Reconciler struct {
	deposits    ports.DepositService
	paymentRepo ports.PaymentRepository
	interval    time.Duration
	workers     int
	log         zerolog.Logger
}

// NewReconciler creates a new background reconciler.
func NewReconciler(
	deposits ports.DepositService,
	paymentRepo ports.PaymentRepository,
	interval time.Duration,
	workers int,
	log zerolog.Logger,
) *Reconciler {
	if interval <= 0 {
		interval = time.Minute
	}
	if workers <= 0 {
		workers = 1
	}
	return &Reconciler{
		deposits:    deposits,
		paymentRepo: paymentRepo,
		interval:    interval,
		workers:     workers,
		log:         log,
	}
}

// Run sweeps until the context is cancelled. It always returns ctx.Err().
func (r *Reconciler) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info().
		Dur("interval", r.interval).
		Int("workers", r.workers).
		Msg("payment reconciler started")

	for {
		select {
		case <-ctx.Done():
			r.log.Info().Msg("payment reconciler stopped")
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx)
		}
	}
}

// sweep polls every non-terminal payment once, bounded by the worker count.
// A failure on one payment never blocks the rest of the batch.
func (r *Reconciler) sweep(ctx context.Context) {
	payments, err := r.paymentRepo.ListNonTerminal(ctx, reconcileBatchSize)
	if err != nil {
		r.log.Error().Err(err).Msg("listing non-terminal payments")
		return
	}
	if len(payments) == 0 {
		return
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, p := range payments {
		paymentID := p.ID
		g.Go(func() error {
			if _, err := r.deposits.PollAndReconcile(gctx, paymentID); err != nil {
				r.log.Warn().Err(err).Str("payment_id", paymentID).Msg("reconcile failed")
			}
			return nil
		})
	}

	_ = g.Wait()
	r.log.Debug().Int("count", len(payments)).Msg("reconcile sweep complete")
}
