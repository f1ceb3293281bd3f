package service

import (
	"context"
	"fmt"
	"time"

	"wager-arena/config"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// SessionServiceImpl implements ports.SessionService. Session transitions
// that move money (start, cash-out, forfeit) compose the ledger's Tx
// operations with the session row change so both commit or neither does.
type SessionServiceImpl struct {
	sessionRepo ports.SessionRepository
	ledger      ports.LedgerService
	transactor  ports.DBTransactor
	cfg         config.WagerConfig
	log         zerolog.Logger
}

// NewSessionService creates a new SessionServiceImpl.
func NewSessionService(
	sessionRepo ports.SessionRepository,
	ledger ports.LedgerService,
	transactor ports.DBTransactor,
	cfg config.WagerConfig,
	log zerolog.Logger,
) *SessionServiceImpl {
	return &SessionServiceImpl{
		sessionRepo: sessionRepo,
		ledger:      ledger,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
	}
}

// Start opens a new session, locking the stake and inserting the session row
// in one transaction. The session's value starts at the stake.
func (s *SessionServiceImpl) Start(ctx context.Context, accountID string, stake int64) (*domain.Session, domain.Balance, error) {
	if stake < s.cfg.MinStake || stake > s.cfg.MaxStake {
		return nil, domain.Balance{}, apperror.ErrStakeOutOfRange(s.cfg.MinStake, s.cfg.MaxStake)
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:           ulid.Make().String(),
		AccountID:    accountID,
		Stake:        stake,
		CurrentValue: stake,
		State:        domain.SessionStateActive,
		OpenedAt:     now,
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	balance, err := s.ledger.LockStakeTx(ctx, tx, accountID, stake, session.ID)
	if err != nil {
		return nil, domain.Balance{}, err
	}

	if err := s.sessionRepo.Create(ctx, tx, session); err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("create session: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", session.ID).
		Str("account_id", accountID).
		Int64("stake", stake).
		Msg("session started")

	return session, balance, nil
}

// Get returns the session by id.
func (s *SessionServiceImpl) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return nil, apperror.ErrSessionNotFound()
	}
	return session, nil
}

// ReportValue records the engine's current valuation of an active session.
// It updates a single column and never touches the ledger.
func (s *SessionServiceImpl) ReportValue(ctx context.Context, sessionID string, value int64) error {
	if value < 0 {
		return apperror.ErrInvalidValue()
	}

	updated, err := s.sessionRepo.UpdateValue(ctx, sessionID, value)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("update session value: %w", err))
	}
	if updated {
		return nil
	}

	// No active row matched: either the session never existed or it closed
	// while this report was in flight.
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get session: %w", err))
	}
	if session == nil {
		return apperror.ErrSessionNotFound()
	}
	return apperror.ErrSessionClosed()
}

// CashOut settles an active session at its current value. The value is read
// under the session row lock inside the settling transaction, so a report
// racing the cash-out either lands before the lock or is rejected after the
// close; the settled amount is never stale.
func (s *SessionServiceImpl) CashOut(ctx context.Context, sessionID string) (*domain.CashoutReceipt, domain.Balance, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	session, err := s.sessionRepo.GetByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if session == nil {
		return nil, domain.Balance{}, apperror.ErrSessionNotFound()
	}
	if session.IsTerminal() {
		return nil, domain.Balance{}, apperror.ErrSessionClosed()
	}

	gross := session.CurrentValue

	if _, err := s.ledger.ReleaseStakeTx(ctx, tx, session.AccountID, session.Stake, sessionID); err != nil {
		return nil, domain.Balance{}, err
	}

	result, err := s.ledger.CreditCashoutTx(ctx, tx, session.AccountID, gross, sessionID)
	if err != nil {
		return nil, domain.Balance{}, err
	}

	now := time.Now().UTC()
	if err := s.sessionRepo.Close(ctx, tx, sessionID, domain.SessionStateCashedOut, now); err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("close session: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Balance{}, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	receipt := &domain.CashoutReceipt{
		SessionID:  sessionID,
		GrossValue: gross,
		NetAmount:  result.Net,
		Fee:        result.Fee,
		ROI:        float64(gross)/float64(session.Stake) - 1,
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("account_id", session.AccountID).
		Int64("gross", gross).
		Int64("net", result.Net).
		Int64("fee", result.Fee).
		Msg("session cashed out")

	return receipt, result.Balance, nil
}

// Forfeit closes an active session without a payout. Where the stake goes is
// policy: returned to the player's available balance, or transferred to the
// house account. A forfeit of an already-closed session is absorbed, since
// the engine delivers end-of-session events at least once.
func (s *SessionServiceImpl) Forfeit(ctx context.Context, sessionID string, reason domain.EndReason) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	session, err := s.sessionRepo.GetByIDForUpdate(ctx, tx, sessionID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("lock session: %w", err))
	}
	if session == nil {
		return apperror.ErrSessionNotFound()
	}
	if session.IsTerminal() {
		s.log.Debug().
			Str("session_id", sessionID).
			Str("state", string(session.State)).
			Msg("forfeit of closed session absorbed")
		return nil
	}

	switch s.cfg.ForfeitPolicy {
	case config.ForfeitHouse:
		if _, err := s.ledger.TransferForfeitTx(ctx, tx, session.AccountID, session.Stake, sessionID, s.cfg.HouseAccountID); err != nil {
			return err
		}
	default:
		if _, err := s.ledger.ReleaseStakeTx(ctx, tx, session.AccountID, session.Stake, sessionID); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	if err := s.sessionRepo.Close(ctx, tx, sessionID, domain.SessionStateForfeited, now); err != nil {
		return apperror.InternalError(fmt.Errorf("close session: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("session_id", sessionID).
		Str("account_id", session.AccountID).
		Str("reason", string(reason)).
		Int64("stake", session.Stake).
		Msg("session forfeited")

	return nil
}
