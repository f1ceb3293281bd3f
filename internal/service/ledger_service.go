package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wager-arena/config"
	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"
	"wager-arena/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

const (
	depositCacheTTL    = 24 * time.Hour
	defaultEntryLimit  = 50
	uniqueViolationPg  = "23505"
	feeBasisPointsFull = 10000
)

// LedgerServiceImpl implements ports.LedgerService. It is the only component
// that writes balances; every mutation locks the account row, updates the
// materialized balance and appends the ledger entry in one transaction.
type LedgerServiceImpl struct {
	accountRepo ports.AccountRepository
	entryRepo   ports.EntryRepository
	idempCache  ports.IdempotencyCache
	transactor  ports.DBTransactor
	cfg         config.WagerConfig
	log         zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	accountRepo ports.AccountRepository,
	entryRepo ports.EntryRepository,
	idempCache ports.IdempotencyCache,
	transactor ports.DBTransactor,
	cfg config.WagerConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		idempCache:  idempCache,
		transactor:  transactor,
		cfg:         cfg,
		log:         log,
	}
}

// EnsureAccount provisions the account with the starting balance on first
// sight. Concurrent first requests race on an ON CONFLICT insert; exactly one
// wins and both observe the same row.
func (s *LedgerServiceImpl) EnsureAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	if accountID == "" {
		return nil, apperror.ErrAccountNotFound()
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account != nil {
		return account, nil
	}

	now := time.Now().UTC()
	account = &domain.Account{
		ID:        accountID,
		Available: s.cfg.StartingBalance,
		Locked:    0,
		CreatedAt: now,
		UpdatedAt: now,
	}

	inserted, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}
	if !inserted {
		// Lost the race; the other writer's row is authoritative.
		account, err = s.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("get account after conflict: %w", err))
		}
		if account == nil {
			return nil, apperror.InternalError(fmt.Errorf("account %s vanished after insert conflict", accountID))
		}
		return account, nil
	}

	s.log.Info().
		Str("account_id", accountID).
		Int64("starting_balance", s.cfg.StartingBalance).
		Msg("account provisioned")

	return account, nil
}

// GetBalance returns the account's current available/locked split.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, accountID string) (domain.Balance, error) {
	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return domain.Balance{}, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return domain.Balance{}, apperror.ErrAccountNotFound()
	}
	return domain.BalanceOf(account), nil
}

// ListEntries returns the account's most recent ledger entries.
func (s *LedgerServiceImpl) ListEntries(ctx context.Context, accountID string, limit int) ([]domain.Entry, error) {
	if limit <= 0 {
		limit = defaultEntryLimit
	}
	entries, err := s.entryRepo.ListByAccount(ctx, accountID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list entries: %w", err))
	}
	return entries, nil
}

// LockStake moves amount from available to locked in its own transaction.
func (s *LedgerServiceImpl) LockStake(ctx context.Context, accountID string, amount int64, sessionID string) (domain.Balance, error) {
	return s.inTx(ctx, func(tx pgx.Tx) (domain.Balance, error) {
		return s.LockStakeTx(ctx, tx, accountID, amount, sessionID)
	})
}

// LockStakeTx moves amount from available to locked inside the caller's
// transaction. Fails with LED_001 when available funds do not cover it.
func (s *LedgerServiceImpl) LockStakeTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	if account.Available < amount {
		return domain.Balance{}, apperror.ErrInsufficientFunds()
	}

	newAvailable := account.Available - amount
	newLocked := account.Locked + amount

	if err := s.applyMove(ctx, tx, accountID, newAvailable, newLocked, &domain.Entry{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      domain.EntryKindStakeLock,
		Amount:    amount,
		SessionID: &sessionID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{Available: newAvailable, Locked: newLocked}, nil
}

// ReleaseStake returns a locked stake to available in its own transaction.
func (s *LedgerServiceImpl) ReleaseStake(ctx context.Context, accountID string, amount int64, sessionID string) (domain.Balance, error) {
	return s.inTx(ctx, func(tx pgx.Tx) (domain.Balance, error) {
		return s.ReleaseStakeTx(ctx, tx, accountID, amount, sessionID)
	})
}

// ReleaseStakeTx moves amount from locked back to available inside the
// caller's transaction. Releasing more than is locked means the lock and
// release calls disagree about the same session, which is ledger corruption,
// not a user error.
func (s *LedgerServiceImpl) ReleaseStakeTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	if account.Locked < amount {
		return domain.Balance{}, apperror.ErrLedgerCorruption(
			fmt.Errorf("release %d exceeds locked %d on account %s (session %s)", amount, account.Locked, accountID, sessionID))
	}

	newAvailable := account.Available + amount
	newLocked := account.Locked - amount

	if err := s.applyMove(ctx, tx, accountID, newAvailable, newLocked, &domain.Entry{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      domain.EntryKindStakeRelease,
		Amount:    amount,
		SessionID: &sessionID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{Available: newAvailable, Locked: newLocked}, nil
}

// CreditCashout credits the net winnings in its own transaction.
func (s *LedgerServiceImpl) CreditCashout(ctx context.Context, accountID string, gross int64, sessionID string) (ports.CashoutResult, error) {
	var result ports.CashoutResult
	_, err := s.inTx(ctx, func(tx pgx.Tx) (domain.Balance, error) {
		var err error
		result, err = s.CreditCashoutTx(ctx, tx, accountID, gross, sessionID)
		return result.Balance, err
	})
	return result, err
}

// CreditCashoutTx credits gross minus the rake to available inside the
// caller's transaction. A zero gross is legal (worthless cash-out) and
// records nothing.
func (s *LedgerServiceImpl) CreditCashoutTx(ctx context.Context, tx pgx.Tx, accountID string, gross int64, sessionID string) (ports.CashoutResult, error) {
	if gross < 0 {
		return ports.CashoutResult{}, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, accountID)
	if err != nil {
		return ports.CashoutResult{}, err
	}

	fee := gross * s.cfg.FeeBps / feeBasisPointsFull
	net := gross - fee

	newAvailable := account.Available + net
	newLocked := account.Locked

	if gross > 0 {
		if err := s.applyMove(ctx, tx, accountID, newAvailable, newLocked, &domain.Entry{
			ID:        uuid.New(),
			AccountID: accountID,
			Kind:      domain.EntryKindCashoutCredit,
			Amount:    gross,
			SessionID: &sessionID,
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return ports.CashoutResult{}, err
		}
		if fee > 0 {
			if err := s.entryRepo.Create(ctx, tx, &domain.Entry{
				ID:        uuid.New(),
				AccountID: accountID,
				Kind:      domain.EntryKindFee,
				Amount:    fee,
				SessionID: &sessionID,
				CreatedAt: time.Now().UTC(),
			}); err != nil {
				return ports.CashoutResult{}, apperror.InternalError(fmt.Errorf("create fee entry: %w", err))
			}
		}
	}

	return ports.CashoutResult{
		Gross:   gross,
		Net:     net,
		Fee:     fee,
		Balance: domain.Balance{Available: newAvailable, Locked: newLocked},
	}, nil
}

// CreditDeposit credits a confirmed deposit, idempotent by payment id.
// Layer 1 is the Redis cache of already-credited payments; layer 2 is the
// unique index on deposit entries, checked inside the transaction.
func (s *LedgerServiceImpl) CreditDeposit(ctx context.Context, accountID string, amount int64, paymentID string) (domain.Balance, error) {
	// Layer 1: Redis dedup check (best-effort fast path)
	cached, err := s.idempCache.Get(ctx, paymentID)
	if err != nil {
		s.log.Warn().Err(err).Str("payment_id", paymentID).Msg("redis dedup check failed, falling through to DB")
	}
	if cached != nil {
		var balance domain.Balance
		if err := json.Unmarshal(cached, &balance); err == nil {
			return balance, nil
		}
		s.log.Warn().Str("payment_id", paymentID).Msg("discarding malformed cached crediting record")
	}

	balance, err := s.inTx(ctx, func(tx pgx.Tx) (domain.Balance, error) {
		return s.CreditDepositTx(ctx, tx, accountID, amount, paymentID)
	})
	if err != nil {
		// A concurrent crediting of the same payment wins the unique index
		// race; this delivery becomes a no-op.
		if isUniqueViolation(err) {
			s.log.Info().Str("payment_id", paymentID).Msg("duplicate deposit crediting absorbed by unique index")
			return s.GetBalance(ctx, accountID)
		}
		return domain.Balance{}, err
	}

	// Post-process: cache the crediting record (best-effort)
	if record, err := json.Marshal(balance); err == nil {
		if err := s.idempCache.Set(ctx, paymentID, record, depositCacheTTL); err != nil {
			s.log.Warn().Err(err).Str("payment_id", paymentID).Msg("failed to cache deposit crediting")
		}
	}

	return balance, nil
}

// CreditDepositTx credits a deposit inside the caller's transaction. The
// dedup read runs after the account lock, so concurrent deliveries of the
// same payment serialize on the account row before either checks.
func (s *LedgerServiceImpl) CreditDepositTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, paymentID string) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	existing, err := s.entryRepo.GetDepositByPaymentID(ctx, paymentID)
	if err != nil {
		return domain.Balance{}, apperror.InternalError(fmt.Errorf("deposit dedup check: %w", err))
	}
	if existing != nil {
		return domain.BalanceOf(account), nil
	}

	newAvailable := account.Available + amount

	if err := s.applyMove(ctx, tx, accountID, newAvailable, account.Locked, &domain.Entry{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      domain.EntryKindDeposit,
		Amount:    amount,
		PaymentID: &paymentID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return domain.Balance{}, err
	}

	s.log.Info().
		Str("account_id", accountID).
		Str("payment_id", paymentID).
		Int64("amount", amount).
		Msg("deposit credited")

	return domain.Balance{Available: newAvailable, Locked: account.Locked}, nil
}

// TransferForfeitTx moves a forfeited stake from the player's locked balance
// into the house account, both legs in the caller's transaction. The player
// is locked first, then the house; that ordering is uniform across all
// forfeits, so the two-row lock cannot deadlock with itself.
func (s *LedgerServiceImpl) TransferForfeitTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string, houseAccountID string) (domain.Balance, error) {
	if amount <= 0 {
		return domain.Balance{}, apperror.ErrInvalidAmount()
	}

	account, err := s.lockAccount(ctx, tx, accountID)
	if err != nil {
		return domain.Balance{}, err
	}

	if account.Locked < amount {
		return domain.Balance{}, apperror.ErrLedgerCorruption(
			fmt.Errorf("forfeit %d exceeds locked %d on account %s (session %s)", amount, account.Locked, accountID, sessionID))
	}

	house, err := s.lockAccount(ctx, tx, houseAccountID)
	if err != nil {
		return domain.Balance{}, err
	}

	newLocked := account.Locked - amount

	if err := s.applyMove(ctx, tx, accountID, account.Available, newLocked, &domain.Entry{
		ID:        uuid.New(),
		AccountID: accountID,
		Kind:      domain.EntryKindWithdrawal,
		Amount:    amount,
		SessionID: &sessionID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return domain.Balance{}, err
	}

	if err := s.applyMove(ctx, tx, houseAccountID, house.Available+amount, house.Locked, &domain.Entry{
		ID:        uuid.New(),
		AccountID: houseAccountID,
		Kind:      domain.EntryKindDeposit,
		Amount:    amount,
		SessionID: &sessionID,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return domain.Balance{}, err
	}

	return domain.Balance{Available: account.Available, Locked: newLocked}, nil
}

// lockAccount fetches the account row FOR UPDATE.
func (s *LedgerServiceImpl) lockAccount(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.GetByIDForUpdate(ctx, tx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrAccountNotFound()
	}
	return account, nil
}

// applyMove writes the new balances and the ledger entry.
func (s *LedgerServiceImpl) applyMove(ctx context.Context, tx pgx.Tx, accountID string, available, locked int64, entry *domain.Entry) error {
	if err := s.accountRepo.UpdateBalances(ctx, tx, accountID, available, locked); err != nil {
		return apperror.InternalError(fmt.Errorf("update balances: %w", err))
	}
	if err := s.entryRepo.Create(ctx, tx, entry); err != nil {
		if isUniqueViolation(err) {
			return err
		}
		return apperror.InternalError(fmt.Errorf("create %s entry: %w", entry.Kind, err))
	}
	return nil
}

// inTx runs fn in a fresh transaction and commits on success.
func (s *LedgerServiceImpl) inTx(ctx context.Context, fn func(tx pgx.Tx) (domain.Balance, error)) (domain.Balance, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return domain.Balance{}, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	balance, err := fn(tx)
	if err != nil {
		return domain.Balance{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return domain.Balance{}, err
		}
		return domain.Balance{}, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return balance, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-index
// violation (code 23505) anywhere in its chain.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationPg
}
