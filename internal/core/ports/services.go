package ports

import (
	"context"
	"time"

	"wager-arena/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// --- Service Ports (Business Logic) ---

// LedgerService is the only component permitted to mutate account balances.
// Every public operation is one atomic database transaction; the Tx variants
// run inside a caller-owned transaction so session operations can compose a
// balance move and a session transition into a single commit.
type LedgerService interface {
	// EnsureAccount provisions the account with the configured starting
	// balance on first sight. Safe to call on every authenticated request.
	EnsureAccount(ctx context.Context, accountID string) (*domain.Account, error)
	GetBalance(ctx context.Context, accountID string) (domain.Balance, error)
	ListEntries(ctx context.Context, accountID string, limit int) ([]domain.Entry, error)

	LockStake(ctx context.Context, accountID string, amount int64, sessionID string) (domain.Balance, error)
	ReleaseStake(ctx context.Context, accountID string, amount int64, sessionID string) (domain.Balance, error)
	CreditCashout(ctx context.Context, accountID string, gross int64, sessionID string) (CashoutResult, error)
	// CreditDeposit is idempotent by paymentID: a duplicate call returns the
	// balance as of the original credit without recording a second entry.
	CreditDeposit(ctx context.Context, accountID string, amount int64, paymentID string) (domain.Balance, error)

	LockStakeTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string) (domain.Balance, error)
	ReleaseStakeTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string) (domain.Balance, error)
	CreditCashoutTx(ctx context.Context, tx pgx.Tx, accountID string, gross int64, sessionID string) (CashoutResult, error)
	CreditDepositTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, paymentID string) (domain.Balance, error)
	// TransferForfeitTx moves a forfeited stake out of the player's locked
	// balance and into the house account, both sides in the same transaction.
	TransferForfeitTx(ctx context.Context, tx pgx.Tx, accountID string, amount int64, sessionID string, houseAccountID string) (domain.Balance, error)
}

// CashoutResult is the outcome of a cash-out credit.
type CashoutResult struct {
	Gross   int64
	Net     int64
	Fee     int64
	Balance domain.Balance
}

// SessionService owns the wager-session lifecycle.
type SessionService interface {
	Start(ctx context.Context, accountID string, stake int64) (*domain.Session, domain.Balance, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	// ReportValue is the engine's fire-and-forget value update. It never
	// touches the ledger.
	ReportValue(ctx context.Context, sessionID string, value int64) error
	CashOut(ctx context.Context, sessionID string) (*domain.CashoutReceipt, domain.Balance, error)
	Forfeit(ctx context.Context, sessionID string, reason domain.EndReason) error
}

// DepositService reconciles external payment-provider state with the ledger.
type DepositService interface {
	CreateDeposit(ctx context.Context, accountID string, amount int64, currency string) (*domain.PendingPayment, error)
	GetPayment(ctx context.Context, accountID, paymentID string) (*domain.PendingPayment, error)
	// RecordStatus applies one provider-reported status string. Duplicate,
	// regressive and unknown statuses are absorbed as no-ops.
	RecordStatus(ctx context.Context, paymentID string, reportedStatus string) (*domain.PendingPayment, error)
	// PollAndReconcile fetches the provider's current status (outside any
	// lock) and feeds it through RecordStatus.
	PollAndReconcile(ctx context.Context, paymentID string) (*domain.PendingPayment, error)
}

// --- Collaborator Ports ---

// PaymentGateway is the outbound payment-provider API.
type PaymentGateway interface {
	CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatePaymentResponse, error)
	GetPaymentStatus(ctx context.Context, paymentID string) (*PaymentStatusResponse, error)
}

// CreatePaymentRequest holds the outbound payment creation parameters.
type CreatePaymentRequest struct {
	Amount   int64 // cents
	Currency string
	OrderID  string
}

// CreatePaymentResponse is the provider's payment descriptor.
type CreatePaymentResponse struct {
	PaymentID   string
	PayAddress  string
	PayAmount   string
	PayCurrency string
	Status      string
	ExpiresAt   *time.Time
}

// PaymentStatusResponse is one provider status poll result.
type PaymentStatusResponse struct {
	PaymentID string
	Status    string
}

// TokenService handles JWT token operations. The core never mints player
// tokens in production; Generate exists for the engine rig and tests.
type TokenService interface {
	Generate(accountID string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	AccountID string
}

// IdempotencyCache is the Redis-layer deposit dedup check (fast path only;
// the ledger's unique index is authoritative).
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// IPNVerifier checks provider webhook signatures.
type IPNVerifier interface {
	Verify(body []byte, signature string) bool
}
