package integration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"wager-arena/internal/core/domain"
	"wager-arena/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.accounts[a.ID]; exists {
		return false, nil
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return true, nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// GetByIDForUpdate relies on the locking transactor for mutual exclusion:
// the caller holds the global transaction lock, so a plain read is safe.
func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) UpdateBalances(ctx context.Context, tx pgx.Tx, id string, available, locked int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found: %s", id)
	}
	a.Available = available
	a.Locked = locked
	a.UpdatedAt = time.Now().UTC()
	return nil
}

// --- In-Memory Entry Repo ---

type inMemoryEntryRepo struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

func newInMemoryEntryRepo() *inMemoryEntryRepo {
	return &inMemoryEntryRepo{}
}

// Create emulates the partial unique index on (payment_id) WHERE kind =
// 'DEPOSIT' by returning a 23505 on a duplicate deposit entry.
func (r *inMemoryEntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.Kind == domain.EntryKindDeposit && e.PaymentID != nil {
		for _, existing := range r.entries {
			if existing.Kind == domain.EntryKindDeposit && existing.PaymentID != nil && *existing.PaymentID == *e.PaymentID {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_ledger_entries_deposit_payment"}
			}
		}
	}
	r.entries = append(r.entries, *e)
	return nil
}

func (r *inMemoryEntryRepo) GetDepositByPaymentID(ctx context.Context, paymentID string) (*domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.entries {
		e := r.entries[i]
		if e.Kind == domain.EntryKindDeposit && e.PaymentID != nil && *e.PaymentID == paymentID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryEntryRepo) ListByAccount(ctx context.Context, accountID string, limit int) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Entry
	for i := len(r.entries) - 1; i >= 0 && len(result) < limit; i-- {
		if r.entries[i].AccountID == accountID {
			result = append(result, r.entries[i])
		}
	}
	return result, nil
}

// --- In-Memory Session Repo ---

type inMemorySessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func newInMemorySessionRepo() *inMemorySessionRepo {
	return &inMemorySessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *inMemorySessionRepo) Create(ctx context.Context, tx pgx.Tx, s *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *inMemorySessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *inMemorySessionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.Session, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemorySessionRepo) UpdateValue(ctx context.Context, id string, value int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.State != domain.SessionStateActive {
		return false, nil
	}
	s.CurrentValue = value
	return true, nil
}

func (r *inMemorySessionRepo) Close(ctx context.Context, tx pgx.Tx, id string, state domain.SessionState, closedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.State != domain.SessionStateActive {
		return fmt.Errorf("session not active: %s", id)
	}
	s.State = state
	s.ClosedAt = &closedAt
	return nil
}

// --- In-Memory Payment Repo ---

type inMemoryPaymentRepo struct {
	mu       sync.RWMutex
	payments map[string]*domain.PendingPayment
}

func newInMemoryPaymentRepo() *inMemoryPaymentRepo {
	return &inMemoryPaymentRepo{payments: make(map[string]*domain.PendingPayment)}
}

func (r *inMemoryPaymentRepo) Create(ctx context.Context, p *domain.PendingPayment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.payments[p.ID] = &cp
	return nil
}

func (r *inMemoryPaymentRepo) GetByID(ctx context.Context, id string) (*domain.PendingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *inMemoryPaymentRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id string) (*domain.PendingPayment, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryPaymentRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, id string, status domain.PaymentStatus, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[id]
	if !ok {
		return fmt.Errorf("payment not found: %s", id)
	}
	p.Status = status
	p.LastStatusAt = at
	return nil
}

func (r *inMemoryPaymentRepo) ListNonTerminal(ctx context.Context, limit int) ([]domain.PendingPayment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.PendingPayment
	for _, p := range r.payments {
		if !p.Status.IsTerminal() && len(result) < limit {
			result = append(result, *p)
		}
	}
	return result, nil
}

// --- Fake Payment Gateway ---

// fakeGateway stands in for the provider. The remote status map is what the
// provider "knows"; tests move it forward and let polls or webhooks carry the
// news into the system.
type fakeGateway struct {
	mu     sync.Mutex
	seq    int64
	remote map[string]string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{remote: make(map[string]string)}
}

func (g *fakeGateway) CreatePayment(ctx context.Context, req ports.CreatePaymentRequest) (*ports.CreatePaymentResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.seq++
	id := fmt.Sprintf("np-%d", g.seq)
	g.remote[id] = "waiting"
	return &ports.CreatePaymentResponse{
		PaymentID:   id,
		PayAddress:  "0xfeedface",
		PayAmount:   "0.0100",
		PayCurrency: req.Currency,
		Status:      "waiting",
	}, nil
}

func (g *fakeGateway) GetPaymentStatus(ctx context.Context, paymentID string) (*ports.PaymentStatusResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	status, ok := g.remote[paymentID]
	if !ok {
		return nil, fmt.Errorf("unknown payment: %s", paymentID)
	}
	return &ports.PaymentStatusResponse{PaymentID: paymentID, Status: status}, nil
}

func (g *fakeGateway) setRemoteStatus(paymentID, status string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.remote[paymentID] = status
}

// --- Locking Transactor ---

// lockingTransactor serializes all transactions behind one mutex. It is a
// coarse stand-in for row-level SELECT FOR UPDATE: the balance check and the
// balance write always happen atomically, which is the property the
// concurrency tests pin down.
type lockingTransactor struct {
	mu sync.Mutex
}

func newLockingTransactor() *lockingTransactor {
	return &lockingTransactor{}
}

func (t *lockingTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &memTx{release: t.mu.Unlock}, nil
}

// memTx is a pgx.Tx that releases the transactor lock on commit or rollback.
type memTx struct {
	once    sync.Once
	release func()
}

func (t *memTx) Commit(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	t.once.Do(t.release)
	return nil
}

func (t *memTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *memTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *memTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *memTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *memTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *memTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *memTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *memTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *memTx) Conn() *pgx.Conn { return nil }
