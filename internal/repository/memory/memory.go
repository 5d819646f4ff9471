// Package memory provides in-memory implementations of the repository
// interfaces for tests. WithTransaction serializes all transactions behind a
// single mutex, which gives the same per-player mutual exclusion the
// postgres row lock provides, and restores a snapshot on error so a failed
// transaction commits nothing.
package memory

import (
	"context"
	"sync"
	"time"

	"casino-ledger/internal/model"

	"github.com/jackc/pgx/v5"
)

type Store struct {
	txMu sync.Mutex // serializes transactions
	mu   sync.Mutex // guards the maps

	balances     map[int64]model.BalanceRecord
	grants       map[string]model.BonusGrant
	transactions []model.TransactionRecord
}

func NewStore() *Store {
	return &Store{
		balances: make(map[int64]model.BalanceRecord),
		grants:   make(map[string]model.BonusGrant),
	}
}

// WithTransaction runs fn with a nil pgx.Tx, matching how the real services
// are unit-tested against mocks. On error the pre-transaction state is
// restored.
func (s *Store) WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapBalances, snapGrants, snapTransactions := s.snapshot()

	if err := fn(nil); err != nil {
		s.restore(snapBalances, snapGrants, snapTransactions)
		return err
	}
	return nil
}

func (s *Store) snapshot() (map[int64]model.BalanceRecord, map[string]model.BonusGrant, []model.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := make(map[int64]model.BalanceRecord, len(s.balances))
	for k, v := range s.balances {
		balances[k] = v
	}
	grants := make(map[string]model.BonusGrant, len(s.grants))
	for k, v := range s.grants {
		v.AllowedGames = append([]string(nil), v.AllowedGames...)
		grants[k] = v
	}
	transactions := append([]model.TransactionRecord(nil), s.transactions...)
	return balances, grants, transactions
}

func (s *Store) restore(balances map[int64]model.BalanceRecord, grants map[string]model.BonusGrant, transactions []model.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.balances = balances
	s.grants = grants
	s.transactions = transactions
}

// Balances returns the BalanceRepository view of the store.
func (s *Store) Balances() *BalanceRepo { return &BalanceRepo{s: s} }

// Grants returns the GrantRepository view of the store.
func (s *Store) Grants() *GrantRepo { return &GrantRepo{s: s} }

// Transactions returns the TransactionRepository view of the store.
func (s *Store) Transactions() *TransactionRepo { return &TransactionRepo{s: s} }

type BalanceRepo struct{ s *Store }

func (r *BalanceRepo) EnsureExists(ctx context.Context, playerID int64, tx ...pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.balances[playerID]; !ok {
		now := time.Now()
		r.s.balances[playerID] = model.BalanceRecord{PlayerID: playerID, CreatedAt: now, UpdatedAt: now}
	}
	return nil
}

func (r *BalanceRepo) GetForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) (*model.BalanceRecord, error) {
	return r.Get(ctx, playerID)
}

func (r *BalanceRepo) Get(ctx context.Context, playerID int64, tx ...pgx.Tx) (*model.BalanceRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.balances[playerID]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &rec, nil
}

func (r *BalanceRepo) Update(ctx context.Context, rec *model.BalanceRecord, tx pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.balances[rec.PlayerID]; !ok {
		return model.ErrPlayerNotFound
	}
	if rec.RealBalance < 0 || rec.BonusBalance < 0 ||
		rec.DepositWageringRemaining < 0 || rec.BonusWageringRemaining < 0 {
		return model.ErrInsufficientFunds
	}
	next := *rec
	next.UpdatedAt = time.Now()
	r.s.balances[rec.PlayerID] = next
	return nil
}

type GrantRepo struct{ s *Store }

func (r *GrantRepo) Insert(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if grant.CreatedAt.IsZero() {
		grant.CreatedAt = time.Now()
	}
	r.s.grants[grant.ID] = *grant
	return nil
}

func (r *GrantRepo) GetPendingForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) ([]*model.BonusGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var grants []*model.BonusGrant
	for _, g := range r.s.grants {
		if g.PlayerID == playerID && g.Status == model.GrantPending {
			g := g
			grants = append(grants, &g)
		}
	}
	sortGrantsFIFO(grants)
	return grants, nil
}

func (r *GrantRepo) GetForUpdate(ctx context.Context, id string, tx pgx.Tx) (*model.BonusGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	g, ok := r.s.grants[id]
	if !ok {
		return nil, model.ErrGrantNotFound
	}
	return &g, nil
}

func (r *GrantRepo) Update(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.grants[grant.ID]; !ok {
		return model.ErrGrantNotFound
	}
	r.s.grants[grant.ID] = *grant
	return nil
}

func (r *GrantRepo) Delete(ctx context.Context, id string, tx pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.grants[id]; !ok {
		return model.ErrGrantNotFound
	}
	delete(r.s.grants, id)
	return nil
}

func (r *GrantRepo) ListByPlayer(ctx context.Context, playerID int64, tx ...pgx.Tx) ([]*model.BonusGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var grants []*model.BonusGrant
	for _, g := range r.s.grants {
		if g.PlayerID == playerID {
			g := g
			grants = append(grants, &g)
		}
	}
	sortGrantsFIFO(grants)
	return grants, nil
}

func (r *GrantRepo) ListExpired(ctx context.Context, now time.Time, limit int) ([]*model.BonusGrant, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var grants []*model.BonusGrant
	for _, g := range r.s.grants {
		if g.Status == model.GrantPending && !g.ExpiresAt.After(now) {
			g := g
			grants = append(grants, &g)
		}
	}
	sortGrantsFIFO(grants)
	if len(grants) > limit {
		grants = grants[:limit]
	}
	return grants, nil
}

func sortGrantsFIFO(grants []*model.BonusGrant) {
	for i := 1; i < len(grants); i++ {
		for j := i; j > 0; j-- {
			a, b := grants[j-1], grants[j]
			if a.CreatedAt.Before(b.CreatedAt) || (a.CreatedAt.Equal(b.CreatedAt) && a.ID <= b.ID) {
				break
			}
			grants[j-1], grants[j] = b, a
		}
	}
}

type TransactionRepo struct{ s *Store }

func (r *TransactionRepo) Insert(ctx context.Context, rec *model.TransactionRecord, tx ...pgx.Tx) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	r.s.transactions = append(r.s.transactions, *rec)
	return nil
}

func (r *TransactionRepo) Get(ctx context.Context, id string, tx ...pgx.Tx) (*model.TransactionRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i := range r.s.transactions {
		if r.s.transactions[i].ID == id {
			rec := r.s.transactions[i]
			return &rec, nil
		}
	}
	return nil, model.ErrTransactionNotFound
}

func (r *TransactionRepo) ListByPlayer(ctx context.Context, playerID int64, limit, offset int) ([]*model.TransactionRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var records []*model.TransactionRecord
	for i := len(r.s.transactions) - 1; i >= 0; i-- {
		if r.s.transactions[i].PlayerID == playerID {
			rec := r.s.transactions[i]
			records = append(records, &rec)
		}
	}
	if offset > len(records) {
		offset = len(records)
	}
	records = records[offset:]
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *TransactionRepo) SumNetAmountSince(ctx context.Context, playerID int64, since time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var sum int64
	for i := range r.s.transactions {
		rec := &r.s.transactions[i]
		if rec.PlayerID == playerID && !rec.CreatedAt.Before(since) {
			sum += rec.Amount
		}
	}
	return sum, nil
}
