package repository

import (
	"context"
	"time"

	"casino-ledger/internal/model"

	"github.com/jackc/pgx/v5"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// BalanceRepository owns the per-player balance rows.
type BalanceRepository interface {
	// EnsureExists creates a zeroed balance row if none exists. Idempotent.
	EnsureExists(ctx context.Context, playerID int64, tx ...pgx.Tx) error

	// GetForUpdate retrieves a balance row with a row-level lock (must be in
	// a transaction). This lock is the per-player serialization point.
	GetForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) (*model.BalanceRecord, error)

	// Get retrieves a balance row without locking.
	Get(ctx context.Context, playerID int64, tx ...pgx.Tx) (*model.BalanceRecord, error)

	// Update writes back a mutated balance row.
	Update(ctx context.Context, rec *model.BalanceRecord, tx pgx.Tx) error
}

// GrantRepository owns bonus grant rows.
type GrantRepository interface {
	Insert(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error

	// GetPendingForUpdate locks and returns the player's pending grants in
	// creation order (FIFO consumption order).
	GetPendingForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) ([]*model.BonusGrant, error)

	// GetForUpdate locks a single grant by id.
	GetForUpdate(ctx context.Context, id string, tx pgx.Tx) (*model.BonusGrant, error)

	Update(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error
	Delete(ctx context.Context, id string, tx pgx.Tx) error

	ListByPlayer(ctx context.Context, playerID int64, tx ...pgx.Tx) ([]*model.BonusGrant, error)

	// ListExpired returns pending grants past their expiry, oldest first.
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*model.BonusGrant, error)
}

// TransactionRepository owns the append-only audit log. Records are never
// updated or deleted.
type TransactionRepository interface {
	Insert(ctx context.Context, rec *model.TransactionRecord, tx ...pgx.Tx) error
	Get(ctx context.Context, id string, tx ...pgx.Tx) (*model.TransactionRecord, error)
	ListByPlayer(ctx context.Context, playerID int64, limit, offset int) ([]*model.TransactionRecord, error)

	// SumNetAmountSince sums the signed net amounts for a player from a point
	// in time. Used for loss limits and reconciliation.
	SumNetAmountSince(ctx context.Context, playerID int64, since time.Time) (int64, error)
}

// JackpotRepository persists the progressive pool meters.
type JackpotRepository interface {
	AddContributions(ctx context.Context, contributions map[string]int64) error
	GetPools(ctx context.Context) (map[string]int64, error)
}

// RevenueRepository appends GGR contribution entries.
type RevenueRepository interface {
	Insert(ctx context.Context, entry *model.RevenueEntry) error
}
