package postgres

import (
	"context"
	"errors"
	"fmt"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.BalanceRepository = (*BalanceRepositoryImpl)(nil)

const balanceColumns = `player_id, real_balance, bonus_balance,
	deposit_wagering_remaining, bonus_wagering_remaining, free_spins_remaining,
	total_deposited, total_withdrawn, total_wagered, total_won,
	total_bonus_granted, total_free_spin_wins, created_at, updated_at`

// BalanceRepositoryImpl is the PostgreSQL implementation of BalanceRepository
type BalanceRepositoryImpl struct {
	*TransactionManager
}

func NewBalanceRepository(pool *pgxpool.Pool) repository.BalanceRepository {
	return &BalanceRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// EnsureExists creates a zeroed balance row on first access
func (r *BalanceRepositoryImpl) EnsureExists(ctx context.Context, playerID int64, tx ...pgx.Tx) error {
	query := `INSERT INTO balances (player_id) VALUES ($1) ON CONFLICT (player_id) DO NOTHING`

	executor := r.getExecutor(tx...)
	if _, err := executor.Exec(ctx, query, playerID); err != nil {
		return fmt.Errorf("failed to ensure balance row: %w", err)
	}
	return nil
}

func scanBalance(row pgx.Row) (*model.BalanceRecord, error) {
	rec := &model.BalanceRecord{}
	err := row.Scan(&rec.PlayerID, &rec.RealBalance, &rec.BonusBalance,
		&rec.DepositWageringRemaining, &rec.BonusWageringRemaining, &rec.FreeSpinsRemaining,
		&rec.TotalDeposited, &rec.TotalWithdrawn, &rec.TotalWagered, &rec.TotalWon,
		&rec.TotalBonusGranted, &rec.TotalFreeSpinWins, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to scan balance: %w", err)
	}
	return rec, nil
}

// GetForUpdate retrieves a balance row with a row-level lock
func (r *BalanceRepositoryImpl) GetForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) (*model.BalanceRecord, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE player_id = $1 FOR UPDATE`
	return scanBalance(tx.QueryRow(ctx, query, playerID))
}

// Get retrieves a balance row without locking
func (r *BalanceRepositoryImpl) Get(ctx context.Context, playerID int64, tx ...pgx.Tx) (*model.BalanceRecord, error) {
	query := `SELECT ` + balanceColumns + ` FROM balances WHERE player_id = $1`
	executor := r.getExecutor(tx...)
	return scanBalance(executor.QueryRow(ctx, query, playerID))
}

// Update writes back a mutated balance row
func (r *BalanceRepositoryImpl) Update(ctx context.Context, rec *model.BalanceRecord, tx pgx.Tx) error {
	query := `
        UPDATE balances
        SET real_balance = $1, bonus_balance = $2,
            deposit_wagering_remaining = $3, bonus_wagering_remaining = $4,
            free_spins_remaining = $5,
            total_deposited = $6, total_withdrawn = $7, total_wagered = $8,
            total_won = $9, total_bonus_granted = $10, total_free_spin_wins = $11,
            updated_at = NOW()
        WHERE player_id = $12`

	commandTag, err := tx.Exec(ctx, query,
		rec.RealBalance, rec.BonusBalance,
		rec.DepositWageringRemaining, rec.BonusWageringRemaining,
		rec.FreeSpinsRemaining,
		rec.TotalDeposited, rec.TotalWithdrawn, rec.TotalWagered,
		rec.TotalWon, rec.TotalBonusGranted, rec.TotalFreeSpinWins,
		rec.PlayerID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.CheckViolation {
			return model.ErrInsufficientFunds
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrPlayerNotFound
	}
	return nil
}
