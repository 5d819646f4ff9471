package postgres

import (
	"context"
	"fmt"

	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.JackpotRepository = (*JackpotRepositoryImpl)(nil)

// JackpotRepositoryImpl persists the progressive pool meters.
type JackpotRepositoryImpl struct {
	*TransactionManager
}

func NewJackpotRepository(pool *pgxpool.Pool) repository.JackpotRepository {
	return &JackpotRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// AddContributions upserts each pool meter by its contribution amount
func (r *JackpotRepositoryImpl) AddContributions(ctx context.Context, contributions map[string]int64) error {
	query := `
        INSERT INTO jackpot_pools (name, amount) VALUES ($1, $2)
        ON CONFLICT (name) DO UPDATE SET amount = jackpot_pools.amount + EXCLUDED.amount`

	for name, amount := range contributions {
		if amount == 0 {
			continue
		}
		if _, err := r.pool.Exec(ctx, query, name, amount); err != nil {
			return fmt.Errorf("failed to add jackpot contribution: %w", err)
		}
	}
	return nil
}

func (r *JackpotRepositoryImpl) GetPools(ctx context.Context) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT name, amount FROM jackpot_pools`)
	if err != nil {
		return nil, fmt.Errorf("failed to query jackpot pools: %w", err)
	}
	defer rows.Close()

	pools := make(map[string]int64)
	for rows.Next() {
		var name string
		var amount int64
		if err := rows.Scan(&name, &amount); err != nil {
			return nil, fmt.Errorf("failed to scan jackpot pool: %w", err)
		}
		pools[name] = amount
	}
	return pools, rows.Err()
}
