package postgres

import (
	"context"
	"fmt"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.RevenueRepository = (*RevenueRepositoryImpl)(nil)

// RevenueRepositoryImpl appends GGR contribution entries.
type RevenueRepositoryImpl struct {
	*TransactionManager
}

func NewRevenueRepository(pool *pgxpool.Pool) repository.RevenueRepository {
	return &RevenueRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *RevenueRepositoryImpl) Insert(ctx context.Context, entry *model.RevenueEntry) error {
	query := `
        INSERT INTO revenue_entries (bet_id, player_id, game_id, affiliate_id,
            wager_amount, win_amount, ggr_amount)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query, entry.BetID, entry.PlayerID, entry.GameID,
		entry.AffiliateID, entry.WagerAmount, entry.WinAmount, entry.GGRAmount).
		Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert revenue entry: %w", err)
	}
	return nil
}
