package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

const transactionColumns = `id, player_id, type, status, wager_amount, amount,
	real_balance_before, real_balance_after, bonus_balance_before, bonus_balance_after,
	ggr_contribution, jackpot_contribution, vip_points_added,
	game_id, session_id, affiliate_id, related_id, created_at`

// TransactionRepositoryImpl is the PostgreSQL implementation of the
// append-only transaction log. There are deliberately no UPDATE or DELETE
// statements in this file.
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// Insert appends one transaction record
func (r *TransactionRepositoryImpl) Insert(ctx context.Context, rec *model.TransactionRecord, tx ...pgx.Tx) error {
	query := `
        INSERT INTO transactions (id, player_id, type, status, wager_amount, amount,
            real_balance_before, real_balance_after, bonus_balance_before, bonus_balance_after,
            ggr_contribution, jackpot_contribution, vip_points_added,
            game_id, session_id, affiliate_id, related_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING created_at`

	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, rec.ID, rec.PlayerID, rec.Type, rec.Status,
		rec.WagerAmount, rec.Amount,
		rec.RealBalanceBefore, rec.RealBalanceAfter, rec.BonusBalanceBefore, rec.BonusBalanceAfter,
		rec.GGRContribution, rec.JackpotContribution, rec.VIPPointsAdded,
		rec.GameID, rec.SessionID, rec.AffiliateID, rec.RelatedID).Scan(&rec.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("transaction %s: duplicate id", rec.ID)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*model.TransactionRecord, error) {
	rec := &model.TransactionRecord{}
	err := row.Scan(&rec.ID, &rec.PlayerID, &rec.Type, &rec.Status,
		&rec.WagerAmount, &rec.Amount,
		&rec.RealBalanceBefore, &rec.RealBalanceAfter, &rec.BonusBalanceBefore, &rec.BonusBalanceAfter,
		&rec.GGRContribution, &rec.JackpotContribution, &rec.VIPPointsAdded,
		&rec.GameID, &rec.SessionID, &rec.AffiliateID, &rec.RelatedID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return rec, nil
}

func (r *TransactionRepositoryImpl) Get(ctx context.Context, id string, tx ...pgx.Tx) (*model.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	executor := r.getExecutor(tx...)
	return scanTransaction(executor.QueryRow(ctx, query, id))
}

// ListByPlayer retrieves paginated transactions for a player, newest first
func (r *TransactionRepositoryImpl) ListByPlayer(ctx context.Context, playerID int64, limit, offset int) ([]*model.TransactionRecord, error) {
	query := `SELECT ` + transactionColumns + `
        FROM transactions WHERE player_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, playerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var records []*model.TransactionRecord
	for rows.Next() {
		rec := &model.TransactionRecord{}
		if err := rows.Scan(&rec.ID, &rec.PlayerID, &rec.Type, &rec.Status,
			&rec.WagerAmount, &rec.Amount,
			&rec.RealBalanceBefore, &rec.RealBalanceAfter, &rec.BonusBalanceBefore, &rec.BonusBalanceAfter,
			&rec.GGRContribution, &rec.JackpotContribution, &rec.VIPPointsAdded,
			&rec.GameID, &rec.SessionID, &rec.AffiliateID, &rec.RelatedID, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// SumNetAmountSince sums signed net amounts for a player since a point in time
func (r *TransactionRepositoryImpl) SumNetAmountSince(ctx context.Context, playerID int64, since time.Time) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE player_id = $1 AND created_at >= $2`

	var sum int64
	if err := r.pool.QueryRow(ctx, query, playerID, since).Scan(&sum); err != nil {
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return sum, nil
}
