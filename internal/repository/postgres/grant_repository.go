package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.GrantRepository = (*GrantRepositoryImpl)(nil)

const grantColumns = `id, player_id, remaining_amount, wagered_amount,
	wagering_goal, status, allowed_games, created_at, expires_at`

// GrantRepositoryImpl is the PostgreSQL implementation of GrantRepository
type GrantRepositoryImpl struct {
	*TransactionManager
}

func NewGrantRepository(pool *pgxpool.Pool) repository.GrantRepository {
	return &GrantRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func scanGrant(row pgx.Row) (*model.BonusGrant, error) {
	g := &model.BonusGrant{}
	err := row.Scan(&g.ID, &g.PlayerID, &g.RemainingAmount, &g.WageredAmount,
		&g.WageringGoal, &g.Status, &g.AllowedGames, &g.CreatedAt, &g.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrGrantNotFound
		}
		return nil, fmt.Errorf("failed to scan grant: %w", err)
	}
	return g, nil
}

func scanGrants(rows pgx.Rows) ([]*model.BonusGrant, error) {
	defer rows.Close()

	var grants []*model.BonusGrant
	for rows.Next() {
		g := &model.BonusGrant{}
		if err := rows.Scan(&g.ID, &g.PlayerID, &g.RemainingAmount, &g.WageredAmount,
			&g.WageringGoal, &g.Status, &g.AllowedGames, &g.CreatedAt, &g.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan grant: %w", err)
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *GrantRepositoryImpl) Insert(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error {
	query := `
        INSERT INTO bonus_grants (id, player_id, remaining_amount, wagered_amount,
            wagering_goal, status, allowed_games, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING created_at`

	err := tx.QueryRow(ctx, query, grant.ID, grant.PlayerID, grant.RemainingAmount,
		grant.WageredAmount, grant.WageringGoal, grant.Status, grant.AllowedGames,
		grant.ExpiresAt).Scan(&grant.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert grant: %w", err)
	}
	return nil
}

// GetPendingForUpdate locks the player's pending grants in FIFO order
func (r *GrantRepositoryImpl) GetPendingForUpdate(ctx context.Context, playerID int64, tx pgx.Tx) ([]*model.BonusGrant, error) {
	query := `SELECT ` + grantColumns + `
        FROM bonus_grants
        WHERE player_id = $1 AND status = 'pending'
        ORDER BY created_at, id
        FOR UPDATE`

	rows, err := tx.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending grants: %w", err)
	}
	return scanGrants(rows)
}

func (r *GrantRepositoryImpl) GetForUpdate(ctx context.Context, id string, tx pgx.Tx) (*model.BonusGrant, error) {
	query := `SELECT ` + grantColumns + ` FROM bonus_grants WHERE id = $1 FOR UPDATE`
	return scanGrant(tx.QueryRow(ctx, query, id))
}

func (r *GrantRepositoryImpl) Update(ctx context.Context, grant *model.BonusGrant, tx pgx.Tx) error {
	query := `
        UPDATE bonus_grants
        SET remaining_amount = $1, wagered_amount = $2, status = $3
        WHERE id = $4`

	commandTag, err := tx.Exec(ctx, query, grant.RemainingAmount, grant.WageredAmount,
		grant.Status, grant.ID)
	if err != nil {
		return fmt.Errorf("failed to update grant: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrGrantNotFound
	}
	return nil
}

func (r *GrantRepositoryImpl) Delete(ctx context.Context, id string, tx pgx.Tx) error {
	commandTag, err := tx.Exec(ctx, `DELETE FROM bonus_grants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete grant: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return model.ErrGrantNotFound
	}
	return nil
}

func (r *GrantRepositoryImpl) ListByPlayer(ctx context.Context, playerID int64, tx ...pgx.Tx) ([]*model.BonusGrant, error) {
	query := `SELECT ` + grantColumns + `
        FROM bonus_grants WHERE player_id = $1 ORDER BY created_at, id`

	executor := r.getExecutor(tx...)
	rows, err := executor.Query(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grants: %w", err)
	}
	return scanGrants(rows)
}

// ListExpired returns pending grants past expiry, oldest first
func (r *GrantRepositoryImpl) ListExpired(ctx context.Context, now time.Time, limit int) ([]*model.BonusGrant, error) {
	query := `SELECT ` + grantColumns + `
        FROM bonus_grants
        WHERE status = 'pending' AND expires_at <= $1
        ORDER BY expires_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired grants: %w", err)
	}
	return scanGrants(rows)
}
