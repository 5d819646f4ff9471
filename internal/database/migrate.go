package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied on startup. Statements are idempotent; money columns are
// bigint minor currency units with non-negative checks so the database fails
// closed even if a bug slips past the ledger validation.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS balances (
		player_id                  BIGINT PRIMARY KEY,
		real_balance               BIGINT NOT NULL DEFAULT 0 CONSTRAINT real_balance_non_negative CHECK (real_balance >= 0),
		bonus_balance              BIGINT NOT NULL DEFAULT 0 CONSTRAINT bonus_balance_non_negative CHECK (bonus_balance >= 0),
		deposit_wagering_remaining BIGINT NOT NULL DEFAULT 0 CHECK (deposit_wagering_remaining >= 0),
		bonus_wagering_remaining   BIGINT NOT NULL DEFAULT 0 CHECK (bonus_wagering_remaining >= 0),
		free_spins_remaining       INT    NOT NULL DEFAULT 0 CHECK (free_spins_remaining >= 0),
		total_deposited            BIGINT NOT NULL DEFAULT 0,
		total_withdrawn            BIGINT NOT NULL DEFAULT 0,
		total_wagered              BIGINT NOT NULL DEFAULT 0,
		total_won                  BIGINT NOT NULL DEFAULT 0,
		total_bonus_granted        BIGINT NOT NULL DEFAULT 0,
		total_free_spin_wins       BIGINT NOT NULL DEFAULT 0,
		created_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at                 TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bonus_grants (
		id               TEXT PRIMARY KEY,
		player_id        BIGINT NOT NULL REFERENCES balances(player_id),
		remaining_amount BIGINT NOT NULL CHECK (remaining_amount >= 0),
		wagered_amount   BIGINT NOT NULL DEFAULT 0 CHECK (wagered_amount >= 0),
		wagering_goal    BIGINT NOT NULL CHECK (wagering_goal >= 0),
		status           TEXT   NOT NULL DEFAULT 'pending',
		allowed_games    TEXT[] NOT NULL DEFAULT '{}',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bonus_grants_player_fifo
		ON bonus_grants (player_id, created_at) WHERE status = 'pending'`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id                   TEXT PRIMARY KEY,
		player_id            BIGINT NOT NULL REFERENCES balances(player_id),
		type                 TEXT NOT NULL,
		status               TEXT NOT NULL,
		wager_amount         BIGINT NOT NULL DEFAULT 0,
		amount               BIGINT NOT NULL,
		real_balance_before  BIGINT NOT NULL,
		real_balance_after   BIGINT NOT NULL,
		bonus_balance_before BIGINT NOT NULL,
		bonus_balance_after  BIGINT NOT NULL,
		ggr_contribution     BIGINT NOT NULL DEFAULT 0,
		jackpot_contribution BIGINT NOT NULL DEFAULT 0,
		vip_points_added     NUMERIC(20,6) NOT NULL DEFAULT 0,
		game_id              TEXT NOT NULL DEFAULT '',
		session_id           TEXT NOT NULL DEFAULT '',
		affiliate_id         TEXT NOT NULL DEFAULT '',
		related_id           TEXT NOT NULL DEFAULT '',
		created_at           TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_player_created
		ON transactions (player_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS jackpot_pools (
		name   TEXT PRIMARY KEY,
		amount BIGINT NOT NULL DEFAULT 0 CHECK (amount >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS revenue_entries (
		id           BIGSERIAL PRIMARY KEY,
		bet_id       TEXT NOT NULL,
		player_id    BIGINT NOT NULL,
		game_id      TEXT NOT NULL DEFAULT '',
		affiliate_id TEXT NOT NULL DEFAULT '',
		wager_amount BIGINT NOT NULL,
		win_amount   BIGINT NOT NULL,
		ggr_amount   BIGINT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Migrate applies the embedded schema.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
