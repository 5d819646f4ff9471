package ledger

import (
	"context"
	"errors"
	"testing"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository/memory"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger() (*Ledger, *memory.Store) {
	store := memory.NewStore()
	return New(store, store.Balances(), zerolog.Nop()), store
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	first, err := ldg.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.PlayerID)
	assert.Zero(t, first.RealBalance)
	assert.Zero(t, first.BonusBalance)

	second, err := ldg.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

func TestApplyDelta_CommitsMutation(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	rec, err := ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.RealBalance += 1000
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), rec.RealBalance)

	stored, err := ldg.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.RealBalance)
}

func TestApplyDelta_RejectsNegativeBalance(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	_, err := ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.RealBalance -= 500
		return nil
	})
	require.ErrorIs(t, err, model.ErrInsufficientFunds)

	// Failed mutation must commit nothing.
	stored, err := ldg.GetOrCreate(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, stored.RealBalance)
}

func TestApplyDelta_RejectsUnconvertedBonus(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	// Bonus money with zero bonus wagering remaining means the conversion
	// step was skipped inside the mutation.
	_, err := ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.BonusBalance += 100
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unconverted")
}

func TestApplyDelta_FnErrorRollsBack(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	_, err := ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.RealBalance += 1000
		return nil
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.RealBalance += 999
		return boom
	})
	require.ErrorIs(t, err, boom)

	stored, err := ldg.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), stored.RealBalance)
}

func TestApplyDelta_RejectsNegativeWageringRemainder(t *testing.T) {
	ctx := context.Background()
	ldg, _ := newTestLedger()

	_, err := ldg.ApplyDelta(ctx, 1, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		rec.DepositWageringRemaining = -1
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative wagering remainder")
}
