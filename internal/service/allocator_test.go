package service

import (
	"context"
	"testing"
	"time"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository/memory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertGrant(t *testing.T, store *memory.Store, g *model.BonusGrant) {
	t.Helper()
	if g.Status == "" {
		g.Status = model.GrantPending
	}
	if g.ExpiresAt.IsZero() {
		g.ExpiresAt = time.Now().Add(24 * time.Hour)
	}
	require.NoError(t, store.Grants().Insert(context.Background(), g, nil))
}

func TestAllocate_RealFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	rec := &model.BalanceRecord{PlayerID: 1, RealBalance: 1000}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 400, model.PolicyAuto)
	require.NoError(t, err)

	assert.Equal(t, int64(400), b.FromReal)
	assert.Zero(t, b.FromBonus)
	assert.Equal(t, model.SourceReal, b.SourceType())
	assert.Equal(t, int64(600), rec.RealBalance)
	require.Len(t, b.Draws, 1)
	assert.Equal(t, model.RealSource(), b.Draws[0].Source)
}

func TestAllocate_GrantsConsumedFIFO(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	base := time.Now().Add(-time.Hour)
	insertGrant(t, store, &model.BonusGrant{
		ID: "g-old", PlayerID: 1, RemainingAmount: 500, WageringGoal: 100000, CreatedAt: base,
	})
	insertGrant(t, store, &model.BonusGrant{
		ID: "g-new", PlayerID: 1, RemainingAmount: 200, WageringGoal: 100000, CreatedAt: base.Add(time.Minute),
	})

	rec := &model.BalanceRecord{PlayerID: 1, BonusBalance: 700}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 600, model.PolicyAuto)
	require.NoError(t, err)

	assert.Equal(t, int64(600), b.FromBonus)
	require.Len(t, b.Draws, 2)
	assert.Equal(t, model.BonusSource("g-old"), b.Draws[0].Source)
	assert.Equal(t, int64(500), b.Draws[0].Amount)
	assert.Equal(t, model.BonusSource("g-new"), b.Draws[1].Source)
	assert.Equal(t, int64(100), b.Draws[1].Amount)
	assert.Equal(t, int64(100), rec.BonusBalance)

	// The fully spent grant is removed; the partially spent one keeps its
	// remainder.
	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, "g-new", grants[0].ID)
	assert.Equal(t, int64(100), grants[0].RemainingAmount)
	assert.Equal(t, int64(100), grants[0].WageredAmount)
}

func TestAllocate_SkipsGameRestrictedGrants(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	base := time.Now().Add(-time.Hour)
	insertGrant(t, store, &model.BonusGrant{
		ID: "g-roulette", PlayerID: 1, RemainingAmount: 500, WageringGoal: 100000,
		AllowedGames: []string{"roulette-1"}, CreatedAt: base,
	})
	insertGrant(t, store, &model.BonusGrant{
		ID: "g-any", PlayerID: 1, RemainingAmount: 300, WageringGoal: 100000, CreatedAt: base.Add(time.Minute),
	})

	rec := &model.BalanceRecord{PlayerID: 1, BonusBalance: 800}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 200, model.PolicyAuto)
	require.NoError(t, err)

	require.Len(t, b.Draws, 1)
	assert.Equal(t, model.BonusSource("g-any"), b.Draws[0].Source)
}

func TestAllocate_MixedFunding(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	insertGrant(t, store, &model.BonusGrant{
		ID: "g-1", PlayerID: 1, RemainingAmount: 400, WageringGoal: 100000, CreatedAt: time.Now(),
	})

	rec := &model.BalanceRecord{PlayerID: 1, RealBalance: 600, BonusBalance: 400}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 1000, model.PolicyAuto)
	require.NoError(t, err)

	assert.Equal(t, int64(600), b.FromReal)
	assert.Equal(t, int64(400), b.FromBonus)
	assert.Equal(t, model.SourceMixed, b.SourceType())
	assert.Zero(t, rec.RealBalance)
	assert.Zero(t, rec.BonusBalance)
}

func TestAllocate_PolicyRealRequiresFullCoverage(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	rec := &model.BalanceRecord{PlayerID: 1, RealBalance: 100, BonusBalance: 1000}
	_, err := a.Allocate(ctx, nil, rec, "slots-1", 500, model.PolicyReal)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestAllocate_PolicyBonusSkipsReal(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	insertGrant(t, store, &model.BonusGrant{
		ID: "g-1", PlayerID: 1, RemainingAmount: 500, WageringGoal: 100000, CreatedAt: time.Now(),
	})

	rec := &model.BalanceRecord{PlayerID: 1, RealBalance: 1000, BonusBalance: 500}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 300, model.PolicyBonus)
	require.NoError(t, err)

	assert.Zero(t, b.FromReal)
	assert.Equal(t, int64(300), b.FromBonus)
	assert.Equal(t, int64(1000), rec.RealBalance)
}

func TestAllocate_ShortfallFailsWhole(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	rec := &model.BalanceRecord{PlayerID: 1, RealBalance: 100}
	_, err := a.Allocate(ctx, nil, rec, "slots-1", 500, model.PolicyAuto)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestAllocate_GoalCompletionUnlocksResidual(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	a := NewBonusAllocator(store.Grants(), zerolog.Nop())

	// 50 more wagered meets the goal; the 50 left after the draw unlocks.
	insertGrant(t, store, &model.BonusGrant{
		ID: "g-1", PlayerID: 1, RemainingAmount: 100, WageredAmount: 950, WageringGoal: 1000,
		CreatedAt: time.Now(),
	})

	rec := &model.BalanceRecord{PlayerID: 1, BonusBalance: 100}
	b, err := a.Allocate(ctx, nil, rec, "slots-1", 50, model.PolicyAuto)
	require.NoError(t, err)

	assert.Equal(t, int64(50), b.FromBonus)
	assert.Zero(t, rec.BonusBalance)
	assert.Equal(t, int64(50), rec.RealBalance)

	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, grants)
}
