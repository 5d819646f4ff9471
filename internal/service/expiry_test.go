package service

import (
	"context"
	"testing"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository/memory"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestExpiry() (*GrantExpiryServiceImpl, *WageringManager, *memory.Store) {
	store := memory.NewStore()
	ldg := ledger.New(store, store.Balances(), zerolog.Nop())
	wagering := NewWageringManager(ldg, store.Grants(), store.Transactions(), testWageringConfig(), zerolog.Nop())
	svc := NewGrantExpiryService(ldg, store.Grants(), store.Transactions(),
		config.WorkerConfig{GrantExpiryBatch: 50}, zerolog.Nop())
	return svc, wagering, store
}

func TestExpireDueGrants_ForfeitsAndKeepsRow(t *testing.T) {
	ctx := context.Background()
	svc, wagering, store := newTestExpiry()

	_, grant, _, err := wagering.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(-time.Minute))
	require.NoError(t, err)

	require.NoError(t, svc.ExpireDueGrants(ctx))

	rec, err := store.Balances().Get(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, rec.BonusBalance)
	assert.Zero(t, rec.BonusWageringRemaining)

	// The row stays for support, emptied and marked expired.
	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, grant.ID, grants[0].ID)
	assert.Equal(t, model.GrantExpired, grants[0].Status)
	assert.Zero(t, grants[0].RemainingAmount)

	// Forfeiture leaves an adjustment in the audit log.
	records, err := store.Transactions().ListByPlayer(ctx, 1, 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, model.TypeAdjustment, records[0].Type)
	assert.Equal(t, int64(-100), records[0].Amount)
	assert.Equal(t, grant.ID, records[0].RelatedID)
}

func TestExpireDueGrants_ShedsObligationOfOtherGrants(t *testing.T) {
	ctx := context.Background()
	svc, wagering, store := newTestExpiry()

	// One grant already expired, one still live.
	_, _, _, err := wagering.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, live, _, err := wagering.OnBonusGrant(ctx, 1, 50, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.ExpireDueGrants(ctx))

	rec, err := store.Balances().Get(ctx, 1)
	require.NoError(t, err)
	// The live grant's money and obligation survive.
	assert.Equal(t, int64(50), rec.BonusBalance)
	assert.Equal(t, int64(1000), rec.BonusWageringRemaining)

	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, grants, 2)
	for _, g := range grants {
		if g.ID == live.ID {
			assert.Equal(t, model.GrantPending, g.Status)
		} else {
			assert.Equal(t, model.GrantExpired, g.Status)
		}
	}
}

func TestExpireDueGrants_NothingDue(t *testing.T) {
	ctx := context.Background()
	svc, wagering, store := newTestExpiry()

	_, _, _, err := wagering.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	require.NoError(t, svc.ExpireDueGrants(ctx))

	rec, err := store.Balances().Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), rec.BonusBalance)
}

func TestExpireDueGrants_ConversionAfterShedding(t *testing.T) {
	ctx := context.Background()
	svc, wagering, store := newTestExpiry()

	// Partially spent expired grant: some of its money is gone, the rest is
	// forfeited; unrelated sticky winnings convert once the obligation clears.
	_, _, _, err := wagering.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(-time.Minute))
	require.NoError(t, err)
	_, _, err = wagering.OnCashWin(ctx, 1, 40)
	require.NoError(t, err)

	require.NoError(t, svc.ExpireDueGrants(ctx))

	rec, err := store.Balances().Get(ctx, 1)
	require.NoError(t, err)
	// Grant's 100 forfeited; the 40 sticky win converts to real when the
	// bonus obligation is shed.
	assert.Equal(t, int64(40), rec.RealBalance)
	assert.Zero(t, rec.BonusBalance)
	assert.Zero(t, rec.BonusWageringRemaining)
}
