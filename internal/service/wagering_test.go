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

func testWageringConfig() config.WageringConfig {
	return config.WageringConfig{
		DepositMultiplier:  1,
		BonusMultiplier:    20,
		FreeSpinMultiplier: 30,
		DefaultGrantTTL:    720 * time.Hour,
	}
}

func newTestWagering() (*WageringManager, *memory.Store) {
	store := memory.NewStore()
	ldg := ledger.New(store, store.Balances(), zerolog.Nop())
	m := NewWageringManager(ldg, store.Grants(), store.Transactions(), testWageringConfig(), zerolog.Nop())
	return m, store
}

func TestOnDeposit_CreditsAndExtendsRequirement(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	rec, record, err := m.OnDeposit(ctx, 1, 1000)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), rec.RealBalance)
	assert.Equal(t, int64(1000), rec.DepositWageringRemaining)
	assert.Equal(t, int64(1000), rec.TotalDeposited)

	assert.Equal(t, model.TypeDeposit, record.Type)
	assert.Equal(t, int64(1000), record.Amount)
	assert.Equal(t, int64(0), record.RealBalanceBefore)
	assert.Equal(t, int64(1000), record.RealBalanceAfter)
}

func TestOnDeposit_RejectsNonPositiveAmount(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, err := m.OnDeposit(ctx, 1, 0)
	require.ErrorIs(t, err, model.ErrInvalidAmount)

	_, _, err = m.OnDeposit(ctx, 1, -50)
	require.ErrorIs(t, err, model.ErrInvalidAmount)
}

func TestOnBonusGrant_CreatesGrantAndCredits(t *testing.T) {
	ctx := context.Background()
	m, store := newTestWagering()

	expires := time.Now().Add(24 * time.Hour)
	rec, grant, record, err := m.OnBonusGrant(ctx, 1, 100, 5, []string{"slots-1"}, expires)
	require.NoError(t, err)

	assert.Equal(t, int64(100), rec.BonusBalance)
	assert.Equal(t, int64(2000), rec.BonusWageringRemaining)
	assert.Equal(t, 5, rec.FreeSpinsRemaining)

	assert.Equal(t, model.GrantPending, grant.Status)
	assert.Equal(t, int64(100), grant.RemainingAmount)
	assert.Equal(t, int64(2000), grant.WageringGoal)
	assert.Equal(t, []string{"slots-1"}, grant.AllowedGames)

	assert.Equal(t, model.TypeBonus, record.Type)
	assert.Equal(t, grant.ID, record.RelatedID)

	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, grants, 1)
}

func TestOnWager_BurnsBothRequirements(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, err := m.OnDeposit(ctx, 1, 1000)
	require.NoError(t, err)
	_, _, _, err = m.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	rec, err := m.OnWager(ctx, 1, 300)
	require.NoError(t, err)

	// Both requirements burn by the full wager, independently.
	assert.Equal(t, int64(700), rec.DepositWageringRemaining)
	assert.Equal(t, int64(1700), rec.BonusWageringRemaining)
	assert.Equal(t, int64(300), rec.TotalWagered)
}

func TestOnWager_ConversionFiresInSameMutation(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, _, err := m.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	// Burn the whole bonus requirement in one wager; the bonus balance must
	// convert to real within the same mutation.
	rec, err := m.OnWager(ctx, 1, 2000)
	require.NoError(t, err)

	assert.Zero(t, rec.BonusWageringRemaining)
	assert.Zero(t, rec.BonusBalance)
	assert.Equal(t, int64(100), rec.RealBalance)
}

func TestOnFreeSpinWin_CreditsBonusWithOwnRequirement(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, _, err := m.OnBonusGrant(ctx, 1, 100, 3, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	rec, record, err := m.OnFreeSpinWin(ctx, 1, 80)
	require.NoError(t, err)

	assert.Equal(t, int64(180), rec.BonusBalance)
	// 100*20 from the grant plus 80*30 from the free spin win.
	assert.Equal(t, int64(4400), rec.BonusWageringRemaining)
	assert.Equal(t, 2, rec.FreeSpinsRemaining)
	assert.Equal(t, int64(80), rec.TotalFreeSpinWins)
	assert.Equal(t, model.TypeFreeSpinWin, record.Type)
}

func TestOnCashWin_StickyBonusRule(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	// No bonus obligation: cash wins land in real.
	rec, _, err := m.OnCashWin(ctx, 1, 500)
	require.NoError(t, err)
	assert.Equal(t, int64(500), rec.RealBalance)
	assert.Zero(t, rec.BonusBalance)

	// With a bonus obligation outstanding, wins stick to the bonus pool.
	_, _, _, err = m.OnBonusGrant(ctx, 1, 100, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	rec, _, err = m.OnCashWin(ctx, 1, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(500), rec.RealBalance)
	assert.Equal(t, int64(300), rec.BonusBalance)
}

func TestOnWithdrawalRequest_BlockedByDepositWagering(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, err := m.OnDeposit(ctx, 1, 1000)
	require.NoError(t, err)

	_, _, err = m.OnWithdrawalRequest(ctx, 1, 500)
	require.ErrorIs(t, err, model.ErrWageringIncomplete)
}

func TestOnWithdrawalRequest_InsufficientFunds(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestWagering()

	_, _, err := m.OnDeposit(ctx, 1, 1000)
	require.NoError(t, err)
	_, err = m.OnWager(ctx, 1, 1000)
	require.NoError(t, err)

	_, _, err = m.OnWithdrawalRequest(ctx, 1, 5000)
	require.ErrorIs(t, err, model.ErrInsufficientFunds)
}

func TestOnWithdrawalRequest_ForfeitsBonusAndCancelsGrants(t *testing.T) {
	ctx := context.Background()
	m, store := newTestWagering()

	_, _, err := m.OnDeposit(ctx, 1, 1000)
	require.NoError(t, err)
	_, err = m.OnWager(ctx, 1, 1000)
	require.NoError(t, err)
	_, grant, _, err := m.OnBonusGrant(ctx, 1, 200, 0, nil, time.Now().Add(time.Hour))
	require.NoError(t, err)

	rec, record, err := m.OnWithdrawalRequest(ctx, 1, 500)
	require.NoError(t, err)

	assert.Equal(t, int64(500), rec.RealBalance)
	assert.Zero(t, rec.BonusBalance)
	assert.Zero(t, rec.BonusWageringRemaining)
	assert.Equal(t, int64(500), rec.TotalWithdrawn)

	// Withdrawal plus forfeited bonus, as one signed net amount.
	assert.Equal(t, int64(-700), record.Amount)

	grants, err := store.Grants().ListByPlayer(ctx, 1)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	assert.Equal(t, grant.ID, grants[0].ID)
	assert.Equal(t, model.GrantCancelled, grants[0].Status)
	assert.Zero(t, grants[0].RemainingAmount)
}
