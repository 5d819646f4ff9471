package service

import (
	"context"
	"fmt"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// WageringManager translates monetary events into wagering-progress effects.
// Every operation is one ledger.ApplyDelta call, so each is a single atomic
// step: the mutation, any conversion or forfeiture it triggers, and its
// transaction record commit together.
type WageringManager struct {
	ledger       *ledger.Ledger
	grants       repository.GrantRepository
	transactions repository.TransactionRepository
	cfg          config.WageringConfig
	logger       zerolog.Logger
}

func NewWageringManager(
	ldg *ledger.Ledger,
	grants repository.GrantRepository,
	transactions repository.TransactionRepository,
	cfg config.WageringConfig,
	logger zerolog.Logger,
) *WageringManager {
	return &WageringManager{
		ledger:       ldg,
		grants:       grants,
		transactions: transactions,
		cfg:          cfg,
		logger:       logger,
	}
}

// burnWagering reduces both wagering requirements by the wager amount,
// independently, floored at zero.
func burnWagering(rec *model.BalanceRecord, amount int64) {
	rec.DepositWageringRemaining -= min64(rec.DepositWageringRemaining, amount)
	rec.BonusWageringRemaining -= min64(rec.BonusWageringRemaining, amount)
}

// convertIfCleared moves the whole bonus balance into the real balance once
// the bonus wagering requirement is fully burned down. Must run inside the
// same mutation that clears the requirement.
func convertIfCleared(rec *model.BalanceRecord) (converted int64) {
	if rec.BonusWageringRemaining == 0 && rec.BonusBalance > 0 {
		converted = rec.BonusBalance
		rec.RealBalance += converted
		rec.BonusBalance = 0
	}
	return converted
}

// creditCashWin applies the sticky-bonus rule: while any bonus obligation is
// outstanding, cash wins land in the bonus balance; otherwise in real.
// This is a deliberately different attribution policy from the FIFO stake
// funding in the allocator.
func creditCashWin(rec *model.BalanceRecord, amount int64) model.BalanceSourceType {
	if rec.BonusWageringRemaining > 0 || rec.BonusBalance > 0 {
		rec.BonusBalance += amount
		return model.SourceBonus
	}
	rec.RealBalance += amount
	return model.SourceReal
}

// creditBonusWin credits a win portion straight to the bonus balance.
func creditBonusWin(rec *model.BalanceRecord, amount int64) {
	rec.BonusBalance += amount
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// OnDeposit credits the real balance and extends the deposit wagering
// requirement.
func (m *WageringManager) OnDeposit(ctx context.Context, playerID, amount int64) (*model.BalanceRecord, *model.TransactionRecord, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: deposit must be positive", model.ErrInvalidAmount)
	}

	var record *model.TransactionRecord
	rec, err := m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		before := *rec

		rec.RealBalance += amount
		rec.DepositWageringRemaining += amount * m.cfg.DepositMultiplier
		rec.TotalDeposited += amount

		record = newTransactionRecord(model.TypeDeposit, &before, rec, amount, 0)
		return m.transactions.Insert(ctx, record, tx)
	})
	if err != nil {
		return nil, nil, err
	}

	m.logger.Info().Int64("player_id", playerID).Int64("amount", amount).
		Int64("real_balance", rec.RealBalance).Msg("deposit credited")
	return rec, record, nil
}

// OnBonusGrant creates a bonus grant, credits the bonus balance and extends
// the bonus wagering requirement, all in one atomic step.
func (m *WageringManager) OnBonusGrant(ctx context.Context, playerID, amount int64, freeSpins int, allowedGames []string, expiresAt time.Time) (*model.BalanceRecord, *model.BonusGrant, *model.TransactionRecord, error) {
	if amount <= 0 {
		return nil, nil, nil, fmt.Errorf("%w: bonus must be positive", model.ErrInvalidAmount)
	}

	grant := &model.BonusGrant{
		ID:              model.NewID(),
		PlayerID:        playerID,
		RemainingAmount: amount,
		WageringGoal:    amount * m.cfg.BonusMultiplier,
		Status:          model.GrantPending,
		AllowedGames:    allowedGames,
		ExpiresAt:       expiresAt,
	}

	var record *model.TransactionRecord
	rec, err := m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		before := *rec

		rec.BonusBalance += amount
		rec.BonusWageringRemaining += amount * m.cfg.BonusMultiplier
		rec.TotalBonusGranted += amount
		rec.FreeSpinsRemaining += freeSpins
		convertIfCleared(rec)

		if err := m.grants.Insert(ctx, grant, tx); err != nil {
			return err
		}

		record = newTransactionRecord(model.TypeBonus, &before, rec, amount, 0)
		record.RelatedID = grant.ID
		return m.transactions.Insert(ctx, record, tx)
	})
	if err != nil {
		return nil, nil, nil, err
	}

	m.logger.Info().Int64("player_id", playerID).Int64("amount", amount).
		Str("grant_id", grant.ID).Msg("bonus granted")
	return rec, grant, record, nil
}

// OnWager burns down both wagering requirements for the full wager amount
// and fires the conversion when the bonus requirement clears.
func (m *WageringManager) OnWager(ctx context.Context, playerID, amount int64) (*model.BalanceRecord, error) {
	return m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		burnWagering(rec, amount)
		rec.TotalWagered += amount
		if converted := convertIfCleared(rec); converted > 0 {
			m.logger.Info().Int64("player_id", playerID).Int64("converted", converted).
				Msg("bonus wagering cleared, bonus converted to real")
		}
		return nil
	})
}

// OnFreeSpinWin credits a free-spin payout to the bonus balance with its own
// wagering requirement.
func (m *WageringManager) OnFreeSpinWin(ctx context.Context, playerID, amount int64) (*model.BalanceRecord, *model.TransactionRecord, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: free spin win must be positive", model.ErrInvalidAmount)
	}

	var record *model.TransactionRecord
	rec, err := m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		before := *rec

		rec.BonusBalance += amount
		rec.BonusWageringRemaining += amount * m.cfg.FreeSpinMultiplier
		rec.TotalFreeSpinWins += amount
		if rec.FreeSpinsRemaining > 0 {
			rec.FreeSpinsRemaining--
		}
		convertIfCleared(rec)

		record = newTransactionRecord(model.TypeFreeSpinWin, &before, rec, amount, 0)
		return m.transactions.Insert(ctx, record, tx)
	})
	if err != nil {
		return nil, nil, err
	}
	return rec, record, nil
}

// OnCashWin credits a standalone cash win under the sticky-bonus rule.
func (m *WageringManager) OnCashWin(ctx context.Context, playerID, amount int64) (*model.BalanceRecord, *model.TransactionRecord, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: win must be positive", model.ErrInvalidAmount)
	}

	var record *model.TransactionRecord
	rec, err := m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		before := *rec

		creditCashWin(rec, amount)
		rec.TotalWon += amount
		convertIfCleared(rec)

		record = newTransactionRecord(model.TypeWin, &before, rec, amount, 0)
		return m.transactions.Insert(ctx, record, tx)
	})
	if err != nil {
		return nil, nil, err
	}
	return rec, record, nil
}

// OnWithdrawalRequest debits the real balance and forfeits any outstanding
// bonus balance and bonus wagering obligation as part of the same mutation.
// Pending grants are cancelled so they cannot fund later bets.
func (m *WageringManager) OnWithdrawalRequest(ctx context.Context, playerID, amount int64) (*model.BalanceRecord, *model.TransactionRecord, error) {
	if amount <= 0 {
		return nil, nil, fmt.Errorf("%w: withdrawal must be positive", model.ErrInvalidAmount)
	}

	var record *model.TransactionRecord
	rec, err := m.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		if rec.DepositWageringRemaining > 0 {
			return fmt.Errorf("%w: %d still to wager", model.ErrWageringIncomplete, rec.DepositWageringRemaining)
		}
		if rec.RealBalance < amount {
			return fmt.Errorf("%w: balance %d, requested %d", model.ErrInsufficientFunds, rec.RealBalance, amount)
		}

		before := *rec

		rec.RealBalance -= amount
		rec.TotalWithdrawn += amount

		forfeited := rec.BonusBalance
		rec.BonusBalance = 0
		rec.BonusWageringRemaining = 0

		if forfeited > 0 || before.BonusWageringRemaining > 0 {
			pending, err := m.grants.GetPendingForUpdate(ctx, playerID, tx)
			if err != nil {
				return err
			}
			for _, g := range pending {
				g.Status = model.GrantCancelled
				g.RemainingAmount = 0
				if err := m.grants.Update(ctx, g, tx); err != nil {
					return err
				}
			}
		}

		record = newTransactionRecord(model.TypeWithdrawal, &before, rec, -(amount + forfeited), 0)
		if err := m.transactions.Insert(ctx, record, tx); err != nil {
			return err
		}

		if forfeited > 0 {
			m.logger.Info().Int64("player_id", playerID).Int64("forfeited_bonus", forfeited).
				Msg("bonus forfeited on withdrawal")
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return rec, record, nil
}

// newTransactionRecord builds an audit entry with before/after snapshots of
// both pools. amount is the signed net effect on the total balance.
func newTransactionRecord(txType model.TransactionType, before, after *model.BalanceRecord, amount, wagerAmount int64) *model.TransactionRecord {
	return &model.TransactionRecord{
		ID:                 model.NewID(),
		PlayerID:           after.PlayerID,
		Type:               txType,
		Status:             model.StatusCompleted,
		WagerAmount:        wagerAmount,
		Amount:             amount,
		RealBalanceBefore:  before.RealBalance,
		RealBalanceAfter:   after.RealBalance,
		BonusBalanceBefore: before.BonusBalance,
		BonusBalanceAfter:  after.BonusBalance,
	}
}
