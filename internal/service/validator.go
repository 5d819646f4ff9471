package service

import (
	"context"
	"fmt"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"
)

// LimitsValidator enforces stake bounds and the daily loss cap. It is the
// first settlement stage and runs before any money moves, so a failure here
// is always a clean rejection.
type LimitsValidator struct {
	transactions repository.TransactionRepository
	limits       config.LimitsConfig
	now          func() time.Time
}

var _ BetValidator = (*LimitsValidator)(nil)

func NewLimitsValidator(transactions repository.TransactionRepository, limits config.LimitsConfig) *LimitsValidator {
	return &LimitsValidator{
		transactions: transactions,
		limits:       limits,
		now:          time.Now,
	}
}

func (v *LimitsValidator) ValidateBet(ctx context.Context, req *model.WagerRequest) error {
	if req.PlayerID <= 0 {
		return fmt.Errorf("%w: missing player id", model.ErrValidationFailed)
	}
	if req.GameID == "" {
		return fmt.Errorf("%w: missing game id", model.ErrValidationFailed)
	}
	if req.WagerAmount < v.limits.MinStake {
		return fmt.Errorf("%w: stake %d below minimum %d", model.ErrValidationFailed, req.WagerAmount, v.limits.MinStake)
	}
	if req.WagerAmount > v.limits.MaxStake {
		return fmt.Errorf("%w: stake %d above maximum %d", model.ErrValidationFailed, req.WagerAmount, v.limits.MaxStake)
	}

	if v.limits.DailyLossCap > 0 {
		midnight := v.now().UTC().Truncate(24 * time.Hour)
		net, err := v.transactions.SumNetAmountSince(ctx, req.PlayerID, midnight)
		if err != nil {
			return fmt.Errorf("%w: loss limit check unavailable: %v", model.ErrValidationFailed, err)
		}
		// net is the signed sum of today's movements; a negative net is money
		// lost. Reject when this wager could push losses past the cap.
		lossSoFar := -net
		if lossSoFar < 0 {
			lossSoFar = 0
		}
		if lossSoFar+req.WagerAmount > v.limits.DailyLossCap {
			return fmt.Errorf("%w: daily loss limit reached", model.ErrValidationFailed)
		}
	}
	return nil
}
