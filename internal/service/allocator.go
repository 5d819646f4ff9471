package service

import (
	"context"
	"fmt"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// BonusAllocator decides how a stake is funded: real balance first, then
// bonus grants consumed oldest-first. It runs inside the caller's ledger
// transaction so either the whole draw commits or none of it does.
type BonusAllocator struct {
	grants repository.GrantRepository
	logger zerolog.Logger
}

func NewBonusAllocator(grants repository.GrantRepository, logger zerolog.Logger) *BonusAllocator {
	return &BonusAllocator{grants: grants, logger: logger}
}

// Allocate draws wagerAmount out of the player's pools according to policy
// and mutates rec and the grant rows accordingly. Grants whose game
// restrictions exclude gameID are skipped. A shortfall fails the whole
// operation with ErrInsufficientFunds; the surrounding transaction rolls
// back any grant rows already touched.
func (a *BonusAllocator) Allocate(ctx context.Context, tx pgx.Tx, rec *model.BalanceRecord, gameID string, wagerAmount int64, policy model.FundingPolicy) (*model.FundingBreakdown, error) {
	if wagerAmount <= 0 {
		return nil, fmt.Errorf("%w: wager must be positive", model.ErrInvalidAmount)
	}

	breakdown := &model.FundingBreakdown{Total: wagerAmount}
	remaining := wagerAmount

	if policy == model.PolicyAuto || policy == model.PolicyReal {
		fromReal := min64(rec.RealBalance, remaining)
		if policy == model.PolicyReal && fromReal < remaining {
			return nil, fmt.Errorf("%w: real balance %d, wager %d", model.ErrInsufficientFunds, rec.RealBalance, wagerAmount)
		}
		if fromReal > 0 {
			rec.RealBalance -= fromReal
			remaining -= fromReal
			breakdown.FromReal = fromReal
			breakdown.Draws = append(breakdown.Draws, model.SourceDraw{
				Source: model.RealSource(),
				Amount: fromReal,
			})
		}
	}

	if remaining > 0 && policy != model.PolicyReal {
		drawn, draws, err := a.drawFromGrants(ctx, tx, rec, gameID, remaining)
		if err != nil {
			return nil, err
		}
		breakdown.FromBonus = drawn
		breakdown.Draws = append(breakdown.Draws, draws...)
		remaining -= drawn
	}

	if remaining > 0 {
		return nil, fmt.Errorf("%w: short %d of %d", model.ErrInsufficientFunds, remaining, wagerAmount)
	}
	return breakdown, nil
}

// drawFromGrants consumes pending grants in creation order until shortfall is
// covered or the grants run out.
func (a *BonusAllocator) drawFromGrants(ctx context.Context, tx pgx.Tx, rec *model.BalanceRecord, gameID string, shortfall int64) (int64, []model.SourceDraw, error) {
	grants, err := a.grants.GetPendingForUpdate(ctx, rec.PlayerID, tx)
	if err != nil {
		return 0, nil, fmt.Errorf("lock grants: %w", err)
	}

	var drawn int64
	var draws []model.SourceDraw

	for _, g := range grants {
		if shortfall == 0 {
			break
		}
		if !g.AllowsGame(gameID) {
			continue
		}

		draw := min64(g.RemainingAmount, shortfall)
		if draw == 0 {
			continue
		}

		g.RemainingAmount -= draw
		g.WageredAmount += draw
		rec.BonusBalance -= draw
		shortfall -= draw
		drawn += draw
		draws = append(draws, model.SourceDraw{
			Source: model.BonusSource(g.ID),
			Amount: draw,
		})

		if g.WageredAmount >= g.WageringGoal {
			// Goal met: the grant completes and any residual bonus money
			// unlocks into the real balance.
			g.Status = model.GrantCompleted
			if residual := g.RemainingAmount; residual > 0 {
				rec.BonusBalance -= residual
				rec.RealBalance += residual
				g.RemainingAmount = 0
			}
			a.logger.Info().Str("grant_id", g.ID).Int64("player_id", rec.PlayerID).
				Msg("bonus grant completed")
		}

		if g.RemainingAmount == 0 {
			// Spent grants are removed; the audit trail lives in the
			// transaction log, not the working grant rows.
			if err := a.grants.Delete(ctx, g.ID, tx); err != nil {
				return 0, nil, err
			}
			continue
		}
		if err := a.grants.Update(ctx, g, tx); err != nil {
			return 0, nil, err
		}
	}

	return drawn, draws, nil
}
