package service

import (
	"context"
	"fmt"
	"time"

	"casino-ledger/internal/ledger"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// SettlementOrchestrator runs the per-wager pipeline. Stages are either
// critical (failure ends the settlement) or best-effort (failure degrades to
// a neutral value and the pipeline continues). The stake deduction is the
// only point where money leaves the player; everything after it can at worst
// produce a partial settlement, never a corrupted ledger.
type SettlementOrchestrator struct {
	ledger       *ledger.Ledger
	wagering     *WageringManager
	allocator    *BonusAllocator
	validator    BetValidator
	jackpot      JackpotService
	loyalty      LoyaltyService
	revenue      RevenueService
	notifier     Notifier
	transactions repository.TransactionRepository
	stageTimeout time.Duration
	logger       zerolog.Logger
}

var _ SettlementService = (*SettlementOrchestrator)(nil)

func NewSettlementOrchestrator(
	ldg *ledger.Ledger,
	wagering *WageringManager,
	allocator *BonusAllocator,
	validator BetValidator,
	jackpot JackpotService,
	loyalty LoyaltyService,
	revenue RevenueService,
	notifier Notifier,
	transactions repository.TransactionRepository,
	stageTimeout time.Duration,
	logger zerolog.Logger,
) *SettlementOrchestrator {
	return &SettlementOrchestrator{
		ledger:       ldg,
		wagering:     wagering,
		allocator:    allocator,
		validator:    validator,
		jackpot:      jackpot,
		loyalty:      loyalty,
		revenue:      revenue,
		notifier:     notifier,
		transactions: transactions,
		stageTimeout: stageTimeout,
		logger:       logger,
	}
}

// PlaceWager settles one wager against a known game outcome. On rejection no
// money has moved and the error carries the reason. A partial settlement is
// reported through the result status, not the error: money has moved and the
// caller must see the committed state.
func (s *SettlementOrchestrator) PlaceWager(ctx context.Context, req *model.WagerRequest, outcome *model.GameOutcome) (*model.SettlementResult, error) {
	policy, err := model.ParseFundingPolicy(req.Policy)
	if err != nil {
		return nil, err
	}
	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	betID := model.NewID()
	result := &model.SettlementResult{
		BetID:          betID,
		WagerAmount:    req.WagerAmount,
		WinAmount:      outcome.WinAmount,
		VIPPointsAdded: decimal.Zero,
	}

	// Stage 1: validation (critical). Nothing has moved yet.
	if err := s.validator.ValidateBet(ctx, req); err != nil {
		result.Status = model.SettlementRejected
		result.Reason = err.Error()
		return result, err
	}

	// Stage 2: jackpot contribution (best-effort, zero on failure).
	jackpot := runBestEffort(ctx, s.logger, "jackpot_contribution", s.stageTimeout,
		&model.JackpotContribution{}, func(ctx context.Context) (*model.JackpotContribution, error) {
			return s.jackpot.Contribute(ctx, req.GameID, req.WagerAmount)
		})
	result.JackpotContribution = jackpot.Value.Total

	// Stage 3: stake deduction (critical). The only point that commits money
	// leaving the player.
	var breakdown *model.FundingBreakdown
	var betBefore, betAfter model.BalanceRecord
	_, err = s.ledger.ApplyDelta(ctx, req.PlayerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		betBefore = *rec
		b, err := s.allocator.Allocate(ctx, tx, rec, req.GameID, req.WagerAmount, policy)
		if err != nil {
			return err
		}
		convertIfCleared(rec)
		breakdown = b
		betAfter = *rec
		return nil
	})
	if err != nil {
		result.Status = model.SettlementRejected
		result.Reason = err.Error()
		return result, err
	}

	result.FundingType = breakdown.SourceType()
	result.RealDrawn = breakdown.FromReal
	result.BonusDrawn = breakdown.FromBonus

	// Stage 4: outcome settlement. Winnings split in the same ratio as the
	// stake was drawn; a failure here is a partial settlement because the
	// stake is already gone.
	var winBefore, winAfter model.BalanceRecord
	winCredited := false
	if outcome.WinAmount > 0 {
		realPortion, bonusPortion := splitWinnings(breakdown, outcome.WinAmount)
		_, err = s.ledger.ApplyDelta(ctx, req.PlayerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
			winBefore = *rec
			if bonusPortion > 0 {
				creditBonusWin(rec, bonusPortion)
			}
			if realPortion > 0 {
				creditCashWin(rec, realPortion)
			}
			rec.TotalWon += outcome.WinAmount
			convertIfCleared(rec)
			winAfter = *rec
			return nil
		})
		if err != nil {
			s.logger.Error().Err(err).Str("bet_id", betID).Int64("player_id", req.PlayerID).
				Msg("win credit failed after stake deduction")
			result.Status = model.SettlementPartial
			result.Reason = fmt.Sprintf("%v: win credit failed", model.ErrPartialSettlement)
		} else {
			winCredited = true
			result.RealWinCredit = realPortion
			result.BonusWinCredit = bonusPortion
		}
	}

	// Stage 5: loyalty accrual (best-effort).
	points := runBestEffort(ctx, s.logger, "loyalty_points", s.stageTimeout,
		decimal.Zero, func(ctx context.Context) (decimal.Decimal, error) {
			return s.loyalty.AwardPoints(ctx, req.PlayerID, req.WagerAmount)
		})
	result.VIPPointsAdded = points.Value

	// Stage 6: wagering progress for the full wager (best-effort, attempted
	// even on a loss).
	wagering := runBestEffort(ctx, s.logger, "wagering_progress", s.stageTimeout,
		(*model.BalanceRecord)(nil), func(ctx context.Context) (*model.BalanceRecord, error) {
			return s.wagering.OnWager(ctx, req.PlayerID, req.WagerAmount)
		})

	// Stage 7: revenue logging (best-effort).
	ggr := req.WagerAmount - outcome.WinAmount
	result.GGRAmount = ggr
	runBestEffort(ctx, s.logger, "revenue_log", s.stageTimeout,
		struct{}{}, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.revenue.LogContribution(ctx, &model.RevenueEntry{
				BetID:       betID,
				PlayerID:    req.PlayerID,
				GameID:      req.GameID,
				AffiliateID: req.AffiliateID,
				WagerAmount: req.WagerAmount,
				WinAmount:   outcome.WinAmount,
				GGRAmount:   ggr,
			})
		})

	// Stage 8: audit append. Failure does not reverse the committed
	// mutations; it is surfaced as a reconciliation gap.
	if err := s.appendAuditRecords(ctx, req, outcome, result, betID, &betBefore, &betAfter, &winBefore, &winAfter, winCredited); err != nil {
		s.logger.Error().Err(err).Str("bet_id", betID).Int64("player_id", req.PlayerID).
			Msg("audit append failed, reconciliation required")
		result.Status = model.SettlementPartial
		if result.Reason == "" {
			result.Reason = fmt.Sprintf("%v: audit append failed", model.ErrPartialSettlement)
		}
	}

	if result.Status == "" {
		result.Status = model.SettlementSettled
	}

	final := latestBalance(wagering.Value, winCredited, &winAfter, &betAfter)
	result.RealBalance = final.RealBalance
	result.BonusBalance = final.BonusBalance

	// Stage 9: realtime notifications, fire-and-forget. The balance change
	// goes out first on the low-latency channel.
	s.dispatchNotifications(ctx, req, result, final)

	s.logger.Info().Str("bet_id", betID).Int64("player_id", req.PlayerID).
		Int64("wager", req.WagerAmount).Int64("win", outcome.WinAmount).
		Str("funding", string(result.FundingType)).Str("status", string(result.Status)).
		Msg("wager settled")

	return result, nil
}

// splitWinnings distributes a win across the pools that funded the stake,
// in the stake draw ratio. The real portion rounds down; the remainder goes
// to bonus so the portions always sum exactly to the win.
func splitWinnings(b *model.FundingBreakdown, win int64) (realPortion, bonusPortion int64) {
	switch b.SourceType() {
	case model.SourceReal:
		return win, 0
	case model.SourceBonus:
		return 0, win
	}
	realPortion = win * b.FromReal / b.Total
	return realPortion, win - realPortion
}

func (s *SettlementOrchestrator) appendAuditRecords(ctx context.Context, req *model.WagerRequest, outcome *model.GameOutcome, result *model.SettlementResult, betID string, betBefore, betAfter, winBefore, winAfter *model.BalanceRecord, winCredited bool) error {
	betRecord := &model.TransactionRecord{
		ID:                  betID,
		PlayerID:            req.PlayerID,
		Type:                model.TypeBet,
		Status:              model.StatusCompleted,
		WagerAmount:         req.WagerAmount,
		Amount:              -req.WagerAmount,
		RealBalanceBefore:   betBefore.RealBalance,
		RealBalanceAfter:    betAfter.RealBalance,
		BonusBalanceBefore:  betBefore.BonusBalance,
		BonusBalanceAfter:   betAfter.BonusBalance,
		GGRContribution:     result.GGRAmount,
		JackpotContribution: result.JackpotContribution,
		VIPPointsAdded:      result.VIPPointsAdded,
		GameID:              req.GameID,
		SessionID:           req.SessionID,
		AffiliateID:         req.AffiliateID,
	}
	if err := s.transactions.Insert(ctx, betRecord); err != nil {
		return fmt.Errorf("append bet record: %w", err)
	}

	if !winCredited {
		return nil
	}

	winRecord := &model.TransactionRecord{
		ID:                 model.NewID(),
		PlayerID:           req.PlayerID,
		Type:               model.TypeWin,
		Status:             model.StatusCompleted,
		WagerAmount:        req.WagerAmount,
		Amount:             outcome.WinAmount,
		RealBalanceBefore:  winBefore.RealBalance,
		RealBalanceAfter:   winAfter.RealBalance,
		BonusBalanceBefore: winBefore.BonusBalance,
		BonusBalanceAfter:  winAfter.BonusBalance,
		GameID:             req.GameID,
		SessionID:          req.SessionID,
		AffiliateID:        req.AffiliateID,
		RelatedID:          betID,
	}
	if err := s.transactions.Insert(ctx, winRecord); err != nil {
		return fmt.Errorf("append win record: %w", err)
	}
	return nil
}

// latestBalance picks the freshest committed snapshot for the response.
func latestBalance(fromWagering *model.BalanceRecord, winCredited bool, winAfter, betAfter *model.BalanceRecord) *model.BalanceRecord {
	if fromWagering != nil {
		return fromWagering
	}
	if winCredited {
		return winAfter
	}
	return betAfter
}

func (s *SettlementOrchestrator) dispatchNotifications(ctx context.Context, req *model.WagerRequest, result *model.SettlementResult, balance *model.BalanceRecord) {
	delta := result.WinAmount - result.WagerAmount
	wageringDelta := req.WagerAmount
	jackpot := result.JackpotContribution

	balanceNote := &model.Notification{
		Type:         "balance_changed",
		PlayerID:     req.PlayerID,
		RealBalance:  balance.RealBalance,
		BonusBalance: balance.BonusBalance,
		BalanceDelta: &delta,
		RelatedID:    result.BetID,
	}
	eventNote := &model.Notification{
		Type:                "bet_settled",
		PlayerID:            req.PlayerID,
		RealBalance:         balance.RealBalance,
		BonusBalance:        balance.BonusBalance,
		BalanceDelta:        &delta,
		WageringDelta:       &wageringDelta,
		JackpotContribution: &jackpot,
		RelatedID:           result.BetID,
	}
	if !result.VIPPointsAdded.IsZero() {
		eventNote.VIPPointsDelta = result.VIPPointsAdded.String()
	}

	notifyCtx := context.WithoutCancel(ctx)
	timeout := s.stageTimeout
	go func() {
		ctx, cancel := context.WithTimeout(notifyCtx, timeout)
		defer cancel()
		if err := s.notifier.PublishBalance(ctx, balanceNote); err != nil {
			s.logger.Warn().Err(err).Int64("player_id", req.PlayerID).Msg("balance notification failed")
		}
		if err := s.notifier.Publish(ctx, eventNote); err != nil {
			s.logger.Warn().Err(err).Int64("player_id", req.PlayerID).Msg("settlement notification failed")
		}
	}()
}
