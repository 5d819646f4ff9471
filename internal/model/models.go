package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceRecord is the per-player ledger row. All monetary fields are minor
// currency units (cents). Owned exclusively by the ledger store; every
// mutation goes through ApplyDelta.
type BalanceRecord struct {
	PlayerID                 int64     `json:"player_id"`
	RealBalance              int64     `json:"real_balance"`
	BonusBalance             int64     `json:"bonus_balance"`
	DepositWageringRemaining int64     `json:"deposit_wagering_remaining"`
	BonusWageringRemaining   int64     `json:"bonus_wagering_remaining"`
	FreeSpinsRemaining       int       `json:"free_spins_remaining"`
	TotalDeposited           int64     `json:"total_deposited"`
	TotalWithdrawn           int64     `json:"total_withdrawn"`
	TotalWagered             int64     `json:"total_wagered"`
	TotalWon                 int64     `json:"total_won"`
	TotalBonusGranted        int64     `json:"total_bonus_granted"`
	TotalFreeSpinWins        int64     `json:"total_free_spin_wins"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// TotalBalance is the player-visible sum of both pools.
func (r *BalanceRecord) TotalBalance() int64 {
	return r.RealBalance + r.BonusBalance
}

// BonusGrant is one promotional award. Grants are consumed oldest-first when
// a bet must be funded from bonus money.
type BonusGrant struct {
	ID              string      `json:"id"`
	PlayerID        int64       `json:"player_id"`
	RemainingAmount int64       `json:"remaining_amount"`
	WageredAmount   int64       `json:"wagered_amount"`
	WageringGoal    int64       `json:"wagering_goal"`
	Status          GrantStatus `json:"status"`
	// AllowedGames restricts which games the grant may fund; empty means all.
	AllowedGames []string  `json:"allowed_games,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (g *BonusGrant) AllowsGame(gameID string) bool {
	if len(g.AllowedGames) == 0 {
		return true
	}
	for _, id := range g.AllowedGames {
		if id == gameID {
			return true
		}
	}
	return false
}

// TransactionRecord is one immutable entry in the audit log. Amount is the
// signed net effect on the player's total balance; the before/after snapshots
// cover both pools so any sequence of records reconciles against the balance
// row.
type TransactionRecord struct {
	ID                  string            `json:"id"`
	PlayerID            int64             `json:"player_id"`
	Type                TransactionType   `json:"type"`
	Status              TransactionStatus `json:"status"`
	WagerAmount         int64             `json:"wager_amount,omitempty"`
	Amount              int64             `json:"amount"`
	RealBalanceBefore   int64             `json:"real_balance_before"`
	RealBalanceAfter    int64             `json:"real_balance_after"`
	BonusBalanceBefore  int64             `json:"bonus_balance_before"`
	BonusBalanceAfter   int64             `json:"bonus_balance_after"`
	GGRContribution     int64             `json:"ggr_contribution,omitempty"`
	JackpotContribution int64             `json:"jackpot_contribution,omitempty"`
	VIPPointsAdded      decimal.Decimal   `json:"vip_points_added"`
	GameID              string            `json:"game_id,omitempty"`
	SessionID           string            `json:"session_id,omitempty"`
	AffiliateID         string            `json:"affiliate_id,omitempty"`
	RelatedID           string            `json:"related_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
}

// SourceDraw records how much of a stake one pool contributed.
type SourceDraw struct {
	Source BalanceSource `json:"source"`
	Amount int64         `json:"amount"`
}

// FundingBreakdown is the allocator's output: where the stake came from.
// The draw ratio drives the proportional win distribution later.
type FundingBreakdown struct {
	Total     int64        `json:"total"`
	FromReal  int64        `json:"from_real"`
	FromBonus int64        `json:"from_bonus"`
	Draws     []SourceDraw `json:"draws"`
}

func (f *FundingBreakdown) SourceType() BalanceSourceType {
	switch {
	case f.FromBonus == 0:
		return SourceReal
	case f.FromReal == 0:
		return SourceBonus
	default:
		return SourceMixed
	}
}

// WagerRequest is the orchestrator's inbound entry point.
type WagerRequest struct {
	PlayerID    int64  `json:"player_id"`
	GameID      string `json:"game_id" binding:"required"`
	WagerAmount int64  `json:"wager_amount" binding:"required,gt=0"`
	Policy      string `json:"policy,omitempty" binding:"omitempty,oneof=auto real bonus"`
	OperatorID  string `json:"operator_id,omitempty"`
	SessionID   string `json:"session_id,omitempty"`
	AffiliateID string `json:"affiliate_id,omitempty"`
}

// GameOutcome is supplied by the external game-outcome engine.
type GameOutcome struct {
	WinAmount  int64          `json:"win_amount" binding:"gte=0"`
	GameData   map[string]any `json:"game_data,omitempty"`
	JackpotWin bool           `json:"jackpot_win,omitempty"`
}

// BetRequest is the HTTP body for placing a wager with a known outcome.
type BetRequest struct {
	Wager   WagerRequest `json:"wager" binding:"required"`
	Outcome GameOutcome  `json:"outcome" binding:"required"`
}

// SettlementResult is returned for every processed wager.
type SettlementResult struct {
	BetID               string            `json:"bet_id"`
	Status              SettlementStatus  `json:"status"`
	Reason              string            `json:"reason,omitempty"`
	WagerAmount         int64             `json:"wager_amount"`
	WinAmount           int64             `json:"win_amount"`
	FundingType         BalanceSourceType `json:"funding_type,omitempty"`
	RealDrawn           int64             `json:"real_drawn"`
	BonusDrawn          int64             `json:"bonus_drawn"`
	RealWinCredit       int64             `json:"real_win_credit"`
	BonusWinCredit      int64             `json:"bonus_win_credit"`
	JackpotContribution int64             `json:"jackpot_contribution"`
	VIPPointsAdded      decimal.Decimal   `json:"vip_points_added"`
	GGRAmount           int64             `json:"ggr_amount"`
	RealBalance         int64             `json:"real_balance"`
	BonusBalance        int64             `json:"bonus_balance"`
}

type DepositRequest struct {
	PlayerID int64 `json:"player_id"`
	Amount   int64 `json:"amount" binding:"required,gt=0"`
}

type WithdrawalRequest struct {
	PlayerID int64 `json:"player_id"`
	Amount   int64 `json:"amount" binding:"required,gt=0"`
}

type BonusGrantRequest struct {
	PlayerID     int64    `json:"player_id"`
	Amount       int64    `json:"amount" binding:"required,gt=0"`
	FreeSpins    int      `json:"free_spins,omitempty" binding:"omitempty,gte=0"`
	AllowedGames []string `json:"allowed_games,omitempty"`
	ExpiresInH   int      `json:"expires_in_hours,omitempty" binding:"omitempty,gt=0"`
}

// JackpotContribution is the per-pool outcome of the jackpot stage.
type JackpotContribution struct {
	PerPool map[string]int64 `json:"per_pool"`
	Total   int64            `json:"total"`
}

type FreeSpinWinRequest struct {
	PlayerID int64  `json:"player_id"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	GameID   string `json:"game_id,omitempty"`
}

type WalletResponse struct {
	Balance     *BalanceRecord     `json:"balance"`
	Transaction *TransactionRecord `json:"transaction,omitempty"`
}

type TransactionListResponse struct {
	Transactions []*TransactionRecord `json:"transactions"`
	Total        int                  `json:"total"`
	Limit        int                  `json:"limit"`
	Offset       int                  `json:"offset"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"insufficient funds"`
	Code    string `json:"code,omitempty" example:"INSUFFICIENT_FUNDS"`
	Details string `json:"details,omitempty"`
}

// RevenueEntry is one row of the gross-gaming-revenue contribution log.
type RevenueEntry struct {
	ID          int64     `json:"id"`
	BetID       string    `json:"bet_id"`
	PlayerID    int64     `json:"player_id"`
	GameID      string    `json:"game_id,omitempty"`
	AffiliateID string    `json:"affiliate_id,omitempty"`
	WagerAmount int64     `json:"wager_amount"`
	WinAmount   int64     `json:"win_amount"`
	GGRAmount   int64     `json:"ggr_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// Notification is the realtime payload pushed after a settlement or wallet
// operation. Every delta is independently optional.
type Notification struct {
	Type                string `json:"type"`
	PlayerID            int64  `json:"player_id"`
	RealBalance         int64  `json:"real_balance"`
	BonusBalance        int64  `json:"bonus_balance"`
	BalanceDelta        *int64 `json:"balance_delta,omitempty"`
	VIPPointsDelta      string `json:"vip_points_delta,omitempty"`
	WageringDelta       *int64 `json:"wagering_delta,omitempty"`
	JackpotContribution *int64 `json:"jackpot_contribution,omitempty"`
	RelatedID           string `json:"related_id,omitempty"`
}
