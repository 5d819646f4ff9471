package service

import (
	"context"

	"casino-ledger/internal/model"

	"github.com/shopspring/decimal"
)

// SettlementService runs the full pipeline for one wager.
type SettlementService interface {
	PlaceWager(ctx context.Context, req *model.WagerRequest, outcome *model.GameOutcome) (*model.SettlementResult, error)
}

// WalletService covers the non-bet monetary operations.
type WalletService interface {
	Deposit(ctx context.Context, req *model.DepositRequest) (*model.WalletResponse, error)
	Withdraw(ctx context.Context, req *model.WithdrawalRequest) (*model.WalletResponse, error)
	GrantBonus(ctx context.Context, req *model.BonusGrantRequest) (*model.WalletResponse, error)
	FreeSpinWin(ctx context.Context, req *model.FreeSpinWinRequest) (*model.WalletResponse, error)
	GetBalance(ctx context.Context, playerID int64) (*model.BalanceRecord, error)
	GetGrants(ctx context.Context, playerID int64) ([]*model.BonusGrant, error)
	GetTransactions(ctx context.Context, playerID int64, limit, offset int) ([]*model.TransactionRecord, error)
}

// GrantExpiryService sweeps expired bonus grants.
type GrantExpiryService interface {
	ExpireDueGrants(ctx context.Context) error
}

// BetValidator is the critical first settlement stage. A non-nil error wraps
// model.ErrValidationFailed with a human-readable reason.
type BetValidator interface {
	ValidateBet(ctx context.Context, req *model.WagerRequest) error
}

// JackpotService contributes a slice of each wager to the progressive pools.
type JackpotService interface {
	Contribute(ctx context.Context, gameID string, wagerAmount int64) (*model.JackpotContribution, error)
}

// LoyaltyService accrues VIP points for wagers and reports how many were
// added.
type LoyaltyService interface {
	AwardPoints(ctx context.Context, playerID int64, wagerAmount int64) (decimal.Decimal, error)
}

// RevenueService records the GGR contribution of one settled bet.
type RevenueService interface {
	LogContribution(ctx context.Context, entry *model.RevenueEntry) error
}

// Notifier pushes realtime events to players. PublishBalance uses the
// low-latency channel and is dispatched before anything else.
type Notifier interface {
	PublishBalance(ctx context.Context, n *model.Notification) error
	Publish(ctx context.Context, n *model.Notification) error
}
