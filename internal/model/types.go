package model

// TransactionType classifies a financial event in the transaction log.
type TransactionType string

const (
	TypeDeposit     TransactionType = "deposit"
	TypeWithdrawal  TransactionType = "withdrawal"
	TypeBet         TransactionType = "bet"
	TypeBonus       TransactionType = "bonus"
	TypeWin         TransactionType = "win"
	TypeFreeSpinWin TransactionType = "free_spin_win"
	TypeAdjustment  TransactionType = "adjustment"
)

func (t TransactionType) String() string {
	return string(t)
}

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "completed"
	// StatusReconcile marks records written after a settlement that could not
	// fully complete its audit append; operators resolve these by hand.
	StatusReconcile TransactionStatus = "reconcile"
)

// GrantStatus is the lifecycle state of a bonus grant.
type GrantStatus string

const (
	GrantPending   GrantStatus = "pending"
	GrantCompleted GrantStatus = "completed"
	GrantExpired   GrantStatus = "expired"
	GrantCancelled GrantStatus = "cancelled"
)

// FundingPolicy selects which pools a wager may be funded from.
type FundingPolicy string

const (
	PolicyAuto  FundingPolicy = "auto"
	PolicyReal  FundingPolicy = "real"
	PolicyBonus FundingPolicy = "bonus"
)

func ParseFundingPolicy(s string) (FundingPolicy, error) {
	switch s {
	case "", string(PolicyAuto):
		return PolicyAuto, nil
	case string(PolicyReal):
		return PolicyReal, nil
	case string(PolicyBonus):
		return PolicyBonus, nil
	default:
		return "", ErrInvalidPolicy
	}
}

func (p FundingPolicy) String() string {
	return string(p)
}

// BalanceSourceType tags which pool(s) money was drawn from.
type BalanceSourceType string

const (
	SourceReal  BalanceSourceType = "real"
	SourceBonus BalanceSourceType = "bonus"
	SourceMixed BalanceSourceType = "mixed"
)

// BalanceSource identifies one concrete pool: the real balance, or a specific
// bonus grant.
type BalanceSource struct {
	Type    BalanceSourceType `json:"type"`
	GrantID string            `json:"grant_id,omitempty"`
}

func RealSource() BalanceSource {
	return BalanceSource{Type: SourceReal}
}

func BonusSource(grantID string) BalanceSource {
	return BalanceSource{Type: SourceBonus, GrantID: grantID}
}

// BetOrigin identifies the upstream system that submitted a wager.
type BetOrigin string

const (
	OriginGame   BetOrigin = "game"
	OriginServer BetOrigin = "server"
)

func ParseBetOrigin(s string) (BetOrigin, error) {
	switch s {
	case string(OriginGame):
		return OriginGame, nil
	case string(OriginServer):
		return OriginServer, nil
	default:
		return "", ErrInvalidOrigin
	}
}

func (o BetOrigin) String() string {
	return string(o)
}

// SettlementStatus is the terminal state of one wager settlement.
type SettlementStatus string

const (
	// SettlementSettled: stake deducted, outcome credited, log appended.
	SettlementSettled SettlementStatus = "settled"
	// SettlementRejected: no money moved.
	SettlementRejected SettlementStatus = "rejected"
	// SettlementPartial: stake moved but a later critical step failed;
	// surfaced distinctly because reconciliation is required.
	SettlementPartial SettlementStatus = "partial"
)
