package service

import (
	"context"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/rs/zerolog"
)

// WalletServiceImpl handles deposits, withdrawals, bonus grants and free-spin
// payouts. All mutation rules live in the WageringManager; this layer adds
// defaults, read paths and notifications.
type WalletServiceImpl struct {
	ledger       *ledger.Ledger
	wagering     *WageringManager
	grants       repository.GrantRepository
	transactions repository.TransactionRepository
	notifier     Notifier
	cfg          config.WageringConfig
	logger       zerolog.Logger
}

var _ WalletService = (*WalletServiceImpl)(nil)

func NewWalletService(
	ldg *ledger.Ledger,
	wagering *WageringManager,
	grants repository.GrantRepository,
	transactions repository.TransactionRepository,
	notifier Notifier,
	cfg config.WageringConfig,
	logger zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		ledger:       ldg,
		wagering:     wagering,
		grants:       grants,
		transactions: transactions,
		notifier:     notifier,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, req *model.DepositRequest) (*model.WalletResponse, error) {
	rec, record, err := s.wagering.OnDeposit(ctx, req.PlayerID, req.Amount)
	if err != nil {
		return nil, err
	}
	s.notifyBalance(ctx, rec, record)
	return &model.WalletResponse{Balance: rec, Transaction: record}, nil
}

func (s *WalletServiceImpl) Withdraw(ctx context.Context, req *model.WithdrawalRequest) (*model.WalletResponse, error) {
	rec, record, err := s.wagering.OnWithdrawalRequest(ctx, req.PlayerID, req.Amount)
	if err != nil {
		return nil, err
	}
	s.notifyBalance(ctx, rec, record)
	return &model.WalletResponse{Balance: rec, Transaction: record}, nil
}

func (s *WalletServiceImpl) GrantBonus(ctx context.Context, req *model.BonusGrantRequest) (*model.WalletResponse, error) {
	ttl := s.cfg.DefaultGrantTTL
	if req.ExpiresInH > 0 {
		ttl = time.Duration(req.ExpiresInH) * time.Hour
	}
	expiresAt := time.Now().UTC().Add(ttl)

	rec, grant, record, err := s.wagering.OnBonusGrant(ctx, req.PlayerID, req.Amount, req.FreeSpins, req.AllowedGames, expiresAt)
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("grant_id", grant.ID).Int64("player_id", req.PlayerID).Msg("grant created")
	s.notifyBalance(ctx, rec, record)
	return &model.WalletResponse{Balance: rec, Transaction: record}, nil
}

func (s *WalletServiceImpl) FreeSpinWin(ctx context.Context, req *model.FreeSpinWinRequest) (*model.WalletResponse, error) {
	rec, record, err := s.wagering.OnFreeSpinWin(ctx, req.PlayerID, req.Amount)
	if err != nil {
		return nil, err
	}
	s.notifyBalance(ctx, rec, record)
	return &model.WalletResponse{Balance: rec, Transaction: record}, nil
}

func (s *WalletServiceImpl) GetBalance(ctx context.Context, playerID int64) (*model.BalanceRecord, error) {
	return s.ledger.GetOrCreate(ctx, playerID)
}

func (s *WalletServiceImpl) GetGrants(ctx context.Context, playerID int64) ([]*model.BonusGrant, error) {
	return s.grants.ListByPlayer(ctx, playerID)
}

func (s *WalletServiceImpl) GetTransactions(ctx context.Context, playerID int64, limit, offset int) ([]*model.TransactionRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.transactions.ListByPlayer(ctx, playerID, limit, offset)
}

// notifyBalance pushes the new balance on the realtime channel,
// fire-and-forget. Wallet operations never fail because a push failed.
func (s *WalletServiceImpl) notifyBalance(ctx context.Context, rec *model.BalanceRecord, record *model.TransactionRecord) {
	n := &model.Notification{
		Type:         "balance_changed",
		PlayerID:     rec.PlayerID,
		RealBalance:  rec.RealBalance,
		BonusBalance: rec.BonusBalance,
	}
	if record != nil {
		n.BalanceDelta = &record.Amount
		n.RelatedID = record.ID
	}

	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(notifyCtx, 2*time.Second)
		defer cancel()
		if err := s.notifier.PublishBalance(ctx, n); err != nil {
			s.logger.Warn().Err(err).Int64("player_id", rec.PlayerID).Msg("balance notification failed")
		}
	}()
}
