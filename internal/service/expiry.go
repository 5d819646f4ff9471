package service

import (
	"context"
	"errors"
	"time"

	"casino-ledger/internal/config"
	"casino-ledger/internal/ledger"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// GrantExpiryServiceImpl forfeits bonus grants that passed their expiry while
// still pending. Each grant is handled in its own ledger mutation so one bad
// row cannot block the sweep.
type GrantExpiryServiceImpl struct {
	ledger       *ledger.Ledger
	grants       repository.GrantRepository
	transactions repository.TransactionRepository
	cfg          config.WorkerConfig
	logger       zerolog.Logger
}

var _ GrantExpiryService = (*GrantExpiryServiceImpl)(nil)

func NewGrantExpiryService(
	ldg *ledger.Ledger,
	grants repository.GrantRepository,
	transactions repository.TransactionRepository,
	cfg config.WorkerConfig,
	logger zerolog.Logger,
) *GrantExpiryServiceImpl {
	return &GrantExpiryServiceImpl{
		ledger:       ldg,
		grants:       grants,
		transactions: transactions,
		cfg:          cfg,
		logger:       logger,
	}
}

// ExpireDueGrants sweeps one batch of overdue grants. The grant row is kept
// with status expired so support can see what was forfeited and when.
func (s *GrantExpiryServiceImpl) ExpireDueGrants(ctx context.Context) error {
	due, err := s.grants.ListExpired(ctx, time.Now().UTC(), s.cfg.GrantExpiryBatch)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		return nil
	}

	s.logger.Info().Int("count", len(due)).Msg("expiring overdue bonus grants")

	var failed int
	for _, grant := range due {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := s.expireOne(ctx, grant.PlayerID, grant.ID); err != nil {
			failed++
			s.logger.Error().Err(err).Str("grant_id", grant.ID).
				Int64("player_id", grant.PlayerID).Msg("failed to expire grant")
		}
	}

	if failed > 0 {
		s.logger.Warn().Int("failed", failed).Int("total", len(due)).
			Msg("grant expiry sweep finished with failures")
	}
	return nil
}

func (s *GrantExpiryServiceImpl) expireOne(ctx context.Context, playerID int64, grantID string) error {
	_, err := s.ledger.ApplyDelta(ctx, playerID, func(tx pgx.Tx, rec *model.BalanceRecord) error {
		grant, err := s.grants.GetForUpdate(ctx, grantID, tx)
		if err != nil {
			if errors.Is(err, model.ErrGrantNotFound) {
				// Consumed between the sweep's list and this lock.
				return nil
			}
			return err
		}
		if grant.Status != model.GrantPending {
			return nil
		}

		before := *rec

		// The grant's unwagered money leaves the bonus pool, capped by what is
		// actually there (earlier draws may have spent part of it).
		forfeited := min64(grant.RemainingAmount, rec.BonusBalance)
		rec.BonusBalance -= forfeited

		// Its unfinished wagering obligation is shed as well; without this the
		// remaining bonus money of other grants could never convert.
		unfinished := grant.WageringGoal - grant.WageredAmount
		rec.BonusWageringRemaining -= min64(rec.BonusWageringRemaining, unfinished)
		convertIfCleared(rec)

		grant.Status = model.GrantExpired
		grant.RemainingAmount = 0
		if err := s.grants.Update(ctx, grant, tx); err != nil {
			return err
		}

		if forfeited > 0 {
			record := newTransactionRecord(model.TypeAdjustment, &before, rec, -forfeited, 0)
			record.RelatedID = grant.ID
			if err := s.transactions.Insert(ctx, record, tx); err != nil {
				return err
			}
		}

		s.logger.Info().Str("grant_id", grant.ID).Int64("player_id", playerID).
			Int64("forfeited", forfeited).Msg("bonus grant expired")
		return nil
	})
	return err
}
