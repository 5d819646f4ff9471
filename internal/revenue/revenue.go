package revenue

import (
	"context"
	"fmt"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/rs/zerolog"
)

// Service appends gross-gaming-revenue entries per settled bet. GGR is
// wager minus win, so entries can be negative on big wins; the sum over any
// period is the house result for that period.
type Service struct {
	entries repository.RevenueRepository
	logger  zerolog.Logger
}

func NewService(entries repository.RevenueRepository, logger zerolog.Logger) *Service {
	return &Service{entries: entries, logger: logger}
}

func (s *Service) LogContribution(ctx context.Context, entry *model.RevenueEntry) error {
	if entry.BetID == "" {
		return fmt.Errorf("%w: revenue entry needs a bet id", model.ErrValidationFailed)
	}
	if err := s.entries.Insert(ctx, entry); err != nil {
		return fmt.Errorf("log revenue entry: %w", err)
	}
	s.logger.Debug().Str("bet_id", entry.BetID).Int64("ggr", entry.GGRAmount).
		Str("affiliate_id", entry.AffiliateID).Msg("revenue entry logged")
	return nil
}
