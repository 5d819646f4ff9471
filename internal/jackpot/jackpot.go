package jackpot

import (
	"context"
	"fmt"

	"casino-ledger/internal/config"
	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Pool names, in ascending order of rate.
const (
	PoolMini  = "mini"
	PoolMinor = "minor"
	PoolMajor = "major"
	PoolGrand = "grand"
)

// Service skims a configured fraction of every wager into the progressive
// pools. Rates are exact decimals; the skimmed amounts are whole minor units,
// rounded down so the pools never take more than the configured share.
type Service struct {
	pools  repository.JackpotRepository
	rates  map[string]decimal.Decimal
	logger zerolog.Logger
}

func NewService(pools repository.JackpotRepository, cfg config.JackpotConfig, logger zerolog.Logger) *Service {
	return &Service{
		pools: pools,
		rates: map[string]decimal.Decimal{
			PoolMini:  cfg.MiniRate,
			PoolMinor: cfg.MinorRate,
			PoolMajor: cfg.MajorRate,
			PoolGrand: cfg.GrandRate,
		},
		logger: logger,
	}
}

// Contribute computes and persists the per-pool contributions for one wager.
func (s *Service) Contribute(ctx context.Context, gameID string, wagerAmount int64) (*model.JackpotContribution, error) {
	if wagerAmount <= 0 {
		return nil, fmt.Errorf("%w: wager must be positive", model.ErrInvalidAmount)
	}

	wager := decimal.NewFromInt(wagerAmount)
	result := &model.JackpotContribution{PerPool: make(map[string]int64, len(s.rates))}
	for pool, rate := range s.rates {
		amount := wager.Mul(rate).IntPart()
		if amount <= 0 {
			continue
		}
		result.PerPool[pool] = amount
		result.Total += amount
	}

	if result.Total == 0 {
		return result, nil
	}

	if err := s.pools.AddContributions(ctx, result.PerPool); err != nil {
		return nil, fmt.Errorf("add jackpot contributions: %w", err)
	}

	s.logger.Debug().Str("game_id", gameID).Int64("wager", wagerAmount).
		Int64("total", result.Total).Msg("jackpot contribution recorded")
	return result, nil
}

// Pools reports the current meter values.
func (s *Service) Pools(ctx context.Context) (map[string]int64, error) {
	return s.pools.GetPools(ctx)
}
