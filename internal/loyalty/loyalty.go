package loyalty

import (
	"context"
	"fmt"

	"casino-ledger/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Service accrues VIP points in redis. Points are fractional (rate * wager in
// minor units) and accumulate on a per-player counter; redis keeps the accrual
// off the settlement's critical path.
type Service struct {
	rdb    *redis.Client
	rate   decimal.Decimal
	logger zerolog.Logger
}

func NewService(rdb *redis.Client, cfg config.LoyaltyConfig, logger zerolog.Logger) *Service {
	return &Service{rdb: rdb, rate: cfg.PointsRate, logger: logger}
}

func pointsKey(playerID int64) string {
	return fmt.Sprintf("loyalty:points:%d", playerID)
}

// AwardPoints credits points for one wager and returns how many were added.
func (s *Service) AwardPoints(ctx context.Context, playerID int64, wagerAmount int64) (decimal.Decimal, error) {
	points := s.rate.Mul(decimal.NewFromInt(wagerAmount))
	if points.IsZero() {
		return decimal.Zero, nil
	}

	f, _ := points.Float64()
	if err := s.rdb.IncrByFloat(ctx, pointsKey(playerID), f).Err(); err != nil {
		return decimal.Zero, fmt.Errorf("accrue vip points: %w", err)
	}

	s.logger.Debug().Int64("player_id", playerID).Str("points", points.String()).
		Msg("vip points awarded")
	return points, nil
}

// Balance reads a player's accumulated points.
func (s *Service) Balance(ctx context.Context, playerID int64) (decimal.Decimal, error) {
	v, err := s.rdb.Get(ctx, pointsKey(playerID)).Result()
	if err == redis.Nil {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("read vip points: %w", err)
	}
	return decimal.NewFromString(v)
}
