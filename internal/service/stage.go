package service

import (
	"context"
	"fmt"
	"time"

	"casino-ledger/internal/model"

	"github.com/rs/zerolog"
)

// StageOutcome is the result of one best-effort settlement stage. When the
// stage fails or times out, Value holds the stage's neutral fallback and
// Degraded is set; the error never propagates past the stage boundary.
type StageOutcome[T any] struct {
	Value    T
	Degraded bool
	Err      error
}

// runBestEffort executes a non-critical stage under its own timeout. A
// failure is converted into the fallback value plus a warning log; settlement
// always continues.
func runBestEffort[T any](ctx context.Context, logger zerolog.Logger, stage string, timeout time.Duration, fallback T, fn func(context.Context) (T, error)) StageOutcome[T] {
	stageCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	value, err := fn(stageCtx)
	if err != nil {
		logger.Warn().Err(err).Str("stage", stage).Msg("best-effort stage degraded")
		return StageOutcome[T]{
			Value:    fallback,
			Degraded: true,
			Err:      fmt.Errorf("%w: %s: %v", model.ErrCollaboratorUnavailable, stage, err),
		}
	}
	return StageOutcome[T]{Value: value}
}
