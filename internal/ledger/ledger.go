// Package ledger is the single owner of balance-record mutations. Every
// change to a player's money goes through ApplyDelta, which provides the
// per-player mutual exclusion the rest of the system relies on.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"casino-ledger/internal/model"
	"casino-ledger/internal/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// conflictRetries bounds how often a transient serialization failure is
// retried before ErrLedgerConflict reaches the caller.
const conflictRetries = 3

type Ledger struct {
	db       repository.DBManager
	balances repository.BalanceRepository
	logger   zerolog.Logger
}

func New(db repository.DBManager, balances repository.BalanceRepository, logger zerolog.Logger) *Ledger {
	return &Ledger{
		db:       db,
		balances: balances,
		logger:   logger,
	}
}

// GetOrCreate returns the player's balance record, creating a zeroed row on
// first access. Idempotent.
func (l *Ledger) GetOrCreate(ctx context.Context, playerID int64) (*model.BalanceRecord, error) {
	if err := l.balances.EnsureExists(ctx, playerID); err != nil {
		return nil, fmt.Errorf("ensure balance: %w", err)
	}
	rec, err := l.balances.Get(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return rec, nil
}

// Get is the non-creating read variant; returns ErrPlayerNotFound for
// unknown players.
func (l *Ledger) Get(ctx context.Context, playerID int64) (*model.BalanceRecord, error) {
	return l.balances.Get(ctx, playerID)
}

// ApplyDelta runs fn against the current balance record under a row lock and
// writes the mutated record back. fn may use other repositories on the same
// tx (grants, transaction log) so compound mutations commit atomically. The
// read-modify-write never interleaves with another ApplyDelta for the same
// player. Mutations that would leave a negative balance or a negative
// wagering remainder are rejected before commit.
func (l *Ledger) ApplyDelta(ctx context.Context, playerID int64, fn func(tx pgx.Tx, rec *model.BalanceRecord) error) (*model.BalanceRecord, error) {
	var result *model.BalanceRecord

	for attempt := 0; ; attempt++ {
		err := l.db.WithTransaction(ctx, func(tx pgx.Tx) error {
			if err := l.balances.EnsureExists(ctx, playerID, tx); err != nil {
				return fmt.Errorf("ensure balance: %w", err)
			}

			rec, err := l.balances.GetForUpdate(ctx, playerID, tx)
			if err != nil {
				return fmt.Errorf("get balance for update: %w", err)
			}

			if err := fn(tx, rec); err != nil {
				return err
			}

			if err := validate(rec); err != nil {
				return err
			}

			if err := l.balances.Update(ctx, rec, tx); err != nil {
				return fmt.Errorf("update balance: %w", err)
			}

			result = rec
			return nil
		})

		if err == nil {
			return result, nil
		}

		if isConflict(err) && attempt < conflictRetries {
			l.logger.Warn().Int64("player_id", playerID).Int("attempt", attempt+1).
				Msg("ledger conflict, retrying")
			continue
		}
		if isConflict(err) {
			return nil, fmt.Errorf("%w: %v", model.ErrLedgerConflict, err)
		}
		return nil, err
	}
}

// validate rejects inconsistent records before they are committed.
func validate(rec *model.BalanceRecord) error {
	if rec.RealBalance < 0 || rec.BonusBalance < 0 {
		return model.ErrInsufficientFunds
	}
	if rec.DepositWageringRemaining < 0 || rec.BonusWageringRemaining < 0 {
		return fmt.Errorf("player %d: negative wagering remainder", rec.PlayerID)
	}
	// A cleared bonus requirement with bonus funds still parked means the
	// conversion step did not fire inside the same mutation.
	if rec.BonusWageringRemaining == 0 && rec.BonusBalance > 0 {
		return fmt.Errorf("player %d: bonus balance left unconverted after wagering cleared", rec.PlayerID)
	}
	return nil
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.SerializationFailure, pgerrcode.DeadlockDetected:
			return true
		}
	}
	return errors.Is(err, model.ErrLedgerConflict)
}
