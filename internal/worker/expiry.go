package worker

import (
	"context"
	"sync"
	"time"

	"casino-ledger/internal/service"

	"github.com/rs/zerolog"
)

// GrantExpiryWorker periodically sweeps overdue bonus grants.
type GrantExpiryWorker struct {
	service  service.GrantExpiryService
	interval time.Duration
	logger   zerolog.Logger
	stopChan chan struct{}
	wg       *sync.WaitGroup
}

func NewGrantExpiryWorker(svc service.GrantExpiryService, interval time.Duration, logger zerolog.Logger) *GrantExpiryWorker {
	return &GrantExpiryWorker{
		service:  svc,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
		wg:       &sync.WaitGroup{},
	}
}

func (w *GrantExpiryWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("Grant expiry worker started")

		for {
			select {
			case <-ticker.C:
				w.logger.Debug().Msg("Running grant expiry sweep")
				err := w.service.ExpireDueGrants(ctx)
				if err != nil {
					w.logger.Error().Err(err).Msg("Failed to run grant expiry sweep")
				}
			case <-w.stopChan:
				w.logger.Info().Msg("Grant expiry worker stopping")
				return
			case <-ctx.Done():
				w.logger.Info().Msg("Grant expiry worker stopping (context done)")
				return
			}
		}
	}()
}

func (w *GrantExpiryWorker) Stop() {
	close(w.stopChan)
	w.wg.Wait()
}
