// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-media-mirror/internal/config"
	"github.com/MKhiriev/go-media-mirror/internal/logger"
	"github.com/jonboulle/clockwork"
)

type syncJob struct {
	syncService SyncService
	clock       clockwork.Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewSyncJob creates a syncJob that calls syncService.Sync on a ticker driven
// by clock. The job is idle until Start is called.
func NewSyncJob(syncService SyncService, clock clockwork.Clock, logger *logger.Logger) SyncJob {
	return &syncJob{syncService: syncService, clock: clock, logger: logger}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that runs one pass right away and another
// one every interval. A non-positive interval means
// [config.DefaultSyncInterval]. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = config.DefaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", interval).Msg("sync job started")

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.runOnce(jobCtx)
			}
		}
	}()
}

func (j *syncJob) runOnce(ctx context.Context) {
	_, err := j.syncService.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSyncInProgress):
		j.logger.Info().Msg("sync pass skipped, previous pass still running")
	case ctx.Err() != nil:
	default:
		j.logger.Err(err).Str("func", "syncJob.runOnce").Msg("sync pass failed")
	}
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running.
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
