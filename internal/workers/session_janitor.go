// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
)

// defaultJanitorInterval is used when no interval is configured.
const defaultJanitorInterval = time.Hour

// sessionJanitor periodically removes expired session rows. Expired sessions
// already fail to resolve, so the janitor is purely about keeping the
// sessions table from growing without bound.
type sessionJanitor struct {
	sessionRepository store.SessionRepository
	interval          time.Duration
	logger            *logger.Logger
}

func newSessionJanitor(sessionRepository store.SessionRepository, interval time.Duration, logger *logger.Logger) *sessionJanitor {
	if interval <= 0 {
		interval = defaultJanitorInterval
	}
	return &sessionJanitor{
		sessionRepository: sessionRepository,
		interval:          interval,
		logger:            logger,
	}
}

// Run sweeps expired sessions on every tick until ctx is cancelled.
func (j *sessionJanitor) Run(ctx context.Context) {
	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *sessionJanitor) sweep(ctx context.Context) {
	removed, err := j.sessionRepository.DeleteExpiredSessions(ctx, time.Now().UTC())
	if err != nil {
		j.logger.Err(err).Msg("expired sessions sweep failed")
		return
	}
	if removed > 0 {
		j.logger.Info().Int64("removed", removed).Msg("expired sessions swept")
	}
}
