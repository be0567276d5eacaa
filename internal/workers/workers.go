package workers

import (
	"context"

	"github.com/MKhiriev/chatterbox/internal/config"
	"github.com/MKhiriev/chatterbox/internal/logger"
	"github.com/MKhiriev/chatterbox/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers that accompany the server.
func NewWorkers(repositories *store.Repositories, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			newSessionJanitor(repositories.SessionRepository, cfg.JanitorInterval, logger),
		},
	}
}

// Run launches every worker in its own goroutine. The workers stop when ctx
// is cancelled; Run itself returns immediately.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		go worker.Run(ctx)
	}
}
