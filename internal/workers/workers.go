package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/mapster-agent/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run executes every worker in order. A failing worker does not stop the
// ones after it; all failures are returned joined. Run stops early only when
// ctx is cancelled.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error
	for _, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		log := w.logger.With().Str("worker", worker.Name()).Logger()
		if err := worker.Run(ctx); err != nil {
			log.Err(err).Msg("startup worker failed")
			errs = append(errs, fmt.Errorf("%s: %w", worker.Name(), err))
			continue
		}
		log.Debug().Msg("startup worker finished")
	}

	return errors.Join(errs...)
}
