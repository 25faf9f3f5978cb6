package audit

import (
	"context"
	"log/slog"
)

// Worker drains batches of records from a channel into a store. A failed
// append is logged and the worker moves on; it never blocks the registry.
type Worker struct {
	store  Store
	inbox  <-chan []Record
	logger *slog.Logger
}

func NewWorker(store Store, inbox <-chan []Record, logger *slog.Logger) *Worker {
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run returns nil once inbox is closed and drained, or ctx.Err() on cancellation.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case batch, ok := <-w.inbox:
			if !ok {
				return nil
			}
			if err := w.store.Append(ctx, batch...); err != nil {
				w.logger.ErrorContext(ctx, "failed to append audit records",
					"error", err,
					"count", len(batch),
				)
			}
		}
	}
}
