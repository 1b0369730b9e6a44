package audit

import (
	"context"
	"log/slog"
)

// Worker consumes audit events from the inbox and persists them. Keeps
// background processing testable without wiring queue infrastructure.
type Worker struct {
	store  Store
	inbox  <-chan Event
	logger *slog.Logger
}

// NewWorker constructs a worker draining the given inbox into the store.
func NewWorker(store Store, inbox <-chan Event, logger *slog.Logger) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Worker{store: store, inbox: inbox, logger: logger}
}

// Run processes events until the context is canceled. Persistence failures
// are logged, not fatal; losing one audit row beats stopping the trail.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				w.logger.ErrorContext(ctx, "audit append failed",
					"request_id", event.RequestID,
					"error", err,
				)
			}
		}
	}
}
