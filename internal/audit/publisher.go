package audit

import (
	"context"
	"log/slog"

	"codecheck/pkg/requestcontext"
)

// Publisher hands events to the worker without blocking the request path.
// When the inbox is full the event is dropped and counted against the log;
// audit must never slow down or fail an evaluation.
type Publisher struct {
	inbox  chan<- Event
	logger *slog.Logger
}

// NewPublisher constructs a publisher feeding the given inbox.
func NewPublisher(inbox chan<- Event, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{inbox: inbox, logger: logger}
}

// Emit enqueues one event, stamping the request-scoped time when unset.
func (p *Publisher) Emit(ctx context.Context, event Event) {
	if p == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit inbox full, event dropped", "request_id", event.RequestID)
	}
}
