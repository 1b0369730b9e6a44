// Package audit records an append-only trail of judge commands. Events are
// emitted from the service layer and persisted off the request path by a
// channel-fed worker.
package audit

import (
	"context"
	"time"
)

// Event captures one checklist evaluation. Transport-agnostic so stores and
// sinks can fan out.
type Event struct {
	Timestamp    time.Time
	RequestID    string
	Zoning       string
	Use          string
	Jurisdiction string
	Status       string
	Total        int
	DurationMs   int64
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	List(ctx context.Context) ([]Event, error)
}
