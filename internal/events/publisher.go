package events

import "context"

// Publisher emits mutation events. Publishing is best effort: failures
// are logged by implementations and never surfaced to request handlers.
type Publisher interface {
	Publish(ctx context.Context, eventType, aggregateType string, key int, payload any)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, int, any) {}
