package shared

import "context"

// EventPublisher publishes domain events to interested collaborators,
// e.g. the notification dispatcher. Delivery is best-effort: callers must
// not treat a publish failure as a failure of the domain operation itself.
type EventPublisher interface {
	// Publish publishes one or more domain events
	Publish(ctx context.Context, events ...DomainEvent) error
}

// NoopEventPublisher discards all events. Used in tests and tools.
type NoopEventPublisher struct{}

// Publish implements EventPublisher
func (NoopEventPublisher) Publish(ctx context.Context, events ...DomainEvent) error {
	return nil
}
