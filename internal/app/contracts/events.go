package contracts

import "context"

// EventPublisher emits record lifecycle events for downstream consumers.
// Publishing is best effort; callers must not fail their request on error.
type EventPublisher interface {
	PublishRecordEvent(ctx context.Context, eventType string, payload interface{}) error
}
