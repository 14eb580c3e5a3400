package service

import (
	"context"
)

// PushEvent is the cross-instance fan-out message. The push worker
// forwards it to the socket hub of every instance so users connected
// elsewhere still receive real-time events.
type PushEvent struct {
	RequestID string         `json:"request_id,omitempty"` // For distributed tracing
	UserID    string         `json:"user_id"`
	Event     string         `json:"event"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a real-time push event for async delivery
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
