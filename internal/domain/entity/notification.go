package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType groups notifications by the domain event family
// that produced them.
type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationVerification NotificationType = "verification"
	NotificationRating       NotificationType = "rating"
	NotificationSystem       NotificationType = "system"
)

// NotificationCategory drives presentation on the client.
type NotificationCategory string

const (
	CategoryInfo    NotificationCategory = "info"
	CategorySuccess NotificationCategory = "success"
	CategoryWarning NotificationCategory = "warning"
	CategoryError   NotificationCategory = "error"
)

// NotificationPriority marks delivery urgency.
type NotificationPriority string

const (
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// NotificationAction is an optional call-to-action attached to a
// notification.
type NotificationAction struct {
	Label string
	URL   string
}

// Notification is a persisted per-user message. Expired rows are
// excluded from queries and eventually removed.
type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Type      NotificationType
	Category  NotificationCategory
	Title     string
	Message   string
	Read      bool
	Action    *NotificationAction
	Metadata  map[string]string
	Priority  NotificationPriority
	ExpiresAt *time.Time
	CreatedAt time.Time
}

// Expired reports whether the notification has passed its TTL at the
// given instant.
func (n *Notification) Expired(now time.Time) bool {
	return n.ExpiresAt != nil && n.ExpiresAt.Before(now)
}
