package usecase

import (
	"context"
	"time"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationEvent is one domain event to fan out. The dispatcher
// delivers it over every channel independently; a channel left empty
// (no email body, no SMS body) is skipped.
type NotificationEvent struct {
	UserID    uuid.UUID
	Type      entity.NotificationType
	Category  entity.NotificationCategory
	Title     string
	Message   string
	Action    *entity.NotificationAction
	Metadata  map[string]string
	Priority  entity.NotificationPriority
	ExpiresAt *time.Time

	// Email channel. Empty subject skips the channel.
	EmailSubject  string
	EmailHTMLBody string

	// SMS channel. Empty body skips the channel.
	SMSBody string
}

// NotificationDispatcher fans one event out to email, SMS, the
// persisted notification feed, the local socket hub and the
// cross-instance backplane. Channel failures are logged and never
// propagated; the triggering request always proceeds.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, event *NotificationEvent)
}

// NotificationPage is one page of a user's notification feed.
type NotificationPage struct {
	Notifications []entity.Notification
	Total         int64
	Page          int
	PerPage       int
}

// NotificationUsecase defines the per-user notification feed operations.
type NotificationUsecase interface {
	ListNotifications(ctx context.Context, userID uuid.UUID, page, perPage int) (*NotificationPage, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error
}
