package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when no notification exists for the ID.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the standard operations for
// notification persistence. Queries exclude expired rows.
type NotificationRepository interface {
	// FindByID retrieves a single notification.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// ListByUser pages a user's unexpired notifications newest first.
	ListByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]entity.Notification, int64, error)

	// CountUnread counts the user's unread, unexpired notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// Create persists a new notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID) error

	// MarkAllRead flags all of the user's notifications as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification row.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes rows past their TTL, returning the count.
	DeleteExpired(ctx context.Context) (int64, error)
}
