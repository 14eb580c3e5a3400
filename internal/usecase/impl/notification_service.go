package impl

import (
	"context"
	"log/slog"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListNotifications pages the user's unexpired feed newest first.
func (srv *notificationService) ListNotifications(ctx context.Context, userID uuid.UUID, page, perPage int) (*usecase.NotificationPage, error) {
	page, perPage = normalizePage(page, perPage)

	notifications, total, err := srv.notificationRepo.ListByUser(ctx, userID, page, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return &usecase.NotificationPage{
		Notifications: notifications,
		Total:         total,
		Page:          page,
		PerPage:       perPage,
	}, nil
}

// UnreadCount counts the user's unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one of the user's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.ownedNotification(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.MarkRead(ctx, notification.ID); err != nil {
		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags the user's whole feed as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	srv.log(ctx).Debug("Marked all notifications read", slog.Any("userID", userID))

	return nil
}

// DeleteNotification removes one of the user's notifications.
func (srv *notificationService) DeleteNotification(ctx context.Context, userID, notificationID uuid.UUID) error {
	notification, err := srv.ownedNotification(ctx, userID, notificationID)
	if err != nil {
		return err
	}

	if err := srv.notificationRepo.Delete(ctx, notification.ID); err != nil {
		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}

// ownedNotification loads a notification and checks it belongs to the
// requesting user.
func (srv *notificationService) ownedNotification(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, notificationID)
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return nil, errors.WithStack(domainerrors.ErrNotificationNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return notification, nil
}
