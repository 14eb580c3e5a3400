package impl

import (
	"context"
	"testing"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationService(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)

	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Logger:           newDiscardLogger(),
	})

	return service, notificationRepo
}

func TestNotificationService_ListNotifications(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []entity.Notification{{ID: uuid.New(), UserID: userID}}

	notificationRepo.EXPECT().ListByUser(ctx, userID, 1, 20).Return(notifications, int64(1), nil)

	page, err := service.ListNotifications(ctx, userID, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, notifications, page.Notifications)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(7), nil)

	count, err := service.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestNotificationService_MarkRead_OwnNotification(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)
	notificationRepo.EXPECT().MarkRead(ctx, notification.ID).Return(nil)

	err := service.MarkRead(ctx, userID, notification.ID)
	assert.NoError(t, err)
}

func TestNotificationService_MarkRead_OtherUsersNotification(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	notification := &entity.Notification{ID: uuid.New(), UserID: uuid.New()}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil)

	err := service.MarkRead(ctx, uuid.New(), notification.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	notificationID := uuid.New()

	notificationRepo.EXPECT().FindByID(ctx, notificationID).Return(nil, repository.ErrNotificationNotFound)

	err := service.MarkRead(ctx, uuid.New(), notificationID)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(nil)

	assert.NoError(t, service.MarkAllRead(ctx, userID))
}

func TestNotificationService_DeleteNotification_OwnershipEnforced(t *testing.T) {
	service, notificationRepo := newNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notification := &entity.Notification{ID: uuid.New(), UserID: userID}

	notificationRepo.EXPECT().FindByID(ctx, notification.ID).Return(notification, nil).Twice()
	notificationRepo.EXPECT().Delete(ctx, notification.ID).Return(nil)

	require.NoError(t, service.DeleteNotification(ctx, userID, notification.ID))

	err := service.DeleteNotification(ctx, uuid.New(), notification.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
