package postgres

import (
	"context"
	"encoding/json"
	"time"

	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// notificationRepository implements the domain.NotificationRepository
// interface using GORM. Listing and counting exclude rows past their
// TTL; DeleteExpired removes them for good.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

// FindByID retrieves a single notification.
func (repo *notificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by id")
	}

	return toNotificationDomain(&notificationM)
}

// ListByUser pages a user's unexpired notifications newest first.
func (repo *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, page, perPage int) ([]entity.Notification, int64, error) {
	query := repo.unexpired(ctx).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count notifications")
	}

	var notificationMs []model.NotificationModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&notificationMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list notifications")
	}

	notifications := make([]entity.Notification, 0, len(notificationMs))
	for i := range notificationMs {
		notification, err := toNotificationDomain(&notificationMs[i])
		if err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, *notification)
	}

	return notifications, total, nil
}

// CountUnread counts the user's unread, unexpired notifications.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := repo.unexpired(ctx).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	notificationM, err := fromNotificationDomain(notification)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt

	return nil
}

// MarkRead flags one notification as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags all of the user's notifications as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
	if err != nil {
		return errors.Wrap(err, "failed to mark notifications read")
	}

	return nil
}

// Delete removes a notification row.
func (repo *notificationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.NotificationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}
	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteExpired removes rows past their TTL, returning the count.
func (repo *notificationRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at IS NOT NULL AND expires_at < ?", time.Now()).
		Delete(&model.NotificationModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired notifications")
	}

	return result.RowsAffected, nil
}

func (repo *notificationRepository) unexpired(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("expires_at IS NULL OR expires_at >= ?", time.Now())
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	notification := &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      entity.NotificationType(data.Type),
		Category:  entity.NotificationCategory(data.Category),
		Title:     data.Title,
		Message:   data.Message,
		Read:      data.Read,
		Priority:  entity.NotificationPriority(data.Priority),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}

	if data.ActionLabel != "" || data.ActionURL != "" {
		notification.Action = &entity.NotificationAction{
			Label: data.ActionLabel,
			URL:   data.ActionURL,
		}
	}

	if len(data.Metadata) > 0 {
		if err := json.Unmarshal(data.Metadata, &notification.Metadata); err != nil {
			return nil, errors.Wrap(err, "failed to decode notification metadata")
		}
	}

	return notification, nil
}

func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	if data == nil {
		return nil, nil
	}

	notificationM := &model.NotificationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      string(data.Type),
		Category:  string(data.Category),
		Title:     data.Title,
		Message:   data.Message,
		Read:      data.Read,
		Priority:  string(data.Priority),
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}

	if data.Action != nil {
		notificationM.ActionLabel = data.Action.Label
		notificationM.ActionURL = data.Action.URL
	}

	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode notification metadata")
		}
		notificationM.Metadata = datatypes.JSON(raw)
	}

	return notificationM, nil
}
