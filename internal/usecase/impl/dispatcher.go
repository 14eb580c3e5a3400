package impl

import (
	"context"
	"log/slog"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/domain/service"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PushEventName is the socket event carrying feed notifications.
const PushEventName = "notification"

// notificationDispatcher fans one domain event out over every channel.
// Channels run in a fixed order and fail independently; a failure is
// logged with the channel name and never reaches the caller, so the
// triggering request cannot be failed by its side effects.
type notificationDispatcher struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	mailer           service.Mailer
	sms              service.SMSSender
	hub              service.PushHub
	publisher        service.EventPublisher
	logger           *slog.Logger
}

// DispatcherParams holds dependencies for the dispatcher, injected by Fx.
type DispatcherParams struct {
	fx.In

	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Mailer           service.Mailer
	SMS              service.SMSSender
	Hub              service.PushHub
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewNotificationDispatcher is the constructor for the dispatcher.
func NewNotificationDispatcher(params DispatcherParams) usecase.NotificationDispatcher {
	return &notificationDispatcher{
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		mailer:           params.Mailer,
		sms:              params.SMS,
		hub:              params.Hub,
		publisher:        params.Publisher,
		logger:           params.Logger,
	}
}

func (d *notificationDispatcher) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, d.logger)
}

// Dispatch delivers the event over email, SMS, the persisted feed, the
// local socket hub and the cross-instance backplane, in that order.
func (d *notificationDispatcher) Dispatch(ctx context.Context, event *usecase.NotificationEvent) {
	user, err := d.userRepo.FindByID(ctx, event.UserID)
	if err != nil {
		d.log(ctx).Warn("Notification dropped, recipient lookup failed",
			slog.Any("userID", event.UserID), slog.Any("error", err))

		return
	}

	d.sendEmail(ctx, user, event)
	d.sendSMS(ctx, user, event)
	notification := d.persist(ctx, event)
	d.push(ctx, event, notification)
	d.publish(ctx, event, notification)
}

func (d *notificationDispatcher) sendEmail(ctx context.Context, user *entity.User, event *usecase.NotificationEvent) {
	if event.EmailSubject == "" {
		return
	}

	mail := &service.Mail{
		ToName:    user.Name,
		ToAddress: user.Email,
		Subject:   event.EmailSubject,
		PlainBody: event.Message,
		HTMLBody:  event.EmailHTMLBody,
	}
	if err := d.mailer.Send(ctx, mail); err != nil {
		d.channelFailed(ctx, "email", event, err)
	}
}

func (d *notificationDispatcher) sendSMS(ctx context.Context, user *entity.User, event *usecase.NotificationEvent) {
	if event.SMSBody == "" || user.Phone == "" {
		return
	}

	if err := d.sms.Send(ctx, user.Phone, event.SMSBody); err != nil {
		d.channelFailed(ctx, "sms", event, err)
	}
}

// persist writes the feed row. The later channels reference its ID when
// it exists, and still run when it does not.
func (d *notificationDispatcher) persist(ctx context.Context, event *usecase.NotificationEvent) *entity.Notification {
	notification := &entity.Notification{
		ID:        uuid.New(),
		UserID:    event.UserID,
		Type:      event.Type,
		Category:  event.Category,
		Title:     event.Title,
		Message:   event.Message,
		Action:    event.Action,
		Metadata:  event.Metadata,
		Priority:  event.Priority,
		ExpiresAt: event.ExpiresAt,
	}
	if notification.Priority == "" {
		notification.Priority = entity.PriorityNormal
	}

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		d.channelFailed(ctx, "feed", event, err)

		return nil
	}

	return notification
}

func (d *notificationDispatcher) push(ctx context.Context, event *usecase.NotificationEvent, notification *entity.Notification) {
	payload := pushPayload(event, notification)
	if err := d.hub.Send(ctx, event.UserID, PushEventName, payload); err != nil {
		d.channelFailed(ctx, "socket", event, err)
	}
}

func (d *notificationDispatcher) publish(ctx context.Context, event *usecase.NotificationEvent, notification *entity.Notification) {
	pushEvent := &service.PushEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    event.UserID.String(),
		Event:     PushEventName,
		Payload:   pushPayload(event, notification),
	}
	if err := d.publisher.PublishPushEvent(ctx, pushEvent); err != nil {
		d.channelFailed(ctx, "backplane", event, err)
	}
}

func (d *notificationDispatcher) channelFailed(ctx context.Context, channel string, event *usecase.NotificationEvent, err error) {
	d.log(ctx).Warn("Notification channel failed",
		slog.String("channel", channel),
		slog.Any("userID", event.UserID),
		slog.Any("type", event.Type),
		slog.Any("error", errors.WithStack(err)))
}

func pushPayload(event *usecase.NotificationEvent, notification *entity.Notification) map[string]any {
	payload := map[string]any{
		"title":    event.Title,
		"message":  event.Message,
		"type":     string(event.Type),
		"category": string(event.Category),
	}
	if notification != nil {
		payload["notification_id"] = notification.ID.String()
	}
	if event.Action != nil {
		payload["action"] = map[string]string{"label": event.Action.Label, "url": event.Action.URL}
	}

	return payload
}
