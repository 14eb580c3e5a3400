package impl

import (
	"context"
	"testing"

	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/service"
	mockRepo "verifiedtutors/internal/mocks/repository"
	mockService "verifiedtutors/internal/mocks/service"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

type dispatcherMocks struct {
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	mailer           *mockService.MockMailer
	sms              *mockService.MockSMSSender
	hub              *mockService.MockPushHub
	publisher        *mockService.MockEventPublisher
}

func newDispatcher(t *testing.T) (usecase.NotificationDispatcher, *dispatcherMocks) {
	m := &dispatcherMocks{
		userRepo:         mockRepo.NewMockUserRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		mailer:           mockService.NewMockMailer(t),
		sms:              mockService.NewMockSMSSender(t),
		hub:              mockService.NewMockPushHub(t),
		publisher:        mockService.NewMockEventPublisher(t),
	}

	dispatcher := NewNotificationDispatcher(DispatcherParams{
		UserRepo:         m.userRepo,
		NotificationRepo: m.notificationRepo,
		Mailer:           m.mailer,
		SMS:              m.sms,
		Hub:              m.hub,
		Publisher:        m.publisher,
		Logger:           newDiscardLogger(),
	})

	return dispatcher, m
}

func fullEvent(userID uuid.UUID) *usecase.NotificationEvent {
	return &usecase.NotificationEvent{
		UserID:        userID,
		Type:          entity.NotificationVerification,
		Category:      entity.CategorySuccess,
		Title:         "You are verified",
		Message:       "Your tutor profile passed verification.",
		Priority:      entity.PriorityHigh,
		EmailSubject:  "You are verified",
		EmailHTMLBody: "<p>Your tutor profile passed verification.</p>",
		SMSBody:       "Your tutor profile has been verified.",
	}
}

func TestDispatcher_Dispatch_FansOutToEveryChannel(t *testing.T) {
	dispatcher, m := newDispatcher(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Kumari", Email: "kumari@example.lk", Phone: "+94771234567"}
	event := fullEvent(user.ID)

	var persistedID uuid.UUID
	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(mail *service.Mail) bool {
			return mail.ToAddress == user.Email && mail.Subject == event.EmailSubject
		})).
		Return(nil)
	m.sms.EXPECT().Send(ctx, user.Phone, event.SMSBody).Return(nil)
	m.notificationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Notification")).
		RunAndReturn(func(_ context.Context, notification *entity.Notification) error {
			persistedID = notification.ID
			return nil
		})
	m.hub.EXPECT().
		Send(ctx, user.ID, PushEventName, mock.MatchedBy(func(payload interface{}) bool {
			fields, ok := payload.(map[string]any)
			return ok && fields["notification_id"] == persistedID.String() && fields["title"] == event.Title
		})).
		Return(nil)
	m.publisher.EXPECT().
		PublishPushEvent(ctx, mock.MatchedBy(func(pushEvent *service.PushEvent) bool {
			return pushEvent.UserID == user.ID.String() && pushEvent.Event == PushEventName
		})).
		Return(nil)

	dispatcher.Dispatch(ctx, event)
}

func TestDispatcher_Dispatch_EmailFailureDoesNotStopLaterChannels(t *testing.T) {
	dispatcher, m := newDispatcher(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Kumari", Email: "kumari@example.lk", Phone: "+94771234567"}
	event := fullEvent(user.ID)

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Mail")).Return(errors.New("smtp refused"))
	m.sms.EXPECT().Send(ctx, user.Phone, event.SMSBody).Return(nil)
	m.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
	m.hub.EXPECT().Send(ctx, user.ID, PushEventName, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).Return(nil)

	dispatcher.Dispatch(ctx, event)
}

func TestDispatcher_Dispatch_SkipsEmailAndSMSWhenUnset(t *testing.T) {
	dispatcher, m := newDispatcher(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Nimal", Email: "nimal@example.lk"}
	event := &usecase.NotificationEvent{
		UserID:   user.ID,
		Type:     entity.NotificationBooking,
		Category: entity.CategoryInfo,
		Title:    "New booking request",
		Message:  "A student requested a session.",
	}

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.notificationRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Priority == entity.PriorityNormal
		})).
		Return(nil)
	m.hub.EXPECT().Send(ctx, user.ID, PushEventName, mock.Anything).Return(nil)
	m.publisher.EXPECT().PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).Return(nil)

	dispatcher.Dispatch(ctx, event)
	m.mailer.AssertNotCalled(t, "Send")
	m.sms.AssertNotCalled(t, "Send")
}

func TestDispatcher_Dispatch_FeedFailureStillPushes(t *testing.T) {
	dispatcher, m := newDispatcher(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Nimal", Email: "nimal@example.lk"}
	event := &usecase.NotificationEvent{
		UserID:  user.ID,
		Type:    entity.NotificationSystem,
		Title:   "Heads up",
		Message: "Something happened.",
	}

	m.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	m.notificationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Notification")).Return(errors.New("insert failed"))
	m.hub.EXPECT().
		Send(ctx, user.ID, PushEventName, mock.MatchedBy(func(payload interface{}) bool {
			fields, ok := payload.(map[string]any)
			if !ok {
				return false
			}
			_, hasID := fields["notification_id"]
			return !hasID
		})).
		Return(nil)
	m.publisher.EXPECT().PublishPushEvent(ctx, mock.AnythingOfType("*service.PushEvent")).Return(nil)

	dispatcher.Dispatch(ctx, event)
}

func TestDispatcher_Dispatch_DropsEventWhenRecipientMissing(t *testing.T) {
	dispatcher, m := newDispatcher(t)

	ctx := context.Background()
	userID := uuid.New()

	m.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("not found"))

	dispatcher.Dispatch(ctx, fullEvent(userID))
	m.mailer.AssertNotCalled(t, "Send")
	m.notificationRepo.AssertNotCalled(t, "Create")
	m.hub.AssertNotCalled(t, "Send")
	m.publisher.AssertNotCalled(t, "PublishPushEvent")
}
