package impl

import (
	"context"
	"testing"
	"time"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"
	mockUsecase "verifiedtutors/internal/mocks/usecase"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) (usecase.BookingUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockBookingRepository, *mockRepo.MockTutorRepository, *mockUsecase.MockNotificationDispatcher) {
	txManager := mockRepo.NewMockTransactionManager(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	dispatcher := mockUsecase.NewMockNotificationDispatcher(t)

	service := NewBookingService(BookingServiceParams{
		TxManager:   txManager,
		BookingRepo: bookingRepo,
		TutorRepo:   tutorRepo,
		Dispatcher:  dispatcher,
		Logger:      newDiscardLogger(),
	})

	return service, txManager, bookingRepo, tutorRepo, dispatcher
}

func bookableTutor(subjectID uuid.UUID, topicID uuid.UUID) *entity.Tutor {
	return &entity.Tutor{
		UserID: uuid.New(),
		Subjects: []entity.TutorSubject{{
			SubjectID: subjectID,
			TopicIDs:  []uuid.UUID{topicID},
			Modes: map[entity.TeachingMode]entity.ModeOffering{
				entity.ModeOnline: {Enabled: true, HourlyRate: 1500},
			},
		}},
		Verification: entity.Verification{Status: entity.VerificationApproved, IsVerified: true},
	}
}

func TestBookingService_CreateBooking_PricesFromHourlyRate(t *testing.T) {
	service, _, bookingRepo, tutorRepo, dispatcher := newBookingService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	topicID := uuid.New()
	tutor := bookableTutor(subjectID, topicID)
	start := time.Date(2026, 9, 5, 16, 0, 0, 0, time.UTC)

	tutorRepo.EXPECT().FindByUserID(ctx, tutor.UserID).Return(tutor, nil)
	bookingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Booking")).Return(nil)
	dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	booking, err := service.CreateBooking(ctx, usecase.CreateBookingInput{
		StudentID: uuid.New(),
		TutorID:   tutor.UserID,
		SubjectID: subjectID,
		TopicIDs:  []uuid.UUID{topicID},
		StartTime: start,
		EndTime:   start.Add(90 * time.Minute),
		Mode:      entity.ModeOnline,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingPending, booking.Status)
	assert.Equal(t, entity.PaymentPending, booking.PaymentStatus)
	assert.InDelta(t, 2250, booking.Amount, 0.001)
}

func TestBookingService_CreateBooking_UnverifiedTutor(t *testing.T) {
	service, _, _, tutorRepo, _ := newBookingService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	topicID := uuid.New()
	tutor := bookableTutor(subjectID, topicID)
	tutor.Verification = entity.Verification{Status: entity.VerificationPending}
	start := time.Now()

	tutorRepo.EXPECT().FindByUserID(ctx, tutor.UserID).Return(tutor, nil)

	_, err := service.CreateBooking(ctx, usecase.CreateBookingInput{
		StudentID: uuid.New(),
		TutorID:   tutor.UserID,
		SubjectID: subjectID,
		TopicIDs:  []uuid.UUID{topicID},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Mode:      entity.ModeOnline,
	})
	assert.ErrorIs(t, err, domainerrors.ErrTutorNotVerified)
}

func TestBookingService_CreateBooking_ModeNotOffered(t *testing.T) {
	service, _, _, tutorRepo, _ := newBookingService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	topicID := uuid.New()
	tutor := bookableTutor(subjectID, topicID)
	start := time.Now()

	tutorRepo.EXPECT().FindByUserID(ctx, tutor.UserID).Return(tutor, nil)

	_, err := service.CreateBooking(ctx, usecase.CreateBookingInput{
		StudentID: uuid.New(),
		TutorID:   tutor.UserID,
		SubjectID: subjectID,
		TopicIDs:  []uuid.UUID{topicID},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Mode:      entity.ModeHomeVisit,
	})
	assert.ErrorIs(t, err, domainerrors.ErrBookingModeUnavailable)
}

func TestBookingService_CreateBooking_UntaughtTopic(t *testing.T) {
	service, _, _, tutorRepo, _ := newBookingService(t)

	ctx := context.Background()
	subjectID := uuid.New()
	tutor := bookableTutor(subjectID, uuid.New())
	start := time.Now()

	tutorRepo.EXPECT().FindByUserID(ctx, tutor.UserID).Return(tutor, nil)

	_, err := service.CreateBooking(ctx, usecase.CreateBookingInput{
		StudentID: uuid.New(),
		TutorID:   tutor.UserID,
		SubjectID: subjectID,
		TopicIDs:  []uuid.UUID{uuid.New()},
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Mode:      entity.ModeOnline,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_CreateBooking_EndBeforeStart(t *testing.T) {
	service, _, _, _, _ := newBookingService(t)

	start := time.Now()
	_, err := service.CreateBooking(context.Background(), usecase.CreateBookingInput{
		StudentID: uuid.New(),
		TutorID:   uuid.New(),
		StartTime: start,
		EndTime:   start.Add(-time.Hour),
		Mode:      entity.ModeOnline,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestBookingService_ConfirmBooking_NotifiesStudent(t *testing.T) {
	service, txManager, _, _, dispatcher := newBookingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	studentID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), StudentID: studentID, TutorID: tutorID, Status: entity.BookingPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	txBookingRepo.EXPECT().Update(ctx, booking).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.UserID == studentID && event.Title == "Booking confirmed"
		})).
		Return()

	confirmed, err := service.ConfirmBooking(ctx, tutorID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, confirmed.Status)
}

func TestBookingService_ConfirmBooking_WrongTutor(t *testing.T) {
	service, txManager, _, _, _ := newBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{ID: uuid.New(), StudentID: uuid.New(), TutorID: uuid.New(), Status: entity.BookingPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.ConfirmBooking(ctx, uuid.New(), booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_CompleteBooking(t *testing.T) {
	service, txManager, _, _, dispatcher := newBookingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), StudentID: uuid.New(), TutorID: tutorID, Status: entity.BookingConfirmed}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	txBookingRepo.EXPECT().Update(ctx, booking).Return(nil)
	dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	completed, err := service.CompleteBooking(ctx, tutorID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCompleted, completed.Status)
}

func TestBookingService_CompleteBooking_PendingBookingRejected(t *testing.T) {
	service, txManager, _, _, _ := newBookingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), StudentID: uuid.New(), TutorID: tutorID, Status: entity.BookingPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.CompleteBooking(ctx, tutorID, booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingTransitionInvalid)
}

func TestBookingService_CancelBooking_StudentCancelNotifiesTutor(t *testing.T) {
	service, txManager, _, _, dispatcher := newBookingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutorID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), StudentID: studentID, TutorID: tutorID, Status: entity.BookingConfirmed}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	txBookingRepo.EXPECT().Update(ctx, booking).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.UserID == tutorID && event.Message == "The session was cancelled: exam rescheduled"
		})).
		Return()

	cancelled, err := service.CancelBooking(ctx, studentID, booking.ID, "exam rescheduled")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingCancelled, cancelled.Status)
	assert.Equal(t, "exam rescheduled", cancelled.CancellationReason)
}

func TestBookingService_CancelBooking_StrangerForbidden(t *testing.T) {
	service, txManager, _, _, _ := newBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{ID: uuid.New(), StudentID: uuid.New(), TutorID: uuid.New(), Status: entity.BookingPending}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.CancelBooking(ctx, uuid.New(), booking.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_CancelBooking_CompletedBookingRejected(t *testing.T) {
	service, txManager, _, _, _ := newBookingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), StudentID: studentID, TutorID: uuid.New(), Status: entity.BookingCompleted}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(txManager, factory)

	txBookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.CancelBooking(ctx, studentID, booking.ID, "")
	assert.ErrorIs(t, err, domainerrors.ErrBookingTransitionInvalid)
}

func TestBookingService_GetBooking_PartyOnly(t *testing.T) {
	service, _, bookingRepo, _, _ := newBookingService(t)

	ctx := context.Background()
	booking := &entity.Booking{ID: uuid.New(), StudentID: uuid.New(), TutorID: uuid.New()}

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil).Twice()

	got, err := service.GetBooking(ctx, booking.TutorID, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking, got)

	_, err = service.GetBooking(ctx, uuid.New(), booking.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBookingService_GetBooking_NotFound(t *testing.T) {
	service, _, bookingRepo, _, _ := newBookingService(t)

	ctx := context.Background()
	bookingID := uuid.New()

	bookingRepo.EXPECT().FindByID(ctx, bookingID).Return(nil, repository.ErrBookingNotFound)

	_, err := service.GetBooking(ctx, uuid.New(), bookingID)
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotFound)
}

func TestBookingService_ListBookings_TutorSide(t *testing.T) {
	service, _, bookingRepo, _, _ := newBookingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	bookings := []entity.Booking{{ID: uuid.New(), TutorID: tutorID}}

	bookingRepo.EXPECT().
		ListByTutor(ctx, tutorID, repository.BookingFilter{Status: entity.BookingPending, Page: 1, PerPage: 20}).
		Return(bookings, int64(1), nil)

	page, err := service.ListBookings(ctx, usecase.ListBookingsInput{
		UserID:  tutorID,
		AsTutor: true,
		Status:  entity.BookingPending,
	})
	require.NoError(t, err)
	assert.Equal(t, bookings, page.Bookings)
	assert.Equal(t, int64(1), page.Total)
}
