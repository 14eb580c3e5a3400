package impl

import (
	"context"
	"testing"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"
	mockUsecase "verifiedtutors/internal/mocks/usecase"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRatingService(t *testing.T) (usecase.RatingUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockRatingRepository, *mockUsecase.MockNotificationDispatcher) {
	txManager := mockRepo.NewMockTransactionManager(t)
	ratingRepo := mockRepo.NewMockRatingRepository(t)
	dispatcher := mockUsecase.NewMockNotificationDispatcher(t)

	service := NewRatingService(RatingServiceParams{
		TxManager:  txManager,
		RatingRepo: ratingRepo,
		Dispatcher: dispatcher,
		Logger:     newDiscardLogger(),
	})

	return service, txManager, ratingRepo, dispatcher
}

func completedBooking(studentID, tutorID uuid.UUID) *entity.Booking {
	return &entity.Booking{
		ID:        uuid.New(),
		StudentID: studentID,
		TutorID:   tutorID,
		SubjectID: uuid.New(),
		TopicIDs:  []uuid.UUID{uuid.New()},
		Status:    entity.BookingCompleted,
	}
}

func TestRatingService_CreateRating_FirstRatingSetsAggregate(t *testing.T) {
	service, txManager, _, dispatcher := newRatingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutorID := uuid.New()
	booking := completedBooking(studentID, tutorID)
	tutor := &entity.Tutor{UserID: tutorID}

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewBookingRepository().Return(bookingRepo)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(tutor, nil)
	txRatingRepo.EXPECT().FindByBooking(ctx, booking.ID).Return(nil, repository.ErrRatingNotFound)
	txRatingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rating")).Return(nil)
	txRatingRepo.EXPECT().StatsForTutor(ctx, tutorID).Return(repository.RatingStats{Average: 4, Count: 1}, nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	rating, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: studentID,
		BookingID: booking.ID,
		Score:     4,
		Review:    "Clear explanations and patient teaching.",
	})
	require.NoError(t, err)
	assert.Equal(t, booking.TutorID, rating.TutorID)
	assert.Equal(t, booking.TopicIDs, rating.TopicIDs)
	assert.Equal(t, float64(4), tutor.Rating)
	assert.Equal(t, 1, tutor.TotalReviews)
}

func TestRatingService_CreateRating_SecondRatingMovesMean(t *testing.T) {
	service, txManager, _, dispatcher := newRatingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutorID := uuid.New()
	booking := completedBooking(studentID, tutorID)
	tutor := &entity.Tutor{UserID: tutorID, Rating: 4, TotalReviews: 1}

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewBookingRepository().Return(bookingRepo)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(tutor, nil)
	txRatingRepo.EXPECT().FindByBooking(ctx, booking.ID).Return(nil, repository.ErrRatingNotFound)
	txRatingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Rating")).Return(nil)
	txRatingRepo.EXPECT().StatsForTutor(ctx, tutorID).Return(repository.RatingStats{Average: 4.5, Count: 2}, nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	_, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: studentID,
		BookingID: booking.ID,
		Score:     5,
		Review:    "Even better the second time around.",
	})
	require.NoError(t, err)
	assert.Equal(t, 4.5, tutor.Rating)
	assert.Equal(t, 2, tutor.TotalReviews)
}

func TestRatingService_CreateRating_SameBookingUpdatesInPlace(t *testing.T) {
	service, txManager, _, dispatcher := newRatingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutorID := uuid.New()
	booking := completedBooking(studentID, tutorID)
	tutor := &entity.Tutor{UserID: tutorID, Rating: 2, TotalReviews: 1}
	existing := &entity.Rating{
		ID:        uuid.New(),
		BookingID: booking.ID,
		TutorID:   tutorID,
		StudentID: studentID,
		Score:     2,
		Review:    "First impression was mixed.",
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewBookingRepository().Return(bookingRepo)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)
	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(tutor, nil)
	txRatingRepo.EXPECT().FindByBooking(ctx, booking.ID).Return(existing, nil)
	txRatingRepo.EXPECT().Update(ctx, existing).Return(nil)
	txRatingRepo.EXPECT().StatsForTutor(ctx, tutorID).Return(repository.RatingStats{Average: 5, Count: 1}, nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	rating, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: studentID,
		BookingID: booking.ID,
		Score:     5,
		Review:    "Changed my mind, excellent tutor.",
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, rating.ID)
	assert.Equal(t, float64(5), rating.Score)
	assert.Equal(t, float64(5), tutor.Rating)
}

func TestRatingService_CreateRating_BookingNotCompleted(t *testing.T) {
	service, txManager, _, _ := newRatingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	booking := completedBooking(studentID, uuid.New())
	booking.Status = entity.BookingConfirmed

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(bookingRepo)
	factory.EXPECT().NewRatingRepository().Return(mockRepo.NewMockRatingRepository(t))
	factory.EXPECT().NewTutorRepository().Return(mockRepo.NewMockTutorRepository(t))
	expectTx(txManager, factory)

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: studentID,
		BookingID: booking.ID,
		Score:     4,
		Review:    "Trying to rate before the session ended.",
	})
	assert.ErrorIs(t, err, domainerrors.ErrBookingNotCompleted)
}

func TestRatingService_CreateRating_OtherStudentsBooking(t *testing.T) {
	service, txManager, _, _ := newRatingService(t)

	ctx := context.Background()
	booking := completedBooking(uuid.New(), uuid.New())

	factory := mockRepo.NewMockRepositoryFactory(t)
	bookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewBookingRepository().Return(bookingRepo)
	factory.EXPECT().NewRatingRepository().Return(mockRepo.NewMockRatingRepository(t))
	factory.EXPECT().NewTutorRepository().Return(mockRepo.NewMockTutorRepository(t))
	expectTx(txManager, factory)

	bookingRepo.EXPECT().FindByID(ctx, booking.ID).Return(booking, nil)

	_, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: uuid.New(),
		BookingID: booking.ID,
		Score:     4,
		Review:    "This booking belongs to someone else.",
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRatingService_CreateRating_RejectsBadInput(t *testing.T) {
	service, _, _, _ := newRatingService(t)
	ctx := context.Background()

	_, err := service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: uuid.New(),
		BookingID: uuid.New(),
		Score:     6,
		Review:    "Score is out of the accepted range.",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = service.CreateRating(ctx, usecase.CreateRatingInput{
		StudentID: uuid.New(),
		BookingID: uuid.New(),
		Score:     4,
		Review:    "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestRatingService_DeleteRating_LastRatingResetsAggregate(t *testing.T) {
	service, txManager, _, _ := newRatingService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutorID := uuid.New()
	tutor := &entity.Tutor{UserID: tutorID, Rating: 4.5, TotalReviews: 1}
	rating := &entity.Rating{ID: uuid.New(), TutorID: tutorID, StudentID: studentID, Score: 4.5}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	txRatingRepo.EXPECT().FindByID(ctx, rating.ID).Return(rating, nil)
	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(tutor, nil)
	txRatingRepo.EXPECT().Delete(ctx, rating.ID).Return(nil)
	txRatingRepo.EXPECT().StatsForTutor(ctx, tutorID).Return(repository.RatingStats{}, nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	err := service.DeleteRating(ctx, studentID, entity.RoleStudent, rating.ID)
	require.NoError(t, err)
	assert.Zero(t, tutor.Rating)
	assert.Zero(t, tutor.TotalReviews)
}

func TestRatingService_DeleteRating_AdminMayDeleteAnyRating(t *testing.T) {
	service, txManager, _, _ := newRatingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	tutor := &entity.Tutor{UserID: tutorID}
	rating := &entity.Rating{ID: uuid.New(), TutorID: tutorID, StudentID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	txRatingRepo.EXPECT().FindByID(ctx, rating.ID).Return(rating, nil)
	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(tutor, nil)
	txRatingRepo.EXPECT().Delete(ctx, rating.ID).Return(nil)
	txRatingRepo.EXPECT().StatsForTutor(ctx, tutorID).Return(repository.RatingStats{}, nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	err := service.DeleteRating(ctx, uuid.New(), entity.RoleAdmin, rating.ID)
	require.NoError(t, err)
}

func TestRatingService_DeleteRating_StrangerForbidden(t *testing.T) {
	service, txManager, _, _ := newRatingService(t)

	ctx := context.Background()
	rating := &entity.Rating{ID: uuid.New(), TutorID: uuid.New(), StudentID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txRatingRepo := mockRepo.NewMockRatingRepository(t)
	factory.EXPECT().NewRatingRepository().Return(txRatingRepo)
	factory.EXPECT().NewTutorRepository().Return(mockRepo.NewMockTutorRepository(t))
	expectTx(txManager, factory)

	txRatingRepo.EXPECT().FindByID(ctx, rating.ID).Return(rating, nil)

	err := service.DeleteRating(ctx, uuid.New(), entity.RoleStudent, rating.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRatingService_ListTutorRatings(t *testing.T) {
	service, _, ratingRepo, _ := newRatingService(t)

	ctx := context.Background()
	tutorID := uuid.New()
	ratings := []entity.Rating{{ID: uuid.New(), TutorID: tutorID}}

	ratingRepo.EXPECT().ListByTutor(ctx, tutorID, 1, 20).Return(ratings, int64(1), nil)

	page, err := service.ListTutorRatings(ctx, tutorID, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, ratings, page.Ratings)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PerPage)
}

func TestRatingService_ListTutorRatings_RepoError(t *testing.T) {
	service, _, ratingRepo, _ := newRatingService(t)

	ctx := context.Background()
	tutorID := uuid.New()

	ratingRepo.EXPECT().ListByTutor(ctx, tutorID, 1, 20).Return(nil, int64(0), errors.New("connection reset"))

	_, err := service.ListTutorRatings(ctx, tutorID, 1, 20)
	assert.Error(t, err)
}
