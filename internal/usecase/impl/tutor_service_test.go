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

type tutorServiceMocks struct {
	txManager   *mockRepo.MockTransactionManager
	tutorRepo   *mockRepo.MockTutorRepository
	subjectRepo *mockRepo.MockSubjectRepository
	bookingRepo *mockRepo.MockBookingRepository
	dispatcher  *mockUsecase.MockNotificationDispatcher
}

func newTutorService(t *testing.T) (usecase.TutorUsecase, *tutorServiceMocks) {
	m := &tutorServiceMocks{
		txManager:   mockRepo.NewMockTransactionManager(t),
		tutorRepo:   mockRepo.NewMockTutorRepository(t),
		subjectRepo: mockRepo.NewMockSubjectRepository(t),
		bookingRepo: mockRepo.NewMockBookingRepository(t),
		dispatcher:  mockUsecase.NewMockNotificationDispatcher(t),
	}

	svc := NewTutorService(TutorServiceParams{
		TxManager:   m.txManager,
		TutorRepo:   m.tutorRepo,
		SubjectRepo: m.subjectRepo,
		BookingRepo: m.bookingRepo,
		Dispatcher:  m.dispatcher,
		Logger:      newDiscardLogger(),
	})

	return svc, m
}

func onlineSubjectInput(subjectID uuid.UUID) usecase.TutorSubjectInput {
	return usecase.TutorSubjectInput{
		SubjectID: subjectID,
		Modes: map[entity.TeachingMode]entity.ModeOffering{
			entity.ModeOnline: {Enabled: true, HourlyRate: 2000},
		},
	}
}

func TestTutorService_UpdateProfile_SavesEditableSections(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), Verification: entity.Verification{Status: entity.VerificationPending}}

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	m.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.Title == "Profile under review"
		})).
		Return()

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   tutor.UserID,
		Bio:      "Physics graduate with five years of A/L teaching.",
		Subjects: []usecase.TutorSubjectInput{onlineSubjectInput(subjectID)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Physics graduate with five years of A/L teaching.", updated.Bio)
	require.Len(t, updated.Subjects, 1)
	assert.Equal(t, subjectID, updated.Subjects[0].SubjectID)
}

func TestTutorService_UpdateProfile_CriticalEditResetsVerification(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New()}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   tutor.UserID,
		Subjects: []usecase.TutorSubjectInput{onlineSubjectInput(subjectID)},
	})
	require.NoError(t, err)
	assert.False(t, updated.Verification.IsVerified)
	assert.Equal(t, entity.VerificationPending, updated.Verification.Status)
}

func TestTutorService_UpdateProfile_NonCriticalEditKeepsVerification(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	tutor := &entity.Tutor{UserID: uuid.New()}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID: tutor.UserID,
		Bio:    "Updated bio only.",
	})
	require.NoError(t, err)
	assert.True(t, updated.Verification.IsVerified)
	m.dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestTutorService_UpdateProfile_TopicSwapResetsVerification(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	oldTopicID := uuid.New()
	newTopicID := uuid.New()

	tutor := &entity.Tutor{
		UserID: uuid.New(),
		Subjects: []entity.TutorSubject{{
			SubjectID: subjectID,
			TopicIDs:  []uuid.UUID{oldTopicID},
			Modes: map[entity.TeachingMode]entity.ModeOffering{
				entity.ModeOnline: {Enabled: true, HourlyRate: 2000},
			},
		}},
	}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	input := onlineSubjectInput(subjectID)
	input.TopicIDs = []uuid.UUID{newTopicID}

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)
	m.subjectRepo.EXPECT().
		FindTopics(ctx, []uuid.UUID{newTopicID}).
		Return([]entity.Topic{{ID: newTopicID, SubjectID: subjectID, Name: "Mechanics"}}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   tutor.UserID,
		Subjects: []usecase.TutorSubjectInput{input},
	})
	require.NoError(t, err)
	assert.False(t, updated.Verification.IsVerified)
	assert.Equal(t, entity.VerificationPending, updated.Verification.Status)
}

func TestTutorService_UpdateProfile_RateChangeResetsVerification(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	tutor := &entity.Tutor{
		UserID: uuid.New(),
		Subjects: []entity.TutorSubject{{
			SubjectID: subjectID,
			Modes: map[entity.TeachingMode]entity.ModeOffering{
				entity.ModeOnline: {Enabled: true, HourlyRate: 1500},
			},
		}},
	}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	m.dispatcher.EXPECT().Dispatch(ctx, mock.AnythingOfType("*usecase.NotificationEvent")).Return()

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   tutor.UserID,
		Subjects: []usecase.TutorSubjectInput{onlineSubjectInput(subjectID)},
	})
	require.NoError(t, err)
	assert.False(t, updated.Verification.IsVerified)
}

func TestTutorService_UpdateProfile_AvailabilityChangeKeepsVerification(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	tutor := &entity.Tutor{
		UserID: uuid.New(),
		Subjects: []entity.TutorSubject{{
			SubjectID: subjectID,
			Modes: map[entity.TeachingMode]entity.ModeOffering{
				entity.ModeOnline: {Enabled: true, HourlyRate: 2000},
			},
		}},
	}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	input := onlineSubjectInput(subjectID)
	input.Availability = map[string][]entity.TimeSlot{
		"Saturday": {{Start: "09:00", End: "11:00"}},
	}

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	updated, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   tutor.UserID,
		Subjects: []usecase.TutorSubjectInput{input},
	})
	require.NoError(t, err)
	assert.True(t, updated.Verification.IsVerified)
	require.Len(t, updated.Subjects, 1)
	assert.Len(t, updated.Subjects[0].Availability[time.Saturday], 1)
	m.dispatcher.AssertNotCalled(t, "Dispatch")
}

func TestTutorService_UpdateProfile_RejectsUnknownWeekday(t *testing.T) {
	svc, _ := newTutorService(t)

	input := onlineSubjectInput(uuid.New())
	input.Availability = map[string][]entity.TimeSlot{
		"Someday": {{Start: "09:00", End: "11:00"}},
	}

	_, err := svc.UpdateProfile(context.Background(), usecase.UpdateTutorProfileInput{
		UserID:   uuid.New(),
		Subjects: []usecase.TutorSubjectInput{input},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTutorService_UpdateProfile_RejectsDisabledModes(t *testing.T) {
	svc, _ := newTutorService(t)

	_, err := svc.UpdateProfile(context.Background(), usecase.UpdateTutorProfileInput{
		UserID: uuid.New(),
		Subjects: []usecase.TutorSubjectInput{{
			SubjectID: uuid.New(),
			Modes: map[entity.TeachingMode]entity.ModeOffering{
				entity.ModeOnline: {Enabled: false, HourlyRate: 2000},
			},
		}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTutorService_UpdateProfile_RejectsTooManyTopics(t *testing.T) {
	svc, _ := newTutorService(t)

	topicIDs := make([]uuid.UUID, entity.MaxTopicsPerSubject+1)
	for i := range topicIDs {
		topicIDs[i] = uuid.New()
	}

	input := onlineSubjectInput(uuid.New())
	input.TopicIDs = topicIDs

	_, err := svc.UpdateProfile(context.Background(), usecase.UpdateTutorProfileInput{
		UserID:   uuid.New(),
		Subjects: []usecase.TutorSubjectInput{input},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTutorService_UpdateProfile_RejectsForeignTopics(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	topicID := uuid.New()
	input := onlineSubjectInput(subjectID)
	input.TopicIDs = []uuid.UUID{topicID}

	m.subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(&entity.Subject{ID: subjectID}, nil)
	m.subjectRepo.EXPECT().
		FindTopics(ctx, []uuid.UUID{topicID}).
		Return([]entity.Topic{{ID: topicID, SubjectID: uuid.New(), Name: "Genetics"}}, nil)

	_, err := svc.UpdateProfile(ctx, usecase.UpdateTutorProfileInput{
		UserID:   uuid.New(),
		Subjects: []usecase.TutorSubjectInput{input},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTutorService_UpdateProfile_RejectsIncompleteEducation(t *testing.T) {
	svc, _ := newTutorService(t)

	_, err := svc.UpdateProfile(context.Background(), usecase.UpdateTutorProfileInput{
		UserID:    uuid.New(),
		Education: []entity.EducationEntry{{Degree: "BSc Physics"}},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestTutorService_AddDocument_ResetsVerifiedProfile(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	tutor := &entity.Tutor{UserID: uuid.New()}
	tutor.Verification.Approve(uuid.New(), time.Now().UTC())

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	updated, err := svc.AddDocument(ctx, usecase.AddDocumentInput{
		UserID: tutor.UserID,
		URL:    "https://cdn.verifiedtutors.lk/docs/degree.pdf",
		Label:  "Degree certificate",
	})
	require.NoError(t, err)
	require.Len(t, updated.Documents, 1)
	assert.Equal(t, "Degree certificate", updated.Documents[0].Label)
	assert.False(t, updated.Verification.IsVerified)
}

func TestTutorService_RemoveDocument(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	docID := uuid.New()
	tutor := &entity.Tutor{
		UserID:    uuid.New(),
		Documents: []entity.Document{{ID: docID, Label: "Degree certificate"}, {ID: uuid.New(), Label: "NIC copy"}},
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	updated, err := svc.RemoveDocument(ctx, tutor.UserID, docID)
	require.NoError(t, err)
	require.Len(t, updated.Documents, 1)
	assert.Equal(t, "NIC copy", updated.Documents[0].Label)
}

func TestTutorService_RemoveDocument_UnknownID(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	tutor := &entity.Tutor{UserID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)

	_, err := svc.RemoveDocument(ctx, tutor.UserID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestTutorService_DeleteTutor_RefusedWithActiveBookings(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	tutor := &entity.Tutor{UserID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txBookingRepo.EXPECT().CountActiveByTutor(ctx, tutor.UserID).Return(int64(2), nil)

	err := svc.DeleteTutor(ctx, tutor.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrTutorHasActiveBookings)
}

func TestTutorService_DeleteTutor_RemovesProfileAndAccount(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	tutor := &entity.Tutor{UserID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txTutorRepo := mockRepo.NewMockTutorRepository(t)
	txBookingRepo := mockRepo.NewMockBookingRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory.EXPECT().NewTutorRepository().Return(txTutorRepo)
	factory.EXPECT().NewBookingRepository().Return(txBookingRepo)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)
	expectTx(m.txManager, factory)

	txTutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txBookingRepo.EXPECT().CountActiveByTutor(ctx, tutor.UserID).Return(int64(0), nil)
	txTutorRepo.EXPECT().Delete(ctx, tutor.UserID).Return(nil)
	txUserRepo.EXPECT().Delete(ctx, tutor.UserID).Return(nil)

	assert.NoError(t, svc.DeleteTutor(ctx, tutor.UserID))
}

func TestTutorService_SearchTutors_BuildsFilter(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()

	subjectID := uuid.New()
	tutors := []entity.Tutor{{UserID: uuid.New()}}

	m.tutorRepo.EXPECT().
		Search(ctx, repository.TutorSearchFilter{
			SubjectID:    &subjectID,
			Mode:         entity.ModeOnline,
			VerifiedOnly: true,
			MinRating:    4,
			Location:     "Colombo",
			Page:         1,
			PerPage:      20,
		}).
		Return(tutors, int64(1), nil)

	page, err := svc.SearchTutors(ctx, usecase.TutorSearchInput{
		SubjectID:    &subjectID,
		Mode:         entity.ModeOnline,
		VerifiedOnly: true,
		MinRating:    4,
		Location:     "Colombo",
	})
	require.NoError(t, err)
	assert.Equal(t, tutors, page.Tutors)
	assert.Equal(t, int64(1), page.Total)
}

func TestTutorService_GetTutor_NotFound(t *testing.T) {
	svc, m := newTutorService(t)
	ctx := context.Background()
	userID := uuid.New()

	m.tutorRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrTutorNotFound)

	_, err := svc.GetTutor(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrTutorNotFound)
}
