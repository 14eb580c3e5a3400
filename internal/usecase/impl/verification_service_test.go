package impl

import (
	"context"
	"testing"
	"time"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	mockRepo "verifiedtutors/internal/mocks/repository"
	mockUsecase "verifiedtutors/internal/mocks/usecase"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerificationService(t *testing.T) (usecase.VerificationUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockTutorRepository, *mockUsecase.MockNotificationDispatcher) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	dispatcher := mockUsecase.NewMockNotificationDispatcher(t)

	service := NewVerificationService(VerificationServiceParams{
		TxManager:  txManager,
		TutorRepo:  tutorRepo,
		Dispatcher: dispatcher,
		Logger:     newDiscardLogger(),
	})

	return service, txManager, tutorRepo, dispatcher
}

func lockedTutorFactory(t *testing.T, txManager *mockRepo.MockTransactionManager, tutor *entity.Tutor) *mockRepo.MockTutorRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)
	tutorRepo.EXPECT().AcquireLock(mock.Anything, tutor.UserID).Return(tutor, nil)

	return tutorRepo
}

func TestVerificationService_Approve_SignsOffEveryCheck(t *testing.T) {
	service, txManager, _, dispatcher := newVerificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), Verification: entity.Verification{Status: entity.VerificationPending}}

	txTutorRepo := lockedTutorFactory(t, txManager, tutor)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.UserID == tutor.UserID &&
				event.Priority == entity.PriorityHigh &&
				event.EmailSubject == "Your VerifiedTutors profile is approved" &&
				event.SMSBody != ""
		})).
		Return()

	approved, err := service.Approve(ctx, adminID, tutor.UserID)
	require.NoError(t, err)
	assert.True(t, approved.Verification.IsVerified)
	assert.Equal(t, entity.VerificationApproved, approved.Verification.Status)
	assert.Equal(t, entity.VerificationChecks{Profile: true, Education: true, Documents: true, Background: true}, approved.Verification.Checks)
	require.NotNil(t, approved.Verification.VerifiedBy)
	assert.Equal(t, adminID, *approved.Verification.VerifiedBy)
	assert.NotNil(t, approved.Verification.VerifiedAt)
}

func TestVerificationService_Approve_AlreadyVerified(t *testing.T) {
	service, txManager, _, _ := newVerificationService(t)

	ctx := context.Background()
	tutor := &entity.Tutor{UserID: uuid.New(), Verification: entity.Verification{Status: entity.VerificationApproved, IsVerified: true}}

	lockedTutorFactory(t, txManager, tutor)

	_, err := service.Approve(ctx, uuid.New(), tutor.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrTutorAlreadyVerified)
}

func TestVerificationService_Reject_RequiresReason(t *testing.T) {
	service, _, _, _ := newVerificationService(t)

	_, err := service.Reject(context.Background(), uuid.New(), uuid.New(), "")
	assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)
}

func TestVerificationService_Reject_KeepsReasonOnRecord(t *testing.T) {
	service, txManager, _, dispatcher := newVerificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), Verification: entity.Verification{Status: entity.VerificationPending}}

	txTutorRepo := lockedTutorFactory(t, txManager, tutor)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.Category == entity.CategoryError && event.Priority == entity.PriorityHigh
		})).
		Return()

	rejected, err := service.Reject(ctx, adminID, tutor.UserID, "degree certificate unreadable")
	require.NoError(t, err)
	assert.Equal(t, entity.VerificationRejected, rejected.Verification.Status)
	assert.False(t, rejected.Verification.IsVerified)
	assert.Equal(t, "degree certificate unreadable", rejected.Verification.RejectionReason)
}

func TestVerificationService_Toggle_VerifiedBackToPending(t *testing.T) {
	service, txManager, _, dispatcher := newVerificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New()}
	tutor.Verification.Approve(adminID, time.Now().UTC())

	txTutorRepo := lockedTutorFactory(t, txManager, tutor)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.Category == entity.CategoryWarning && event.Title == "Verification revoked"
		})).
		Return()

	toggled, err := service.Toggle(ctx, adminID, tutor.UserID)
	require.NoError(t, err)
	assert.False(t, toggled.Verification.IsVerified)
	assert.Equal(t, entity.VerificationPending, toggled.Verification.Status)
	assert.Nil(t, toggled.Verification.VerifiedBy)
}

func TestVerificationService_Toggle_UnverifiedBecomesApproved(t *testing.T) {
	service, txManager, _, dispatcher := newVerificationService(t)

	ctx := context.Background()
	adminID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), Verification: entity.Verification{Status: entity.VerificationRejected}}

	txTutorRepo := lockedTutorFactory(t, txManager, tutor)
	txTutorRepo.EXPECT().Update(ctx, tutor).Return(nil)
	dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(event *usecase.NotificationEvent) bool {
			return event.Category == entity.CategorySuccess && event.Title == "Verification restored"
		})).
		Return()

	toggled, err := service.Toggle(ctx, adminID, tutor.UserID)
	require.NoError(t, err)
	assert.True(t, toggled.Verification.IsVerified)
	assert.Equal(t, entity.VerificationApproved, toggled.Verification.Status)
}

func TestVerificationService_ListByStatus(t *testing.T) {
	service, _, tutorRepo, _ := newVerificationService(t)

	ctx := context.Background()
	tutors := []entity.Tutor{{UserID: uuid.New()}}

	tutorRepo.EXPECT().
		ListByVerificationStatus(ctx, entity.VerificationPending, 1, 20).
		Return(tutors, int64(1), nil)

	page, err := service.ListByStatus(ctx, entity.VerificationPending, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, tutors, page.Tutors)
	assert.Equal(t, int64(1), page.Total)
}
