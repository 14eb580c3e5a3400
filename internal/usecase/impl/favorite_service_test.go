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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFavoriteService(t *testing.T) (usecase.FavoriteUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockFavoriteRepository) {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		TxManager:    txManager,
		FavoriteRepo: favoriteRepo,
		Logger:       newDiscardLogger(),
	})

	return service, txManager, favoriteRepo
}

func TestFavoriteService_AddFavorite_BumpsCounter(t *testing.T) {
	service, txManager, _ := newFavoriteService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), TotalFavorites: 2}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	expectTx(txManager, factory)

	tutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txFavoriteRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(favorite *entity.Favorite) bool {
			return favorite.StudentID == studentID && favorite.TutorID == tutor.UserID
		})).
		Return(nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	err := service.AddFavorite(ctx, studentID, tutor.UserID)
	require.NoError(t, err)
	assert.Equal(t, 3, tutor.TotalFavorites)
}

func TestFavoriteService_AddFavorite_TutorMissing(t *testing.T) {
	service, txManager, _ := newFavoriteService(t)

	ctx := context.Background()
	tutorID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	expectTx(txManager, factory)

	tutorRepo.EXPECT().AcquireLock(ctx, tutorID).Return(nil, repository.ErrTutorNotFound)

	err := service.AddFavorite(ctx, uuid.New(), tutorID)
	assert.ErrorIs(t, err, domainerrors.ErrTutorNotFound)
}

func TestFavoriteService_RemoveFavorite_DropsCounter(t *testing.T) {
	service, txManager, _ := newFavoriteService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New(), TotalFavorites: 1}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	expectTx(txManager, factory)

	tutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txFavoriteRepo.EXPECT().Find(ctx, studentID, tutor.UserID).Return(&entity.Favorite{}, nil)
	txFavoriteRepo.EXPECT().Delete(ctx, studentID, tutor.UserID).Return(nil)
	tutorRepo.EXPECT().Update(ctx, tutor).Return(nil)

	err := service.RemoveFavorite(ctx, studentID, tutor.UserID)
	require.NoError(t, err)
	assert.Zero(t, tutor.TotalFavorites)
}

func TestFavoriteService_RemoveFavorite_NotBookmarked(t *testing.T) {
	service, txManager, _ := newFavoriteService(t)

	ctx := context.Background()
	studentID := uuid.New()
	tutor := &entity.Tutor{UserID: uuid.New()}

	factory := mockRepo.NewMockRepositoryFactory(t)
	tutorRepo := mockRepo.NewMockTutorRepository(t)
	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	factory.EXPECT().NewTutorRepository().Return(tutorRepo)
	factory.EXPECT().NewFavoriteRepository().Return(txFavoriteRepo)
	expectTx(txManager, factory)

	tutorRepo.EXPECT().AcquireLock(ctx, tutor.UserID).Return(tutor, nil)
	txFavoriteRepo.EXPECT().Find(ctx, studentID, tutor.UserID).Return(nil, repository.ErrFavoriteNotFound)

	err := service.RemoveFavorite(ctx, studentID, tutor.UserID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_ListFavorites(t *testing.T) {
	service, _, favoriteRepo := newFavoriteService(t)

	ctx := context.Background()
	studentID := uuid.New()
	favorites := []entity.Favorite{{ID: uuid.New(), StudentID: studentID}}

	favoriteRepo.EXPECT().ListByStudent(ctx, studentID).Return(favorites, nil)

	got, err := service.ListFavorites(ctx, studentID)
	require.NoError(t, err)
	assert.Equal(t, favorites, got)
}
