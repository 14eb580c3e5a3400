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

// favoriteService implements the FavoriteUsecase interface. The pair
// row and the tutor's counter move in one transaction, so the counter
// never drifts from the weight of the table.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddFavorite bookmarks a tutor and bumps the tutor's counter.
func (srv *favoriteService) AddFavorite(ctx context.Context, studentID, tutorID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, tutorID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		favorite := &entity.Favorite{ID: uuid.New(), StudentID: studentID, TutorID: tutorID}
		if err := repoFactory.NewFavoriteRepository().Create(ctx, favorite); err != nil {
			return errors.Wrap(err, "failed to create favorite")
		}

		tutor.TotalFavorites++

		return errors.Wrap(tutorRepo.Update(ctx, tutor), "failed to update favorite count")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Favorite added", slog.Any("studentID", studentID), slog.Any("tutorID", tutorID))

	return nil
}

// RemoveFavorite drops the bookmark and the counter together.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, studentID, tutorID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.NewFavoriteRepository()
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, tutorID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		if _, err := favoriteRepo.Find(ctx, studentID, tutorID); errors.Is(err, repository.ErrFavoriteNotFound) {
			return errors.WithStack(domainerrors.ErrFavoriteNotFound)
		} else if err != nil {
			return errors.Wrap(err, "failed to find favorite")
		}

		if err := favoriteRepo.Delete(ctx, studentID, tutorID); err != nil {
			return errors.Wrap(err, "failed to delete favorite")
		}

		if tutor.TotalFavorites > 0 {
			tutor.TotalFavorites--
		}

		return errors.Wrap(tutorRepo.Update(ctx, tutor), "failed to update favorite count")
	})
}

// ListFavorites returns the student's bookmarks newest first.
func (srv *favoriteService) ListFavorites(ctx context.Context, studentID uuid.UUID) ([]entity.Favorite, error) {
	favorites, err := srv.favoriteRepo.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return favorites, nil
}
