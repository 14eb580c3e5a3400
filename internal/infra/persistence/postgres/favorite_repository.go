package postgres

import (
	"context"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// favoriteRepository implements the domain.FavoriteRepository interface using GORM.
type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository is the constructor for favoriteRepository.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Find retrieves the favorite for a (student, tutor) pair.
func (repo *favoriteRepository) Find(ctx context.Context, studentID, tutorID uuid.UUID) (*entity.Favorite, error) {
	var favoriteM model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ? AND tutor_id = ?", studentID, tutorID).
		First(&favoriteM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFavoriteNotFound
		}

		return nil, errors.Wrap(err, "failed to find favorite")
	}

	return toFavoriteDomain(&favoriteM), nil
}

// ListByStudent returns the student's favorites newest first.
func (repo *favoriteRepository) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Favorite, error) {
	var favoriteMs []model.FavoriteModel
	err := repo.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&favoriteMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	favorites := make([]entity.Favorite, 0, len(favoriteMs))
	for i := range favoriteMs {
		favorites = append(favorites, *toFavoriteDomain(&favoriteMs[i]))
	}

	return favorites, nil
}

// Create persists a new favorite.
func (repo *favoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	favoriteM := fromFavoriteDomain(favorite)

	if err := repo.db.WithContext(ctx).Create(favoriteM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrFavoriteExists.WrapMessage("tutor already favorited")
		}

		return errors.Wrap(err, "failed to create favorite")
	}

	favorite.ID = favoriteM.ID
	favorite.CreatedAt = favoriteM.CreatedAt

	return nil
}

// Delete removes the favorite for a (student, tutor) pair.
func (repo *favoriteRepository) Delete(ctx context.Context, studentID, tutorID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("student_id = ? AND tutor_id = ?", studentID, tutorID).
		Delete(&model.FavoriteModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete favorite")
	}
	if result.RowsAffected == 0 {
		return repository.ErrFavoriteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFavoriteDomain(data *model.FavoriteModel) *entity.Favorite {
	if data == nil {
		return nil
	}

	return &entity.Favorite{
		ID:        data.ID,
		StudentID: data.StudentID,
		TutorID:   data.TutorID,
		CreatedAt: data.CreatedAt,
	}
}

func fromFavoriteDomain(data *entity.Favorite) *model.FavoriteModel {
	if data == nil {
		return nil
	}

	return &model.FavoriteModel{
		ID:        data.ID,
		StudentID: data.StudentID,
		TutorID:   data.TutorID,
		CreatedAt: data.CreatedAt,
	}
}
