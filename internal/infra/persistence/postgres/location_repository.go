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

// locationRepository implements the domain.LocationRepository interface using GORM.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// FindByID retrieves a single location.
func (repo *locationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	var locationM model.LocationModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by id")
	}

	return toLocationDomain(&locationM), nil
}

// ListActive returns every active location as a flat slice ordered by
// level then name. Tree assembly happens in the domain layer.
func (repo *locationRepository) ListActive(ctx context.Context) ([]entity.Location, error) {
	var locationMs []model.LocationModel
	err := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("level ASC, name ASC").
		Find(&locationMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active locations")
	}

	locations := make([]entity.Location, 0, len(locationMs))
	for i := range locationMs {
		locations = append(locations, *toLocationDomain(&locationMs[i]))
	}

	return locations, nil
}

// CountChildren reports how many locations point at the given parent.
func (repo *locationRepository) CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.LocationModel{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count location children")
	}

	return count, nil
}

// Create persists a new location.
func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLocationNameTaken.WrapMessage("sibling with the same name exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationParentInvalid.WrapMessage("parent location missing")
		}

		return errors.Wrap(err, "failed to create location")
	}

	location.ID = locationM.ID
	location.CreatedAt = locationM.CreatedAt
	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Update modifies an existing location.
func (repo *locationRepository) Update(ctx context.Context, location *entity.Location) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).Save(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLocationNameTaken.WrapMessage("sibling with the same name exists")
		}

		return errors.Wrap(err, "failed to update location")
	}

	location.UpdatedAt = locationM.UpdatedAt

	return nil
}

// Delete removes a location row. The child guard lives in the use case
// layer, which checks CountChildren first.
func (repo *locationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.LocationModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete location")
	}
	if result.RowsAffected == 0 {
		return repository.ErrLocationNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		ParentID:  data.ParentID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		ID:        data.ID,
		Name:      data.Name,
		Level:     data.Level,
		ParentID:  data.ParentID,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
