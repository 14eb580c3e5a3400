package postgres

import (
	"context"
	"encoding/json"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// rating uniqueness indexes. Which one fires decides the domain error:
// the booking index means this booking is already rated, the
// tutor/student/topics index means the same selection was rated on a
// different booking.
const (
	ratingBookingIndex = "uq_ratings_booking"
	ratingTopicsIndex  = "uq_ratings_tutor_student_topics"
)

// ratingRepository implements the domain.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// FindByID retrieves a single rating.
func (repo *ratingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by id")
	}

	return toRatingDomain(&ratingM)
}

// FindByBooking retrieves the rating attached to a booking, if any.
func (repo *ratingRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating by booking")
	}

	return toRatingDomain(&ratingM)
}

// ListByTutor pages a tutor's ratings newest first.
func (repo *ratingRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID, page, perPage int) ([]entity.Rating, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("tutor_id = ?", tutorID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count ratings")
	}

	var ratingMs []model.RatingModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&ratingMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list ratings")
	}

	ratings := make([]entity.Rating, 0, len(ratingMs))
	for i := range ratingMs {
		rating, err := toRatingDomain(&ratingMs[i])
		if err != nil {
			return nil, 0, err
		}
		ratings = append(ratings, *rating)
	}

	return ratings, total, nil
}

// StatsForTutor computes the mean score and count over all of the
// tutor's ratings in a single aggregate query. With no ratings both
// come back zero.
func (repo *ratingRepository) StatsForTutor(ctx context.Context, tutorID uuid.UUID) (repository.RatingStats, error) {
	var stats repository.RatingStats
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Where("tutor_id = ?", tutorID).
		Scan(&stats).Error
	if err != nil {
		return repository.RatingStats{}, errors.Wrap(err, "failed to aggregate tutor ratings")
	}

	return stats, nil
}

// Create persists a new rating. The TopicsKey column is derived from
// the topic selection here so the uniqueness index always sees the
// canonical form.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM, err := fromRatingDomain(rating)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if violatesConstraint(err, ratingBookingIndex) {
			return domainerrors.ErrBookingAlreadyRated.WrapMessage("booking already rated")
		}
		if violatesConstraint(err, ratingTopicsIndex) {
			return domainerrors.ErrDuplicateTopicRating.WrapMessage("tutor already rated for this topic selection")
		}

		return errors.Wrap(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// Update modifies an existing rating.
func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	ratingM, err := fromRatingDomain(rating)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(ratingM).Error; err != nil {
		if violatesConstraint(err, ratingTopicsIndex) {
			return domainerrors.ErrDuplicateTopicRating.WrapMessage("tutor already rated for this topic selection")
		}

		return errors.Wrap(err, "failed to update rating")
	}

	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

// Delete removes a rating row.
func (repo *ratingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RatingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRatingDomain(data *model.RatingModel) (*entity.Rating, error) {
	if data == nil {
		return nil, nil
	}

	var topicIDs []uuid.UUID
	if len(data.TopicIDs) > 0 {
		if err := json.Unmarshal(data.TopicIDs, &topicIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode rating topic ids")
		}
	}

	return &entity.Rating{
		ID:        data.ID,
		BookingID: data.BookingID,
		TutorID:   data.TutorID,
		StudentID: data.StudentID,
		SubjectID: data.SubjectID,
		TopicIDs:  topicIDs,
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}

func fromRatingDomain(data *entity.Rating) (*model.RatingModel, error) {
	if data == nil {
		return nil, nil
	}

	topicIDs, err := json.Marshal(data.TopicIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode rating topic ids")
	}

	return &model.RatingModel{
		ID:        data.ID,
		BookingID: data.BookingID,
		TutorID:   data.TutorID,
		StudentID: data.StudentID,
		SubjectID: data.SubjectID,
		TopicIDs:  datatypes.JSON(topicIDs),
		TopicsKey: entity.TopicsFingerprint(data.TopicIDs),
		Score:     data.Score,
		Review:    data.Review,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}, nil
}
