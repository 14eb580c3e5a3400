package postgres

import (
	"context"
	"encoding/json"

	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// bookingRepository implements the domain.BookingRepository interface using GORM.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// FindByID retrieves a single booking.
func (repo *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking by id")
	}

	return toBookingDomain(&bookingM)
}

// ListByStudent pages the student's bookings newest first.
func (repo *bookingRepository) ListByStudent(ctx context.Context, studentID uuid.UUID, filter repository.BookingFilter) ([]entity.Booking, int64, error) {
	return repo.listByParty(ctx, "student_id", studentID, filter)
}

// ListByTutor pages the tutor's bookings newest first.
func (repo *bookingRepository) ListByTutor(ctx context.Context, tutorID uuid.UUID, filter repository.BookingFilter) ([]entity.Booking, int64, error) {
	return repo.listByParty(ctx, "tutor_id", tutorID, filter)
}

func (repo *bookingRepository) listByParty(ctx context.Context, column string, partyID uuid.UUID, filter repository.BookingFilter) ([]entity.Booking, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where(column+" = ?", partyID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count bookings")
	}

	var bookingMs []model.BookingModel
	err := query.
		Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&bookingMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		booking, err := toBookingDomain(&bookingMs[i])
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *booking)
	}

	return bookings, total, nil
}

// CountActiveByTutor counts the tutor's pending and confirmed bookings.
func (repo *bookingRepository) CountActiveByTutor(ctx context.Context, tutorID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.BookingModel{}).
		Where("tutor_id = ?", tutorID).
		Where("status IN ?", []string{string(entity.BookingPending), string(entity.BookingConfirmed)}).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active bookings")
	}

	return count, nil
}

// Create persists a new booking.
func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	bookingM, err := fromBookingDomain(booking)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(bookingM).Error; err != nil {
		return errors.Wrap(err, "failed to create booking")
	}

	booking.ID = bookingM.ID
	booking.CreatedAt = bookingM.CreatedAt
	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// Update modifies an existing booking.
func (repo *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	bookingM, err := fromBookingDomain(booking)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(bookingM).Error; err != nil {
		return errors.Wrap(err, "failed to update booking")
	}

	booking.UpdatedAt = bookingM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toBookingDomain(data *model.BookingModel) (*entity.Booking, error) {
	if data == nil {
		return nil, nil
	}

	var topicIDs []uuid.UUID
	if len(data.TopicIDs) > 0 {
		if err := json.Unmarshal(data.TopicIDs, &topicIDs); err != nil {
			return nil, errors.Wrap(err, "failed to decode booking topic ids")
		}
	}

	return &entity.Booking{
		ID:                 data.ID,
		StudentID:          data.StudentID,
		TutorID:            data.TutorID,
		SubjectID:          data.SubjectID,
		TopicIDs:           topicIDs,
		StartTime:          data.StartTime,
		EndTime:            data.EndTime,
		Mode:               entity.TeachingMode(data.Mode),
		Status:             entity.BookingStatus(data.Status),
		Amount:             data.Amount,
		PaymentStatus:      entity.PaymentStatus(data.PaymentStatus),
		CancellationReason: data.CancellationReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}

func fromBookingDomain(data *entity.Booking) (*model.BookingModel, error) {
	if data == nil {
		return nil, nil
	}

	topicIDs, err := json.Marshal(data.TopicIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode booking topic ids")
	}

	return &model.BookingModel{
		ID:                 data.ID,
		StudentID:          data.StudentID,
		TutorID:            data.TutorID,
		SubjectID:          data.SubjectID,
		TopicIDs:           datatypes.JSON(topicIDs),
		StartTime:          data.StartTime,
		EndTime:            data.EndTime,
		Mode:               string(data.Mode),
		Status:             string(data.Status),
		Amount:             data.Amount,
		PaymentStatus:      string(data.PaymentStatus),
		CancellationReason: data.CancellationReason,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}
