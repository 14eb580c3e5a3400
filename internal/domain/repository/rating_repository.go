package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRatingNotFound is returned when no rating exists for the lookup.
var ErrRatingNotFound = errors.New("rating not found")

// RatingStats carries the aggregate used to refresh a tutor's derived
// rating fields.
type RatingStats struct {
	Average float64
	Count   int64
}

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// FindByID retrieves a single rating.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Rating, error)

	// FindByBooking retrieves the rating attached to a booking, if any.
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Rating, error)

	// ListByTutor pages a tutor's ratings newest first.
	ListByTutor(ctx context.Context, tutorID uuid.UUID, page, perPage int) ([]entity.Rating, int64, error)

	// StatsForTutor computes the mean score and count over all of the
	// tutor's ratings in a single aggregate query.
	StatsForTutor(ctx context.Context, tutorID uuid.UUID) (RatingStats, error)

	// Create persists a new rating.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update modifies an existing rating.
	Update(ctx context.Context, rating *entity.Rating) error

	// Delete removes a rating row.
	Delete(ctx context.Context, id uuid.UUID) error
}
