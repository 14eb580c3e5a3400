package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateRatingInput rates a completed booking. If the booking already
// has a rating by the same student it is updated in place.
type CreateRatingInput struct {
	StudentID uuid.UUID
	BookingID uuid.UUID
	Score     float64
	Review    string
}

// RatingPage is one page of a tutor's ratings.
type RatingPage struct {
	Ratings []entity.Rating
	Total   int64
	Page    int
	PerPage int
}

// RatingUsecase defines rating operations. Every mutation recomputes
// the tutor's aggregate rating inside the same transaction, holding a
// row lock on the tutor.
type RatingUsecase interface {
	CreateRating(ctx context.Context, input CreateRatingInput) (*entity.Rating, error)

	// DeleteRating removes a rating. Permitted for the owning student
	// and admins. Deleting the last rating resets the tutor's aggregate
	// to zero.
	DeleteRating(ctx context.Context, requesterID uuid.UUID, requesterRole entity.Role, ratingID uuid.UUID) error

	ListTutorRatings(ctx context.Context, tutorID uuid.UUID, page, perPage int) (*RatingPage, error)
}
