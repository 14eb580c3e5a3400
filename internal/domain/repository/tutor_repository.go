package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTutorNotFound is returned when no tutor profile exists for the ID.
var ErrTutorNotFound = errors.New("tutor not found")

// TutorSearchFilter narrows a tutor search. Zero values mean "any".
type TutorSearchFilter struct {
	SubjectID    *uuid.UUID
	TopicID      *uuid.UUID
	Mode         entity.TeachingMode
	VerifiedOnly bool
	MinRating    float64
	Location     string
	Page         int
	PerPage      int
}

// TutorRepository defines the standard operations for tutor profile persistence.
type TutorRepository interface {
	// FindByUserID retrieves the tutor profile owned by the user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error)

	// AcquireLock loads the tutor row under FOR UPDATE so derived fields
	// can be recomputed without racing concurrent writers. Only valid
	// inside a transaction.
	AcquireLock(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error)

	// Search returns tutors matching the filter sorted by rating
	// descending, with the total match count for pagination.
	Search(ctx context.Context, filter TutorSearchFilter) ([]entity.Tutor, int64, error)

	// ListByVerificationStatus pages tutors in one verification state.
	ListByVerificationStatus(ctx context.Context, status entity.VerificationStatus, page, perPage int) ([]entity.Tutor, int64, error)

	// Create persists a new tutor profile.
	Create(ctx context.Context, tutor *entity.Tutor) error

	// Update modifies an existing tutor profile.
	Update(ctx context.Context, tutor *entity.Tutor) error

	// Delete removes the tutor profile.
	Delete(ctx context.Context, userID uuid.UUID) error
}
