package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrFavoriteNotFound is returned when the (student, tutor) pair does not exist.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines the standard operations for favorite persistence.
type FavoriteRepository interface {
	// Find retrieves the favorite for a (student, tutor) pair.
	Find(ctx context.Context, studentID, tutorID uuid.UUID) (*entity.Favorite, error)

	// ListByStudent returns the student's favorites newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]entity.Favorite, error)

	// Create persists a new favorite.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for a (student, tutor) pair.
	Delete(ctx context.Context, studentID, tutorID uuid.UUID) error
}
