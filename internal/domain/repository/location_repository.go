package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLocationNotFound is returned when no location exists for the ID.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the standard operations for the
// administrative-area tree.
type LocationRepository interface {
	// FindByID retrieves a single location.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// ListActive returns every active location as a flat slice.
	ListActive(ctx context.Context) ([]entity.Location, error)

	// CountChildren reports how many locations point at the given parent.
	CountChildren(ctx context.Context, parentID uuid.UUID) (int64, error)

	// Create persists a new location.
	Create(ctx context.Context, location *entity.Location) error

	// Update modifies an existing location.
	Update(ctx context.Context, location *entity.Location) error

	// Delete removes a location row.
	Delete(ctx context.Context, id uuid.UUID) error
}
