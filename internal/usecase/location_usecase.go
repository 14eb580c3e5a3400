package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput carries the fields for location create and update.
type LocationInput struct {
	Name     string
	Level    int
	ParentID *uuid.UUID
}

// LocationUsecase defines the operations on the administrative-area tree.
type LocationUsecase interface {
	// GetTree loads active locations and assembles the 3-level tree.
	GetTree(ctx context.Context) ([]*entity.LocationNode, error)

	CreateLocation(ctx context.Context, input LocationInput) (*entity.Location, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, input LocationInput) (*entity.Location, error)

	// DeleteLocation removes a node. It refuses while children exist.
	DeleteLocation(ctx context.Context, id uuid.UUID) error
}
