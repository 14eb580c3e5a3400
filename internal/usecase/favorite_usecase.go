package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteUsecase defines student bookmark operations. The tutor's
// favorite counter moves in the same transaction as the pair row.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, studentID, tutorID uuid.UUID) error
	RemoveFavorite(ctx context.Context, studentID, tutorID uuid.UUID) error
	ListFavorites(ctx context.Context, studentID uuid.UUID) ([]entity.Favorite, error)
}
