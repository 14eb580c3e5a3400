package impl

import (
	"context"
	"log/slog"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetTree loads every active location and assembles the 3-level tree.
func (srv *locationService) GetTree(ctx context.Context) ([]*entity.LocationNode, error) {
	flat, err := srv.locationRepo.ListActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return entity.BuildLocationTree(flat), nil
}

// CreateLocation adds a node after the level-parent check.
func (srv *locationService) CreateLocation(ctx context.Context, input usecase.LocationInput) (*entity.Location, error) {
	location := &entity.Location{
		ID:       uuid.New(),
		Name:     input.Name,
		Level:    input.Level,
		ParentID: input.ParentID,
		Active:   true,
	}

	if err := srv.validatePlacement(ctx, location); err != nil {
		return nil, err
	}

	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Info("Location created", slog.String("name", location.Name), slog.Int("level", location.Level))

	return location, nil
}

// UpdateLocation edits a node, re-running the placement rules.
func (srv *locationService) UpdateLocation(ctx context.Context, id uuid.UUID, input usecase.LocationInput) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return nil, errors.WithStack(domainerrors.ErrLocationNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}

	location.Name = input.Name
	location.Level = input.Level
	location.ParentID = input.ParentID

	if err := srv.validatePlacement(ctx, location); err != nil {
		return nil, err
	}

	if err := srv.locationRepo.Update(ctx, location); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	return location, nil
}

// DeleteLocation removes a node, refusing while children point at it.
func (srv *locationService) DeleteLocation(ctx context.Context, id uuid.UUID) error {
	if _, err := srv.locationRepo.FindByID(ctx, id); errors.Is(err, repository.ErrLocationNotFound) {
		return errors.WithStack(domainerrors.ErrLocationNotFound)
	} else if err != nil {
		return errors.Wrap(err, "failed to find location")
	}

	children, err := srv.locationRepo.CountChildren(ctx, id)
	if err != nil {
		return errors.Wrap(err, "failed to count children")
	}
	if children > 0 {
		return errors.WithStack(domainerrors.ErrLocationHasChildren)
	}

	if err := srv.locationRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete location")
	}

	return nil
}

// validatePlacement enforces the level range and the level-parent rule,
// loading the parent node when one is referenced.
func (srv *locationService) validatePlacement(ctx context.Context, location *entity.Location) error {
	if !location.ValidLevel() {
		return domainerrors.ErrValidationFailed.WithDetails("level must be 1 (city), 2 (town) or 3 (hometown)")
	}

	var parent *entity.Location
	if location.ParentID != nil {
		found, err := srv.locationRepo.FindByID(ctx, *location.ParentID)
		if errors.Is(err, repository.ErrLocationNotFound) {
			return errors.WithStack(domainerrors.ErrLocationParentInvalid)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find parent location")
		}
		parent = found
	}

	if !location.ValidParent(parent) {
		return errors.WithStack(domainerrors.ErrLocationParentInvalid)
	}

	return nil
}
