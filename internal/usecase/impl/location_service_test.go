package impl

import (
	"context"
	"testing"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationService(t *testing.T) (usecase.LocationUsecase, *mockRepo.MockLocationRepository) {
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewLocationService(LocationServiceParams{
		LocationRepo: locationRepo,
		Logger:       newDiscardLogger(),
	})

	return service, locationRepo
}

func TestLocationService_CreateLocation_City(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := service.CreateLocation(ctx, usecase.LocationInput{Name: "Colombo", Level: 1})
	require.NoError(t, err)
	assert.True(t, location.Active)
	assert.Nil(t, location.ParentID)
}

func TestLocationService_CreateLocation_TownUnderCity(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	city := &entity.Location{ID: uuid.New(), Name: "Colombo", Level: 1}

	locationRepo.EXPECT().FindByID(ctx, city.ID).Return(city, nil)
	locationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Location")).Return(nil)

	location, err := service.CreateLocation(ctx, usecase.LocationInput{Name: "Nugegoda", Level: 2, ParentID: &city.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, location.Level)
}

func TestLocationService_CreateLocation_TownWithoutParent(t *testing.T) {
	service, _ := newLocationService(t)

	_, err := service.CreateLocation(context.Background(), usecase.LocationInput{Name: "Nugegoda", Level: 2})
	assert.ErrorIs(t, err, domainerrors.ErrLocationParentInvalid)
}

func TestLocationService_CreateLocation_HometownUnderCitySkipsALevel(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	city := &entity.Location{ID: uuid.New(), Name: "Colombo", Level: 1}

	locationRepo.EXPECT().FindByID(ctx, city.ID).Return(city, nil)

	_, err := service.CreateLocation(ctx, usecase.LocationInput{Name: "Pagoda", Level: 3, ParentID: &city.ID})
	assert.ErrorIs(t, err, domainerrors.ErrLocationParentInvalid)
}

func TestLocationService_CreateLocation_DanglingParent(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	parentID := uuid.New()

	locationRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrLocationNotFound)

	_, err := service.CreateLocation(ctx, usecase.LocationInput{Name: "Nugegoda", Level: 2, ParentID: &parentID})
	assert.ErrorIs(t, err, domainerrors.ErrLocationParentInvalid)
}

func TestLocationService_CreateLocation_LevelOutOfRange(t *testing.T) {
	service, _ := newLocationService(t)

	_, err := service.CreateLocation(context.Background(), usecase.LocationInput{Name: "Somewhere", Level: 4})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestLocationService_UpdateLocation_RerunsPlacement(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	city := &entity.Location{ID: uuid.New(), Name: "Colombo", Level: 1, Active: true}

	locationRepo.EXPECT().FindByID(ctx, city.ID).Return(city, nil)

	_, err := service.UpdateLocation(ctx, city.ID, usecase.LocationInput{Name: "Colombo", Level: 2})
	assert.ErrorIs(t, err, domainerrors.ErrLocationParentInvalid)
}

func TestLocationService_DeleteLocation_RefusesWithChildren(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	city := &entity.Location{ID: uuid.New(), Name: "Colombo", Level: 1}

	locationRepo.EXPECT().FindByID(ctx, city.ID).Return(city, nil)
	locationRepo.EXPECT().CountChildren(ctx, city.ID).Return(int64(5), nil)

	err := service.DeleteLocation(ctx, city.ID)
	assert.ErrorIs(t, err, domainerrors.ErrLocationHasChildren)
}

func TestLocationService_DeleteLocation_Leaf(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	leaf := &entity.Location{ID: uuid.New(), Name: "Pagoda", Level: 3}

	locationRepo.EXPECT().FindByID(ctx, leaf.ID).Return(leaf, nil)
	locationRepo.EXPECT().CountChildren(ctx, leaf.ID).Return(int64(0), nil)
	locationRepo.EXPECT().Delete(ctx, leaf.ID).Return(nil)

	assert.NoError(t, service.DeleteLocation(ctx, leaf.ID))
}

func TestLocationService_GetTree(t *testing.T) {
	service, locationRepo := newLocationService(t)
	ctx := context.Background()

	cityID := uuid.New()
	townID := uuid.New()
	flat := []entity.Location{
		{ID: cityID, Name: "Colombo", Level: 1},
		{ID: townID, Name: "Nugegoda", Level: 2, ParentID: &cityID},
		{ID: uuid.New(), Name: "Pagoda", Level: 3, ParentID: &townID},
	}

	locationRepo.EXPECT().ListActive(ctx).Return(flat, nil)

	tree, err := service.GetTree(ctx)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Nugegoda", tree[0].Children[0].Name)
	require.Len(t, tree[0].Children[0].Children, 1)
	assert.Equal(t, "Pagoda", tree[0].Children[0].Children[0].Name)
}
