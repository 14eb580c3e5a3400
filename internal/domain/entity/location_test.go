package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_ValidParent(t *testing.T) {
	cityID := uuid.New()
	townID := uuid.New()

	city := &Location{ID: cityID, Level: LocationLevelCity}
	town := &Location{ID: townID, Level: LocationLevelTown, ParentID: &cityID}
	home := &Location{ID: uuid.New(), Level: LocationLevelHometown, ParentID: &townID}

	assert.True(t, city.ValidParent(nil))
	assert.True(t, town.ValidParent(city))
	assert.True(t, home.ValidParent(town))

	// Level 2 node under a level 3 parent.
	badTown := &Location{ID: uuid.New(), Level: LocationLevelTown, ParentID: &home.ID}
	assert.False(t, badTown.ValidParent(home))

	// Level 2 node with no parent at all.
	orphan := &Location{ID: uuid.New(), Level: LocationLevelTown}
	assert.False(t, orphan.ValidParent(nil))

	// Self-parenting.
	selfID := uuid.New()
	selfRef := &Location{ID: selfID, Level: LocationLevelTown, ParentID: &selfID}
	assert.False(t, selfRef.ValidParent(&Location{ID: selfID, Level: LocationLevelCity}))

	// A city must not have a parent.
	badCity := &Location{ID: uuid.New(), Level: LocationLevelCity, ParentID: &cityID}
	assert.False(t, badCity.ValidParent(city))
}

func TestBuildLocationTree(t *testing.T) {
	colomboID := uuid.New()
	kandyID := uuid.New()
	dehiwalaID := uuid.New()

	flat := []Location{
		{ID: colomboID, Name: "Colombo", Level: LocationLevelCity},
		{ID: kandyID, Name: "Kandy", Level: LocationLevelCity},
		{ID: dehiwalaID, Name: "Dehiwala", Level: LocationLevelTown, ParentID: &colomboID},
		{ID: uuid.New(), Name: "Kalubowila", Level: LocationLevelHometown, ParentID: &dehiwalaID},
	}

	tree := BuildLocationTree(flat)
	require.Len(t, tree, 2)

	var colombo *LocationNode
	for _, root := range tree {
		if root.ID == colomboID {
			colombo = root
		}
	}
	require.NotNil(t, colombo)
	require.Len(t, colombo.Children, 1)
	assert.Equal(t, "Dehiwala", colombo.Children[0].Name)
	require.Len(t, colombo.Children[0].Children, 1)
	assert.Equal(t, "Kalubowila", colombo.Children[0].Children[0].Name)
}
