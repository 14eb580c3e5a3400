package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location levels. The tree is exactly three deep.
const (
	LocationLevelCity     = 1
	LocationLevelTown     = 2
	LocationLevelHometown = 3
)

// Location is a node in the administrative-area tree. Level-1 nodes
// have no parent; every deeper node points at a node one level up.
type Location struct {
	ID        uuid.UUID
	Name      string
	Level     int
	ParentID  *uuid.UUID
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LocationNode is a location with its children resolved, used when the
// whole tree is assembled in memory.
type LocationNode struct {
	Location
	Children []*LocationNode
}

// ValidLevel reports whether the level is within the tree depth.
func (l *Location) ValidLevel() bool {
	return l.Level >= LocationLevelCity && l.Level <= LocationLevelHometown
}

// RequiresParent reports whether a node at this level must have one.
func (l *Location) RequiresParent() bool {
	return l.Level > LocationLevelCity
}

// ValidParent checks the level-parent rule: a level-n node's parent
// must sit at level n-1, a city must have none, and a node can never
// parent itself.
func (l *Location) ValidParent(parent *Location) bool {
	if l.Level == LocationLevelCity {
		return l.ParentID == nil
	}
	if l.ParentID == nil || parent == nil {
		return false
	}
	if parent.ID == l.ID {
		return false
	}
	return parent.Level == l.Level-1
}

// BuildLocationTree assembles the flat slice into city-rooted nodes.
// The dataset is administrative boundaries, small enough for the
// nested passes to stay cheap.
func BuildLocationTree(flat []Location) []*LocationNode {
	var roots []*LocationNode
	for _, city := range flat {
		if city.Level != LocationLevelCity {
			continue
		}
		cityNode := &LocationNode{Location: city}
		for _, town := range flat {
			if town.Level != LocationLevelTown || town.ParentID == nil || *town.ParentID != city.ID {
				continue
			}
			townNode := &LocationNode{Location: town}
			for _, home := range flat {
				if home.Level != LocationLevelHometown || home.ParentID == nil || *home.ParentID != town.ID {
					continue
				}
				townNode.Children = append(townNode.Children, &LocationNode{Location: home})
			}
			cityNode.Children = append(cityNode.Children, townNode)
		}
		roots = append(roots, cityNode)
	}
	return roots
}
