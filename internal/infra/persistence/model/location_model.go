package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table. (name, parent_id) pairs
// are unique so two towns of one city never collide, while the same
// town name may appear under different cities.
type LocationModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string     `gorm:"type:varchar(120);not null;uniqueIndex:uq_locations_name_parent"`
	Level     int        `gorm:"not null;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid;uniqueIndex:uq_locations_name_parent;index"`
	Active    bool       `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
