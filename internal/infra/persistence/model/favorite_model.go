package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique
// index keeps each student/tutor pair to a single row.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_favorites_pair;index"`
	TutorID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_favorites_pair;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
