package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite bookmarks a tutor for a student. The (student, tutor) pair
// is unique; the tutor's favorite counter moves with it in the same
// transaction.
type Favorite struct {
	ID        uuid.UUID
	StudentID uuid.UUID
	TutorID   uuid.UUID
	CreatedAt time.Time
}
