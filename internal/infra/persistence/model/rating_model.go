package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RatingModel mirrors the 'ratings' table. Two unique indexes guard it:
// one rating per booking, and one rating per (tutor, student, topic
// selection). TopicsKey is the canonical fingerprint of the selection
// so the second index is order-independent.
type RatingModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BookingID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_ratings_booking"`
	TutorID   uuid.UUID      `gorm:"type:uuid;not null;index;uniqueIndex:uq_ratings_tutor_student_topics"`
	StudentID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:uq_ratings_tutor_student_topics"`
	SubjectID uuid.UUID      `gorm:"type:uuid;not null"`
	TopicIDs  datatypes.JSON `gorm:"type:jsonb"`
	TopicsKey string         `gorm:"type:varchar(512);not null;default:'';uniqueIndex:uq_ratings_tutor_student_topics"`
	Score     float64        `gorm:"not null"`
	Review    string         `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}
