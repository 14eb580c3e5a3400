package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BookingModel mirrors the 'bookings' table.
type BookingModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	StudentID          uuid.UUID      `gorm:"type:uuid;not null;index"`
	TutorID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	SubjectID          uuid.UUID      `gorm:"type:uuid;not null"`
	TopicIDs           datatypes.JSON `gorm:"type:jsonb"`
	StartTime          time.Time      `gorm:"not null"`
	EndTime            time.Time      `gorm:"not null"`
	Mode               string         `gorm:"type:varchar(20);not null"`
	Status             string         `gorm:"type:varchar(20);not null;default:pending;index"`
	Amount             float64        `gorm:"not null"`
	PaymentStatus      string         `gorm:"type:varchar(20);not null;default:pending"`
	CancellationReason string         `gorm:"type:text"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookingModel) TableName() string {
	return "bookings"
}
