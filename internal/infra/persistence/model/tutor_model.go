package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TutorModel mirrors the 'tutors' table. The profile's structured
// sections (education, experience, subjects, documents) live in jsonb
// columns; searches reach into the subjects column with containment
// queries.
type TutorModel struct {
	UserID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Bio                string         `gorm:"type:text"`
	Gender             string         `gorm:"type:varchar(20)"`
	SocialLinks        datatypes.JSON `gorm:"type:jsonb"`
	TeachingMediums    datatypes.JSON `gorm:"type:jsonb"`
	Education          datatypes.JSON `gorm:"type:jsonb"`
	Experience         datatypes.JSON `gorm:"type:jsonb"`
	Subjects           datatypes.JSON `gorm:"type:jsonb"`
	AvailableLocations string         `gorm:"type:text"`
	Documents          datatypes.JSON `gorm:"type:jsonb"`
	Rating             float64        `gorm:"not null;default:0;index"`
	TotalReviews       int            `gorm:"not null;default:0"`
	TotalFavorites     int            `gorm:"not null;default:0"`

	VerificationStatus string `gorm:"type:varchar(20);not null;default:pending;index"`
	IsVerified         bool   `gorm:"not null;default:false;index"`
	CheckProfile       bool   `gorm:"not null;default:false"`
	CheckEducation     bool   `gorm:"not null;default:false"`
	CheckDocuments     bool   `gorm:"not null;default:false"`
	CheckBackground    bool   `gorm:"not null;default:false"`
	RejectionReason    string `gorm:"type:text"`
	VerifiedBy         *uuid.UUID
	VerifiedAt         *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TutorModel) TableName() string {
	return "tutors"
}
