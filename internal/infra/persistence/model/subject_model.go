package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectModel mirrors the 'subjects' table. Names are globally unique.
type SubjectModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(120);uniqueIndex:uq_subjects_name;not null"`
	Category       string    `gorm:"type:varchar(120);not null"`
	EducationLevel string    `gorm:"type:varchar(32);not null;index"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Topics []TopicModel `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (SubjectModel) TableName() string {
	return "subjects"
}

// TopicModel mirrors the 'topics' table. Names are unique per subject.
type TopicModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_topics_subject_name"`
	Name        string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_topics_subject_name"`
	Description string    `gorm:"type:text"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (TopicModel) TableName() string {
	return "topics"
}
