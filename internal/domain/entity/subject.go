package entity

import (
	"time"

	"github.com/google/uuid"
)

// Subject is a catalog entry tutors teach under. Names are globally
// unique; the (EducationLevel, Category) pair must satisfy the fixed
// taxonomy.
type Subject struct {
	ID             uuid.UUID
	Name           string
	Category       string
	EducationLevel EducationLevel
	Active         bool
	Topics         []Topic
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Topic is a teachable unit inside a subject. Names are unique within
// the parent subject only.
type Topic struct {
	ID          uuid.UUID
	SubjectID   uuid.UUID
	Name        string
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateTaxonomy checks the level/category pair against the static
// taxonomy tables. Returned strings name the offending field.
func (s *Subject) ValidateTaxonomy() (field string, ok bool) {
	if !s.EducationLevel.Valid() {
		return "educationLevel", false
	}
	if !s.EducationLevel.AllowsCategory(s.Category) {
		return "category", false
	}
	return "", true
}
