package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// TutorSubjectInput is one subject entry on a profile update.
type TutorSubjectInput struct {
	SubjectID    uuid.UUID
	TopicIDs     []uuid.UUID
	Modes        map[entity.TeachingMode]entity.ModeOffering
	Availability map[string][]entity.TimeSlot // weekday name -> slots
}

// UpdateTutorProfileInput replaces the editable sections of a tutor
// profile. Critical-section edits on a verified profile reset the
// verification to pending.
type UpdateTutorProfileInput struct {
	UserID             uuid.UUID
	Bio                string
	Gender             string
	SocialLinks        map[string]string
	TeachingMediums    []string
	Education          []entity.EducationEntry
	Experience         []entity.ExperienceEntry
	Subjects           []TutorSubjectInput
	AvailableLocations string
}

// AddDocumentInput attaches a verification document reference.
type AddDocumentInput struct {
	UserID uuid.UUID
	URL    string
	Label  string
}

// TutorSearchInput mirrors the repository filter at the API boundary.
type TutorSearchInput struct {
	SubjectID    *uuid.UUID
	TopicID      *uuid.UUID
	Mode         entity.TeachingMode
	VerifiedOnly bool
	MinRating    float64
	Location     string
	Page         int
	PerPage      int
}

// TutorPage is one page of search results.
type TutorPage struct {
	Tutors  []entity.Tutor
	Total   int64
	Page    int
	PerPage int
}

// TutorUsecase defines the interface for tutor profile operations.
type TutorUsecase interface {
	GetTutor(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error)
	SearchTutors(ctx context.Context, input TutorSearchInput) (*TutorPage, error)
	UpdateProfile(ctx context.Context, input UpdateTutorProfileInput) (*entity.Tutor, error)
	AddDocument(ctx context.Context, input AddDocumentInput) (*entity.Tutor, error)
	RemoveDocument(ctx context.Context, userID, documentID uuid.UUID) (*entity.Tutor, error)
	// DeleteTutor removes the profile and account. It refuses while the
	// tutor still has pending or confirmed bookings.
	DeleteTutor(ctx context.Context, userID uuid.UUID) error
}
