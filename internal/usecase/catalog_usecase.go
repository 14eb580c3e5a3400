package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// SubjectInput carries the fields for subject create and update. The
// taxonomy check on the level/category pair runs identically on both.
type SubjectInput struct {
	Name           string
	Category       string
	EducationLevel entity.EducationLevel
}

// TopicInput carries the fields for topic create and update.
type TopicInput struct {
	Name        string
	Description string
}

// CatalogUsecase defines the admin operations on the subject and topic
// catalog, plus the public listing.
type CatalogUsecase interface {
	ListSubjects(ctx context.Context, includeInactive bool) ([]entity.Subject, error)
	GetSubject(ctx context.Context, id uuid.UUID) (*entity.Subject, error)
	CreateSubject(ctx context.Context, input SubjectInput) (*entity.Subject, error)
	UpdateSubject(ctx context.Context, id uuid.UUID, input SubjectInput) (*entity.Subject, error)
	DeactivateSubject(ctx context.Context, id uuid.UUID) error

	ListTopics(ctx context.Context, subjectID uuid.UUID, includeInactive bool) ([]entity.Topic, error)
	CreateTopic(ctx context.Context, subjectID uuid.UUID, input TopicInput) (*entity.Topic, error)
	UpdateTopic(ctx context.Context, topicID uuid.UUID, input TopicInput) (*entity.Topic, error)
	DeactivateTopic(ctx context.Context, topicID uuid.UUID) error
}
