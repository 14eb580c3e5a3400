package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// Catalog sentinel errors.
var (
	ErrSubjectNotFound = errors.New("subject not found")
	ErrTopicNotFound   = errors.New("topic not found")
)

// SubjectRepository defines the standard operations for the subject and
// topic catalog.
type SubjectRepository interface {
	// FindByID retrieves a subject with its topics preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error)

	// List returns the catalog, optionally including inactive entries.
	List(ctx context.Context, includeInactive bool) ([]entity.Subject, error)

	// Create persists a new subject.
	Create(ctx context.Context, subject *entity.Subject) error

	// Update modifies an existing subject.
	Update(ctx context.Context, subject *entity.Subject) error

	// FindTopic retrieves a single topic.
	FindTopic(ctx context.Context, id uuid.UUID) (*entity.Topic, error)

	// FindTopics retrieves the given topics. Missing IDs surface as
	// ErrTopicNotFound.
	FindTopics(ctx context.Context, ids []uuid.UUID) ([]entity.Topic, error)

	// ListTopics returns the topics of one subject.
	ListTopics(ctx context.Context, subjectID uuid.UUID, includeInactive bool) ([]entity.Topic, error)

	// CreateTopic persists a new topic under its subject.
	CreateTopic(ctx context.Context, topic *entity.Topic) error

	// UpdateTopic modifies an existing topic.
	UpdateTopic(ctx context.Context, topic *entity.Topic) error
}
