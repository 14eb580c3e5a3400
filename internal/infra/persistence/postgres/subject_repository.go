package postgres

import (
	"context"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subjectRepository implements the domain.SubjectRepository interface
// using GORM. It owns both the subjects table and the topics table
// hanging off it.
type subjectRepository struct {
	db *gorm.DB
}

// NewSubjectRepository is the constructor for subjectRepository.
func NewSubjectRepository(db *gorm.DB) repository.SubjectRepository {
	return &subjectRepository{db: db}
}

// FindByID retrieves a subject with its topics preloaded.
func (repo *subjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	var subjectM model.SubjectModel
	err := repo.db.WithContext(ctx).
		Preload("Topics").
		Where("id = ?", id).
		First(&subjectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find subject by id")
	}

	return toSubjectDomain(&subjectM), nil
}

// List returns the catalog ordered by name, optionally including
// inactive entries.
func (repo *subjectRepository) List(ctx context.Context, includeInactive bool) ([]entity.Subject, error) {
	query := repo.db.WithContext(ctx).Preload("Topics").Order("name ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var subjectMs []model.SubjectModel
	if err := query.Find(&subjectMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	subjects := make([]entity.Subject, 0, len(subjectMs))
	for i := range subjectMs {
		subjects = append(subjects, *toSubjectDomain(&subjectMs[i]))
	}

	return subjects, nil
}

// Create persists a new subject.
func (repo *subjectRepository) Create(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)

	if err := repo.db.WithContext(ctx).Create(subjectM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSubjectNameTaken.WrapMessage("subject name already in catalog")
		}

		return errors.Wrap(err, "failed to create subject")
	}

	subject.ID = subjectM.ID
	subject.CreatedAt = subjectM.CreatedAt
	subject.UpdatedAt = subjectM.UpdatedAt

	return nil
}

// Update modifies an existing subject. Topics are managed through the
// dedicated topic operations, never saved as an association here.
func (repo *subjectRepository) Update(ctx context.Context, subject *entity.Subject) error {
	subjectM := fromSubjectDomain(subject)

	err := repo.db.WithContext(ctx).
		Omit("Topics").
		Save(subjectM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSubjectNameTaken.WrapMessage("subject name already in catalog")
		}

		return errors.Wrap(err, "failed to update subject")
	}

	subject.UpdatedAt = subjectM.UpdatedAt

	return nil
}

// FindTopic retrieves a single topic.
func (repo *subjectRepository) FindTopic(ctx context.Context, id uuid.UUID) (*entity.Topic, error) {
	var topicM model.TopicModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&topicM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTopicNotFound
		}

		return nil, errors.Wrap(err, "failed to find topic by id")
	}

	return toTopicDomain(&topicM), nil
}

// FindTopics retrieves the given topics. Any missing ID surfaces as
// ErrTopicNotFound so callers never operate on a partial selection.
func (repo *subjectRepository) FindTopics(ctx context.Context, ids []uuid.UUID) ([]entity.Topic, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var topicMs []model.TopicModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&topicMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find topics")
	}

	found := make(map[uuid.UUID]struct{}, len(topicMs))
	topics := make([]entity.Topic, 0, len(topicMs))
	for i := range topicMs {
		found[topicMs[i].ID] = struct{}{}
		topics = append(topics, *toTopicDomain(&topicMs[i]))
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, repository.ErrTopicNotFound
		}
	}

	return topics, nil
}

// ListTopics returns the topics of one subject ordered by name.
func (repo *subjectRepository) ListTopics(ctx context.Context, subjectID uuid.UUID, includeInactive bool) ([]entity.Topic, error) {
	query := repo.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("name ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var topicMs []model.TopicModel
	if err := query.Find(&topicMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}

	topics := make([]entity.Topic, 0, len(topicMs))
	for i := range topicMs {
		topics = append(topics, *toTopicDomain(&topicMs[i]))
	}

	return topics, nil
}

// CreateTopic persists a new topic under its subject.
func (repo *subjectRepository) CreateTopic(ctx context.Context, topic *entity.Topic) error {
	topicM := fromTopicDomain(topic)

	if err := repo.db.WithContext(ctx).Create(topicM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTopicNameTaken.WrapMessage("topic name already in subject")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSubjectNotFound.WrapMessage("parent subject missing")
		}

		return errors.Wrap(err, "failed to create topic")
	}

	topic.ID = topicM.ID
	topic.CreatedAt = topicM.CreatedAt
	topic.UpdatedAt = topicM.UpdatedAt

	return nil
}

// UpdateTopic modifies an existing topic.
func (repo *subjectRepository) UpdateTopic(ctx context.Context, topic *entity.Topic) error {
	topicM := fromTopicDomain(topic)

	if err := repo.db.WithContext(ctx).Save(topicM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTopicNameTaken.WrapMessage("topic name already in subject")
		}

		return errors.Wrap(err, "failed to update topic")
	}

	topic.UpdatedAt = topicM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toSubjectDomain(data *model.SubjectModel) *entity.Subject {
	if data == nil {
		return nil
	}

	topics := make([]entity.Topic, 0, len(data.Topics))
	for i := range data.Topics {
		topics = append(topics, *toTopicDomain(&data.Topics[i]))
	}

	return &entity.Subject{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		EducationLevel: entity.EducationLevel(data.EducationLevel),
		Active:         data.Active,
		Topics:         topics,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromSubjectDomain(data *entity.Subject) *model.SubjectModel {
	if data == nil {
		return nil
	}

	return &model.SubjectModel{
		ID:             data.ID,
		Name:           data.Name,
		Category:       data.Category,
		EducationLevel: string(data.EducationLevel),
		Active:         data.Active,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toTopicDomain(data *model.TopicModel) *entity.Topic {
	if data == nil {
		return nil
	}

	return &entity.Topic{
		ID:          data.ID,
		SubjectID:   data.SubjectID,
		Name:        data.Name,
		Description: data.Description,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromTopicDomain(data *entity.Topic) *model.TopicModel {
	if data == nil {
		return nil
	}

	return &model.TopicModel{
		ID:          data.ID,
		SubjectID:   data.SubjectID,
		Name:        data.Name,
		Description: data.Description,
		Active:      data.Active,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
