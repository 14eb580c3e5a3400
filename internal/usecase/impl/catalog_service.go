package impl

import (
	"context"
	"log/slog"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	subjectRepo repository.SubjectRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	SubjectRepo repository.SubjectRepository
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		subjectRepo: params.SubjectRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSubjects returns the catalog. Inactive entries are admin-only.
func (srv *catalogService) ListSubjects(ctx context.Context, includeInactive bool) ([]entity.Subject, error) {
	subjects, err := srv.subjectRepo.List(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list subjects")
	}

	return subjects, nil
}

// GetSubject returns one subject with its topics.
func (srv *catalogService) GetSubject(ctx context.Context, id uuid.UUID) (*entity.Subject, error) {
	subject, err := srv.subjectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSubjectNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subject")
	}

	return subject, nil
}

// CreateSubject adds a catalog entry after the taxonomy check.
func (srv *catalogService) CreateSubject(ctx context.Context, input usecase.SubjectInput) (*entity.Subject, error) {
	subject := &entity.Subject{
		ID:             uuid.New(),
		Name:           input.Name,
		Category:       input.Category,
		EducationLevel: input.EducationLevel,
		Active:         true,
	}

	if appErr := validateSubjectTaxonomy(subject); appErr != nil {
		return nil, appErr
	}

	if err := srv.subjectRepo.Create(ctx, subject); err != nil {
		return nil, errors.Wrap(err, "failed to create subject")
	}

	srv.log(ctx).Info("Subject created", slog.String("name", subject.Name), slog.Any("level", subject.EducationLevel))

	return subject, nil
}

// UpdateSubject edits a catalog entry. The taxonomy check is the same
// one run on create.
func (srv *catalogService) UpdateSubject(ctx context.Context, id uuid.UUID, input usecase.SubjectInput) (*entity.Subject, error) {
	subject, err := srv.subjectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSubjectNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subject")
	}

	subject.Name = input.Name
	subject.Category = input.Category
	subject.EducationLevel = input.EducationLevel

	if appErr := validateSubjectTaxonomy(subject); appErr != nil {
		return nil, appErr
	}

	if err := srv.subjectRepo.Update(ctx, subject); err != nil {
		return nil, errors.Wrap(err, "failed to update subject")
	}

	return subject, nil
}

// DeactivateSubject soft-deletes a subject from the public catalog.
func (srv *catalogService) DeactivateSubject(ctx context.Context, id uuid.UUID) error {
	subject, err := srv.subjectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrSubjectNotFound) {
		return errors.WithStack(domainerrors.ErrSubjectNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find subject")
	}

	subject.Active = false
	if err := srv.subjectRepo.Update(ctx, subject); err != nil {
		return errors.Wrap(err, "failed to deactivate subject")
	}

	srv.log(ctx).Info("Subject deactivated", slog.String("name", subject.Name))

	return nil
}

// ListTopics returns a subject's topics.
func (srv *catalogService) ListTopics(ctx context.Context, subjectID uuid.UUID, includeInactive bool) ([]entity.Topic, error) {
	if _, err := srv.subjectRepo.FindByID(ctx, subjectID); errors.Is(err, repository.ErrSubjectNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSubjectNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find subject")
	}

	topics, err := srv.subjectRepo.ListTopics(ctx, subjectID, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list topics")
	}

	return topics, nil
}

// CreateTopic adds a topic under an existing subject.
func (srv *catalogService) CreateTopic(ctx context.Context, subjectID uuid.UUID, input usecase.TopicInput) (*entity.Topic, error) {
	if _, err := srv.subjectRepo.FindByID(ctx, subjectID); errors.Is(err, repository.ErrSubjectNotFound) {
		return nil, errors.WithStack(domainerrors.ErrSubjectNotFound)
	} else if err != nil {
		return nil, errors.Wrap(err, "failed to find subject")
	}

	topic := &entity.Topic{
		ID:          uuid.New(),
		SubjectID:   subjectID,
		Name:        input.Name,
		Description: input.Description,
		Active:      true,
	}

	if err := srv.subjectRepo.CreateTopic(ctx, topic); err != nil {
		return nil, errors.Wrap(err, "failed to create topic")
	}

	return topic, nil
}

// UpdateTopic edits a topic.
func (srv *catalogService) UpdateTopic(ctx context.Context, topicID uuid.UUID, input usecase.TopicInput) (*entity.Topic, error) {
	topic, err := srv.subjectRepo.FindTopic(ctx, topicID)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTopicNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find topic")
	}

	topic.Name = input.Name
	topic.Description = input.Description

	if err := srv.subjectRepo.UpdateTopic(ctx, topic); err != nil {
		return nil, errors.Wrap(err, "failed to update topic")
	}

	return topic, nil
}

// DeactivateTopic soft-deletes a topic.
func (srv *catalogService) DeactivateTopic(ctx context.Context, topicID uuid.UUID) error {
	topic, err := srv.subjectRepo.FindTopic(ctx, topicID)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return errors.WithStack(domainerrors.ErrTopicNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to find topic")
	}

	topic.Active = false
	if err := srv.subjectRepo.UpdateTopic(ctx, topic); err != nil {
		return errors.Wrap(err, "failed to deactivate topic")
	}

	return nil
}

// validateSubjectTaxonomy maps a taxonomy violation onto a validation
// error naming the offending field.
func validateSubjectTaxonomy(subject *entity.Subject) error {
	field, ok := subject.ValidateTaxonomy()
	if ok {
		return nil
	}

	switch field {
	case "educationLevel":
		return domainerrors.ErrValidationFailed.WithDetails("educationLevel must be one of PRIMARY, JUNIOR_SECONDARY, SENIOR_SECONDARY, ADVANCED_LEVEL, HIGHER_EDUCATION")
	default:
		return domainerrors.ErrValidationFailed.WithDetails("category " + subject.Category + " is not allowed for education level " + string(subject.EducationLevel))
	}
}
