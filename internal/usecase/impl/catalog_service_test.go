package impl

import (
	"context"
	"testing"

	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	mockRepo "verifiedtutors/internal/mocks/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) (usecase.CatalogUsecase, *mockRepo.MockSubjectRepository) {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		SubjectRepo: subjectRepo,
		Logger:      newDiscardLogger(),
	})

	return service, subjectRepo
}

func TestCatalogService_CreateSubject_ScienceStreamCategory(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()

	subjectRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subject")).Return(nil)

	subject, err := service.CreateSubject(ctx, usecase.SubjectInput{
		Name:           "A/L Biology",
		Category:       "Biology",
		EducationLevel: entity.LevelAdvanced,
	})
	require.NoError(t, err)
	assert.True(t, subject.Active)
	assert.Equal(t, entity.LevelAdvanced, subject.EducationLevel)
}

func TestCatalogService_CreateSubject_CategoryOutsideLevel(t *testing.T) {
	service, _ := newCatalogService(t)

	_, err := service.CreateSubject(context.Background(), usecase.SubjectInput{
		Name:           "Primary Biology",
		Category:       "Biology",
		EducationLevel: entity.LevelPrimary,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateSubject_UnknownEducationLevel(t *testing.T) {
	service, _ := newCatalogService(t)

	_, err := service.CreateSubject(context.Background(), usecase.SubjectInput{
		Name:           "Mystery Subject",
		Category:       "Mathematics",
		EducationLevel: "KINDERGARTEN",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_UpdateSubject_RerunsTaxonomyCheck(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()

	subject := &entity.Subject{
		ID:             uuid.New(),
		Name:           "O/L Mathematics",
		Category:       "Mathematics",
		EducationLevel: entity.LevelSeniorSecondary,
		Active:         true,
	}

	subjectRepo.EXPECT().FindByID(ctx, subject.ID).Return(subject, nil)

	_, err := service.UpdateSubject(ctx, subject.ID, usecase.SubjectInput{
		Name:           "O/L Mathematics",
		Category:       "Combined Mathematics",
		EducationLevel: entity.LevelSeniorSecondary,
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_DeactivateSubject(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()

	subject := &entity.Subject{ID: uuid.New(), Name: "A/L Physics", Active: true}

	subjectRepo.EXPECT().FindByID(ctx, subject.ID).Return(subject, nil)
	subjectRepo.EXPECT().Update(ctx, subject).Return(nil)

	require.NoError(t, service.DeactivateSubject(ctx, subject.ID))
	assert.False(t, subject.Active)
}

func TestCatalogService_GetSubject_NotFound(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()
	id := uuid.New()

	subjectRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrSubjectNotFound)

	_, err := service.GetSubject(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrSubjectNotFound)
}

func TestCatalogService_CreateTopic_RequiresExistingSubject(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()
	subjectID := uuid.New()

	subjectRepo.EXPECT().FindByID(ctx, subjectID).Return(nil, repository.ErrSubjectNotFound)

	_, err := service.CreateTopic(ctx, subjectID, usecase.TopicInput{Name: "Genetics"})
	assert.ErrorIs(t, err, domainerrors.ErrSubjectNotFound)
}

func TestCatalogService_CreateTopic(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()
	subject := &entity.Subject{ID: uuid.New(), Name: "A/L Biology"}

	subjectRepo.EXPECT().FindByID(ctx, subject.ID).Return(subject, nil)
	subjectRepo.EXPECT().CreateTopic(ctx, mock.AnythingOfType("*entity.Topic")).Return(nil)

	topic, err := service.CreateTopic(ctx, subject.ID, usecase.TopicInput{Name: "Genetics", Description: "Mendelian genetics and heredity"})
	require.NoError(t, err)
	assert.Equal(t, subject.ID, topic.SubjectID)
	assert.True(t, topic.Active)
}

func TestCatalogService_UpdateTopic_NotFound(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()
	topicID := uuid.New()

	subjectRepo.EXPECT().FindTopic(ctx, topicID).Return(nil, repository.ErrTopicNotFound)

	_, err := service.UpdateTopic(ctx, topicID, usecase.TopicInput{Name: "Renamed"})
	assert.ErrorIs(t, err, domainerrors.ErrTopicNotFound)
}

func TestCatalogService_DeactivateTopic(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()

	topic := &entity.Topic{ID: uuid.New(), Name: "Genetics", Active: true}

	subjectRepo.EXPECT().FindTopic(ctx, topic.ID).Return(topic, nil)
	subjectRepo.EXPECT().UpdateTopic(ctx, topic).Return(nil)

	require.NoError(t, service.DeactivateTopic(ctx, topic.ID))
	assert.False(t, topic.Active)
}

func TestCatalogService_ListTopics_ChecksSubjectFirst(t *testing.T) {
	service, subjectRepo := newCatalogService(t)
	ctx := context.Background()
	subject := &entity.Subject{ID: uuid.New()}
	topics := []entity.Topic{{ID: uuid.New(), SubjectID: subject.ID}}

	subjectRepo.EXPECT().FindByID(ctx, subject.ID).Return(subject, nil)
	subjectRepo.EXPECT().ListTopics(ctx, subject.ID, false).Return(topics, nil)

	got, err := service.ListTopics(ctx, subject.ID, false)
	require.NoError(t, err)
	assert.Equal(t, topics, got)
}
