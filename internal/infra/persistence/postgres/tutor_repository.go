package postgres

import (
	"context"
	"encoding/json"
	"time"

	"verifiedtutors/internal/domain/entity"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tutorRepository implements the domain.TutorRepository interface using GORM.
// The profile's structured sections live in jsonb columns; search filters
// on subject, topic and mode are pushed into the database as jsonb
// containment queries rather than filtering in memory.
type tutorRepository struct {
	db *gorm.DB
}

// NewTutorRepository is the constructor for tutorRepository.
func NewTutorRepository(db *gorm.DB) repository.TutorRepository {
	return &tutorRepository{db: db}
}

// FindByUserID retrieves the tutor profile owned by the user.
func (repo *tutorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error) {
	var tutorM model.TutorModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&tutorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTutorNotFound
		}

		return nil, errors.Wrap(err, "failed to find tutor by user id")
	}

	return toTutorDomain(&tutorM)
}

// AcquireLock loads the tutor row under FOR UPDATE. Derived fields such
// as the rating mean and the favorite counter are recomputed while the
// lock is held, so concurrent writers serialise on the row.
func (repo *tutorRepository) AcquireLock(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error) {
	var tutorM model.TutorModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&tutorM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTutorNotFound
		}

		return nil, errors.Wrap(err, "failed to lock tutor row")
	}

	return toTutorDomain(&tutorM)
}

// Search returns tutors matching the filter sorted by rating descending,
// with the total match count for pagination.
func (repo *tutorRepository) Search(ctx context.Context, filter repository.TutorSearchFilter) ([]entity.Tutor, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.TutorModel{})

	if containment, ok, err := buildSubjectContainment(filter); err != nil {
		return nil, 0, err
	} else if ok {
		query = query.Where("subjects @> ?", containment)
	}
	if filter.VerifiedOnly {
		query = query.Where("is_verified = ?", true)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if filter.Location != "" {
		query = query.Where("available_locations ILIKE ?", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tutors")
	}

	var tutorMs []model.TutorModel
	err := query.
		Order("rating DESC, total_reviews DESC").
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&tutorMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to search tutors")
	}

	tutors, err := toTutorDomains(tutorMs)
	if err != nil {
		return nil, 0, err
	}

	return tutors, total, nil
}

// buildSubjectContainment assembles the jsonb containment document for
// the subject, topic and mode filters. All three land in one array
// element so a match means a single subject entry satisfies them
// together, not three different entries.
func buildSubjectContainment(filter repository.TutorSearchFilter) (string, bool, error) {
	entry := map[string]any{}
	if filter.SubjectID != nil {
		entry["subject_id"] = filter.SubjectID.String()
	}
	if filter.TopicID != nil {
		entry["topic_ids"] = []string{filter.TopicID.String()}
	}
	if filter.Mode != "" {
		entry["modes"] = map[string]any{
			string(filter.Mode): map[string]any{"enabled": true},
		}
	}
	if len(entry) == 0 {
		return "", false, nil
	}

	raw, err := json.Marshal([]map[string]any{entry})
	if err != nil {
		return "", false, errors.Wrap(err, "failed to build subject containment query")
	}

	return string(raw), true, nil
}

// ListByVerificationStatus pages tutors in one verification state,
// oldest first so the admin queue is served in submission order.
func (repo *tutorRepository) ListByVerificationStatus(ctx context.Context, status entity.VerificationStatus, page, perPage int) ([]entity.Tutor, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.TutorModel{}).
		Where("verification_status = ?", string(status))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tutors by verification status")
	}

	var tutorMs []model.TutorModel
	err := query.
		Order("updated_at ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&tutorMs).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tutors by verification status")
	}

	tutors, err := toTutorDomains(tutorMs)
	if err != nil {
		return nil, 0, err
	}

	return tutors, total, nil
}

// Create persists a new tutor profile.
func (repo *tutorRepository) Create(ctx context.Context, tutor *entity.Tutor) error {
	tutorM, err := fromTutorDomain(tutor)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(tutorM).Error; err != nil {
		return errors.Wrap(err, "failed to create tutor")
	}

	tutor.CreatedAt = tutorM.CreatedAt
	tutor.UpdatedAt = tutorM.UpdatedAt

	return nil
}

// Update modifies an existing tutor profile. Save writes every column
// including zero values, which the derived counters rely on.
func (repo *tutorRepository) Update(ctx context.Context, tutor *entity.Tutor) error {
	tutorM, err := fromTutorDomain(tutor)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(tutorM).Error; err != nil {
		return errors.Wrap(err, "failed to update tutor")
	}

	tutor.UpdatedAt = tutorM.UpdatedAt

	return nil
}

// Delete removes the tutor profile.
func (repo *tutorRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.TutorModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete tutor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTutorNotFound
	}

	return nil
}

// --- JSONB document shapes ---
// These mirror what is stored inside the tutors table's jsonb columns.
// The field tags double as the key names the containment queries in
// Search rely on, so they must stay in sync with buildSubjectContainment.

type modeOfferingDoc struct {
	Enabled    bool    `json:"enabled"`
	HourlyRate float64 `json:"hourly_rate"`
}

type timeSlotDoc struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type tutorSubjectDoc struct {
	SubjectID    uuid.UUID                      `json:"subject_id"`
	TopicIDs     []uuid.UUID                    `json:"topic_ids"`
	Modes        map[string]modeOfferingDoc     `json:"modes"`
	Availability map[time.Weekday][]timeSlotDoc `json:"availability,omitempty"`
}

type educationDoc struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type experienceDoc struct {
	Title        string `json:"title"`
	Organisation string `json:"organisation"`
	From         string `json:"from"`
	To           string `json:"to,omitempty"`
	Description  string `json:"description,omitempty"`
}

type documentDoc struct {
	ID         uuid.UUID `json:"id"`
	URL        string    `json:"url"`
	Label      string    `json:"label,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// --- Mapper Functions ---

func toTutorDomains(models []model.TutorModel) ([]entity.Tutor, error) {
	tutors := make([]entity.Tutor, 0, len(models))
	for i := range models {
		tutor, err := toTutorDomain(&models[i])
		if err != nil {
			return nil, err
		}
		tutors = append(tutors, *tutor)
	}

	return tutors, nil
}

// toTutorDomain converts a GORM TutorModel to a domain Tutor entity,
// decoding the jsonb sections.
func toTutorDomain(data *model.TutorModel) (*entity.Tutor, error) {
	if data == nil {
		return nil, nil
	}

	tutor := &entity.Tutor{
		UserID:             data.UserID,
		Bio:                data.Bio,
		Gender:             data.Gender,
		AvailableLocations: data.AvailableLocations,
		Rating:             data.Rating,
		TotalReviews:       data.TotalReviews,
		TotalFavorites:     data.TotalFavorites,
		Verification: entity.Verification{
			Status:     entity.VerificationStatus(data.VerificationStatus),
			IsVerified: data.IsVerified,
			Checks: entity.VerificationChecks{
				Profile:    data.CheckProfile,
				Education:  data.CheckEducation,
				Documents:  data.CheckDocuments,
				Background: data.CheckBackground,
			},
			RejectionReason: data.RejectionReason,
			VerifiedBy:      data.VerifiedBy,
			VerifiedAt:      data.VerifiedAt,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if err := decodeJSONColumn(data.SocialLinks, &tutor.SocialLinks, "social links"); err != nil {
		return nil, err
	}
	if err := decodeJSONColumn(data.TeachingMediums, &tutor.TeachingMediums, "teaching mediums"); err != nil {
		return nil, err
	}

	var education []educationDoc
	if err := decodeJSONColumn(data.Education, &education, "education"); err != nil {
		return nil, err
	}
	for _, e := range education {
		tutor.Education = append(tutor.Education, entity.EducationEntry{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		})
	}

	var experience []experienceDoc
	if err := decodeJSONColumn(data.Experience, &experience, "experience"); err != nil {
		return nil, err
	}
	for _, e := range experience {
		tutor.Experience = append(tutor.Experience, entity.ExperienceEntry{
			Title:        e.Title,
			Organisation: e.Organisation,
			From:         e.From,
			To:           e.To,
			Description:  e.Description,
		})
	}

	var subjects []tutorSubjectDoc
	if err := decodeJSONColumn(data.Subjects, &subjects, "subjects"); err != nil {
		return nil, err
	}
	for _, s := range subjects {
		tutor.Subjects = append(tutor.Subjects, toTutorSubjectDomain(s))
	}

	var documents []documentDoc
	if err := decodeJSONColumn(data.Documents, &documents, "documents"); err != nil {
		return nil, err
	}
	for _, d := range documents {
		tutor.Documents = append(tutor.Documents, entity.Document{
			ID:         d.ID,
			URL:        d.URL,
			Label:      d.Label,
			UploadedAt: d.UploadedAt,
		})
	}

	return tutor, nil
}

func toTutorSubjectDomain(doc tutorSubjectDoc) entity.TutorSubject {
	subject := entity.TutorSubject{
		SubjectID: doc.SubjectID,
		TopicIDs:  doc.TopicIDs,
		Modes:     make(map[entity.TeachingMode]entity.ModeOffering, len(doc.Modes)),
	}
	for mode, offering := range doc.Modes {
		subject.Modes[entity.TeachingMode(mode)] = entity.ModeOffering{
			Enabled:    offering.Enabled,
			HourlyRate: offering.HourlyRate,
		}
	}
	if len(doc.Availability) > 0 {
		subject.Availability = make(map[time.Weekday][]entity.TimeSlot, len(doc.Availability))
		for day, slots := range doc.Availability {
			converted := make([]entity.TimeSlot, 0, len(slots))
			for _, slot := range slots {
				converted = append(converted, entity.TimeSlot{Start: slot.Start, End: slot.End})
			}
			subject.Availability[day] = converted
		}
	}

	return subject
}

// fromTutorDomain converts a domain Tutor entity to a GORM TutorModel,
// encoding the structured sections into jsonb.
func fromTutorDomain(data *entity.Tutor) (*model.TutorModel, error) {
	if data == nil {
		return nil, nil
	}

	tutorM := &model.TutorModel{
		UserID:             data.UserID,
		Bio:                data.Bio,
		Gender:             data.Gender,
		AvailableLocations: data.AvailableLocations,
		Rating:             data.Rating,
		TotalReviews:       data.TotalReviews,
		TotalFavorites:     data.TotalFavorites,
		VerificationStatus: string(data.Verification.Status),
		IsVerified:         data.Verification.IsVerified,
		CheckProfile:       data.Verification.Checks.Profile,
		CheckEducation:     data.Verification.Checks.Education,
		CheckDocuments:     data.Verification.Checks.Documents,
		CheckBackground:    data.Verification.Checks.Background,
		RejectionReason:    data.Verification.RejectionReason,
		VerifiedBy:         data.Verification.VerifiedBy,
		VerifiedAt:         data.Verification.VerifiedAt,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}

	var err error
	if tutorM.SocialLinks, err = encodeJSONColumn(data.SocialLinks, "social links"); err != nil {
		return nil, err
	}
	if tutorM.TeachingMediums, err = encodeJSONColumn(data.TeachingMediums, "teaching mediums"); err != nil {
		return nil, err
	}

	education := make([]educationDoc, 0, len(data.Education))
	for _, e := range data.Education {
		education = append(education, educationDoc{
			Degree:      e.Degree,
			Institution: e.Institution,
			Year:        e.Year,
		})
	}
	if tutorM.Education, err = encodeJSONColumn(education, "education"); err != nil {
		return nil, err
	}

	experience := make([]experienceDoc, 0, len(data.Experience))
	for _, e := range data.Experience {
		experience = append(experience, experienceDoc{
			Title:        e.Title,
			Organisation: e.Organisation,
			From:         e.From,
			To:           e.To,
			Description:  e.Description,
		})
	}
	if tutorM.Experience, err = encodeJSONColumn(experience, "experience"); err != nil {
		return nil, err
	}

	subjects := make([]tutorSubjectDoc, 0, len(data.Subjects))
	for _, s := range data.Subjects {
		subjects = append(subjects, fromTutorSubjectDomain(s))
	}
	if tutorM.Subjects, err = encodeJSONColumn(subjects, "subjects"); err != nil {
		return nil, err
	}

	documents := make([]documentDoc, 0, len(data.Documents))
	for _, d := range data.Documents {
		documents = append(documents, documentDoc{
			ID:         d.ID,
			URL:        d.URL,
			Label:      d.Label,
			UploadedAt: d.UploadedAt,
		})
	}
	if tutorM.Documents, err = encodeJSONColumn(documents, "documents"); err != nil {
		return nil, err
	}

	return tutorM, nil
}

func fromTutorSubjectDomain(subject entity.TutorSubject) tutorSubjectDoc {
	doc := tutorSubjectDoc{
		SubjectID: subject.SubjectID,
		TopicIDs:  subject.TopicIDs,
		Modes:     make(map[string]modeOfferingDoc, len(subject.Modes)),
	}
	for mode, offering := range subject.Modes {
		doc.Modes[string(mode)] = modeOfferingDoc{
			Enabled:    offering.Enabled,
			HourlyRate: offering.HourlyRate,
		}
	}
	if len(subject.Availability) > 0 {
		doc.Availability = make(map[time.Weekday][]timeSlotDoc, len(subject.Availability))
		for day, slots := range subject.Availability {
			converted := make([]timeSlotDoc, 0, len(slots))
			for _, slot := range slots {
				converted = append(converted, timeSlotDoc{Start: slot.Start, End: slot.End})
			}
			doc.Availability[day] = converted
		}
	}

	return doc
}

func decodeJSONColumn(raw datatypes.JSON, target any, column string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return errors.Wrapf(err, "failed to decode tutor %s column", column)
	}

	return nil
}

func encodeJSONColumn(value any, column string) (datatypes.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode tutor %s column", column)
	}

	return datatypes.JSON(raw), nil
}
