package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// tutorService implements the TutorUsecase interface.
type tutorService struct {
	txManager   repository.TransactionManager
	tutorRepo   repository.TutorRepository
	subjectRepo repository.SubjectRepository
	bookingRepo repository.BookingRepository
	dispatcher  usecase.NotificationDispatcher
	logger      *slog.Logger
}

// TutorServiceParams holds dependencies for TutorService, injected by Fx.
type TutorServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	TutorRepo   repository.TutorRepository
	SubjectRepo repository.SubjectRepository
	BookingRepo repository.BookingRepository
	Dispatcher  usecase.NotificationDispatcher
	Logger      *slog.Logger
}

// NewTutorService is the constructor for tutorService.
func NewTutorService(params TutorServiceParams) usecase.TutorUsecase {
	return &tutorService{
		txManager:   params.TxManager,
		tutorRepo:   params.TutorRepo,
		subjectRepo: params.SubjectRepo,
		bookingRepo: params.BookingRepo,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

func (srv *tutorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetTutor returns one tutor profile.
func (srv *tutorService) GetTutor(ctx context.Context, userID uuid.UUID) (*entity.Tutor, error) {
	tutor, err := srv.tutorRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrTutorNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTutorNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tutor")
	}

	return tutor, nil
}

// SearchTutors pages tutors matching the filter, best rated first.
func (srv *tutorService) SearchTutors(ctx context.Context, input usecase.TutorSearchInput) (*usecase.TutorPage, error) {
	page, perPage := normalizePage(input.Page, input.PerPage)

	filter := repository.TutorSearchFilter{
		SubjectID:    input.SubjectID,
		TopicID:      input.TopicID,
		Mode:         input.Mode,
		VerifiedOnly: input.VerifiedOnly,
		MinRating:    input.MinRating,
		Location:     input.Location,
		Page:         page,
		PerPage:      perPage,
	}

	tutors, total, err := srv.tutorRepo.Search(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to search tutors")
	}

	return &usecase.TutorPage{Tutors: tutors, Total: total, Page: page, PerPage: perPage}, nil
}

// UpdateProfile replaces the editable sections after validating them.
// Edits to a verified profile's critical sections (education,
// experience, subjects, documents) drop it back to pending review.
func (srv *tutorService) UpdateProfile(ctx context.Context, input usecase.UpdateTutorProfileInput) (*entity.Tutor, error) {
	if appErr := srv.validateProfileInput(ctx, &input); appErr != nil {
		return nil, appErr
	}

	var updated *entity.Tutor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, input.UserID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		nextSubjects := toSubjectEntries(input.Subjects)
		wasVerified := tutor.Verification.IsVerified
		criticalChanged := criticalSectionsChanged(tutor, &input, nextSubjects)

		tutor.Bio = input.Bio
		tutor.Gender = input.Gender
		tutor.SocialLinks = input.SocialLinks
		tutor.TeachingMediums = input.TeachingMediums
		tutor.Education = input.Education
		tutor.Experience = input.Experience
		tutor.Subjects = nextSubjects
		tutor.AvailableLocations = input.AvailableLocations

		if wasVerified && criticalChanged {
			tutor.Verification.Reset()
			srv.log(ctx).Info("Verification reset after critical profile edit", slog.Any("tutorID", tutor.UserID))
		}

		if err := tutorRepo.Update(ctx, tutor); err != nil {
			return errors.Wrap(err, "failed to update tutor")
		}

		updated = tutor

		return nil
	})
	if err != nil {
		return nil, err
	}

	if updated.Verification.Status == entity.VerificationPending && !updated.Verification.IsVerified {
		srv.notifyVerificationPending(ctx, updated)
	}

	return updated, nil
}

func (srv *tutorService) notifyVerificationPending(ctx context.Context, tutor *entity.Tutor) {
	srv.dispatcher.Dispatch(ctx, &usecase.NotificationEvent{
		UserID:   tutor.UserID,
		Type:     entity.NotificationVerification,
		Category: entity.CategoryInfo,
		Title:    "Profile under review",
		Message:  "Your profile changes were saved and are awaiting verification.",
		Priority: entity.PriorityNormal,
	})
}

// validateProfileInput checks the structural rules of a profile update.
func (srv *tutorService) validateProfileInput(ctx context.Context, input *usecase.UpdateTutorProfileInput) error {
	for _, e := range input.Education {
		if !e.Complete() {
			return domainerrors.ErrValidationFailed.WithDetails("education entries require degree, institution and year")
		}
	}
	for _, e := range input.Experience {
		if !e.Complete() {
			return domainerrors.ErrValidationFailed.WithDetails("experience entries require title, organisation and start date")
		}
	}

	for _, sub := range input.Subjects {
		if len(sub.TopicIDs) > entity.MaxTopicsPerSubject {
			return domainerrors.ErrValidationFailed.WithDetails("a subject entry may select at most 5 topics")
		}

		entry := entity.TutorSubject{Modes: sub.Modes}
		if !entry.HasEnabledMode() {
			return domainerrors.ErrValidationFailed.WithDetails("each subject needs at least one enabled teaching mode with a positive hourly rate")
		}

		for mode := range sub.Modes {
			if !mode.Valid() {
				return domainerrors.ErrValidationFailed.WithDetails("unknown teaching mode " + string(mode))
			}
		}

		for name, slots := range sub.Availability {
			if _, ok := parseWeekday(name); !ok {
				return domainerrors.ErrValidationFailed.WithDetails("unknown weekday " + name + " in availability")
			}
			for _, slot := range slots {
				if !slot.Valid() {
					return domainerrors.ErrValidationFailed.WithDetails("availability slots must be HH:mm windows with start before end")
				}
			}
		}

		if err := srv.checkTopicsBelongToSubject(ctx, sub.SubjectID, sub.TopicIDs); err != nil {
			return err
		}
	}

	return nil
}

func (srv *tutorService) checkTopicsBelongToSubject(ctx context.Context, subjectID uuid.UUID, topicIDs []uuid.UUID) error {
	if _, err := srv.subjectRepo.FindByID(ctx, subjectID); errors.Is(err, repository.ErrSubjectNotFound) {
		return errors.WithStack(domainerrors.ErrSubjectNotFound)
	} else if err != nil {
		return errors.Wrap(err, "failed to find subject")
	}

	if len(topicIDs) == 0 {
		return nil
	}

	topics, err := srv.subjectRepo.FindTopics(ctx, topicIDs)
	if errors.Is(err, repository.ErrTopicNotFound) {
		return errors.WithStack(domainerrors.ErrTopicNotFound)
	}
	if err != nil {
		return errors.Wrap(err, "failed to load topics")
	}

	for _, topic := range topics {
		if topic.SubjectID != subjectID {
			return domainerrors.ErrValidationFailed.WithDetails("topic " + topic.Name + " does not belong to the selected subject")
		}
	}

	return nil
}

// AddDocument attaches a verification document. Documents are a
// critical section, so a verified profile drops back to pending.
func (srv *tutorService) AddDocument(ctx context.Context, input usecase.AddDocumentInput) (*entity.Tutor, error) {
	var updated *entity.Tutor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, input.UserID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		tutor.Documents = append(tutor.Documents, entity.Document{
			ID:         uuid.New(),
			URL:        input.URL,
			Label:      input.Label,
			UploadedAt: time.Now().UTC(),
		})
		if tutor.Verification.IsVerified {
			tutor.Verification.Reset()
		}

		if err := tutorRepo.Update(ctx, tutor); err != nil {
			return errors.Wrap(err, "failed to update tutor")
		}

		updated = tutor

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveDocument detaches a document by its ID.
func (srv *tutorService) RemoveDocument(ctx context.Context, userID, documentID uuid.UUID) (*entity.Tutor, error) {
	var updated *entity.Tutor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, userID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		kept := tutor.Documents[:0]
		found := false
		for _, doc := range tutor.Documents {
			if doc.ID == documentID {
				found = true

				continue
			}
			kept = append(kept, doc)
		}
		if !found {
			return errors.WithStack(domainerrors.ErrNotFound)
		}
		tutor.Documents = kept

		if err := tutorRepo.Update(ctx, tutor); err != nil {
			return errors.Wrap(err, "failed to update tutor")
		}

		updated = tutor

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteTutor removes the profile and its account. The delete is
// refused while the tutor still has pending or confirmed bookings so a
// student never loses a live commitment.
func (srv *tutorService) DeleteTutor(ctx context.Context, userID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		if _, err := tutorRepo.AcquireLock(ctx, userID); errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		} else if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		active, err := repoFactory.NewBookingRepository().CountActiveByTutor(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active bookings")
		}
		if active > 0 {
			return errors.WithStack(domainerrors.ErrTutorHasActiveBookings)
		}

		if err := tutorRepo.Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete tutor")
		}
		if err := repoFactory.NewUserRepository().Delete(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Tutor account deleted", slog.Any("tutorID", userID))

	return nil
}

// toSubjectEntries maps the input DTOs onto entity values, parsing the
// weekday names of the availability map.
func toSubjectEntries(inputs []usecase.TutorSubjectInput) []entity.TutorSubject {
	entries := make([]entity.TutorSubject, 0, len(inputs))
	for _, in := range inputs {
		entry := entity.TutorSubject{
			SubjectID: in.SubjectID,
			TopicIDs:  in.TopicIDs,
			Modes:     in.Modes,
		}
		if len(in.Availability) > 0 {
			entry.Availability = make(map[time.Weekday][]entity.TimeSlot, len(in.Availability))
			for name, slots := range in.Availability {
				if day, ok := parseWeekday(name); ok {
					entry.Availability[day] = slots
				}
			}
		}
		entries = append(entries, entry)
	}

	return entries
}

func parseWeekday(name string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return day, true
		}
	}

	return 0, false
}

// criticalSectionsChanged reports whether the update touches a section
// the verification review signed off on. For subjects that covers the
// subject itself, the topic selection and the per-mode pricing;
// availability windows are scheduling, not credentials, and never
// force a re-review.
func criticalSectionsChanged(tutor *entity.Tutor, input *usecase.UpdateTutorProfileInput, nextSubjects []entity.TutorSubject) bool {
	if len(tutor.Education) != len(input.Education) || len(tutor.Experience) != len(input.Experience) {
		return true
	}
	for i := range tutor.Education {
		if tutor.Education[i] != input.Education[i] {
			return true
		}
	}
	for i := range tutor.Experience {
		if tutor.Experience[i] != input.Experience[i] {
			return true
		}
	}

	if len(tutor.Subjects) != len(nextSubjects) {
		return true
	}
	for i := range tutor.Subjects {
		if subjectEntryChanged(tutor.Subjects[i], nextSubjects[i]) {
			return true
		}
	}

	return false
}

func subjectEntryChanged(prev, next entity.TutorSubject) bool {
	if prev.SubjectID != next.SubjectID {
		return true
	}

	if len(prev.TopicIDs) != len(next.TopicIDs) {
		return true
	}
	selected := make(map[uuid.UUID]struct{}, len(prev.TopicIDs))
	for _, id := range prev.TopicIDs {
		selected[id] = struct{}{}
	}
	for _, id := range next.TopicIDs {
		if _, ok := selected[id]; !ok {
			return true
		}
	}

	if len(prev.Modes) != len(next.Modes) {
		return true
	}
	for mode, offering := range prev.Modes {
		if next.Modes[mode] != offering {
			return true
		}
	}

	return false
}

// normalizePage clamps pagination inputs to sane values.
func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	return page, perPage
}
