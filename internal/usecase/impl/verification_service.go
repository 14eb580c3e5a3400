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

// verificationService implements the VerificationUsecase interface.
// Every mutation locks the tutor row so concurrent admin decisions
// serialise instead of overwriting each other.
type verificationService struct {
	txManager  repository.TransactionManager
	tutorRepo  repository.TutorRepository
	dispatcher usecase.NotificationDispatcher
	logger     *slog.Logger
}

// VerificationServiceParams holds dependencies for VerificationService, injected by Fx.
type VerificationServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	TutorRepo  repository.TutorRepository
	Dispatcher usecase.NotificationDispatcher
	Logger     *slog.Logger
}

// NewVerificationService is the constructor for verificationService.
func NewVerificationService(params VerificationServiceParams) usecase.VerificationUsecase {
	return &verificationService{
		txManager:  params.TxManager,
		tutorRepo:  params.TutorRepo,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

func (srv *verificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListByStatus pages tutors in one verification state.
func (srv *verificationService) ListByStatus(ctx context.Context, status entity.VerificationStatus, page, perPage int) (*usecase.TutorPage, error) {
	page, perPage = normalizePage(page, perPage)

	tutors, total, err := srv.tutorRepo.ListByVerificationStatus(ctx, status, page, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tutors by verification status")
	}

	return &usecase.TutorPage{Tutors: tutors, Total: total, Page: page, PerPage: perPage}, nil
}

// Approve verifies the tutor and signs off every check.
func (srv *verificationService) Approve(ctx context.Context, adminID, tutorID uuid.UUID) (*entity.Tutor, error) {
	tutor, err := srv.mutate(ctx, tutorID, func(tutor *entity.Tutor) error {
		if tutor.Verification.IsVerified {
			return errors.WithStack(domainerrors.ErrTutorAlreadyVerified)
		}

		tutor.Verification.Approve(adminID, time.Now().UTC())

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tutor approved", slog.Any("tutorID", tutorID), slog.Any("adminID", adminID))
	srv.dispatcher.Dispatch(ctx, &usecase.NotificationEvent{
		UserID:        tutorID,
		Type:          entity.NotificationVerification,
		Category:      entity.CategorySuccess,
		Title:         "You are verified",
		Message:       "Your tutor profile passed verification and is now visible to students.",
		Priority:      entity.PriorityHigh,
		EmailSubject:  "Your VerifiedTutors profile is approved",
		EmailHTMLBody: "<p>Congratulations! Your tutor profile passed verification and is now visible to students.</p>",
		SMSBody:       "VerifiedTutors: your tutor profile has been verified.",
	})

	return tutor, nil
}

// Reject declines verification. The reason is mandatory and kept on
// the record for the tutor to read.
func (srv *verificationService) Reject(ctx context.Context, adminID, tutorID uuid.UUID, reason string) (*entity.Tutor, error) {
	if reason == "" {
		return nil, errors.WithStack(domainerrors.ErrRejectionReasonRequired)
	}

	tutor, err := srv.mutate(ctx, tutorID, func(tutor *entity.Tutor) error {
		tutor.Verification.Reject(adminID, reason, time.Now().UTC())

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tutor rejected", slog.Any("tutorID", tutorID), slog.Any("adminID", adminID))
	srv.dispatcher.Dispatch(ctx, &usecase.NotificationEvent{
		UserID:        tutorID,
		Type:          entity.NotificationVerification,
		Category:      entity.CategoryError,
		Title:         "Verification declined",
		Message:       "Your profile was not approved: " + reason,
		Priority:      entity.PriorityHigh,
		EmailSubject:  "Your VerifiedTutors verification was declined",
		EmailHTMLBody: "<p>Your profile was not approved.</p><p>Reason: " + reason + "</p><p>Update your profile and it will be reviewed again.</p>",
	})

	return tutor, nil
}

// Toggle flips the verified flag. Flipping on behaves like Approve
// without the already-verified guard; flipping off returns the record
// to pending review.
func (srv *verificationService) Toggle(ctx context.Context, adminID, tutorID uuid.UUID) (*entity.Tutor, error) {
	var nowVerified bool
	tutor, err := srv.mutate(ctx, tutorID, func(tutor *entity.Tutor) error {
		if tutor.Verification.IsVerified {
			tutor.Verification.Reset()
		} else {
			tutor.Verification.Approve(adminID, time.Now().UTC())
		}
		nowVerified = tutor.Verification.IsVerified

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Tutor verification toggled",
		slog.Any("tutorID", tutorID),
		slog.Any("adminID", adminID),
		slog.Bool("verified", nowVerified))

	event := &usecase.NotificationEvent{
		UserID:   tutorID,
		Type:     entity.NotificationVerification,
		Priority: entity.PriorityNormal,
	}
	if nowVerified {
		event.Category = entity.CategorySuccess
		event.Title = "Verification restored"
		event.Message = "Your tutor profile is verified again."
	} else {
		event.Category = entity.CategoryWarning
		event.Title = "Verification revoked"
		event.Message = "Your tutor profile is back under review."
	}
	srv.dispatcher.Dispatch(ctx, event)

	return tutor, nil
}

// mutate runs fn against the locked tutor row and persists the result.
func (srv *verificationService) mutate(ctx context.Context, tutorID uuid.UUID, fn func(*entity.Tutor) error) (*entity.Tutor, error) {
	var result *entity.Tutor
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tutorRepo := repoFactory.NewTutorRepository()

		tutor, err := tutorRepo.AcquireLock(ctx, tutorID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		if err := fn(tutor); err != nil {
			return err
		}

		if err := tutorRepo.Update(ctx, tutor); err != nil {
			return errors.Wrap(err, "failed to update tutor")
		}

		result = tutor

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
