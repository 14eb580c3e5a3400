package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "verifiedtutors/internal/delivery/context"
	"verifiedtutors/internal/domain/entity"
	domainerrors "verifiedtutors/internal/domain/errors"
	"verifiedtutors/internal/domain/repository"
	"verifiedtutors/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ratingService implements the RatingUsecase interface. Every mutation
// recomputes the tutor's aggregate inside the same transaction under a
// row lock, so the stored mean always matches the stored ratings.
type ratingService struct {
	txManager  repository.TransactionManager
	ratingRepo repository.RatingRepository
	dispatcher usecase.NotificationDispatcher
	logger     *slog.Logger
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	RatingRepo repository.RatingRepository
	Dispatcher usecase.NotificationDispatcher
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		txManager:  params.TxManager,
		ratingRepo: params.RatingRepo,
		dispatcher: params.Dispatcher,
		logger:     params.Logger,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRating rates a completed booking. Rating the same booking again
// updates the existing rating in place; either way the tutor's mean and
// count are recomputed in the same transaction.
func (srv *ratingService) CreateRating(ctx context.Context, input usecase.CreateRatingInput) (*entity.Rating, error) {
	if !entity.ValidScore(input.Score) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("score must be between 1 and 5")
	}
	if len(strings.TrimSpace(input.Review)) < entity.MinReviewLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the review must be at least 10 characters")
	}

	var result *entity.Rating
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()
		ratingRepo := repoFactory.NewRatingRepository()
		tutorRepo := repoFactory.NewTutorRepository()

		booking, err := bookingRepo.FindByID(ctx, input.BookingID)
		if errors.Is(err, repository.ErrBookingNotFound) {
			return errors.WithStack(domainerrors.ErrBookingNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find booking")
		}

		if booking.StudentID != input.StudentID {
			return errors.WithStack(domainerrors.ErrForbidden)
		}
		if booking.Status != entity.BookingCompleted {
			return errors.WithStack(domainerrors.ErrBookingNotCompleted)
		}

		// Lock the tutor before touching ratings so concurrent raters
		// serialise and the recomputed aggregate is exact.
		tutor, err := tutorRepo.AcquireLock(ctx, booking.TutorID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		existing, err := ratingRepo.FindByBooking(ctx, input.BookingID)
		switch {
		case err == nil:
			existing.Score = input.Score
			existing.Review = input.Review
			if err := ratingRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update rating")
			}
			result = existing
		case errors.Is(err, repository.ErrRatingNotFound):
			rating := &entity.Rating{
				ID:        uuid.New(),
				BookingID: booking.ID,
				TutorID:   booking.TutorID,
				StudentID: booking.StudentID,
				SubjectID: booking.SubjectID,
				TopicIDs:  booking.TopicIDs,
				Score:     input.Score,
				Review:    input.Review,
			}
			if err := ratingRepo.Create(ctx, rating); err != nil {
				return errors.Wrap(err, "failed to create rating")
			}
			result = rating
		default:
			return errors.Wrap(err, "failed to find rating by booking")
		}

		return srv.refreshTutorStats(ctx, ratingRepo, tutorRepo, tutor)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Rating recorded",
		slog.Any("ratingID", result.ID),
		slog.Any("tutorID", result.TutorID),
		slog.Float64("score", result.Score))

	srv.dispatcher.Dispatch(ctx, &usecase.NotificationEvent{
		UserID:   result.TutorID,
		Type:     entity.NotificationRating,
		Category: entity.CategoryInfo,
		Title:    "New rating",
		Message:  "A student rated one of your sessions.",
		Metadata: map[string]string{"rating_id": result.ID.String()},
		Priority: entity.PriorityNormal,
	})

	return result, nil
}

// DeleteRating removes a rating and recomputes the tutor's aggregate.
// Deleting the last rating resets the aggregate to zero.
func (srv *ratingService) DeleteRating(ctx context.Context, requesterID uuid.UUID, requesterRole entity.Role, ratingID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.NewRatingRepository()
		tutorRepo := repoFactory.NewTutorRepository()

		rating, err := ratingRepo.FindByID(ctx, ratingID)
		if errors.Is(err, repository.ErrRatingNotFound) {
			return errors.WithStack(domainerrors.ErrRatingNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find rating")
		}

		if rating.StudentID != requesterID && requesterRole != entity.RoleAdmin {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		tutor, err := tutorRepo.AcquireLock(ctx, rating.TutorID)
		if errors.Is(err, repository.ErrTutorNotFound) {
			return errors.WithStack(domainerrors.ErrTutorNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock tutor")
		}

		if err := ratingRepo.Delete(ctx, ratingID); err != nil {
			return errors.Wrap(err, "failed to delete rating")
		}

		return srv.refreshTutorStats(ctx, ratingRepo, tutorRepo, tutor)
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Rating deleted", slog.Any("ratingID", ratingID))

	return nil
}

// ListTutorRatings pages a tutor's ratings newest first.
func (srv *ratingService) ListTutorRatings(ctx context.Context, tutorID uuid.UUID, page, perPage int) (*usecase.RatingPage, error) {
	page, perPage = normalizePage(page, perPage)

	ratings, total, err := srv.ratingRepo.ListByTutor(ctx, tutorID, page, perPage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	return &usecase.RatingPage{Ratings: ratings, Total: total, Page: page, PerPage: perPage}, nil
}

// refreshTutorStats recomputes the locked tutor's derived fields from a
// single aggregate query over the current transaction's view.
func (srv *ratingService) refreshTutorStats(ctx context.Context, ratingRepo repository.RatingRepository, tutorRepo repository.TutorRepository, tutor *entity.Tutor) error {
	stats, err := ratingRepo.StatsForTutor(ctx, tutor.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to compute rating stats")
	}

	tutor.Rating = stats.Average
	tutor.TotalReviews = int(stats.Count)
	if err := tutorRepo.Update(ctx, tutor); err != nil {
		return errors.Wrap(err, "failed to update tutor stats")
	}

	return nil
}
