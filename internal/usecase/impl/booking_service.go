package impl

import (
	"context"
	"fmt"
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

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	txManager   repository.TransactionManager
	bookingRepo repository.BookingRepository
	tutorRepo   repository.TutorRepository
	dispatcher  usecase.NotificationDispatcher
	logger      *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	BookingRepo repository.BookingRepository
	TutorRepo   repository.TutorRepository
	Dispatcher  usecase.NotificationDispatcher
	Logger      *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		txManager:   params.TxManager,
		bookingRepo: params.BookingRepo,
		tutorRepo:   params.TutorRepo,
		dispatcher:  params.Dispatcher,
		logger:      params.Logger,
	}
}

func (srv *bookingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBooking requests a session. The amount is derived from the
// tutor's hourly rate for the requested mode, never from the client.
func (srv *bookingService) CreateBooking(ctx context.Context, input usecase.CreateBookingInput) (*entity.Booking, error) {
	if !input.EndTime.After(input.StartTime) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the session end must be after its start")
	}
	if !input.Mode.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown teaching mode " + string(input.Mode))
	}

	tutor, err := srv.tutorRepo.FindByUserID(ctx, input.TutorID)
	if errors.Is(err, repository.ErrTutorNotFound) {
		return nil, errors.WithStack(domainerrors.ErrTutorNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find tutor")
	}

	if !tutor.Verification.IsVerified {
		return nil, errors.WithStack(domainerrors.ErrTutorNotVerified)
	}

	entry, ok := tutor.SubjectEntry(input.SubjectID)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("the tutor does not teach the selected subject")
	}
	for _, topicID := range input.TopicIDs {
		if !entry.TeachesTopic(topicID) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("the tutor has not selected one of the requested topics")
		}
	}

	offering, ok := entry.Offering(input.Mode)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrBookingModeUnavailable)
	}

	booking := &entity.Booking{
		ID:            uuid.New(),
		StudentID:     input.StudentID,
		TutorID:       input.TutorID,
		SubjectID:     input.SubjectID,
		TopicIDs:      input.TopicIDs,
		StartTime:     input.StartTime,
		EndTime:       input.EndTime,
		Mode:          input.Mode,
		Status:        entity.BookingPending,
		Amount:        entity.SessionAmount(offering.HourlyRate, input.StartTime, input.EndTime),
		PaymentStatus: entity.PaymentPending,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Any("bookingID", booking.ID),
		slog.Any("tutorID", booking.TutorID),
		slog.Float64("amount", booking.Amount))

	srv.dispatcher.Dispatch(ctx, bookingEvent(booking.TutorID, booking,
		"New booking request",
		"A student requested a session. Confirm or decline it from your dashboard.",
		entity.CategoryInfo))

	return booking, nil
}

// GetBooking returns one booking to either of its parties.
func (srv *bookingService) GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.StudentID != requesterID && booking.TutorID != requesterID {
		return nil, errors.WithStack(domainerrors.ErrForbidden)
	}

	return booking, nil
}

// ListBookings pages bookings for one side of the marketplace.
func (srv *bookingService) ListBookings(ctx context.Context, input usecase.ListBookingsInput) (*usecase.BookingPage, error) {
	page, perPage := normalizePage(input.Page, input.PerPage)
	filter := repository.BookingFilter{Status: input.Status, Page: page, PerPage: perPage}

	var (
		bookings []entity.Booking
		total    int64
		err      error
	)
	if input.AsTutor {
		bookings, total, err = srv.bookingRepo.ListByTutor(ctx, input.UserID, filter)
	} else {
		bookings, total, err = srv.bookingRepo.ListByStudent(ctx, input.UserID, filter)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return &usecase.BookingPage{Bookings: bookings, Total: total, Page: page, PerPage: perPage}, nil
}

// ConfirmBooking moves a pending booking to confirmed.
func (srv *bookingService) ConfirmBooking(ctx context.Context, tutorID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.transition(ctx, bookingID, entity.BookingConfirmed, func(b *entity.Booking) error {
		if b.TutorID != tutorID {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.dispatcher.Dispatch(ctx, bookingEvent(booking.StudentID, booking,
		"Booking confirmed",
		"Your tutor confirmed the session.",
		entity.CategorySuccess))

	return booking, nil
}

// CompleteBooking moves a confirmed booking to completed.
func (srv *bookingService) CompleteBooking(ctx context.Context, tutorID, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.transition(ctx, bookingID, entity.BookingCompleted, func(b *entity.Booking) error {
		if b.TutorID != tutorID {
			return errors.WithStack(domainerrors.ErrForbidden)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.dispatcher.Dispatch(ctx, bookingEvent(booking.StudentID, booking,
		"Session completed",
		"Your session is complete. Leave a rating to help other students.",
		entity.CategorySuccess))

	return booking, nil
}

// CancelBooking moves a pending or confirmed booking to cancelled. The
// counterparty of whoever cancelled is notified.
func (srv *bookingService) CancelBooking(ctx context.Context, requesterID, bookingID uuid.UUID, reason string) (*entity.Booking, error) {
	var notifyUserID uuid.UUID
	booking, err := srv.transition(ctx, bookingID, entity.BookingCancelled, func(b *entity.Booking) error {
		switch requesterID {
		case b.StudentID:
			notifyUserID = b.TutorID
		case b.TutorID:
			notifyUserID = b.StudentID
		default:
			return errors.WithStack(domainerrors.ErrForbidden)
		}
		b.CancellationReason = reason

		return nil
	})
	if err != nil {
		return nil, err
	}

	message := "The session was cancelled."
	if reason != "" {
		message = "The session was cancelled: " + reason
	}
	srv.dispatcher.Dispatch(ctx, bookingEvent(notifyUserID, booking,
		"Booking cancelled", message, entity.CategoryWarning))

	return booking, nil
}

// transition applies the status machine inside a transaction. fn runs
// before the move for authorisation and extra mutation.
func (srv *bookingService) transition(ctx context.Context, bookingID uuid.UUID, to entity.BookingStatus, fn func(*entity.Booking) error) (*entity.Booking, error) {
	var result *entity.Booking
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		bookingRepo := repoFactory.NewBookingRepository()

		booking, err := bookingRepo.FindByID(ctx, bookingID)
		if errors.Is(err, repository.ErrBookingNotFound) {
			return errors.WithStack(domainerrors.ErrBookingNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find booking")
		}

		if err := fn(booking); err != nil {
			return err
		}

		if !booking.CanTransition(to) {
			return domainerrors.ErrBookingTransitionInvalid.WithDetails(
				fmt.Sprintf("cannot move a %s booking to %s", booking.Status, to))
		}
		booking.Status = to

		if err := bookingRepo.Update(ctx, booking); err != nil {
			return errors.Wrap(err, "failed to update booking")
		}

		result = booking

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Booking transitioned", slog.Any("bookingID", bookingID), slog.Any("status", to))

	return result, nil
}

func (srv *bookingService) findBooking(ctx context.Context, bookingID uuid.UUID) (*entity.Booking, error) {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if errors.Is(err, repository.ErrBookingNotFound) {
		return nil, errors.WithStack(domainerrors.ErrBookingNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find booking")
	}

	return booking, nil
}

func bookingEvent(userID uuid.UUID, booking *entity.Booking, title, message string, category entity.NotificationCategory) *usecase.NotificationEvent {
	return &usecase.NotificationEvent{
		UserID:   userID,
		Type:     entity.NotificationBooking,
		Category: category,
		Title:    title,
		Message:  message,
		Metadata: map[string]string{
			"booking_id": booking.ID.String(),
			"status":     string(booking.Status),
		},
		Priority: entity.PriorityNormal,
	}
}
