package usecase

import (
	"context"
	"time"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBookingInput requests a session with a tutor. The amount is
// computed server-side from the tutor's rate for the requested mode.
type CreateBookingInput struct {
	StudentID uuid.UUID
	TutorID   uuid.UUID
	SubjectID uuid.UUID
	TopicIDs  []uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Mode      entity.TeachingMode
}

// ListBookingsInput pages one party's bookings.
type ListBookingsInput struct {
	UserID  uuid.UUID
	AsTutor bool
	Status  entity.BookingStatus
	Page    int
	PerPage int
}

// BookingPage is one page of bookings.
type BookingPage struct {
	Bookings []entity.Booking
	Total    int64
	Page     int
	PerPage  int
}

// BookingUsecase defines the booking lifecycle operations.
type BookingUsecase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*entity.Booking, error)
	GetBooking(ctx context.Context, requesterID, bookingID uuid.UUID) (*entity.Booking, error)
	ListBookings(ctx context.Context, input ListBookingsInput) (*BookingPage, error)

	// ConfirmBooking moves pending to confirmed. Tutor only.
	ConfirmBooking(ctx context.Context, tutorID, bookingID uuid.UUID) (*entity.Booking, error)

	// CompleteBooking moves confirmed to completed. Tutor only.
	CompleteBooking(ctx context.Context, tutorID, bookingID uuid.UUID) (*entity.Booking, error)

	// CancelBooking moves pending or confirmed to cancelled. Either party.
	CancelBooking(ctx context.Context, requesterID, bookingID uuid.UUID, reason string) (*entity.Booking, error)
}
