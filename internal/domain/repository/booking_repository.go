package repository

import (
	"context"
	"errors"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBookingNotFound is returned when no booking exists for the ID.
var ErrBookingNotFound = errors.New("booking not found")

// BookingFilter narrows a booking listing for one party.
type BookingFilter struct {
	Status  entity.BookingStatus
	Page    int
	PerPage int
}

// BookingRepository defines the standard operations for booking persistence.
type BookingRepository interface {
	// FindByID retrieves a single booking.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)

	// ListByStudent pages the student's bookings newest first.
	ListByStudent(ctx context.Context, studentID uuid.UUID, filter BookingFilter) ([]entity.Booking, int64, error)

	// ListByTutor pages the tutor's bookings newest first.
	ListByTutor(ctx context.Context, tutorID uuid.UUID, filter BookingFilter) ([]entity.Booking, int64, error)

	// CountActiveByTutor counts the tutor's pending and confirmed bookings.
	CountActiveByTutor(ctx context.Context, tutorID uuid.UUID) (int64, error)

	// Create persists a new booking.
	Create(ctx context.Context, booking *entity.Booking) error

	// Update modifies an existing booking.
	Update(ctx context.Context, booking *entity.Booking) error
}
