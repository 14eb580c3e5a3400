package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus tracks settlement of the booking amount.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a tutoring session request between a student and a tutor.
type Booking struct {
	ID                 uuid.UUID
	StudentID          uuid.UUID
	TutorID            uuid.UUID
	SubjectID          uuid.UUID
	TopicIDs           []uuid.UUID
	StartTime          time.Time
	EndTime            time.Time
	Mode               TeachingMode
	Status             BookingStatus
	Amount             float64
	PaymentStatus      PaymentStatus
	CancellationReason string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CanTransition reports whether the status machine permits moving to
// the target state. Pending may confirm or cancel; confirmed may
// complete or cancel; completed and cancelled are terminal.
func (b *Booking) CanTransition(to BookingStatus) bool {
	switch b.Status {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingCompleted || to == BookingCancelled
	default:
		return false
	}
}

// Active reports whether the booking still holds a commitment between
// the parties.
func (b *Booking) Active() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}

// DurationHours is the length of the requested window in hours.
func (b *Booking) DurationHours() float64 {
	return b.EndTime.Sub(b.StartTime).Hours()
}

// SessionAmount prices a window at the given hourly rate.
func SessionAmount(hourlyRate float64, start, end time.Time) float64 {
	return hourlyRate * end.Sub(start).Hours()
}
