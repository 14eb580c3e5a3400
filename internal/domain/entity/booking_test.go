package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransition(t *testing.T) {
	tests := []struct {
		name string
		from BookingStatus
		to   BookingStatus
		want bool
	}{
		{name: "pending to confirmed", from: BookingPending, to: BookingConfirmed, want: true},
		{name: "pending to cancelled", from: BookingPending, to: BookingCancelled, want: true},
		{name: "pending to completed skips confirmation", from: BookingPending, to: BookingCompleted, want: false},
		{name: "confirmed to completed", from: BookingConfirmed, to: BookingCompleted, want: true},
		{name: "confirmed to cancelled", from: BookingConfirmed, to: BookingCancelled, want: true},
		{name: "confirmed back to pending", from: BookingConfirmed, to: BookingPending, want: false},
		{name: "completed is terminal", from: BookingCompleted, to: BookingCancelled, want: false},
		{name: "cancelled is terminal", from: BookingCancelled, to: BookingConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransition(tt.to))
		})
	}
}

func TestBooking_Active(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).Active())
	assert.True(t, (&Booking{Status: BookingConfirmed}).Active())
	assert.False(t, (&Booking{Status: BookingCompleted}).Active())
	assert.False(t, (&Booking{Status: BookingCancelled}).Active())
}

func TestSessionAmount(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	assert.InDelta(t, 3000, SessionAmount(1500, start, start.Add(2*time.Hour)), 0.001)
	assert.InDelta(t, 2250, SessionAmount(1500, start, start.Add(90*time.Minute)), 0.001)
}
