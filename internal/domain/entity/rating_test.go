package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(4.5))
	assert.True(t, ValidScore(5))
	assert.False(t, ValidScore(0.5))
	assert.False(t, ValidScore(5.1))
}

func TestTopicsFingerprint_OrderIndependent(t *testing.T) {
	a := uuid.New()
	b := uuid.New()
	c := uuid.New()

	assert.Equal(t,
		TopicsFingerprint([]uuid.UUID{a, b, c}),
		TopicsFingerprint([]uuid.UUID{c, a, b}),
	)
	assert.NotEqual(t,
		TopicsFingerprint([]uuid.UUID{a, b}),
		TopicsFingerprint([]uuid.UUID{a, c}),
	)
	assert.Empty(t, TopicsFingerprint(nil))
}

func TestTimeSlot_Valid(t *testing.T) {
	assert.True(t, TimeSlot{Start: "09:00", End: "11:30"}.Valid())
	assert.False(t, TimeSlot{Start: "11:30", End: "09:00"}.Valid())
	assert.False(t, TimeSlot{Start: "9:00", End: "11:00"}.Valid())
	assert.False(t, TimeSlot{Start: "09:00", End: "24:00"}.Valid())
	assert.False(t, TimeSlot{Start: "09:00", End: "09:00"}.Valid())
}
