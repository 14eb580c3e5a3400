package entity

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinReviewLength is the shortest accepted review text.
const MinReviewLength = 10

// Rating is a student's review of a completed booking. A booking takes
// at most one rating, and a student may rate a tutor at most once per
// topic combination.
type Rating struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	TutorID   uuid.UUID
	StudentID uuid.UUID
	SubjectID uuid.UUID
	TopicIDs  []uuid.UUID
	Score     float64
	Review    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidScore reports whether the score is inside the accepted range.
func ValidScore(score float64) bool {
	return score >= 1 && score <= 5
}

// TopicsFingerprint canonicalises a topic selection for the
// per-(tutor,student,topics) uniqueness index: IDs sorted and joined,
// so order of selection never distinguishes two ratings. An empty
// selection yields the empty string.
func TopicsFingerprint(topicIDs []uuid.UUID) string {
	if len(topicIDs) == 0 {
		return ""
	}
	keys := make([]string, len(topicIDs))
	for i, id := range topicIDs {
		keys[i] = id.String()
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}
