package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// TeachingMode names the three ways a session can be delivered.
type TeachingMode string

const (
	ModeOnline    TeachingMode = "online"
	ModeHomeVisit TeachingMode = "home-visit"
	ModeGroup     TeachingMode = "group"
)

// Valid reports whether the mode is one of the three fixed modes.
func (m TeachingMode) Valid() bool {
	switch m {
	case ModeOnline, ModeHomeVisit, ModeGroup:
		return true
	default:
		return false
	}
}

// VerificationStatus tracks where a tutor sits in the review workflow.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// VerificationChecks are the individual review items an admin signs off.
type VerificationChecks struct {
	Profile    bool
	Education  bool
	Documents  bool
	Background bool
}

// Verification is the review sub-record embedded in a tutor profile.
type Verification struct {
	Status          VerificationStatus
	IsVerified      bool
	Checks          VerificationChecks
	RejectionReason string
	VerifiedBy      *uuid.UUID
	VerifiedAt      *time.Time
}

// Approve marks the tutor verified with every check signed off.
func (v *Verification) Approve(adminID uuid.UUID, at time.Time) {
	v.Status = VerificationApproved
	v.IsVerified = true
	v.Checks = VerificationChecks{Profile: true, Education: true, Documents: true, Background: true}
	v.RejectionReason = ""
	v.VerifiedBy = &adminID
	v.VerifiedAt = &at
}

// Reject records a rejection with the admin's reason.
func (v *Verification) Reject(adminID uuid.UUID, reason string, at time.Time) {
	v.Status = VerificationRejected
	v.IsVerified = false
	v.Checks = VerificationChecks{}
	v.RejectionReason = reason
	v.VerifiedBy = &adminID
	v.VerifiedAt = &at
}

// Reset returns the record to the pending state. Used when a verified
// profile edits a critical section and when verification is toggled off.
func (v *Verification) Reset() {
	v.Status = VerificationPending
	v.IsVerified = false
	v.Checks = VerificationChecks{}
	v.RejectionReason = ""
	v.VerifiedBy = nil
	v.VerifiedAt = nil
}

// EducationEntry is one qualification on a tutor profile.
type EducationEntry struct {
	Degree      string
	Institution string
	Year        int
}

// Complete reports whether the entry carries every required field.
func (e EducationEntry) Complete() bool {
	return e.Degree != "" && e.Institution != "" && e.Year > 0
}

// ExperienceEntry is one work item on a tutor profile.
type ExperienceEntry struct {
	Title        string
	Organisation string
	From         string
	To           string
	Description  string
}

// Complete reports whether the entry carries every required field.
func (e ExperienceEntry) Complete() bool {
	return e.Title != "" && e.Organisation != "" && e.From != ""
}

// Document is an uploaded verification document reference.
type Document struct {
	ID         uuid.UUID
	URL        string
	Label      string
	UploadedAt time.Time
}

// ModeOffering is one teaching mode's availability and price on a
// tutor's subject entry.
type ModeOffering struct {
	Enabled    bool
	HourlyRate float64
}

// timeSlotPattern accepts 24-hour HH:mm values.
var timeSlotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// TimeSlot is a same-day availability window in HH:mm.
type TimeSlot struct {
	Start string
	End   string
}

// Valid checks the HH:mm format and that the window moves forward.
// Overlap between slots is not enforced.
func (s TimeSlot) Valid() bool {
	if !timeSlotPattern.MatchString(s.Start) || !timeSlotPattern.MatchString(s.End) {
		return false
	}
	return s.Start < s.End
}

// MaxTopicsPerSubject caps how many topics a tutor may pick per subject.
const MaxTopicsPerSubject = 5

// TutorSubject links a tutor to a subject with per-mode pricing,
// selected topics and weekly availability.
type TutorSubject struct {
	SubjectID    uuid.UUID
	TopicIDs     []uuid.UUID
	Modes        map[TeachingMode]ModeOffering
	Availability map[time.Weekday][]TimeSlot
}

// HasEnabledMode reports whether at least one mode is enabled with a
// positive hourly rate, the minimum for a bookable subject entry.
func (ts *TutorSubject) HasEnabledMode() bool {
	for _, m := range ts.Modes {
		if m.Enabled && m.HourlyRate > 0 {
			return true
		}
	}
	return false
}

// Offering returns the offering for the mode and whether it is enabled
// with a positive rate.
func (ts *TutorSubject) Offering(mode TeachingMode) (ModeOffering, bool) {
	o, ok := ts.Modes[mode]
	if !ok || !o.Enabled || o.HourlyRate <= 0 {
		return ModeOffering{}, false
	}
	return o, true
}

// TeachesTopic reports whether the topic is among the entry's selection.
func (ts *TutorSubject) TeachesTopic(topicID uuid.UUID) bool {
	for _, id := range ts.TopicIDs {
		if id == topicID {
			return true
		}
	}
	return false
}

// Tutor is the profile extension of a user with the tutor role. It
// shares its primary key with the owning user.
type Tutor struct {
	UserID             uuid.UUID
	Bio                string
	Gender             string
	SocialLinks        map[string]string
	TeachingMediums    []string
	Education          []EducationEntry
	Experience         []ExperienceEntry
	Subjects           []TutorSubject
	AvailableLocations string
	Documents          []Document
	Rating             float64
	TotalReviews       int
	TotalFavorites     int
	Verification       Verification
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// SubjectEntry returns the tutor's entry for the subject, if any.
func (t *Tutor) SubjectEntry(subjectID uuid.UUID) (*TutorSubject, bool) {
	for i := range t.Subjects {
		if t.Subjects[i].SubjectID == subjectID {
			return &t.Subjects[i], true
		}
	}
	return nil, false
}
