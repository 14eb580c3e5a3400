package usecase

import (
	"context"

	"verifiedtutors/internal/domain/entity"

	"github.com/google/uuid"
)

// VerificationUsecase defines the admin operations of the tutor review
// workflow. Every mutation runs in a transaction holding a row lock on
// the tutor so concurrent admins serialise instead of clobbering.
type VerificationUsecase interface {
	// ListByStatus pages tutors in one verification state.
	ListByStatus(ctx context.Context, status entity.VerificationStatus, page, perPage int) (*TutorPage, error)

	// Approve verifies the tutor and signs off every check. Fails when
	// the tutor is already verified.
	Approve(ctx context.Context, adminID, tutorID uuid.UUID) (*entity.Tutor, error)

	// Reject declines verification with a mandatory reason.
	Reject(ctx context.Context, adminID, tutorID uuid.UUID, reason string) (*entity.Tutor, error)

	// Toggle flips the verified flag. Turning it on behaves like Approve
	// without the already-verified guard; turning it off returns the
	// record to pending.
	Toggle(ctx context.Context, adminID, tutorID uuid.UUID) (*entity.Tutor, error)
}
