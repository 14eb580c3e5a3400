package service

import (
	"context"

	"github.com/google/uuid"
)

// PushHub defines the interface for delivering events to a user's open
// socket connections on this instance. Delivery is best effort; a user
// with no open connections is not an error.
type PushHub interface {
	// Send marshals the payload and writes it to every connection the
	// user has on this instance.
	Send(ctx context.Context, userID uuid.UUID, event string, payload any) error
}
