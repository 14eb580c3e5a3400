package service

import "context"

// SMSSender defines the interface for outbound text messages. The noop
// implementation is wired when no provider is configured.
type SMSSender interface {
	// Send delivers one SMS to the phone number in E.164 format.
	Send(ctx context.Context, toNumber, body string) error
}
