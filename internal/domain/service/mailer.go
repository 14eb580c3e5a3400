package service

import "context"

// Mail is a single outbound email.
type Mail struct {
	ToName    string
	ToAddress string
	Subject   string
	PlainBody string
	HTMLBody  string
}

// Mailer defines the interface for outbound email delivery. The console
// implementation logs instead of sending when no provider is configured.
type Mailer interface {
	// Send delivers one email.
	Send(ctx context.Context, mail *Mail) error
}
