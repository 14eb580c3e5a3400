package mail

import (
	"context"
	"log/slog"

	"verifiedtutors/internal/domain/service"
)

// consoleMailer writes mail to the log instead of sending it. Wired
// when no SendGrid credentials are configured, which keeps local
// development free of external calls.
type consoleMailer struct {
	logger *slog.Logger
}

// NewConsoleMailer builds the log-only Mailer.
func NewConsoleMailer(logger *slog.Logger) service.Mailer {
	return &consoleMailer{logger: logger}
}

func (m *consoleMailer) Send(ctx context.Context, mail *service.Mail) error {
	m.logger.Info("Email (console fallback, not sent)",
		slog.String("to", mail.ToAddress),
		slog.String("subject", mail.Subject),
		slog.String("body", mail.PlainBody))

	return nil
}
