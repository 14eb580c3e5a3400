package mail

import (
	"log/slog"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"
)

// NewMailer picks the email implementation from configuration:
// SendGrid when an API key is present, the console fallback otherwise.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Sendgrid != nil && cfg.Sendgrid.APIKey != "" {
		return NewSendgridMailer(cfg.Sendgrid, logger)
	}

	logger.Warn("Sendgrid not configured, email falls back to the log")

	return NewConsoleMailer(logger)
}
