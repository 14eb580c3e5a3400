package sms

import (
	"context"
	"log/slog"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"
)

// noopSender logs instead of sending. Wired when Twilio is not
// configured.
type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender builds the log-only SMSSender.
func NewNoopSender(logger *slog.Logger) service.SMSSender {
	return &noopSender{logger: logger}
}

func (s *noopSender) Send(ctx context.Context, toNumber, body string) error {
	s.logger.Info("SMS (noop fallback, not sent)", slog.String("to", toNumber), slog.String("body", body))

	return nil
}

// NewSender picks the SMS implementation from configuration.
func NewSender(cfg *config.Config, logger *slog.Logger) service.SMSSender {
	if cfg.Twilio != nil && cfg.Twilio.AccountSID != "" {
		return NewTwilioSender(cfg.Twilio, logger)
	}

	logger.Warn("Twilio not configured, SMS falls back to the log")

	return NewNoopSender(logger)
}
