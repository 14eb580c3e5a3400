// Package mail provides outbound email implementations.
package mail

import (
	"context"
	"log/slog"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridMailer delivers email through the SendGrid v3 API.
type sendgridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
	logger    *slog.Logger
}

// NewSendgridMailer builds the SendGrid-backed Mailer.
func NewSendgridMailer(cfg *config.SendgridConfig, logger *slog.Logger) service.Mailer {
	return &sendgridMailer{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromName:  cfg.FromName,
		fromEmail: cfg.FromEmail,
		logger:    logger,
	}
}

// Send delivers one email. Any non-2xx response from SendGrid is an error.
func (m *sendgridMailer) Send(ctx context.Context, mail *service.Mail) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(mail.ToName, mail.ToAddress)
	message := sgmail.NewSingleEmail(from, mail.Subject, to, mail.PlainBody, mail.HTMLBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return errors.Wrap(err, "sendgrid request failed")
	}
	if resp.StatusCode >= 300 {
		return errors.Errorf("sendgrid rejected the message: status %d", resp.StatusCode)
	}

	m.logger.Debug("Email sent", slog.String("to", mail.ToAddress), slog.String("subject", mail.Subject))

	return nil
}
