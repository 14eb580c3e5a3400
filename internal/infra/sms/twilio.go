// Package sms provides outbound text message implementations.
package sms

import (
	"context"
	"log/slog"

	"verifiedtutors/config"
	"verifiedtutors/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// twilioSender delivers SMS through the Twilio REST API.
type twilioSender struct {
	client     *twilio.RestClient
	fromNumber string
	logger     *slog.Logger
}

// NewTwilioSender builds the Twilio-backed SMSSender.
func NewTwilioSender(cfg *config.TwilioConfig, logger *slog.Logger) service.SMSSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &twilioSender{
		client:     client,
		fromNumber: cfg.FromNumber,
		logger:     logger,
	}
}

// Send delivers one SMS.
func (s *twilioSender) Send(ctx context.Context, toNumber, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.fromNumber)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return errors.Wrap(err, "twilio request failed")
	}

	s.logger.Debug("SMS sent", slog.String("to", toNumber))

	return nil
}
