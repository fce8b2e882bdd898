// Package mail sends transactional email through SendGrid and
// dispatches it asynchronously through an in-process outbox.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"retrokick/config"
	"retrokick/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	client      *sendgrid.Client
	fromName    string
	fromAddress string
	logger      *slog.Logger
}

// NewSendGridMailer builds the SendGrid-backed Mailer from config.
// An empty API key disables outbound mail: messages are logged and
// dropped so local setups run without a SendGrid account.
func NewSendGridMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	if cfg.Mail.APIKey == "" {
		logger.Warn("SendGrid API key not configured, outbound mail disabled")

		return &disabledMailer{logger: logger}, nil
	}
	if cfg.Mail.FromAddress == "" {
		return nil, errors.New("mail from address is empty")
	}

	return &sendGridMailer{
		client:      sendgrid.NewSendClient(cfg.Mail.APIKey),
		fromName:    cfg.Mail.FromName,
		fromAddress: cfg.Mail.FromAddress,
		logger:      logger,
	}, nil
}

func (m *sendGridMailer) Send(_ context.Context, msg *service.MailMessage) error {
	if msg.To == "" {
		return errors.New("mail recipient is empty")
	}

	from := sgmail.NewEmail(m.fromName, m.fromAddress)
	to := sgmail.NewEmail("", msg.To)
	html := fmt.Sprintf("<pre>%s</pre>", msg.Body)
	message := sgmail.NewSingleEmail(from, msg.Subject, to, msg.Body, html)

	response, err := m.client.Send(message)
	if err != nil {
		return errors.Wrap(err, "sendgrid send error")
	}
	if response.StatusCode >= 400 {
		return errors.Errorf("sendgrid send failed: status=%d, body=%s",
			response.StatusCode, response.Body)
	}

	m.logger.Info("Mail sent",
		"status", response.StatusCode,
		"to", msg.To,
		"subject", msg.Subject)

	return nil
}

// disabledMailer stands in when no API key is configured.
type disabledMailer struct {
	logger *slog.Logger
}

func (m *disabledMailer) Send(_ context.Context, msg *service.MailMessage) error {
	m.logger.Info("Mail delivery disabled, dropping message",
		"to", msg.To,
		"subject", msg.Subject)

	return nil
}
