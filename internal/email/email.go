// Package email sends transactional mail (OTP codes, verification and
// password-reset links). Without a Sendgrid key configured it falls
// back to printing mail to the log, which is what dev runs want.
package email

import (
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/disiplinli/kocumnet-back/internal/config"
)

type Sender interface {
	Send(to, subject, body string) error
}

func New(cfg *config.Config) Sender {
	if cfg.SendgridKey == "" {
		slog.Warn("SENDGRID_API_KEY not set, mail goes to the log")
		return consoleSender{}
	}
	return &sendgridSender{
		client: sendgrid.NewSendClient(cfg.SendgridKey),
		from:   cfg.FromEmail,
	}
}

type sendgridSender struct {
	client *sendgrid.Client
	from   string
}

func (s *sendgridSender) Send(to, subject, body string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail("KoçumNet", s.from),
		subject,
		mail.NewEmail("", to),
		body,
		"",
	)
	resp, err := s.client.Send(msg)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		slog.Error("sendgrid rejected mail", "status", resp.StatusCode, "body", resp.Body)
	}
	return nil
}

type consoleSender struct{}

func (consoleSender) Send(to, subject, body string) error {
	slog.Info("mail", "to", to, "subject", subject, "body", body)
	return nil
}
