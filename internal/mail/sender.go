// Package mail delivers composed summary messages over SMTP.
package mail

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	retry "github.com/avast/retry-go"
	gomail "github.com/wneessen/go-mail"

	"spendtrack/internal/summary"
)

// Config holds SMTP delivery settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
	Attempts int
}

// Sender sends summary messages through an SMTP relay with STARTTLS.
// Transient failures are retried a configured number of times before the
// error is surfaced to the caller. It implements summary.Sender.
type Sender struct {
	cfg Config
}

func NewSender(cfg Config) *Sender {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	return &Sender{cfg: cfg}
}

// Send builds the MIME message and delivers it. The recipient defaults to the
// configured address; per-message recipients are not supported here.
func (s *Sender) Send(ctx context.Context, msg summary.Message) error {
	m := gomail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("set sender address: %w", err)
	}
	if err := m.To(s.cfg.To); err != nil {
		return fmt.Errorf("set recipient address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if att := msg.Attachment; att != nil {
		err := m.AttachReader(att.Filename, bytes.NewReader(att.Data),
			gomail.WithFileContentType(gomail.ContentType(att.MIMEType)))
		if err != nil {
			return fmt.Errorf("attach chart: %w", err)
		}
	}

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	err = retry.Do(
		func() error {
			return client.DialAndSendWithContext(ctx, m)
		},
		retry.Attempts(uint(s.cfg.Attempts)),
		retry.Delay(2*time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("send mail via %s:%d: %w", s.cfg.Host, s.cfg.Port, err)
	}

	slog.InfoContext(ctx, "Summary mail sent",
		"recipient", s.cfg.To,
		"subject", msg.Subject,
		"has_attachment", msg.Attachment != nil)
	return nil
}
