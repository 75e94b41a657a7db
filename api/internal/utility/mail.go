package utility

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"leoni_app/api/config"
)

// Mailer sends transactional mails over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds a Mailer from the SMTP settings. Returns nil when
// no SMTP host is configured so callers can degrade gracefully.
func NewMailer(cfg *config.Configuration) *Mailer {
	if cfg == nil || cfg.SMTPHost == "" {
		return nil
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers one plain-text mail.
func (m *Mailer) Send(to, subject, body string) error {
	if m == nil {
		return fmt.Errorf("mailer not configured")
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
