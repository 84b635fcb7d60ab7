package services

import (
	"fmt"
	"html"

	gomail "gopkg.in/gomail.v2"

	"cvalchemist/resume-analyzer/internal/config"
)

// Mailer delivers contact-form submissions.
type Mailer interface {
	SendContact(name, email, message string) error
}

type smtpMailer struct {
	cfg        config.MailConfig
	configured bool
}

// NewSMTPMailer uses the mail configuration resolved at startup. An
// incomplete configuration makes every SendContact call fail without
// attempting delivery.
func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{cfg: cfg, configured: cfg.Complete()}
}

func (m *smtpMailer) SendContact(name, email, message string) error {
	if !m.configured {
		return ErrMailUnconfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("Contact form submission from %s", name))
	msg.SetBody("text/html", renderContactBody(name, email, message))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}
	return nil
}

// renderContactBody escapes every user-supplied field before interpolating
// it into the HTML body.
func renderContactBody(name, email, message string) string {
	return fmt.Sprintf(`<h2>New contact form submission</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Message:</strong></p>
<p>%s</p>`,
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(message),
	)
}
