package notify

import (
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"

	"feedwatch/pkg/config"
	"feedwatch/pkg/domain"
)

// mailDialer abstracts gomail's DialAndSend for tests
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers notification emails over SMTP
type EmailSender struct {
	cfg    config.SMTPConfig
	dialer mailDialer
}

// NewEmailSender creates a sender from validated SMTP credentials.
// Implicit TLS is used when the port is 465.
func NewEmailSender(cfg config.SMTPConfig) *EmailSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.SSL = cfg.Port == 465
	return &EmailSender{cfg: cfg, dialer: d}
}

// Send delivers the message to the feed's contact email and fills the
// result record. SMTP offers no provider message id, so one is generated
// locally and set as the Message-ID header.
func (s *EmailSender) Send(feed domain.FeedSource, msg Message, rec *domain.OutreachRecord) {
	if feed.Contact == nil || feed.Contact.Email == "" {
		rec.Response = "No contact email for feed"
		return
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), s.cfg.Host)

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", feed.Contact.Email)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	m.SetBody("text/plain", msg.Body)

	if err := s.dialer.DialAndSend(m); err != nil {
		rec.Response = fmt.Sprintf("Email send failed: %v", err)
		return
	}

	rec.Success = true
	rec.Response = fmt.Sprintf("Email sent to %s", feed.Contact.Email)
	rec.MessageID = messageID
}
