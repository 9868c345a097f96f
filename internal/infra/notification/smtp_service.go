// Package notification provides concrete implementations of the outbound
// message service used to deliver verification links.
package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"gatehouse/config"
	"gatehouse/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpService sends mail through an authenticated SMTP relay.
// We talk to the relay with net/smtp directly instead of pulling in a mail
// SDK; plain-text verification mail needs nothing more.
type smtpService struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPService is the constructor for smtpService.
func NewSMTPService(cfg *config.SMTPConfig) (service.NotificationService, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, errors.New("smtp host and port must be provided")
	}
	if cfg.From == "" {
		return nil, errors.New("smtp from address must be provided")
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &smtpService{
		addr: net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port)),
		auth: auth,
		from: cfg.From,
	}, nil
}

// Send delivers a single plain-text message to the given address.
func (s *smtpService) Send(_ context.Context, to, subject, body string) error {
	msg := buildMessage(s.from, to, subject, body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}

	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")

	return []byte(b.String())
}
