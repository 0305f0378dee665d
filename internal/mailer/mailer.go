package mailer

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/nima/farsiflash/internal/logger"
)

// Mailer delivers transactional mail (magic links, reminder digests).
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpMailer struct {
	addr         string
	auth         smtp.Auth
	from         string
	envelopeFrom string
}

// NewSMTP creates a Mailer that delivers through the given SMTP server.
// from may be a display-name form like "FarsiFlash <no-reply@example.com>";
// the envelope sender is always the bare address.
func NewSMTP(host string, port int, user, password, from string) Mailer {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	envelope := from
	if addr, err := mail.ParseAddress(from); err == nil {
		envelope = addr.Address
	}
	return &smtpMailer{
		addr:         fmt.Sprintf("%s:%d", host, port),
		auth:         auth,
		from:         from,
		envelopeFrom: envelope,
	}
}

func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx).WithPrefix("mailer")
	log.Debug("sending mail to %s: %s", to, subject)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.envelopeFrom, []string{to}, []byte(msg.String())); err != nil {
		log.Error("smtp delivery to %s failed: %v", to, err)
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	log.Info("mail sent to %s", to)
	return nil
}

type logMailer struct{}

// NewLogMailer creates a Mailer that only logs messages. Used when no
// SMTP host is configured, so local development never needs a mail server.
func NewLogMailer() Mailer {
	return logMailer{}
}

func (logMailer) Send(ctx context.Context, to, subject, body string) error {
	log := logger.FromContext(ctx).WithPrefix("mailer")
	log.Info("mail (log only) to=%s subject=%q", to, subject)
	log.Debug("mail body:\n%s", body)
	return nil
}
