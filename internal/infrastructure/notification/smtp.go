// Package notification delivers order emails to buyers and suppliers.
package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPSender sends plain-text mail through a single SMTP relay.
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender configures a sender for the given relay. Auth is
// skipped when user is empty, which is how local dev relays run.
func NewSMTPSender(host string, port int, user, password, from string) *SMTPSender {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: auth,
		from: from,
	}
}

// Notify sends one message. The context is accepted for interface
// symmetry; net/smtp has no per-dial context hook.
func (s *SMTPSender) Notify(_ context.Context, recipient, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + recipient,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", recipient, err)
	}
	return nil
}
