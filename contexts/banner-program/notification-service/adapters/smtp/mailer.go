// Package smtp delivers notifications over plain SMTP. It sits behind the
// Mailer port so a different transport can replace it without touching the
// notification flow.
package smtp

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

type Mailer struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (m Mailer) Send(_ context.Context, to, subject, body string) error {
	if strings.TrimSpace(m.Host) == "" || strings.TrimSpace(m.From) == "" {
		return fmt.Errorf("smtp mailer is not configured")
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n")
	msg.WriteString(body)

	addr := m.Host + ":" + m.Port
	var auth smtp.Auth
	if m.Username != "" {
		auth = smtp.PlainAuth("", m.Username, m.Password, m.Host)
	}
	if err := smtp.SendMail(addr, auth, m.From, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
