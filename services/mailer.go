package services

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer delivers generated claim emails over SMTP. It is optional: when
// no SMTP host is configured NewMailer returns nil and the handler only
// logs the generated message.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewMailer(host, port, username, password, from string) *Mailer {
	if host == "" {
		return nil
	}
	if from == "" {
		from = username
	}
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

// Send transmits a claim email. The message content comes in fully
// rendered; Send only adds transport headers.
func (m *Mailer) Send(email ClaimEmail) error {
	headers := []string{
		"From: " + m.from,
		"To: " + email.To,
		"Subject: " + email.Subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=UTF-8",
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + email.Body

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}
	if err := smtp.SendMail(addr, auth, m.from, []string{email.To}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send claim email: %w", err)
	}
	return nil
}
