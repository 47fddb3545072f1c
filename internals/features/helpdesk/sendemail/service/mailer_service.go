// file: internals/features/helpdesk/sendemail/service/mailer_service.go
package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"helpdesku_backend/internals/configs"
)

// Mailer attempts a single delivery and reports the outcome. It never panics
// and never returns an error to the caller: the (delivered, detail) pair is
// persisted in the audit row either way.
type Mailer interface {
	Deliver(to, from, subject, body string) (delivered bool, detail string)
}

// SMTPMailer delivers through the configured relay with PLAIN auth.
type SMTPMailer struct {
	Server   string
	Port     string
	User     string
	Password string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		Server:   configs.SMTPServer,
		Port:     configs.SMTPPort,
		User:     configs.SMTPUser,
		Password: configs.SMTPPassword,
	}
}

func (m *SMTPMailer) Deliver(to, from, subject, body string) (bool, string) {
	if m.Server == "" {
		return false, "SMTP relay not configured"
	}

	msg := strings.Join([]string{
		"From: " + from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")

	addr := m.Server + ":" + m.Port
	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Password, m.Server)
	}

	if err := smtp.SendMail(addr, auth, from, []string{to}, []byte(msg)); err != nil {
		return false, fmt.Sprintf("delivery failed: %v", err)
	}
	return true, "250 OK"
}
