package util

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/daifend/platform/config"
)

// MailSender relays a single outbound message. The interface exists so
// handlers can be tested without a live SMTP connection.
type MailSender interface {
	Send(msg MailMessage) error
}

// MailMessage is one outbound email.
type MailMessage struct {
	FromName string
	ReplyTo  string
	Subject  string
	Body     string
}

// SMTPMailer relays mail through an authenticated SMTP submission endpoint.
type SMTPMailer struct {
	Host     string
	Port     uint16
	Username string
	Password string
	From     string
	To       string
}

// NewSMTPMailer builds a mailer from the relay settings in config.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     "no-reply@daifend.com",
		To:       cfg.MailTo,
	}
}

// Send relays one message. Header values are folded onto single lines to
// keep submitted form input from injecting additional headers.
func (m *SMTPMailer) Send(msg MailMessage) error {
	if m.To == "" {
		return fmt.Errorf("no recipient configured")
	}

	headers := []string{
		fmt.Sprintf("From: %q <%s>", headerValue(msg.FromName), m.From),
		fmt.Sprintf("To: %s", m.To),
		fmt.Sprintf("Reply-To: %s", headerValue(msg.ReplyTo)),
		fmt.Sprintf("Subject: %s", headerValue(msg.Subject)),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
	}
	payload := strings.Join(headers, "\r\n") + "\r\n\r\n" + msg.Body

	addr := fmt.Sprintf("%s:%d", m.Host, m.Port)
	auth := smtp.PlainAuth("", m.Username, m.Password, m.Host)
	return smtp.SendMail(addr, auth, m.From, []string{m.To}, []byte(payload))
}

func headerValue(v string) string {
	v = strings.ReplaceAll(v, "\r", " ")
	v = strings.ReplaceAll(v, "\n", " ")
	return strings.TrimSpace(v)
}
