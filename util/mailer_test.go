package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderValueFoldsInjectedHeaders(t *testing.T) {
	assert.Equal(t, "Jane Doe", headerValue("Jane Doe"))
	assert.Equal(t, "Jane Bcc: victim@example.com", headerValue("Jane\r\nBcc: victim@example.com"))
	assert.Equal(t, "trimmed", headerValue("  trimmed \n"))
}

func TestSMTPMailerRequiresRecipient(t *testing.T) {
	m := &SMTPMailer{Host: "smtp.example.com", Port: 587, From: "no-reply@daifend.com"}
	err := m.Send(MailMessage{FromName: "Jane", ReplyTo: "jane@example.com", Subject: "s", Body: "b"})
	assert.Error(t, err)
}
