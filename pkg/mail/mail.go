// Package mail provides a fluent transactional mailer delivered through
// Mailgun.
//
// Usage:
//
//	err := mail.To("user@example.com").
//	    Subject("Order confirmation").
//	    Body("<h1>Thank you!</h1>").
//	    Send(ctx)
package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/shashiranjanraj/bistro/config"
)

// Sender delivers a built message. Satisfied by the Mailgun client; tests
// swap in a recording fake.
type Sender interface {
	Send(ctx context.Context, from, subject, html string, to ...string) error
}

// mailgunSender is the production Sender.
type mailgunSender struct {
	mg *mailgun.MailgunImpl
}

func (s *mailgunSender) Send(ctx context.Context, from, subject, html string, to ...string) error {
	msg := s.mg.NewMessage(from, subject, "", to...)
	msg.SetHtml(html)

	sendCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, _, err := s.mg.Send(sendCtx, msg)
	if err != nil {
		return fmt.Errorf("mail: mailgun send: %w", err)
	}
	return nil
}

var defaultSender Sender

// UseSender overrides the delivery backend (tests).
func UseSender(s Sender) { defaultSender = s }

func sender() (Sender, error) {
	if defaultSender != nil {
		return defaultSender, nil
	}

	domain := config.MailSendingDomain()
	key := config.MailgunAPIKey()
	if domain == "" || key == "" {
		return nil, fmt.Errorf("mail: MAILGUN_API_KEY / MAIL_SENDING_DOMAIN not configured")
	}

	defaultSender = &mailgunSender{mg: mailgun.NewMailgun(domain, key)}
	return defaultSender, nil
}

// Message is a fluent builder for an email.
type Message struct {
	to      []string
	subject string
	body    string
	from    string
}

// To sets the primary recipients.
func To(addresses ...string) *Message {
	return &Message{
		to:   addresses,
		from: config.MailFrom(),
	}
}

// From overrides the configured sender address.
func (m *Message) From(addr string) *Message {
	m.from = addr
	return m
}

// Subject sets the email subject.
func (m *Message) Subject(s string) *Message {
	m.subject = s
	return m
}

// Body sets the HTML body.
func (m *Message) Body(html string) *Message {
	m.body = html
	return m
}

// Template renders an html/template file with data and sets it as the body.
func (m *Message) Template(templatePath string, data interface{}) *Message {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		m.body = fmt.Sprintf("<!-- template error: %v -->", err)
		return m
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		m.body = fmt.Sprintf("<!-- render error: %v -->", err)
		return m
	}
	m.body = buf.String()
	return m
}

// Send delivers the email through the configured backend.
func (m *Message) Send(ctx context.Context) error {
	s, err := sender()
	if err != nil {
		return err
	}
	return s.Send(ctx, m.from, m.subject, m.body, m.to...)
}
