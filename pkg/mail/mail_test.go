package mail_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/pkg/mail"
)

type recordingSender struct {
	from    string
	subject string
	html    string
	to      []string
	err     error
}

func (s *recordingSender) Send(_ context.Context, from, subject, html string, to ...string) error {
	s.from, s.subject, s.html, s.to = from, subject, html, to
	return s.err
}

func TestFluentMessage(t *testing.T) {
	rec := &recordingSender{}
	mail.UseSender(rec)
	defer mail.UseSender(nil)

	err := mail.To("guest@example.com").
		From("Bistro Boss <no-reply@bistro-boss.app>").
		Subject("Order Confirmation").
		Body("<p>Thank you</p>").
		Send(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"guest@example.com"}, rec.to)
	assert.Equal(t, "Order Confirmation", rec.subject)
	assert.True(t, strings.Contains(rec.html, "Thank you"))
	assert.Equal(t, "Bistro Boss <no-reply@bistro-boss.app>", rec.from)
}

func TestSendErrorPropagates(t *testing.T) {
	rec := &recordingSender{err: errors.New("mailgun down")}
	mail.UseSender(rec)
	defer mail.UseSender(nil)

	err := mail.To("guest@example.com").Subject("x").Body("y").Send(context.Background())
	assert.Error(t, err)
}
