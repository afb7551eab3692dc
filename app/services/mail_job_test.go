package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/pkg/mail"
)

type recordingSender struct {
	subject string
	html    string
	to      []string
}

func (s *recordingSender) Send(_ context.Context, _, subject, html string, to ...string) error {
	s.subject, s.html, s.to = subject, html, to
	return nil
}

func TestConfirmationMailJob(t *testing.T) {
	rec := &recordingSender{}
	mail.UseSender(rec)
	defer mail.UseSender(nil)

	job := ConfirmationMailJob{
		Email:         "guest@example.com",
		TransactionID: "pi_3abc",
		Price:         42.5,
	}
	require.NoError(t, job.Handle())

	assert.Equal(t, []string{"guest@example.com"}, rec.to)
	assert.Equal(t, "Order Confirmation", rec.subject)
	assert.True(t, strings.Contains(rec.html, "pi_3abc"))
	assert.True(t, strings.Contains(rec.html, "42.50"))
}
