package services

import (
	"context"
	"errors"
	"testing"

	"mergingtonactivities/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentEmail struct {
	to, subject, html, text string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentEmail{to: to, subject: subject, html: html, text: text})
	return nil
}

type fakeRenderer struct {
	lastTemplate string
	lastData     any
	err          error
}

func (r *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	r.lastTemplate = templateName
	r.lastData = data
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject " + templateName, "<p>" + templateName + "</p>", templateName, nil
}

func TestEmailService_SendSignupConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)
	data := &domain.EnrollmentEmailData{Email: "a@mergington.edu", Activity: "Chess Club"}

	require.NoError(t, svc.SendSignupConfirmation(context.Background(), data))
	assert.Equal(t, "signup_confirmation", renderer.lastTemplate)
	assert.Same(t, data, renderer.lastData)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, sentEmail{
		to:      "a@mergington.edu",
		subject: "subject signup_confirmation",
		html:    "<p>signup_confirmation</p>",
		text:    "signup_confirmation",
	}, mailer.sent[0])
}

func TestEmailService_SendUnregisterConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)

	require.NoError(t, svc.SendUnregisterConfirmation(context.Background(), &domain.EnrollmentEmailData{Email: "a@mergington.edu"}))
	assert.Equal(t, "unregister_confirmation", renderer.lastTemplate)
	require.Len(t, mailer.sent, 1)
}

func TestEmailService_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("nil data", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
		require.Error(t, svc.SendSignupConfirmation(ctx, nil))
	})

	t.Run("render error", func(t *testing.T) {
		renderErr := errors.New("bad template")
		mailer := &fakeMailer{}
		svc := NewEmailService(mailer, &fakeRenderer{err: renderErr})
		err := svc.SendSignupConfirmation(ctx, &domain.EnrollmentEmailData{Email: "a@mergington.edu"})
		require.ErrorIs(t, err, renderErr)
		assert.Empty(t, mailer.sent)
	})

	t.Run("send error", func(t *testing.T) {
		sendErr := errors.New("ses down")
		svc := NewEmailService(&fakeMailer{err: sendErr}, &fakeRenderer{})
		err := svc.SendUnregisterConfirmation(ctx, &domain.EnrollmentEmailData{Email: "a@mergington.edu"})
		require.ErrorIs(t, err, sendErr)
	})
}
