package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EnrollmentEmailData holds data for signup and unregister confirmation emails.
type EnrollmentEmailData struct {
	Email    string
	Activity string
	Schedule string // optional, empty when unknown
}

// EmailService sends enrollment confirmation emails.
type EmailService interface {
	SendSignupConfirmation(ctx context.Context, data *EnrollmentEmailData) error
	SendUnregisterConfirmation(ctx context.Context, data *EnrollmentEmailData) error
}
