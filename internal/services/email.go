package services

import (
	"context"
	"fmt"

	"mergingtonactivities/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendSignupConfirmation sends the "signup_confirmation" template to data.Email.
func (s *emailService) SendSignupConfirmation(ctx context.Context, data *domain.EnrollmentEmailData) error {
	return s.send(ctx, "signup_confirmation", data)
}

// SendUnregisterConfirmation sends the "unregister_confirmation" template to data.Email.
func (s *emailService) SendUnregisterConfirmation(ctx context.Context, data *domain.EnrollmentEmailData) error {
	return s.send(ctx, "unregister_confirmation", data)
}

func (s *emailService) send(ctx context.Context, templateName string, data *domain.EnrollmentEmailData) error {
	if data == nil {
		return fmt.Errorf("%s data is nil", templateName)
	}
	subject, htmlBody, textBody, err := s.renderer.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}
	if err := s.mailer.Send(ctx, data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", templateName, err)
	}
	return nil
}
