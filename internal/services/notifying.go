package services

import (
	"context"
	"log/slog"
	"time"

	"mergingtonactivities/internal/domain"
)

// confirmationTimeout bounds each confirmation send.
const confirmationTimeout = 5 * time.Second

type notifyingEnrollmentStore struct {
	domain.EnrollmentStore
	emailService domain.EmailService
	logger       *slog.Logger
}

// NewNotifyingEnrollmentStore wraps store so that successful signups and
// unregistrations are confirmed by email. Email failures are logged and do
// not affect the result of the enrollment operation.
func NewNotifyingEnrollmentStore(store domain.EnrollmentStore, emailService domain.EmailService, logger *slog.Logger) domain.EnrollmentStore {
	return &notifyingEnrollmentStore{
		EnrollmentStore: store,
		emailService:    emailService,
		logger:          logger,
	}
}

func (s *notifyingEnrollmentStore) Signup(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	enrollment, err := s.EnrollmentStore.Signup(ctx, activityName, email)
	if err != nil {
		return nil, err
	}
	sendCtx, cancel := context.WithTimeout(ctx, confirmationTimeout)
	defer cancel()
	if err := s.emailService.SendSignupConfirmation(sendCtx, emailData(enrollment)); err != nil {
		s.logger.WarnContext(ctx, "signup confirmation not sent", "activity", activityName, "email", email, "err", err)
	}
	return enrollment, nil
}

func (s *notifyingEnrollmentStore) Unregister(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	enrollment, err := s.EnrollmentStore.Unregister(ctx, activityName, email)
	if err != nil {
		return nil, err
	}
	sendCtx, cancel := context.WithTimeout(ctx, confirmationTimeout)
	defer cancel()
	if err := s.emailService.SendUnregisterConfirmation(sendCtx, emailData(enrollment)); err != nil {
		s.logger.WarnContext(ctx, "unregister confirmation not sent", "activity", activityName, "email", email, "err", err)
	}
	return enrollment, nil
}

func emailData(e *domain.Enrollment) *domain.EnrollmentEmailData {
	return &domain.EnrollmentEmailData{Email: e.Email, Activity: e.Activity, Schedule: e.Schedule}
}
