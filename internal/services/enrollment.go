package services

import (
	"context"
	"fmt"
	"sync"

	"mergingtonactivities/internal/domain"
)

// activityEntry is the store's private copy of an activity. members mirrors
// activity.Participants and is what the duplicate check uses.
type activityEntry struct {
	activity *domain.Activity
	members  map[string]struct{}
}

type enrollmentStore struct {
	mu         sync.RWMutex
	activities map[string]*activityEntry
}

// NewEnrollmentStore builds an in-memory EnrollmentStore seeded with activities.
// The seed is copied. It is rejected with domain.ErrInvalidInput when a name is
// empty or repeated, a capacity is not positive, or a participant list holds
// duplicates or exceeds its capacity.
func NewEnrollmentStore(activities []*domain.Activity) (domain.EnrollmentStore, error) {
	s := &enrollmentStore{activities: make(map[string]*activityEntry, len(activities))}
	for _, a := range activities {
		if a == nil {
			return nil, fmt.Errorf("%w: nil activity in seed", domain.ErrInvalidInput)
		}
		if a.Name == "" {
			return nil, fmt.Errorf("%w: activity name is required", domain.ErrInvalidInput)
		}
		if _, ok := s.activities[a.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate activity %q", domain.ErrInvalidInput, a.Name)
		}
		if a.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: activity %q must have a positive capacity", domain.ErrInvalidInput, a.Name)
		}
		if len(a.Participants) > a.MaxParticipants {
			return nil, fmt.Errorf("%w: activity %q has %d participants but capacity %d",
				domain.ErrInvalidInput, a.Name, len(a.Participants), a.MaxParticipants)
		}
		entry := &activityEntry{
			activity: a.Clone(),
			members:  make(map[string]struct{}, a.MaxParticipants),
		}
		for _, p := range a.Participants {
			if _, dup := entry.members[p]; dup {
				return nil, fmt.Errorf("%w: activity %q lists %q twice", domain.ErrInvalidInput, a.Name, p)
			}
			entry.members[p] = struct{}{}
		}
		s.activities[a.Name] = entry
	}
	return s, nil
}

func (s *enrollmentStore) ListActivities(ctx context.Context) (domain.Catalogue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(domain.Catalogue, len(s.activities))
	for name, e := range s.activities {
		out[name] = e.activity.Clone()
	}
	return out, nil
}

func (s *enrollmentStore) Signup(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	if err := validateEnrollmentInput(activityName, email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.activities[activityName]
	if !ok {
		return nil, domain.ErrNotFound
	}
	// Duplicate before capacity: an existing member of a full activity is told
	// they are already signed up, not that the activity is full.
	if _, ok := e.members[email]; ok {
		return nil, domain.ErrDuplicateRegistration
	}
	if e.activity.SpotsLeft() <= 0 {
		return nil, domain.ErrCapacityExceeded
	}

	e.members[email] = struct{}{}
	e.activity.Participants = append(e.activity.Participants, email)
	return &domain.Enrollment{Activity: activityName, Email: email, Schedule: e.activity.Schedule}, nil
}

func (s *enrollmentStore) Unregister(ctx context.Context, activityName, email string) (*domain.Enrollment, error) {
	if err := validateEnrollmentInput(activityName, email); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.activities[activityName]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if _, ok := e.members[email]; !ok {
		return nil, domain.ErrNotRegistered
	}

	delete(e.members, email)
	kept := e.activity.Participants[:0]
	for _, p := range e.activity.Participants {
		if p != email {
			kept = append(kept, p)
		}
	}
	e.activity.Participants = kept
	return &domain.Enrollment{Activity: activityName, Email: email, Schedule: e.activity.Schedule}, nil
}

func validateEnrollmentInput(activityName, email string) error {
	if activityName == "" {
		return fmt.Errorf("%w: activity name is required", domain.ErrInvalidInput)
	}
	if email == "" {
		return fmt.Errorf("%w: email is required", domain.ErrInvalidInput)
	}
	return nil
}
