package domain

import "context"

// Activity is an extracurricular offering with a fixed capacity.
// The name is the catalogue key and is not part of the JSON body.
// swagger:model Activity
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns an Activity with a copy of the given participants.
func NewActivity(name, description, schedule string, maxParticipants int, participants ...string) *Activity {
	return &Activity{
		Name:            name,
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    append([]string{}, participants...),
	}
}

// Clone returns a deep copy of a.
func (a *Activity) Clone() *Activity {
	return NewActivity(a.Name, a.Description, a.Schedule, a.MaxParticipants, a.Participants...)
}

// SpotsLeft is the number of participants that can still sign up.
func (a *Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Catalogue maps activity name to activity. Values handed out by an
// EnrollmentStore are snapshots owned by the caller.
type Catalogue map[string]*Activity

// Names returns the activity names of c in no particular order.
func (c Catalogue) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	return names
}

// Enrollment confirms a successful signup or unregister.
// swagger:model Enrollment
type Enrollment struct {
	Activity string `json:"activity"`
	Email    string `json:"email"`
	Schedule string `json:"schedule,omitempty"`
}

// EnrollmentStore owns the activity catalogue and guards its invariants:
// no duplicate participants, never more participants than capacity, and
// operations on unknown activities fail without side effects.
type EnrollmentStore interface {
	// ListActivities returns a snapshot of the whole catalogue.
	ListActivities(ctx context.Context) (Catalogue, error)
	// Signup enrolls email in the named activity. Fails with ErrNotFound,
	// ErrDuplicateRegistration or ErrCapacityExceeded, checked in that order.
	Signup(ctx context.Context, activityName, email string) (*Enrollment, error)
	// Unregister removes email from the named activity. Fails with ErrNotFound
	// or ErrNotRegistered, checked in that order.
	Unregister(ctx context.Context, activityName, email string) (*Enrollment, error)
}

// ActivitySource loads the initial catalogue at startup.
type ActivitySource interface {
	LoadActivities(ctx context.Context) ([]*Activity, error)
}
