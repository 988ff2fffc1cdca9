package memory

import (
	"context"

	"mergingtonactivities/internal/domain"
)

// seedActivities is the Mergington High School catalogue the service starts with.
var seedActivities = []*domain.Activity{
	domain.NewActivity("Chess Club",
		"Learn strategies and compete in chess tournaments",
		"Fridays, 3:30 PM - 5:00 PM", 12,
		"michael@mergington.edu", "daniel@mergington.edu"),
	domain.NewActivity("Programming Class",
		"Learn programming fundamentals and build software projects",
		"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
		"emma@mergington.edu", "sophia@mergington.edu"),
	domain.NewActivity("Gym Class",
		"Physical education and sports activities",
		"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30,
		"john@mergington.edu", "olivia@mergington.edu"),
	domain.NewActivity("Basketball Team",
		"Competitive basketball training and inter-school games",
		"Tuesdays and Thursdays, 4:00 PM - 5:30 PM", 15,
		"alex@mergington.edu"),
	domain.NewActivity("Tennis Club",
		"Develop tennis skills and play friendly matches",
		"Wednesdays, 3:30 PM - 5:00 PM", 12,
		"sarah@mergington.edu"),
	domain.NewActivity("Drama Club",
		"Act, direct and stage the school's theatre productions",
		"Mondays and Wednesdays, 4:00 PM - 5:30 PM", 20,
		"isabella@mergington.edu", "lucas@mergington.edu"),
	domain.NewActivity("Science Club",
		"Hands-on experiments and preparation for science fairs",
		"Thursdays, 3:30 PM - 5:00 PM", 15,
		"mia@mergington.edu", "noah@mergington.edu"),
}

type activitySource struct{}

// NewActivitySource returns the built-in seed catalogue as an ActivitySource.
func NewActivitySource() domain.ActivitySource {
	return activitySource{}
}

// LoadActivities returns fresh copies of the seed on every call.
func (activitySource) LoadActivities(ctx context.Context) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0, len(seedActivities))
	for _, a := range seedActivities {
		out = append(out, a.Clone())
	}
	return out, nil
}
