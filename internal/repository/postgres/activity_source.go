package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"mergingtonactivities/internal/domain"
)

type activitySource struct {
	DB *sql.DB
}

// NewActivitySource returns an ActivitySource reading the seed catalogue from
// the activities and activity_participants tables. It is only read at startup;
// enrollment changes are kept in memory and never written back.
func NewActivitySource(db *sql.DB) domain.ActivitySource {
	return &activitySource{
		DB: db,
	}
}

func (r *activitySource) LoadActivities(ctx context.Context) ([]*domain.Activity, error) {
	query := `
		SELECT a.name, a.description, a.schedule, a.max_participants, p.email
		FROM activities a
		LEFT JOIN activity_participants p ON p.activity_name = a.name
		ORDER BY a.name, p.position
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	byName := make(map[string]*domain.Activity)
	for rows.Next() {
		var (
			name                         string
			description, schedule, email sql.NullString
			maxParticipants              int
		)
		if err := rows.Scan(&name, &description, &schedule, &maxParticipants, &email); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a, ok := byName[name]
		if !ok {
			a = domain.NewActivity(name, description.String, schedule.String, maxParticipants)
			byName[name] = a
			activities = append(activities, a)
		}
		if email.Valid {
			a.Participants = append(a.Participants, email.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	if activities == nil {
		activities = []*domain.Activity{}
	}
	return activities, nil
}
