package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivitySource_LoadActivities(t *testing.T) {
	ctx := context.Background()
	src := NewActivitySource()

	activities, err := src.LoadActivities(ctx)
	require.NoError(t, err)

	byName := make(map[string]int)
	for _, a := range activities {
		require.Greater(t, a.MaxParticipants, 0, a.Name)
		require.LessOrEqual(t, len(a.Participants), a.MaxParticipants, a.Name)
		byName[a.Name] = a.MaxParticipants
	}
	require.Equal(t, map[string]int{
		"Chess Club":        12,
		"Programming Class": 20,
		"Gym Class":         30,
		"Basketball Team":   15,
		"Tennis Club":       12,
		"Drama Club":        20,
		"Science Club":      15,
	}, byName)
}

func TestActivitySource_ReturnsFreshCopies(t *testing.T) {
	ctx := context.Background()
	src := NewActivitySource()

	first, err := src.LoadActivities(ctx)
	require.NoError(t, err)
	first[0].Participants = append(first[0].Participants, "mutated@mergington.edu")
	first[0].MaxParticipants = 1

	second, err := src.LoadActivities(ctx)
	require.NoError(t, err)
	require.Equal(t, "Chess Club", second[0].Name)
	require.Equal(t, 12, second[0].MaxParticipants)
	require.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, second[0].Participants)
}
