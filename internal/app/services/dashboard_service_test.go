package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolicdev/frolic/internal/app/models"
)

func TestDashboard(t *testing.T) {
	ctx := context.Background()

	institutes := newMemInstituteRepo()
	events := newMemEventRepo()
	participants := newMemParticipantRepo()
	winners := newMemWinnerRepo()
	svc := NewDashboardService(institutes, events, participants, winners)

	require.NoError(t, institutes.Create(ctx, &models.Institute{Name: "Tech"}))
	require.NoError(t, events.Create(ctx, &models.Event{Title: "Quiz"}))
	require.NoError(t, winners.Create(ctx, &models.EventWiseWinner{EventID: 1, Rank: 1, Prize: "Gold"}))

	participants.groupEvent[1] = 1
	gid := int64(1)
	for i := 0; i < 7; i++ {
		created, err := participants.CreateInGroup(ctx, &models.Participant{
			FullName: fmt.Sprintf("P%d", i),
			UserID:   int64(i + 1),
			GroupID:  &gid,
		}, 100)
		require.NoError(t, err)
		require.True(t, created)
	}

	t.Run("stats counts every entity", func(t *testing.T) {
		stats, err := svc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), stats.Institutes)
		assert.Equal(t, int64(1), stats.Events)
		assert.Equal(t, int64(7), stats.Participants)
		assert.Equal(t, int64(1), stats.Winners)
	})

	t.Run("recent returns the five newest", func(t *testing.T) {
		recent, err := svc.GetRecentParticipants(ctx)
		require.NoError(t, err)
		require.Len(t, recent, 5)
		assert.Equal(t, "P6", recent[0].FullName)
	})
}
