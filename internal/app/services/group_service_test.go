package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
)

func newGroupFixture(t *testing.T, maxGroups int) (*GroupService, *models.Event, *memParticipantRepo) {
	t.Helper()

	events := newMemEventRepo()
	event := &models.Event{
		Title:                "Dance Off",
		GroupMinParticipants: 1,
		GroupMaxParticipants: 4,
		MaxGroupsAllowed:     maxGroups,
		MaxParticipants:      100,
	}
	require.NoError(t, events.Create(context.Background(), event))

	participants := newMemParticipantRepo()
	return NewGroupService(newMemGroupRepo(), events, participants), event, participants
}

func TestCreateGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("registers groups up to the event limit", func(t *testing.T) {
		svc, event, _ := newGroupFixture(t, 2)

		_, err := svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Alpha"})
		require.NoError(t, err)
		_, err = svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Beta"})
		require.NoError(t, err)

		_, err = svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Gamma"})
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "Maximum number of groups reached for this event. Max allowed is 2")
	})

	t.Run("unknown event", func(t *testing.T) {
		svc, _, _ := newGroupFixture(t, 2)
		_, err := svc.CreateGroup(ctx, 99, &dto.CreateGroupRequest{Name: "Alpha"})
		require.Error(t, err)
		assert.EqualError(t, err, "Event not found")
	})
}

func TestGetGroupsByEvent(t *testing.T) {
	ctx := context.Background()

	svc, event, participants := newGroupFixture(t, 5)
	group, err := svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Alpha"})
	require.NoError(t, err)
	participants.groupEvent[group.ID] = event.ID

	gid := group.ID
	created, err := participants.CreateInGroup(ctx, &models.Participant{
		FullName: "Member One", Email: "one@example.com", UserID: 1, GroupID: &gid,
	}, event.GroupMaxParticipants)
	require.NoError(t, err)
	require.True(t, created)

	groups, err := svc.GetGroupsByEvent(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "Member One", groups[0].Members[0].FullName)
}

func TestUpdateGroup(t *testing.T) {
	ctx := context.Background()

	svc, event, _ := newGroupFixture(t, 5)
	group, err := svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Alpha"})
	require.NoError(t, err)

	paid := true
	updated, err := svc.UpdateGroup(ctx, group.ID, &dto.UpdateGroupRequest{IsPaymentDone: &paid})
	require.NoError(t, err)
	assert.True(t, updated.IsPaymentDone)
	assert.Equal(t, "Alpha", updated.Name)
	assert.False(t, updated.IsPresent)
}

func TestDeleteGroup(t *testing.T) {
	ctx := context.Background()

	svc, event, _ := newGroupFixture(t, 5)
	group, err := svc.CreateGroup(ctx, event.ID, &dto.CreateGroupRequest{Name: "Alpha"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, group.ID))

	err = svc.DeleteGroup(ctx, group.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Group not found")
}
