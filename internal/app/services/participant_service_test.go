package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
)

type registrationFixture struct {
	svc          *ParticipantService
	users        *memUserRepo
	groups       *memGroupRepo
	events       *memEventRepo
	participants *memParticipantRepo
	event        *models.Event
	group        *models.Group
}

// newRegistrationFixture builds a service with one event (max 3 per group)
// and one registered group
func newRegistrationFixture(t *testing.T) *registrationFixture {
	t.Helper()

	users := newMemUserRepo()
	groups := newMemGroupRepo()
	events := newMemEventRepo()
	participants := newMemParticipantRepo()

	event := &models.Event{
		Title:                "Robo Race",
		GroupMinParticipants: 1,
		GroupMaxParticipants: 3,
		MaxGroupsAllowed:     5,
		MaxParticipants:      100,
	}
	require.NoError(t, events.Create(context.Background(), event))

	group := &models.Group{Name: "Team Alpha", EventID: event.ID}
	created, err := groups.CreateIfBelowLimit(context.Background(), group, event.MaxGroupsAllowed)
	require.NoError(t, err)
	require.True(t, created)
	participants.groupEvent[group.ID] = event.ID

	return &registrationFixture{
		svc:          NewParticipantService(participants, groups, events, users, zerolog.Nop()),
		users:        users,
		groups:       groups,
		events:       events,
		participants: participants,
		event:        event,
		group:        group,
	}
}

func (f *registrationFixture) newUser(t *testing.T, username, email string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: email, Password: "x", Role: models.RoleStudent}
	require.NoError(t, f.users.Create(context.Background(), user))
	return user
}

func joinRequest(leader bool) *dto.AddParticipantRequest {
	return &dto.AddParticipantRequest{
		FullName:      "Test Student",
		Phone:         "5551234",
		InstituteID:   1,
		DepartmentID:  1,
		IsGroupLeader: leader,
	}
}

func TestAddToGroup(t *testing.T) {
	ctx := context.Background()

	t.Run("adds participant with email from the user account", func(t *testing.T) {
		f := newRegistrationFixture(t)
		user := f.newUser(t, "alice", "alice@example.com")

		participant, err := f.svc.AddToGroup(ctx, f.group.ID, user.ID, joinRequest(true))
		require.NoError(t, err)

		assert.Equal(t, "alice@example.com", participant.Email)
		assert.Equal(t, user.ID, participant.UserID)
		assert.True(t, participant.IsGroupLeader)
		require.NotNil(t, participant.GroupID)
		assert.Equal(t, f.group.ID, *participant.GroupID)
	})

	t.Run("unknown group", func(t *testing.T) {
		f := newRegistrationFixture(t)
		user := f.newUser(t, "alice", "alice@example.com")

		_, err := f.svc.AddToGroup(ctx, 999, user.ID, joinRequest(false))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
		assert.EqualError(t, err, "Group not found")
	})

	t.Run("group at capacity", func(t *testing.T) {
		f := newRegistrationFixture(t)
		for i, name := range []string{"m1", "m2", "m3"} {
			user := f.newUser(t, name, name+"@example.com")
			_, err := f.svc.AddToGroup(ctx, f.group.ID, user.ID, joinRequest(i == 0))
			require.NoError(t, err)
		}

		late := f.newUser(t, "late", "late@example.com")
		_, err := f.svc.AddToGroup(ctx, f.group.ID, late.ID, joinRequest(false))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "Group capacity exceeded. Max allowed is 3")
	})

	t.Run("user already registered in another group of the event", func(t *testing.T) {
		f := newRegistrationFixture(t)
		other := &models.Group{Name: "Team Beta", EventID: f.event.ID}
		created, err := f.groups.CreateIfBelowLimit(ctx, other, f.event.MaxGroupsAllowed)
		require.NoError(t, err)
		require.True(t, created)
		f.participants.groupEvent[other.ID] = f.event.ID

		user := f.newUser(t, "alice", "alice@example.com")
		_, err = f.svc.AddToGroup(ctx, f.group.ID, user.ID, joinRequest(false))
		require.NoError(t, err)

		_, err = f.svc.AddToGroup(ctx, other.ID, user.ID, joinRequest(false))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "You are already registered for this event")
	})

	t.Run("second leader rejected", func(t *testing.T) {
		f := newRegistrationFixture(t)
		first := f.newUser(t, "lead", "lead@example.com")
		_, err := f.svc.AddToGroup(ctx, f.group.ID, first.ID, joinRequest(true))
		require.NoError(t, err)

		second := f.newUser(t, "usurper", "usurper@example.com")
		_, err = f.svc.AddToGroup(ctx, f.group.ID, second.ID, joinRequest(true))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		assert.EqualError(t, err, "Group already has a leader")
	})

	t.Run("non-leader join succeeds when a leader exists", func(t *testing.T) {
		f := newRegistrationFixture(t)
		first := f.newUser(t, "lead", "lead@example.com")
		_, err := f.svc.AddToGroup(ctx, f.group.ID, first.ID, joinRequest(true))
		require.NoError(t, err)

		second := f.newUser(t, "member", "member@example.com")
		participant, err := f.svc.AddToGroup(ctx, f.group.ID, second.ID, joinRequest(false))
		require.NoError(t, err)
		assert.False(t, participant.IsGroupLeader)
	})
}

func TestUpdateParticipant(t *testing.T) {
	ctx := context.Background()

	t.Run("promoting a member fails when the group has a leader", func(t *testing.T) {
		f := newRegistrationFixture(t)
		lead := f.newUser(t, "lead", "lead@example.com")
		_, err := f.svc.AddToGroup(ctx, f.group.ID, lead.ID, joinRequest(true))
		require.NoError(t, err)

		member := f.newUser(t, "member", "member@example.com")
		added, err := f.svc.AddToGroup(ctx, f.group.ID, member.ID, joinRequest(false))
		require.NoError(t, err)

		promote := true
		_, err = f.svc.UpdateParticipant(ctx, added.ID, &dto.UpdateParticipantRequest{IsGroupLeader: &promote})
		require.Error(t, err)
		assert.EqualError(t, err, "Group already has a leader")
	})

	t.Run("patch updates only the provided fields", func(t *testing.T) {
		f := newRegistrationFixture(t)
		user := f.newUser(t, "alice", "alice@example.com")
		added, err := f.svc.AddToGroup(ctx, f.group.ID, user.ID, joinRequest(false))
		require.NoError(t, err)

		phone := "5559999"
		updated, err := f.svc.UpdateParticipant(ctx, added.ID, &dto.UpdateParticipantRequest{Phone: &phone})
		require.NoError(t, err)

		assert.Equal(t, "5559999", updated.Phone)
		assert.Equal(t, "Test Student", updated.FullName)
		assert.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("unknown participant", func(t *testing.T) {
		f := newRegistrationFixture(t)
		phone := "5559999"
		_, err := f.svc.UpdateParticipant(ctx, 42, &dto.UpdateParticipantRequest{Phone: &phone})
		require.Error(t, err)
		assert.EqualError(t, err, "Participant not found")
	})
}

func TestDeleteParticipant(t *testing.T) {
	ctx := context.Background()

	f := newRegistrationFixture(t)
	user := f.newUser(t, "alice", "alice@example.com")
	added, err := f.svc.AddToGroup(ctx, f.group.ID, user.ID, joinRequest(false))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteParticipant(ctx, added.ID))

	// The removal is final; a repeat reports the row as gone
	err = f.svc.DeleteParticipant(ctx, added.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.EqualError(t, err, "Participant not found")

	members, err := f.participants.GetByGroupID(ctx, f.group.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}
