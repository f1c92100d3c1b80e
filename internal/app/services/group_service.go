package services

import (
	"context"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
	"github.com/frolicdev/frolic/internal/pkg/logger"
)

// GroupService handles group-related operations
type GroupService struct {
	groupRepo       groupRepository
	eventRepo       eventRepository
	participantRepo participantRepository
}

// NewGroupService creates a new group service instance
func NewGroupService(groupRepo groupRepository, eventRepo eventRepository, participantRepo participantRepository) *GroupService {
	return &GroupService{
		groupRepo:       groupRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
	}
}

// CreateGroup registers a group under an event. The event's group limit is
// enforced inside the insert itself.
func (s *GroupService) CreateGroup(ctx context.Context, eventID int64, req *dto.CreateGroupRequest) (*models.Group, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}

	group := &models.Group{
		Name:    req.Name,
		EventID: eventID,
	}

	created, err := s.groupRepo.CreateIfBelowLimit(ctx, group, event.MaxGroupsAllowed)
	if err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}
	if !created {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("Maximum number of groups reached for this event. Max allowed is %d", event.MaxGroupsAllowed))
	}

	logger.Info().Int64("groupId", group.ID).Int64("eventId", eventID).Msg("Group registered")

	return group, nil
}

// GetGroupByID retrieves a group by ID
func (s *GroupService) GetGroupByID(ctx context.Context, id int64) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	if group == nil {
		return nil, apperrors.NewResourceNotFoundError("Group not found")
	}
	return group, nil
}

// GetGroupsByEvent retrieves an event's groups with their member lists
func (s *GroupService) GetGroupsByEvent(ctx context.Context, eventID int64) ([]*models.Group, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}

	groups, err := s.groupRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving groups: %w", err)
	}

	for _, group := range groups {
		members, err := s.participantRepo.GetByGroupID(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving group members: %w", err)
		}
		group.Members = members
	}

	return groups, nil
}

// GetGroupMembers retrieves the member participants of a group, leader first
func (s *GroupService) GetGroupMembers(ctx context.Context, groupID int64) ([]*models.Participant, error) {
	if _, err := s.GetGroupByID(ctx, groupID); err != nil {
		return nil, err
	}

	members, err := s.participantRepo.GetByGroupID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group members: %w", err)
	}

	return members, nil
}

// UpdateGroup applies a partial update to a group
func (s *GroupService) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	group, err := s.GetGroupByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.IsPaymentDone != nil {
		group.IsPaymentDone = *req.IsPaymentDone
	}
	if req.IsPresent != nil {
		group.IsPresent = *req.IsPresent
	}

	if err := s.groupRepo.Update(ctx, group); err != nil {
		return nil, fmt.Errorf("error updating group: %w", err)
	}

	return group, nil
}

// DeleteGroup deletes a group. Its members stay registered as participants
// with their group reference cleared.
func (s *GroupService) DeleteGroup(ctx context.Context, id int64) error {
	if _, err := s.GetGroupByID(ctx, id); err != nil {
		return err
	}

	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}

	return nil
}
