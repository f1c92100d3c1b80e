package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
	"github.com/frolicdev/frolic/internal/pkg/dberrors"
	"github.com/frolicdev/frolic/internal/pkg/helpers"
)

// ParticipantService handles participant registration and management. The
// registration checks here produce the user-facing messages; the database
// guards behind them make the decisions final under concurrency.
type ParticipantService struct {
	participantRepo participantRepository
	groupRepo       groupRepository
	eventRepo       eventRepository
	userRepo        userRepository
	logger          zerolog.Logger
}

// NewParticipantService creates a new participant service instance
func NewParticipantService(participantRepo participantRepository, groupRepo groupRepository, eventRepo eventRepository, userRepo userRepository, logger zerolog.Logger) *ParticipantService {
	return &ParticipantService{
		participantRepo: participantRepo,
		groupRepo:       groupRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// AddToGroup registers the acting user as a participant in a group. The
// participant's email always comes from the user account, never the request.
func (s *ParticipantService) AddToGroup(ctx context.Context, groupID, userID int64, req *dto.AddParticipantRequest) (*models.Participant, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}
	if group == nil {
		return nil, apperrors.NewResourceNotFoundError("Group not found")
	}

	event, err := s.eventRepo.GetByID(ctx, group.EventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}

	if err := s.checkRegistration(ctx, groupID, userID, event); err != nil {
		return nil, err
	}

	if req.IsGroupLeader {
		hasLeader, err := s.participantRepo.LeaderExists(ctx, groupID)
		if err != nil {
			return nil, fmt.Errorf("error checking group leader: %w", err)
		}
		if hasLeader {
			return nil, apperrors.NewValidationError("Group already has a leader")
		}
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	if user == nil {
		return nil, apperrors.NewResourceNotFoundError("User not found")
	}

	participant := &models.Participant{
		FullName:      req.FullName,
		Email:         user.Email,
		Phone:         req.Phone,
		InstituteID:   req.InstituteID,
		DepartmentID:  req.DepartmentID,
		UserID:        userID,
		GroupID:       &groupID,
		IsGroupLeader: req.IsGroupLeader,
	}

	created, err := s.participantRepo.CreateInGroup(ctx, participant, event.GroupMaxParticipants)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "participants_group_leader_key") {
			return nil, apperrors.NewValidationError("Group already has a leader")
		}
		if dberrors.IsDuplicateConstraintError(err, "participants_email_key") {
			return nil, apperrors.NewValidationError("Participant with this email already exists")
		}
		return nil, fmt.Errorf("error creating participant: %w", err)
	}
	if !created {
		// A concurrent registration won the race; re-run the checks to
		// report which guard rejected the insert.
		if err := s.checkRegistration(ctx, groupID, userID, event); err != nil {
			return nil, err
		}
		return nil, apperrors.NewValidationError("Registration could not be completed")
	}

	s.logger.Info().
		Int64("participantId", participant.ID).
		Int64("groupId", groupID).
		Int64("eventId", event.ID).
		Msg("Participant registered")

	return participant, nil
}

// checkRegistration applies the group capacity and duplicate registration
// rules for a prospective member
func (s *ParticipantService) checkRegistration(ctx context.Context, groupID, userID int64, event *models.Event) error {
	count, err := s.participantRepo.CountByGroupID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("error counting group members: %w", err)
	}
	if count >= event.GroupMaxParticipants {
		return apperrors.NewValidationError(
			fmt.Sprintf("Group capacity exceeded. Max allowed is %d", event.GroupMaxParticipants))
	}

	registered, err := s.participantRepo.ExistsByUserAndEvent(ctx, userID, event.ID)
	if err != nil {
		return fmt.Errorf("error checking registration: %w", err)
	}
	if registered {
		return apperrors.NewValidationError("You are already registered for this event")
	}

	return nil
}

// GetParticipantByID retrieves a participant by ID
func (s *ParticipantService) GetParticipantByID(ctx context.Context, id int64) (*models.Participant, error) {
	participant, err := s.participantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participant: %w", err)
	}
	if participant == nil {
		return nil, apperrors.NewResourceNotFoundError("Participant not found")
	}
	return participant, nil
}

// GetAllParticipants retrieves a page of participants with institute,
// department and group names attached
func (s *ParticipantService) GetAllParticipants(ctx context.Context, page, limit int) ([]*models.Participant, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	participants, total, err := s.participantRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, fmt.Errorf("error retrieving participants: %w", err)
	}

	return participants, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateParticipant applies a partial update to a participant. Promoting a
// member to leader re-checks leader uniqueness within the group.
func (s *ParticipantService) UpdateParticipant(ctx context.Context, id int64, req *dto.UpdateParticipantRequest) (*models.Participant, error) {
	participant, err := s.GetParticipantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.IsGroupLeader != nil && *req.IsGroupLeader && !participant.IsGroupLeader && participant.GroupID != nil {
		hasLeader, err := s.participantRepo.LeaderExists(ctx, *participant.GroupID)
		if err != nil {
			return nil, fmt.Errorf("error checking group leader: %w", err)
		}
		if hasLeader {
			return nil, apperrors.NewValidationError("Group already has a leader")
		}
	}

	if req.FullName != nil {
		participant.FullName = *req.FullName
	}
	if req.Phone != nil {
		participant.Phone = *req.Phone
	}
	if req.InstituteID != nil {
		participant.InstituteID = *req.InstituteID
	}
	if req.DepartmentID != nil {
		participant.DepartmentID = *req.DepartmentID
	}
	if req.IsGroupLeader != nil {
		participant.IsGroupLeader = *req.IsGroupLeader
	}

	if err := s.participantRepo.Update(ctx, participant); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "participants_group_leader_key") {
			return nil, apperrors.NewValidationError("Group already has a leader")
		}
		return nil, fmt.Errorf("error updating participant: %w", err)
	}

	return participant, nil
}

// DeleteParticipant removes a participant. Group member lists are derived,
// so the row deletion is the whole removal.
func (s *ParticipantService) DeleteParticipant(ctx context.Context, id int64) error {
	if _, err := s.GetParticipantByID(ctx, id); err != nil {
		return err
	}

	if err := s.participantRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting participant: %w", err)
	}

	return nil
}
