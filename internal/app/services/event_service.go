package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/repositories"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
	"github.com/frolicdev/frolic/internal/pkg/helpers"
)

// Stored column defaults, applied when a create request omits a capacity.
const (
	defaultMaxParticipants      = 100
	defaultGroupMinParticipants = 1
	defaultGroupMaxParticipants = 1
	defaultMaxGroupsAllowed     = 50
)

// EventService handles event-related operations
type EventService struct {
	eventRepo      eventRepository
	departmentRepo departmentRepository
	restrictDelete bool
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo eventRepository, departmentRepo departmentRepository, restrictDelete bool) *EventService {
	return &EventService{
		eventRepo:      eventRepo,
		departmentRepo: departmentRepo,
		restrictDelete: restrictDelete,
	}
}

// validateCapacity checks the group capacity pair and the group limit of an
// event. It runs on every create and on every update, against the merged
// values, so a patch can never leave an event with min > max.
func validateCapacity(event *models.Event) error {
	if event.GroupMinParticipants > event.GroupMaxParticipants {
		return apperrors.NewValidationError("Minimum group participants cannot be greater than maximum")
	}
	if event.MaxGroupsAllowed <= 0 {
		return apperrors.NewValidationError("Max groups allowed must be greater than 0")
	}
	if event.MaxParticipants <= 0 {
		return apperrors.NewValidationError("Max participants must be greater than 0")
	}
	return nil
}

// CreateEvent creates an event after validating its capacity settings
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:                req.Title,
		Description:          req.Description,
		Date:                 req.Date,
		Time:                 req.Time,
		Location:             req.Location,
		Category:             req.Category,
		Rules:                req.Rules,
		DepartmentID:         req.DepartmentID,
		MaxParticipants:      defaultMaxParticipants,
		GroupMinParticipants: defaultGroupMinParticipants,
		GroupMaxParticipants: defaultGroupMaxParticipants,
		MaxGroupsAllowed:     defaultMaxGroupsAllowed,
	}
	if event.Rules == nil {
		event.Rules = []string{}
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.GroupMinParticipants != nil {
		event.GroupMinParticipants = *req.GroupMinParticipants
	}
	if req.GroupMaxParticipants != nil {
		event.GroupMaxParticipants = *req.GroupMaxParticipants
	}
	if req.MaxGroupsAllowed != nil {
		event.MaxGroupsAllowed = *req.MaxGroupsAllowed
	}

	if err := validateCapacity(event); err != nil {
		return nil, err
	}

	if event.DepartmentID != nil {
		department, err := s.departmentRepo.GetByID(ctx, *event.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("error checking department: %w", err)
		}
		if department == nil {
			return nil, apperrors.NewResourceNotFoundError("Department not found")
		}
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	return event, nil
}

// GetEventByID retrieves an event by ID
func (s *EventService) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}
	return event, nil
}

// ListEvents retrieves a filtered, paginated event list
func (s *EventService) ListEvents(ctx context.Context, filter *dto.EventFilterRequest) (*dto.EventListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, filter.Limit)

	events, total, err := s.eventRepo.List(ctx, filter.Query, filter.DepartmentID, filter.Location, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}

	return &dto.EventListResponse{
		Events:     events,
		Pagination: helpers.NewPaginationInfo(total, filter.Page, limit),
	}, nil
}

// UpdateEvent applies a partial update to an event. The patch is merged onto
// the stored event and the capacity pair is re-validated as a whole.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Rules != nil {
		event.Rules = *req.Rules
	}
	if req.DepartmentID != nil {
		department, err := s.departmentRepo.GetByID(ctx, *req.DepartmentID)
		if err != nil {
			return nil, fmt.Errorf("error checking department: %w", err)
		}
		if department == nil {
			return nil, apperrors.NewResourceNotFoundError("Department not found")
		}
		event.DepartmentID = req.DepartmentID
	}
	if req.MaxParticipants != nil {
		event.MaxParticipants = *req.MaxParticipants
	}
	if req.GroupMinParticipants != nil {
		event.GroupMinParticipants = *req.GroupMinParticipants
	}
	if req.GroupMaxParticipants != nil {
		event.GroupMaxParticipants = *req.GroupMaxParticipants
	}
	if req.MaxGroupsAllowed != nil {
		event.MaxGroupsAllowed = *req.MaxGroupsAllowed
	}

	if err := validateCapacity(event); err != nil {
		return nil, err
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("error updating event: %w", err)
	}

	return event, nil
}

// DeleteEvent deletes an event by ID
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if _, err := s.GetEventByID(ctx, id); err != nil {
		return err
	}

	if s.restrictDelete {
		groups, err := s.eventRepo.CountGroups(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting groups: %w", err)
		}
		if groups > 0 {
			return apperrors.NewConflictError("Event has registered groups and cannot be removed")
		}
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrEventInUse) {
			return apperrors.NewConflictError("Event has registered groups and cannot be removed")
		}
		return fmt.Errorf("error deleting event: %w", err)
	}

	return nil
}

// GetEventSummary aggregates group and participant counts for an event
func (s *EventService) GetEventSummary(ctx context.Context, id int64) (*dto.EventSummaryResponse, error) {
	if _, err := s.GetEventByID(ctx, id); err != nil {
		return nil, err
	}

	groups, err := s.eventRepo.CountGroups(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting groups: %w", err)
	}
	participants, err := s.eventRepo.CountParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}

	return &dto.EventSummaryResponse{
		EventID:           id,
		TotalGroups:       groups,
		TotalParticipants: participants,
	}, nil
}
