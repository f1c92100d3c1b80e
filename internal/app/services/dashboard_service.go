package services

import (
	"context"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
)

const recentParticipantsLimit = 5

// DashboardService aggregates counts for the admin dashboard
type DashboardService struct {
	instituteRepo   instituteRepository
	eventRepo       eventRepository
	participantRepo participantRepository
	winnerRepo      winnerRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(instituteRepo instituteRepository, eventRepo eventRepository, participantRepo participantRepository, winnerRepo winnerRepository) *DashboardService {
	return &DashboardService{
		instituteRepo:   instituteRepo,
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		winnerRepo:      winnerRepo,
	}
}

// GetStats returns entity counts across the system
func (s *DashboardService) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	institutes, err := s.instituteRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting institutes: %w", err)
	}
	events, err := s.eventRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting events: %w", err)
	}
	participants, err := s.participantRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}
	winners, err := s.winnerRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting winners: %w", err)
	}

	return &dto.DashboardStatsResponse{
		Institutes:   institutes,
		Events:       events,
		Participants: participants,
		Winners:      winners,
	}, nil
}

// GetRecentParticipants returns the most recently registered participants
func (s *DashboardService) GetRecentParticipants(ctx context.Context) ([]*models.Participant, error) {
	participants, err := s.participantRepo.Recent(ctx, recentParticipantsLimit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving recent participants: %w", err)
	}
	return participants, nil
}
