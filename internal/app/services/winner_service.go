package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/repositories"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
	"github.com/frolicdev/frolic/internal/pkg/logger"
)

// WinnerService handles event winner declarations. Rank uniqueness per event
// is checked up front for the message and enforced by the store's unique
// constraint for correctness.
type WinnerService struct {
	winnerRepo winnerRepository
	eventRepo  eventRepository
}

// NewWinnerService creates a new winner service instance
func NewWinnerService(winnerRepo winnerRepository, eventRepo eventRepository) *WinnerService {
	return &WinnerService{
		winnerRepo: winnerRepo,
		eventRepo:  eventRepo,
	}
}

// DeclareWinner records a ranked result for an event
func (s *WinnerService) DeclareWinner(ctx context.Context, eventID int64, req *dto.CreateWinnerRequest) (*models.EventWiseWinner, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}

	taken, err := s.winnerRepo.ExistsRank(ctx, eventID, req.Rank, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking rank: %w", err)
	}
	if taken {
		return nil, rankAssigned(req.Rank)
	}

	winner := &models.EventWiseWinner{
		EventID:       eventID,
		Rank:          req.Rank,
		ParticipantID: req.ParticipantID,
		GroupID:       req.GroupID,
		Prize:         req.Prize,
	}

	if err := s.winnerRepo.Create(ctx, winner); err != nil {
		if errors.Is(err, repositories.ErrWinnerRankTaken) {
			return nil, rankAssigned(req.Rank)
		}
		return nil, fmt.Errorf("error creating winner: %w", err)
	}

	logger.Info().Int64("eventId", eventID).Int("rank", winner.Rank).Msg("Winner declared")

	return winner, nil
}

// GetWinnersByEvent retrieves the winners of an event ordered by rank
func (s *WinnerService) GetWinnersByEvent(ctx context.Context, eventID int64) ([]*models.EventWiseWinner, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}
	if event == nil {
		return nil, apperrors.NewResourceNotFoundError("Event not found")
	}

	winners, err := s.winnerRepo.GetByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving winners: %w", err)
	}

	return winners, nil
}

// UpdateWinner applies a partial update to a winner entry. A rank change
// re-checks uniqueness within the event, excluding the entry itself.
func (s *WinnerService) UpdateWinner(ctx context.Context, id int64, req *dto.UpdateWinnerRequest) (*models.EventWiseWinner, error) {
	winner, err := s.winnerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving winner: %w", err)
	}
	if winner == nil {
		return nil, apperrors.NewResourceNotFoundError("Winner entry not found")
	}

	if req.Rank != nil && *req.Rank != winner.Rank {
		taken, err := s.winnerRepo.ExistsRank(ctx, winner.EventID, *req.Rank, id)
		if err != nil {
			return nil, fmt.Errorf("error checking rank: %w", err)
		}
		if taken {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("Rank %d is already taken for this event", *req.Rank))
		}
		winner.Rank = *req.Rank
	}

	if req.ParticipantID != nil {
		winner.ParticipantID = req.ParticipantID
	}
	if req.GroupID != nil {
		winner.GroupID = req.GroupID
	}
	if req.Prize != nil {
		winner.Prize = *req.Prize
	}

	if err := s.winnerRepo.Update(ctx, winner); err != nil {
		if errors.Is(err, repositories.ErrWinnerRankTaken) {
			return nil, apperrors.NewValidationError(
				fmt.Sprintf("Rank %d is already taken for this event", winner.Rank))
		}
		return nil, fmt.Errorf("error updating winner: %w", err)
	}

	return winner, nil
}

// DeleteWinner removes a winner entry by ID
func (s *WinnerService) DeleteWinner(ctx context.Context, id int64) error {
	winner, err := s.winnerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error retrieving winner: %w", err)
	}
	if winner == nil {
		return apperrors.NewResourceNotFoundError("Winner entry not found")
	}

	if err := s.winnerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting winner: %w", err)
	}

	return nil
}

func rankAssigned(rank int) error {
	return apperrors.NewValidationError(
		fmt.Sprintf("Rank %d already assigned for this event", rank))
}
