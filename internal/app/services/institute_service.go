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

// InstituteService handles institute-related operations
type InstituteService struct {
	instituteRepo  instituteRepository
	departmentRepo departmentRepository
	restrictDelete bool
}

// NewInstituteService creates a new institute service instance.
// When restrictDelete is set, institutes that still own departments or
// participants cannot be removed.
func NewInstituteService(instituteRepo instituteRepository, departmentRepo departmentRepository, restrictDelete bool) *InstituteService {
	return &InstituteService{
		instituteRepo:  instituteRepo,
		departmentRepo: departmentRepo,
		restrictDelete: restrictDelete,
	}
}

// CreateInstitute creates a new institute with a unique name
func (s *InstituteService) CreateInstitute(ctx context.Context, req *dto.CreateInstituteRequest) (*models.Institute, error) {
	exists, err := s.instituteRepo.ExistsByName(ctx, req.Name, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking institute name: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("Institute already exists")
	}

	institute := &models.Institute{
		Name:     req.Name,
		Location: req.Location,
		Contact:  req.Contact,
	}

	if err := s.instituteRepo.Create(ctx, institute); err != nil {
		return nil, fmt.Errorf("error creating institute: %w", err)
	}

	return institute, nil
}

// GetInstituteByID retrieves an institute by ID
func (s *InstituteService) GetInstituteByID(ctx context.Context, id int64) (*models.Institute, error) {
	institute, err := s.instituteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institute: %w", err)
	}
	if institute == nil {
		return nil, apperrors.NewResourceNotFoundError("Institute not found")
	}
	return institute, nil
}

// GetAllInstitutes retrieves a page of institutes ordered by name
func (s *InstituteService) GetAllInstitutes(ctx context.Context, page, limit int) (*dto.InstituteListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	institutes, total, err := s.instituteRepo.GetAll(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving institutes: %w", err)
	}

	return &dto.InstituteListResponse{
		Institutes: institutes,
		Pagination: helpers.NewPaginationInfo(total, page, limit),
	}, nil
}

// UpdateInstitute updates an institute; empty request fields keep their
// stored values
func (s *InstituteService) UpdateInstitute(ctx context.Context, id int64, req *dto.UpdateInstituteRequest) (*models.Institute, error) {
	institute, err := s.GetInstituteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != institute.Name {
		exists, err := s.instituteRepo.ExistsByName(ctx, req.Name, id)
		if err != nil {
			return nil, fmt.Errorf("error checking institute name: %w", err)
		}
		if exists {
			return nil, apperrors.NewValidationError("Institute already exists")
		}
		institute.Name = req.Name
	}
	if req.Location != "" {
		institute.Location = req.Location
	}
	if req.Contact != "" {
		institute.Contact = req.Contact
	}

	if err := s.instituteRepo.Update(ctx, institute); err != nil {
		return nil, fmt.Errorf("error updating institute: %w", err)
	}

	return institute, nil
}

// DeleteInstitute deletes an institute by ID
func (s *InstituteService) DeleteInstitute(ctx context.Context, id int64) error {
	if _, err := s.GetInstituteByID(ctx, id); err != nil {
		return err
	}

	if s.restrictDelete {
		departments, err := s.instituteRepo.CountDepartments(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting departments: %w", err)
		}
		participants, err := s.instituteRepo.CountParticipants(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting participants: %w", err)
		}
		if departments > 0 || participants > 0 {
			return apperrors.NewConflictError("Institute has departments or participants and cannot be removed")
		}
	}

	if err := s.instituteRepo.Delete(ctx, id); err != nil {
		// The foreign keys are the final arbiter when pre-checks are off
		if errors.Is(err, repositories.ErrInstituteInUse) {
			return apperrors.NewConflictError("Institute has departments or participants and cannot be removed")
		}
		return fmt.Errorf("error deleting institute: %w", err)
	}

	return nil
}

// GetInstituteSummary aggregates event and participant counts for an institute
func (s *InstituteService) GetInstituteSummary(ctx context.Context, id int64) (*dto.InstituteSummaryResponse, error) {
	if _, err := s.GetInstituteByID(ctx, id); err != nil {
		return nil, err
	}

	events, err := s.instituteRepo.CountEvents(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting events: %w", err)
	}
	participants, err := s.instituteRepo.CountParticipants(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error counting participants: %w", err)
	}

	return &dto.InstituteSummaryResponse{
		InstituteID:       id,
		EventsCount:       events,
		ParticipantsCount: participants,
	}, nil
}

// GetInstituteDepartments retrieves the departments of an institute
func (s *InstituteService) GetInstituteDepartments(ctx context.Context, id int64) ([]*models.Department, error) {
	if _, err := s.GetInstituteByID(ctx, id); err != nil {
		return nil, err
	}

	departments, err := s.departmentRepo.GetByInstituteID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}

	return departments, nil
}
