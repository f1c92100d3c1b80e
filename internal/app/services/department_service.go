package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/repositories"
	"github.com/frolicdev/frolic/internal/pkg/apperrors"
)

// DepartmentService handles department-related operations
type DepartmentService struct {
	departmentRepo departmentRepository
	instituteRepo  instituteRepository
	eventRepo      eventRepository
	restrictDelete bool
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentRepository, instituteRepo instituteRepository, eventRepo eventRepository, restrictDelete bool) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
		instituteRepo:  instituteRepo,
		eventRepo:      eventRepo,
		restrictDelete: restrictDelete,
	}
}

// CreateDepartment creates a department under an existing institute
func (s *DepartmentService) CreateDepartment(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	institute, err := s.instituteRepo.GetByID(ctx, req.InstituteID)
	if err != nil {
		return nil, fmt.Errorf("error checking institute: %w", err)
	}
	if institute == nil {
		return nil, apperrors.NewResourceNotFoundError("Institute not found")
	}

	exists, err := s.departmentRepo.ExistsByNameAndInstitute(ctx, req.Name, req.InstituteID, 0)
	if err != nil {
		return nil, fmt.Errorf("error checking department name: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("A department with this name already exists in this institute")
	}

	department := &models.Department{
		Name:         req.Name,
		Hod:          req.Hod,
		ContactEmail: req.ContactEmail,
		InstituteID:  req.InstituteID,
	}

	if err := s.departmentRepo.Create(ctx, department); err != nil {
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	department.Institute = institute
	return department, nil
}

// GetDepartmentByID retrieves a department by ID
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*models.Department, error) {
	department, err := s.departmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	if department == nil {
		return nil, apperrors.NewResourceNotFoundError("Department not found")
	}
	return department, nil
}

// GetAllDepartments retrieves all departments with their institutes attached
func (s *DepartmentService) GetAllDepartments(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.departmentRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	return departments, nil
}

// UpdateDepartment updates a department; empty request fields keep their
// stored values
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, req *dto.UpdateDepartmentRequest) (*models.Department, error) {
	department, err := s.GetDepartmentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.InstituteID > 0 && req.InstituteID != department.InstituteID {
		institute, err := s.instituteRepo.GetByID(ctx, req.InstituteID)
		if err != nil {
			return nil, fmt.Errorf("error checking institute: %w", err)
		}
		if institute == nil {
			return nil, apperrors.NewResourceNotFoundError("Institute not found")
		}
		department.InstituteID = req.InstituteID
		department.Institute = institute
	}

	if req.Name != "" {
		department.Name = req.Name
	}
	if req.Hod != "" {
		department.Hod = req.Hod
	}
	if req.ContactEmail != "" {
		department.ContactEmail = req.ContactEmail
	}

	exists, err := s.departmentRepo.ExistsByNameAndInstitute(ctx, department.Name, department.InstituteID, id)
	if err != nil {
		return nil, fmt.Errorf("error checking department name: %w", err)
	}
	if exists {
		return nil, apperrors.NewValidationError("Another department with this name already exists in this institute")
	}

	if err := s.departmentRepo.Update(ctx, department); err != nil {
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	return department, nil
}

// DeleteDepartment deletes a department by ID
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id int64) error {
	if _, err := s.GetDepartmentByID(ctx, id); err != nil {
		return err
	}

	if s.restrictDelete {
		events, err := s.departmentRepo.CountEvents(ctx, id)
		if err != nil {
			return fmt.Errorf("error counting events: %w", err)
		}
		if events > 0 {
			return apperrors.NewConflictError("Department has events and cannot be removed")
		}
	}

	if err := s.departmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrDepartmentInUse) {
			return apperrors.NewConflictError("Department has events and cannot be removed")
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	return nil
}

// GetDepartmentEvents retrieves the events run by a department
func (s *DepartmentService) GetDepartmentEvents(ctx context.Context, id int64) ([]*models.Event, error) {
	if _, err := s.GetDepartmentByID(ctx, id); err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetByDepartmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}

	return events, nil
}
