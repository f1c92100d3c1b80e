package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/pkg/dberrors"
)

// Department error types
var (
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists in this institute")
	ErrDepartmentInUse         = errors.New("department is referenced by other records")
)

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, hod, contact_email, institute_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		department.Name, department.Hod, department.ContactEmail, department.InstituteID).
		Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}

// GetByID retrieves a department by ID, returning nil when no row exists
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `
		SELECT id, name, hod, contact_email, institute_id, created_at, updated_at
		FROM departments
		WHERE id = $1
	`

	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Hod,
		&department.ContactEmail,
		&department.InstituteID,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments with their institute attached
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT d.id, d.name, d.hod, d.contact_email, d.institute_id, d.created_at, d.updated_at,
		       i.id, i.name, i.location, i.contact, i.created_at, i.updated_at
		FROM departments d
		JOIN institutes i ON d.institute_id = i.id
		ORDER BY d.name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		var institute models.Institute
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Hod,
			&department.ContactEmail,
			&department.InstituteID,
			&department.CreatedAt,
			&department.UpdatedAt,
			&institute.ID,
			&institute.Name,
			&institute.Location,
			&institute.Contact,
			&institute.CreatedAt,
			&institute.UpdatedAt,
		); err != nil {
			return nil, err
		}
		department.Institute = &institute
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// GetByInstituteID retrieves all departments for a given institute
func (r *DepartmentRepository) GetByInstituteID(ctx context.Context, instituteID int64) ([]*models.Department, error) {
	query := `
		SELECT id, name, hod, contact_email, institute_id, created_at, updated_at
		FROM departments
		WHERE institute_id = $1
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, instituteID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*models.Department
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Hod,
			&department.ContactEmail,
			&department.InstituteID,
			&department.CreatedAt,
			&department.UpdatedAt,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// ExistsByNameAndInstitute checks (name, institute) uniqueness, excluding an optional id
func (r *DepartmentRepository) ExistsByNameAndInstitute(ctx context.Context, name string, instituteID, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM departments WHERE name = $1 AND institute_id = $2 AND id != $3)`,
		name, instituteID, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking department uniqueness: %w", err)
	}

	return exists, nil
}

// Update updates an existing department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.Department) error {
	query := `
		UPDATE departments
		SET name = $1, hod = $2, contact_email = $3, institute_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		department.Name, department.Hod, department.ContactEmail, department.InstituteID, department.ID)
	if err != nil {
		return fmt.Errorf("error updating department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

// Delete deletes a department by ID
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrDepartmentInUse
		}
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrDepartmentNotFound
	}

	return nil
}

// CountEvents counts events owned by a department
func (r *DepartmentRepository) CountEvents(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE department_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}
