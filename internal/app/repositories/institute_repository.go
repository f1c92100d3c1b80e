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

// Institute error types
var (
	ErrInstituteNotFound      = errors.New("institute not found")
	ErrInstituteAlreadyExists = errors.New("institute with this name already exists")
	ErrInstituteInUse         = errors.New("institute is referenced by other records")
)

// InstituteRepository handles database operations for institutes
type InstituteRepository struct {
	db *pgxpool.Pool
}

// NewInstituteRepository creates a new institute repository
func NewInstituteRepository(db *pgxpool.Pool) *InstituteRepository {
	return &InstituteRepository{
		db: db,
	}
}

// Create creates a new institute
func (r *InstituteRepository) Create(ctx context.Context, institute *models.Institute) error {
	query := `
		INSERT INTO institutes (name, location, contact)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, institute.Name, institute.Location, institute.Contact).
		Scan(&institute.ID, &institute.CreatedAt, &institute.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating institute: %w", err)
	}

	return nil
}

// GetByID retrieves an institute by ID, returning nil when no row exists
func (r *InstituteRepository) GetByID(ctx context.Context, id int64) (*models.Institute, error) {
	query := `
		SELECT id, name, location, contact, created_at, updated_at
		FROM institutes
		WHERE id = $1
	`

	var institute models.Institute
	err := r.db.QueryRow(ctx, query, id).Scan(
		&institute.ID,
		&institute.Name,
		&institute.Location,
		&institute.Contact,
		&institute.CreatedAt,
		&institute.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving institute: %w", err)
	}

	return &institute, nil
}

// GetAll retrieves a page of institutes ordered by name, plus the total count
func (r *InstituteRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Institute, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM institutes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting institutes: %w", err)
	}

	query := `
		SELECT id, name, location, contact, created_at, updated_at
		FROM institutes
		ORDER BY name
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var institutes []*models.Institute
	for rows.Next() {
		var institute models.Institute
		if err := rows.Scan(
			&institute.ID,
			&institute.Name,
			&institute.Location,
			&institute.Contact,
			&institute.CreatedAt,
			&institute.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		institutes = append(institutes, &institute)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return institutes, total, nil
}

// ExistsByName checks if an institute exists by name, excluding an optional id
func (r *InstituteRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM institutes WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)

	if err != nil {
		return false, fmt.Errorf("error checking institute existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing institute
func (r *InstituteRepository) Update(ctx context.Context, institute *models.Institute) error {
	query := `
		UPDATE institutes
		SET name = $1, location = $2, contact = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		institute.Name, institute.Location, institute.Contact, institute.ID)
	if err != nil {
		return fmt.Errorf("error updating institute: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInstituteNotFound
	}

	return nil
}

// Delete deletes an institute by ID
func (r *InstituteRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM institutes WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrInstituteInUse
		}
		return fmt.Errorf("error deleting institute: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrInstituteNotFound
	}

	return nil
}

// CountAll returns the total number of institutes
func (r *InstituteRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM institutes`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting institutes: %w", err)
	}
	return count, nil
}

// CountDepartments counts departments owned by an institute
func (r *InstituteRepository) CountDepartments(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments WHERE institute_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting departments: %w", err)
	}
	return count, nil
}

// CountEvents counts events run by any of the institute's departments
func (r *InstituteRepository) CountEvents(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM events e
		JOIN departments d ON e.department_id = d.id
		WHERE d.institute_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

// CountParticipants counts participants registered from an institute
func (r *InstituteRepository) CountParticipants(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE institute_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}
