package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolicdev/frolic/internal/app/models"
)

// Group error types
var (
	ErrGroupNotFound = errors.New("group not found")
)

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
	}
}

// CreateIfBelowLimit inserts a group only while the event still has room for
// another group. The count check and the insert are one statement, so two
// racing requests cannot both slip past the limit. Returns false when the
// limit was reached.
func (r *GroupRepository) CreateIfBelowLimit(ctx context.Context, group *models.Group, maxGroups int) (bool, error) {
	query := `
		INSERT INTO groups (name, event_id)
		SELECT $1, $2
		WHERE (SELECT COUNT(*) FROM groups WHERE event_id = $2) < $3
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, group.Name, group.EventID, maxGroups).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error creating group: %w", err)
	}

	return true, nil
}

// GetByID retrieves a group by ID, returning nil when no row exists
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `
		SELECT id, name, event_id, is_payment_done, is_present, created_at, updated_at
		FROM groups
		WHERE id = $1
	`

	var group models.Group
	err := r.db.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.EventID,
		&group.IsPaymentDone,
		&group.IsPresent,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return &group, nil
}

// GetByEventID retrieves all groups registered under an event
func (r *GroupRepository) GetByEventID(ctx context.Context, eventID int64) ([]*models.Group, error) {
	query := `
		SELECT id, name, event_id, is_payment_done, is_present, created_at, updated_at
		FROM groups
		WHERE event_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*models.Group
	for rows.Next() {
		var group models.Group
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.EventID,
			&group.IsPaymentDone,
			&group.IsPresent,
			&group.CreatedAt,
			&group.UpdatedAt,
		); err != nil {
			return nil, err
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return groups, nil
}

// Update overwrites a group row with the (already merged) model
func (r *GroupRepository) Update(ctx context.Context, group *models.Group) error {
	query := `
		UPDATE groups
		SET name = $1, is_payment_done = $2, is_present = $3, updated_at = NOW()
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		group.Name, group.IsPaymentDone, group.IsPresent, group.ID)
	if err != nil {
		return fmt.Errorf("error updating group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	return nil
}

// Delete deletes a group by ID. Member participants keep their rows; the
// group reference on each is cleared by the schema's ON DELETE SET NULL.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrGroupNotFound
	}

	return nil
}
