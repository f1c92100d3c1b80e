package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolicdev/frolic/internal/app/models"
	"github.com/frolicdev/frolic/internal/pkg/dberrors"
)

// Event error types
var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventInUse    = errors.New("event is referenced by other records")
)

var eventColumns = []string{
	"id", "title", "description", "date", "time", "location", "category", "rules",
	"department_id", "max_participants", "group_min_participants",
	"group_max_participants", "max_groups_allowed", "created_at", "updated_at",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
	}
}

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Date,
		&event.Time,
		&event.Location,
		&event.Category,
		&event.Rules,
		&event.DepartmentID,
		&event.MaxParticipants,
		&event.GroupMinParticipants,
		&event.GroupMaxParticipants,
		&event.MaxGroupsAllowed,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Create creates a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	query := `
		INSERT INTO events (title, description, date, time, location, category, rules,
			department_id, max_participants, group_min_participants,
			group_max_participants, max_groups_allowed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Date, event.Time, event.Location,
		event.Category, event.Rules, event.DepartmentID, event.MaxParticipants,
		event.GroupMinParticipants, event.GroupMaxParticipants, event.MaxGroupsAllowed).
		Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}

	return nil
}

// GetByID retrieves an event by ID, returning nil when no row exists
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	event, err := scanEvent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving event: %w", err)
	}

	return event, nil
}

// List retrieves a filtered page of events plus the total matching count.
// Title search and location filter are case-insensitive substring matches.
func (r *EventRepository) List(ctx context.Context, search string, departmentID *int64, location string, offset uint64, limit int) ([]*models.Event, int64, error) {
	base := squirrel.Select().From("events").PlaceholderFormat(squirrel.Dollar)
	if search != "" {
		base = base.Where("title ILIKE ?", "%"+search+"%")
	}
	if departmentID != nil {
		base = base.Where("department_id = ?", *departmentID)
	}
	if location != "" {
		base = base.Where("location ILIKE ?", "%"+location+"%")
	}

	countSQL, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting events: %w", err)
	}

	listSQL, listArgs, err := base.Columns(eventColumns...).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// GetByDepartmentID retrieves all events for a given department
func (r *EventRepository) GetByDepartmentID(ctx context.Context, departmentID int64) ([]*models.Event, error) {
	query := squirrel.Select(eventColumns...).
		From("events").
		Where("department_id = ?", departmentID).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Update overwrites an event row with the (already merged) model
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	query := `
		UPDATE events
		SET title = $1, description = $2, date = $3, time = $4, location = $5,
			category = $6, rules = $7, department_id = $8, max_participants = $9,
			group_min_participants = $10, group_max_participants = $11,
			max_groups_allowed = $12, updated_at = NOW()
		WHERE id = $13
	`

	cmdTag, err := r.db.Exec(ctx, query,
		event.Title, event.Description, event.Date, event.Time, event.Location,
		event.Category, event.Rules, event.DepartmentID, event.MaxParticipants,
		event.GroupMinParticipants, event.GroupMaxParticipants, event.MaxGroupsAllowed,
		event.ID)
	if err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// Delete deletes an event by ID
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return ErrEventInUse
		}
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrEventNotFound
	}

	return nil
}

// CountAll counts all events
func (r *EventRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}

// CountGroups counts groups registered under an event
func (r *EventRepository) CountGroups(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM groups WHERE event_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting groups: %w", err)
	}
	return count, nil
}

// CountParticipants counts participants across all of an event's groups
func (r *EventRepository) CountParticipants(ctx context.Context, id int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM participants p
		JOIN groups g ON p.group_id = g.id
		WHERE g.event_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting participants: %w", err)
	}
	return count, nil
}
