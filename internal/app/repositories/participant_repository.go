package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/frolicdev/frolic/internal/app/models"
)

// Participant error types
var (
	ErrParticipantNotFound = errors.New("participant not found")
)

// ParticipantRepository handles database operations for participants
type ParticipantRepository struct {
	db *pgxpool.Pool
}

// NewParticipantRepository creates a new participant repository
func NewParticipantRepository(db *pgxpool.Pool) *ParticipantRepository {
	return &ParticipantRepository{
		db: db,
	}
}

const participantColumns = `p.id, p.full_name, p.email, p.phone, p.institute_id,
	p.department_id, p.user_id, p.group_id, p.is_group_leader, p.created_at, p.updated_at`

func scanParticipant(row pgx.Row) (*models.Participant, error) {
	var participant models.Participant
	err := row.Scan(
		&participant.ID,
		&participant.FullName,
		&participant.Email,
		&participant.Phone,
		&participant.InstituteID,
		&participant.DepartmentID,
		&participant.UserID,
		&participant.GroupID,
		&participant.IsGroupLeader,
		&participant.CreatedAt,
		&participant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &participant, nil
}

// CreateInGroup inserts a participant into a group only while the group has
// room and the user is not already registered anywhere in the group's event.
// Both guards sit inside the insert statement itself, so concurrent
// registrations cannot overfill a group or double-register a user. Returns
// false when either guard rejected the row.
func (r *ParticipantRepository) CreateInGroup(ctx context.Context, participant *models.Participant, groupMax int) (bool, error) {
	query := `
		INSERT INTO participants
			(full_name, email, phone, institute_id, department_id, user_id, group_id, is_group_leader)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8
		WHERE (SELECT COUNT(*) FROM participants WHERE group_id = $7) < $9
		  AND NOT EXISTS (
			SELECT 1
			FROM participants p
			JOIN groups g ON g.id = p.group_id
			WHERE p.user_id = $6
			  AND g.event_id = (SELECT event_id FROM groups WHERE id = $7)
		  )
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		participant.FullName,
		participant.Email,
		participant.Phone,
		participant.InstituteID,
		participant.DepartmentID,
		participant.UserID,
		participant.GroupID,
		participant.IsGroupLeader,
		groupMax,
	).Scan(&participant.ID, &participant.CreatedAt, &participant.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error creating participant: %w", err)
	}

	return true, nil
}

// GetByID retrieves a participant by ID, returning nil when no row exists
func (r *ParticipantRepository) GetByID(ctx context.Context, id int64) (*models.Participant, error) {
	query := fmt.Sprintf(`SELECT %s FROM participants p WHERE p.id = $1`, participantColumns)

	participant, err := scanParticipant(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving participant: %w", err)
	}

	return participant, nil
}

// GetAll retrieves participants with institute, department and group names
// joined in, paginated
func (r *ParticipantRepository) GetAll(ctx context.Context, offset uint64, limit int) ([]*models.Participant, int64, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	queryBuilder := psql.Select(
		"p.id", "p.full_name", "p.email", "p.phone", "p.institute_id",
		"p.department_id", "p.user_id", "p.group_id", "p.is_group_leader",
		"p.created_at", "p.updated_at",
		"i.name AS institute_name", "d.name AS department_name",
		"COALESCE(g.name, '') AS group_name",
	).
		From("participants p").
		Join("institutes i ON i.id = p.institute_id").
		Join("departments d ON d.id = p.department_id").
		LeftJoin("groups g ON g.id = p.group_id").
		OrderBy("p.created_at DESC").
		Offset(offset).
		Limit(uint64(limit))

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		var participant models.Participant
		if err := rows.Scan(
			&participant.ID,
			&participant.FullName,
			&participant.Email,
			&participant.Phone,
			&participant.InstituteID,
			&participant.DepartmentID,
			&participant.UserID,
			&participant.GroupID,
			&participant.IsGroupLeader,
			&participant.CreatedAt,
			&participant.UpdatedAt,
			&participant.InstituteName,
			&participant.DepartmentName,
			&participant.GroupName,
		); err != nil {
			return nil, 0, err
		}
		participants = append(participants, &participant)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participants`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return participants, total, nil
}

// GetByGroupID retrieves the members of a group, leader first
func (r *ParticipantRepository) GetByGroupID(ctx context.Context, groupID int64) ([]*models.Participant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		WHERE p.group_id = $1
		ORDER BY p.is_group_leader DESC, p.created_at
	`, participantColumns)

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// CountByGroupID returns the current member count of a group
func (r *ParticipantRepository) CountByGroupID(ctx context.Context, groupID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participants WHERE group_id = $1`, groupID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// LeaderExists reports whether a group already has a leader
func (r *ParticipantRepository) LeaderExists(ctx context.Context, groupID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM participants WHERE group_id = $1 AND is_group_leader)`,
		groupID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// ExistsByUserAndEvent reports whether a user is already registered in any
// group of an event
func (r *ParticipantRepository) ExistsByUserAndEvent(ctx context.Context, userID, eventID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1
			FROM participants p
			JOIN groups g ON g.id = p.group_id
			WHERE p.user_id = $1 AND g.event_id = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, eventID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update overwrites a participant row with the (already merged) model
func (r *ParticipantRepository) Update(ctx context.Context, participant *models.Participant) error {
	query := `
		UPDATE participants
		SET full_name = $1, email = $2, phone = $3, institute_id = $4,
			department_id = $5, is_group_leader = $6, updated_at = NOW()
		WHERE id = $7
	`

	cmdTag, err := r.db.Exec(ctx, query,
		participant.FullName,
		participant.Email,
		participant.Phone,
		participant.InstituteID,
		participant.DepartmentID,
		participant.IsGroupLeader,
		participant.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating participant: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// Delete deletes a participant by ID
func (r *ParticipantRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM participants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting participant: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrParticipantNotFound
	}

	return nil
}

// Recent retrieves the most recently registered participants
func (r *ParticipantRepository) Recent(ctx context.Context, limit int) ([]*models.Participant, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM participants p
		ORDER BY p.created_at DESC
		LIMIT $1
	`, participantColumns)

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []*models.Participant
	for rows.Next() {
		participant, err := scanParticipant(rows)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return participants, nil
}

// CountAll returns the total number of participants
func (r *ParticipantRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM participants`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
