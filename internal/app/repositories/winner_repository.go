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

// Winner error types
var (
	ErrWinnerNotFound  = errors.New("winner not found")
	ErrWinnerRankTaken = errors.New("rank already assigned for this event")
)

// WinnerRepository handles database operations for event winners
type WinnerRepository struct {
	db *pgxpool.Pool
}

// NewWinnerRepository creates a new winner repository
func NewWinnerRepository(db *pgxpool.Pool) *WinnerRepository {
	return &WinnerRepository{
		db: db,
	}
}

// Create inserts a winner record. A duplicate rank for the same event is
// rejected by the store's unique constraint and mapped to ErrWinnerRankTaken.
func (r *WinnerRepository) Create(ctx context.Context, winner *models.EventWiseWinner) error {
	query := `
		INSERT INTO event_wise_winners (event_id, rank, participant_id, group_id, prize)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		winner.EventID, winner.Rank, winner.ParticipantID, winner.GroupID, winner.Prize).
		Scan(&winner.ID, &winner.CreatedAt, &winner.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_wise_winners_event_rank_key") {
			return ErrWinnerRankTaken
		}
		return fmt.Errorf("error creating winner: %w", err)
	}

	return nil
}

// GetByID retrieves a winner by ID, returning nil when no row exists
func (r *WinnerRepository) GetByID(ctx context.Context, id int64) (*models.EventWiseWinner, error) {
	query := `
		SELECT id, event_id, rank, participant_id, group_id, prize, created_at, updated_at
		FROM event_wise_winners
		WHERE id = $1
	`

	var winner models.EventWiseWinner
	err := r.db.QueryRow(ctx, query, id).Scan(
		&winner.ID,
		&winner.EventID,
		&winner.Rank,
		&winner.ParticipantID,
		&winner.GroupID,
		&winner.Prize,
		&winner.CreatedAt,
		&winner.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving winner: %w", err)
	}

	return &winner, nil
}

// GetByEventID retrieves winners of an event ordered by rank
func (r *WinnerRepository) GetByEventID(ctx context.Context, eventID int64) ([]*models.EventWiseWinner, error) {
	query := `
		SELECT id, event_id, rank, participant_id, group_id, prize, created_at, updated_at
		FROM event_wise_winners
		WHERE event_id = $1
		ORDER BY rank
	`

	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var winners []*models.EventWiseWinner
	for rows.Next() {
		var winner models.EventWiseWinner
		if err := rows.Scan(
			&winner.ID,
			&winner.EventID,
			&winner.Rank,
			&winner.ParticipantID,
			&winner.GroupID,
			&winner.Prize,
			&winner.CreatedAt,
			&winner.UpdatedAt,
		); err != nil {
			return nil, err
		}
		winners = append(winners, &winner)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return winners, nil
}

// ExistsRank reports whether a rank is already taken for an event, excluding
// the winner row being edited
func (r *WinnerRepository) ExistsRank(ctx context.Context, eventID int64, rank int, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM event_wise_winners
			WHERE event_id = $1 AND rank = $2 AND id != $3
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, eventID, rank, excludeID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Update overwrites a winner row with the (already merged) model
func (r *WinnerRepository) Update(ctx context.Context, winner *models.EventWiseWinner) error {
	query := `
		UPDATE event_wise_winners
		SET rank = $1, participant_id = $2, group_id = $3, prize = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		winner.Rank, winner.ParticipantID, winner.GroupID, winner.Prize, winner.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "event_wise_winners_event_rank_key") {
			return ErrWinnerRankTaken
		}
		return fmt.Errorf("error updating winner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrWinnerNotFound
	}

	return nil
}

// CountAll returns the total number of winner records
func (r *WinnerRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM event_wise_winners`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// Delete deletes a winner record by ID
func (r *WinnerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM event_wise_winners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting winner: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrWinnerNotFound
	}

	return nil
}
