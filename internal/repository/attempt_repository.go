package repository

import (
	"context"
	"database/sql"
	"fmt"

	"practice-service/internal/models"
)

type AttemptRepository struct {
	db *sql.DB
}

func NewAttemptRepository(db *sql.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

func (r *AttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	query := `
		INSERT INTO quiz_attempts (id, session_id, subject, year, score, total, percentage, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		attempt.ID,
		attempt.SessionID,
		attempt.Subject,
		attempt.Year,
		attempt.Score,
		attempt.Total,
		attempt.Percentage,
		attempt.CompletedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert attempt: %w", err)
	}
	return nil
}

// ListBySession returns the session's most recent attempts, newest first.
func (r *AttemptRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]models.Attempt, error) {
	query := `
		SELECT id, session_id, subject, year, score, total, percentage, completed_at
		FROM quiz_attempts
		WHERE session_id = $1
		ORDER BY completed_at DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	attempts := make([]models.Attempt, 0)
	for rows.Next() {
		var a models.Attempt
		if err := rows.Scan(
			&a.ID,
			&a.SessionID,
			&a.Subject,
			&a.Year,
			&a.Score,
			&a.Total,
			&a.Percentage,
			&a.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
