package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
)

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Tries multiple formats and returns the zero time if parsing fails.
func parseTimestamp(s string) time.Time {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05.999999",
	}
	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// isUniqueViolation reports whether err is a SQLite unique-constraint error.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// CreateProgress records completion of a study module for a user.
//
// Returns ErrDuplicate if the user has already completed the module.
func (db *DB) CreateProgress(ctx context.Context, userID string, module Module, notes *string) (*StudyProgress, error) {
	query := `
		INSERT INTO study_progress (user_id, module, notes)
		VALUES (?, ?, ?)
		RETURNING id, user_id, module, notes, completed_at, created_at
	`

	var p StudyProgress
	var notesNS sql.NullString
	var completedAt, createdAt string

	err := db.QueryRowContext(ctx, query, userID, string(module), notes).Scan(
		&p.ID,
		&p.UserID,
		&p.Module,
		&notesNS,
		&completedAt,
		&createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("module %s already completed by user: %w", module, ErrDuplicate)
		}
		return nil, fmt.Errorf("insert progress: %w", err)
	}

	if notesNS.Valid {
		p.Notes = &notesNS.String
	}
	p.CompletedAt = parseTimestamp(completedAt)
	p.CreatedAt = parseTimestamp(createdAt)

	return &p, nil
}

// GetProgressByUser retrieves a user's progress records, most recent first.
// Returns an empty slice if the user has no progress.
func (db *DB) GetProgressByUser(ctx context.Context, userID string, limit, offset int) ([]StudyProgress, error) {
	query := `
		SELECT id, user_id, module, notes, completed_at, created_at
		FROM study_progress
		WHERE user_id = ?
		ORDER BY completed_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query progress: %w", err)
	}
	defer rows.Close()

	progress := []StudyProgress{}
	for rows.Next() {
		var p StudyProgress
		var notesNS sql.NullString
		var completedAt, createdAt string

		if err := rows.Scan(&p.ID, &p.UserID, &p.Module, &notesNS, &completedAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan progress row: %w", err)
		}

		if notesNS.Valid {
			p.Notes = &notesNS.String
		}
		p.CompletedAt = parseTimestamp(completedAt)
		p.CreatedAt = parseTimestamp(createdAt)

		progress = append(progress, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate progress rows: %w", err)
	}

	return progress, nil
}

// DeleteProgress removes a progress record owned by the user.
//
// The user_id check keeps one user from deleting another's records.
// Returns ErrNotFound if no matching record exists.
func (db *DB) DeleteProgress(ctx context.Context, id int64, userID string) error {
	result, err := db.ExecContext(ctx,
		"DELETE FROM study_progress WHERE id = ? AND user_id = ?",
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete progress: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete progress rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetProgressStats computes completion statistics for a user.
func (db *DB) GetProgressStats(ctx context.Context, userID string) (*ProgressStats, error) {
	var completed int
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM study_progress WHERE user_id = ?",
		userID,
	).Scan(&completed)
	if err != nil {
		return nil, fmt.Errorf("count progress: %w", err)
	}

	total := len(ValidModules())
	stats := &ProgressStats{
		TotalModules:     total,
		CompletedModules: completed,
	}
	if total > 0 {
		stats.CompletionPercent = float64(completed) / float64(total) * 100
	}

	return stats, nil
}
