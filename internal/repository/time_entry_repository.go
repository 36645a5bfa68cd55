package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tidsreg-be/internal/entities"
)

// CreateTimeEntryParams holds a validated entry ready for insertion.
type CreateTimeEntryParams struct {
	UserID          int64
	ProjectID       int64
	WorkDate        string
	StartTime       string
	EndTime         string
	BreakMinutes    int
	DurationMinutes int
	Note            *string
}

// TimeEntryRepository defines the interface for time entry database operations
type TimeEntryRepository interface {
	List(ctx context.Context, r DateRange) ([]entities.EntryRow, error)
	Summary(ctx context.Context, r DateRange) ([]entities.SummaryRow, error)
	Create(ctx context.Context, p CreateTimeEntryParams) (*entities.TimeEntry, error)
	// Delete removes the entry. A non-nil userID must also match.
	Delete(ctx context.Context, id int64, userID *int64) error
}

type timeEntryRepository struct {
	db *sql.DB
}

// NewTimeEntryRepository creates a new time entry repository
func NewTimeEntryRepository(db *sql.DB) TimeEntryRepository {
	return &timeEntryRepository{db: db}
}

// List returns joined entries in range, newest first
func (r *timeEntryRepository) List(ctx context.Context, dr DateRange) ([]entities.EntryRow, error) {
	query, args := buildEntriesQuery(dr)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}
	defer rows.Close()

	entries := []entities.EntryRow{}
	for rows.Next() {
		var e entities.EntryRow
		err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.ProjectID,
			&e.WorkDate,
			&e.StartTime,
			&e.EndTime,
			&e.BreakMinutes,
			&e.DurationMinutes,
			&e.Note,
			&e.UserName,
			&e.ProjectName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time entries: %w", err)
	}

	return entries, nil
}

// Summary returns per-user totals in range, sorted by name
func (r *timeEntryRepository) Summary(ctx context.Context, dr DateRange) ([]entities.SummaryRow, error) {
	query, args := buildSummaryQuery(dr)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize time entries: %w", err)
	}
	defer rows.Close()

	summary := []entities.SummaryRow{}
	for rows.Next() {
		var s entities.SummaryRow
		if err := rows.Scan(&s.UserID, &s.UserName, &s.Entries, &s.Minutes); err != nil {
			return nil, fmt.Errorf("failed to scan summary row: %w", err)
		}
		summary = append(summary, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary rows: %w", err)
	}

	return summary, nil
}

// Create inserts a new entry and returns the stored row
func (r *timeEntryRepository) Create(ctx context.Context, p CreateTimeEntryParams) (*entities.TimeEntry, error) {
	query := `
		INSERT INTO time_entries
			(user_id, project_id, work_date, start_time, end_time, break_minutes, duration_minutes, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, user_id, project_id,
		          to_char(work_date, 'YYYY-MM-DD'),
		          to_char(start_time, 'HH24:MI'),
		          to_char(end_time, 'HH24:MI'),
		          break_minutes, duration_minutes, note, created_at
	`

	var e entities.TimeEntry
	err := r.db.QueryRowContext(ctx, query,
		p.UserID,
		p.ProjectID,
		p.WorkDate,
		p.StartTime,
		p.EndTime,
		p.BreakMinutes,
		p.DurationMinutes,
		p.Note,
	).Scan(
		&e.ID,
		&e.UserID,
		&e.ProjectID,
		&e.WorkDate,
		&e.StartTime,
		&e.EndTime,
		&e.BreakMinutes,
		&e.DurationMinutes,
		&e.Note,
		&e.CreatedAt,
	)

	if isForeignKeyViolation(err) {
		return nil, ErrUnknownReference
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	return &e, nil
}

// Delete removes an entry (only if the user matches when userID is given)
func (r *timeEntryRepository) Delete(ctx context.Context, id int64, userID *int64) error {
	var query string
	var args []any

	if userID != nil {
		query = `DELETE FROM time_entries WHERE id = $1 AND user_id = $2`
		args = []any{id, *userID}
	} else {
		query = `DELETE FROM time_entries WHERE id = $1`
		args = []any{id}
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete time entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
