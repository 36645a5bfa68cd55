package entities

import "time"

// TimeEntry represents a stored work session.
type TimeEntry struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	ProjectID       int64     `json:"project_id"`
	WorkDate        string    `json:"work_date"`  // YYYY-MM-DD
	StartTime       string    `json:"start_time"` // HH:MM
	EndTime         string    `json:"end_time"`   // HH:MM
	BreakMinutes    int       `json:"break_minutes"`
	DurationMinutes int       `json:"duration_minutes"`
	Note            *string   `json:"note"`
	CreatedAt       time.Time `json:"created_at"`
}

// EntryRow is a time entry joined with user and project names. It is the
// row-set shared by the listing endpoint and both detail exports.
type EntryRow struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"user_id"`
	ProjectID       int64   `json:"project_id"`
	WorkDate        string  `json:"work_date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	BreakMinutes    int     `json:"break_minutes"`
	DurationMinutes int     `json:"duration_minutes"`
	Note            *string `json:"note"`
	UserName        string  `json:"user_name"`
	ProjectName     string  `json:"project_name"`
}

// SummaryRow aggregates one user's entries over a date range.
type SummaryRow struct {
	UserID   int64  `json:"user_id"`
	UserName string `json:"user_name"`
	Entries  int    `json:"entries"`
	Minutes  int    `json:"minutes"`
}
