package models

// CreateTimeEntryRequest represents the request body for logging a work session
type CreateTimeEntryRequest struct {
	UserID       *FlexInt `json:"user_id"`
	ProjectID    *FlexInt `json:"project_id,omitempty"`    // Required when projects are enabled
	WorkDate     string   `json:"work_date"`               // YYYY-MM-DD
	StartTime    string   `json:"start_time"`              // HH:MM
	EndTime      string   `json:"end_time"`                // HH:MM
	BreakMinutes *FlexInt `json:"break_minutes,omitempty"` // Ignored when breaks are disabled
	Note         *string  `json:"note,omitempty"`
}

// DateRangeQuery holds the optional from/to filter shared by listing,
// summary and exports.
type DateRangeQuery struct {
	From string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To   string `form:"to" binding:"omitempty,datetime=2006-01-02"`
}
