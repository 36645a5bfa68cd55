package models

// SummaryResponse is one user's aggregate over a date range
type SummaryResponse struct {
	UserID   int64   `json:"user_id"`
	UserName string  `json:"user_name"`
	Entries  int     `json:"entries"`
	Minutes  int     `json:"minutes"`
	Hours    float64 `json:"hours"` // Minutes/60 rounded to 2 decimals
}
