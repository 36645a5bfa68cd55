package entities

// Project groups time entries. With projects disabled a single implicit
// project exists and is never exposed.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
