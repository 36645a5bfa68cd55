package entities

// User is a person who logs time. Users are created by seed data only.
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
