package models

// Supervisor defines the supervisor model based on the 'supervisors' table.
type Supervisor struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`
	FullName string `json:"full_name" db:"full_name"`
	Password string `json:"-" db:"password"`
}
