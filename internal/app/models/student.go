package models

import "time"

// Student defines the student model based on the 'students' table.
// Passwords are stored as plain text for parity with the legacy system;
// the column is excluded from JSON output.
type Student struct {
	ID           int64  `json:"id" db:"id"`
	Email        string `json:"email" db:"email"`
	FullName     string `json:"full_name" db:"full_name"`
	Password     string `json:"-" db:"password"`
	SupervisorID int64  `json:"supervisor_id" db:"supervisor_id"`
}

// StudentRosterRow is one row of a supervisor's student roster, carrying the
// timestamp of the student's most recent request submission (null when the
// student has never submitted).
type StudentRosterRow struct {
	ID              int64      `json:"id" db:"id"`
	FullName        string     `json:"full_name" db:"full_name"`
	Email           string     `json:"email" db:"email"`
	LastSubmittedAt *time.Time `json:"last_submitted_at" db:"last_submitted_at"`
}
