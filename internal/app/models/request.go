package models

import "time"

// PreferenceStatus is the adjudication state of a single course preference.
type PreferenceStatus string

const (
	StatusPending      PreferenceStatus = "pending"
	StatusNeedFeedback PreferenceStatus = "need_feedback"
	StatusApproved     PreferenceStatus = "approved"
)

// IsValid reports whether the status is one of the closed set of values.
func (s PreferenceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusNeedFeedback, StatusApproved:
		return true
	}
	return false
}

// Request defines the request model based on the 'requests' table.
// A student has at most one request at a time; submitting again replaces it.
type Request struct {
	ID          int64     `json:"id" db:"id"`
	StudentID   int64     `json:"student_id" db:"student_id"`
	SubmittedAt time.Time `json:"submitted_at" db:"submitted_at"`
}

// RequestPreference defines one chosen course inside a request, based on the
// 'request_preferences' table.
type RequestPreference struct {
	ID             int64            `json:"id" db:"id"`
	RequestID      int64            `json:"request_id" db:"request_id"`
	CourseID       int64            `json:"course_id" db:"course_id"`
	StudentComment *string          `json:"student_comment" db:"student_comment"`
	Status         PreferenceStatus `json:"status" db:"status"`
}

// PreferenceChoice is one course pick inside a submission, as handed to the
// storage layer.
type PreferenceChoice struct {
	CourseID int64
	Comment  *string
}

// PreferenceRow is the flat denormalized projection returned by the query
// views: one row per course-within-request. Grouping into nested structures
// is a caller concern.
type PreferenceRow struct {
	RequestID      int64            `json:"request_id" db:"request_id"`
	SubmittedAt    time.Time        `json:"submitted_at" db:"submitted_at"`
	CourseID       int64            `json:"course_id" db:"course_id"`
	CourseNumber   string           `json:"course_number" db:"course_number"`
	CourseName     string           `json:"course_name" db:"course_name"`
	StudentComment *string          `json:"student_comment" db:"student_comment"`
	Status         PreferenceStatus `json:"status" db:"status"`
}

// SupervisorQueueRow extends PreferenceRow with the owning student's details
// for the supervisor-facing pending queue.
type SupervisorQueueRow struct {
	RequestID      int64            `json:"request_id" db:"request_id"`
	SubmittedAt    time.Time        `json:"submitted_at" db:"submitted_at"`
	StudentID      int64            `json:"student_id" db:"student_id"`
	StudentName    string           `json:"student_name" db:"student_name"`
	StudentEmail   string           `json:"student_email" db:"student_email"`
	CourseID       int64            `json:"course_id" db:"course_id"`
	CourseNumber   string           `json:"course_number" db:"course_number"`
	CourseName     string           `json:"course_name" db:"course_name"`
	StudentComment *string          `json:"student_comment" db:"student_comment"`
	Status         PreferenceStatus `json:"status" db:"status"`
}
