package models

// Course represents a selectable course. Reference data; its lifecycle is
// managed outside this service.
type Course struct {
	ID           int64  `json:"id" db:"id"`
	CourseNumber string `json:"course_number" db:"course_number"`
	Name         string `json:"name" db:"name"`
}
