package dto

import (
	"time"

	"github.com/oguzk/coursereg/internal/app/models"
)

// PreferencePick is one chosen course in a submission
type PreferencePick struct {
	CourseID int64   `json:"courseId" binding:"required"`
	Comment  *string `json:"comment"`
}

// CreateRequestRequest represents a full preference submission. The service
// enforces the exactly-six rule; binding only checks presence.
type CreateRequestRequest struct {
	StudentID   int64            `json:"student_id" binding:"required"`
	Preferences []PreferencePick `json:"preferences" binding:"required"`
}

// RequestResponse wraps the flat rows of a single request
type RequestResponse struct {
	Request []models.PreferenceRow `json:"request"`
}

// UpdateStatusRequest represents a supervisor's adjudication of one preference
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GroupedRequest is an optional nested view of flat preference rows for
// clients that do not want to group themselves. The query layer always
// returns flat rows; this adapter is applied at the boundary only.
type GroupedRequest struct {
	RequestID   int64                  `json:"request_id"`
	SubmittedAt time.Time              `json:"submitted_at"`
	Courses     []GroupedRequestCourse `json:"courses"`
}

// GroupedRequestCourse is one course entry inside a GroupedRequest
type GroupedRequestCourse struct {
	CourseID       int64                   `json:"course_id"`
	CourseNumber   string                  `json:"course_number"`
	CourseName     string                  `json:"course_name"`
	StudentComment *string                 `json:"student_comment"`
	Status         models.PreferenceStatus `json:"status"`
}

// GroupPreferenceRows folds flat rows into per-request groups, preserving the
// incoming row order both across and within requests.
func GroupPreferenceRows(rows []models.PreferenceRow) []GroupedRequest {
	grouped := make([]GroupedRequest, 0)
	index := make(map[int64]int)

	for _, row := range rows {
		i, ok := index[row.RequestID]
		if !ok {
			grouped = append(grouped, GroupedRequest{
				RequestID:   row.RequestID,
				SubmittedAt: row.SubmittedAt,
				Courses:     make([]GroupedRequestCourse, 0, 6),
			})
			i = len(grouped) - 1
			index[row.RequestID] = i
		}
		grouped[i].Courses = append(grouped[i].Courses, GroupedRequestCourse{
			CourseID:       row.CourseID,
			CourseNumber:   row.CourseNumber,
			CourseName:     row.CourseName,
			StudentComment: row.StudentComment,
			Status:         row.Status,
		})
	}

	return grouped
}
