package dto

import (
	"testing"
	"time"

	"github.com/oguzk/coursereg/internal/app/models"
)

func TestGroupPreferenceRows(t *testing.T) {
	t1 := time.Date(2025, 9, 2, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)
	comment := "needs override"

	rows := []models.PreferenceRow{
		{RequestID: 2, SubmittedAt: t1, CourseID: 10, CourseNumber: "CENG301", CourseName: "Algorithms", Status: models.StatusPending},
		{RequestID: 2, SubmittedAt: t1, CourseID: 11, CourseNumber: "CENG302", CourseName: "Operating Systems", StudentComment: &comment, Status: models.StatusApproved},
		{RequestID: 1, SubmittedAt: t2, CourseID: 10, CourseNumber: "CENG301", CourseName: "Algorithms", Status: models.StatusNeedFeedback},
	}

	grouped := GroupPreferenceRows(rows)

	if len(grouped) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(grouped))
	}

	// Incoming order decides group order: request 2 came first
	if grouped[0].RequestID != 2 || grouped[1].RequestID != 1 {
		t.Errorf("expected groups in row order [2 1], got [%d %d]", grouped[0].RequestID, grouped[1].RequestID)
	}
	if !grouped[0].SubmittedAt.Equal(t1) {
		t.Errorf("expected submitted_at %v, got %v", t1, grouped[0].SubmittedAt)
	}
	if len(grouped[0].Courses) != 2 {
		t.Fatalf("expected 2 courses in first group, got %d", len(grouped[0].Courses))
	}
	if grouped[0].Courses[1].StudentComment == nil || *grouped[0].Courses[1].StudentComment != comment {
		t.Errorf("expected comment to survive grouping, got %v", grouped[0].Courses[1].StudentComment)
	}
	if grouped[0].Courses[1].Status != models.StatusApproved {
		t.Errorf("expected approved status, got %s", grouped[0].Courses[1].Status)
	}
}

func TestGroupPreferenceRows_Empty(t *testing.T) {
	grouped := GroupPreferenceRows(nil)
	if grouped == nil {
		t.Fatal("expected an empty slice, got nil")
	}
	if len(grouped) != 0 {
		t.Errorf("expected no groups, got %d", len(grouped))
	}
}
