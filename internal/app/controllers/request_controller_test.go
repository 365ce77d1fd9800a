package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

// stubRequestService returns canned values and records what it was called with
type stubRequestService struct {
	rows []models.PreferenceRow
	err  error

	gotStudentID int64
	gotRequestID int64
	gotCourseID  int64
	gotPicks     []dto.PreferencePick
}

func (s *stubRequestService) ReplacePreferences(ctx context.Context, studentID int64, picks []dto.PreferencePick) ([]models.PreferenceRow, error) {
	s.gotStudentID = studentID
	s.gotPicks = picks
	return s.rows, s.err
}

func (s *stubRequestService) GetStudentRequests(ctx context.Context, studentID int64) ([]models.PreferenceRow, error) {
	s.gotStudentID = studentID
	return s.rows, s.err
}

func (s *stubRequestService) DeletePreference(ctx context.Context, requestID, courseID, studentID int64) ([]models.PreferenceRow, error) {
	s.gotRequestID = requestID
	s.gotCourseID = courseID
	s.gotStudentID = studentID
	return s.rows, s.err
}

func requestTestRouter(svc *stubRequestService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewRequestController(svc, zerolog.Nop())
	router.POST("/requests", controller.CreateRequest)
	router.GET("/requests/:id", controller.GetStudentRequests)
	router.DELETE("/requests/:id/preferences/:course_id/:student_id", controller.DeletePreference)
	return router
}

func sampleRows() []models.PreferenceRow {
	return []models.PreferenceRow{
		{
			RequestID:    9,
			SubmittedAt:  time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
			CourseID:     1,
			CourseNumber: "CENG301",
			CourseName:   "Algorithms",
			Status:       models.StatusPending,
		},
	}
}

func TestCreateRequest(t *testing.T) {
	t.Run("valid submission", func(t *testing.T) {
		svc := &stubRequestService{rows: sampleRows()}
		router := requestTestRouter(svc)

		body := `{"student_id": 7, "preferences": [
			{"courseId": 1}, {"courseId": 2}, {"courseId": 3},
			{"courseId": 4, "comment": "retake"}, {"courseId": 5}, {"courseId": 6}
		]}`
		req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
		}
		if svc.gotStudentID != 7 {
			t.Errorf("expected student id 7, got %d", svc.gotStudentID)
		}
		if len(svc.gotPicks) != 6 {
			t.Errorf("expected 6 picks forwarded, got %d", len(svc.gotPicks))
		}
		if svc.gotPicks[3].Comment == nil || *svc.gotPicks[3].Comment != "retake" {
			t.Errorf("expected comment forwarded, got %v", svc.gotPicks[3].Comment)
		}

		var resp dto.RequestResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if len(resp.Request) != 1 || resp.Request[0].CourseNumber != "CENG301" {
			t.Errorf("unexpected response rows: %+v", resp.Request)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := &stubRequestService{}
		router := requestTestRouter(svc)

		req := httptest.NewRequest("POST", "/requests", strings.NewReader(`{"student_id": 7}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["message"] != "student_id and exactly 6 courses are required" {
			t.Errorf("unexpected message %q", body["message"])
		}
	})

	t.Run("wrong count surfaces as 400", func(t *testing.T) {
		svc := &stubRequestService{err: apperrors.NewValidationError("student_id and exactly 6 courses are required")}
		router := requestTestRouter(svc)

		body := `{"student_id": 7, "preferences": [{"courseId": 1}]}`
		req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", w.Code)
		}
	})
}

func TestGetStudentRequests(t *testing.T) {
	svc := &stubRequestService{rows: sampleRows()}
	router := requestTestRouter(svc)

	req := httptest.NewRequest("GET", "/requests/7", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if svc.gotStudentID != 7 {
		t.Errorf("expected student id 7, got %d", svc.gotStudentID)
	}

	// The list endpoint returns a bare array, not a wrapper object
	var rows []models.PreferenceRow
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestGetStudentRequests_InvalidID(t *testing.T) {
	svc := &stubRequestService{}
	router := requestTestRouter(svc)

	req := httptest.NewRequest("GET", "/requests/abc", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}
}

func TestDeletePreference(t *testing.T) {
	t.Run("forwards path params", func(t *testing.T) {
		svc := &stubRequestService{rows: sampleRows()}
		router := requestTestRouter(svc)

		req := httptest.NewRequest("DELETE", "/requests/9/preferences/3/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", w.Code)
		}
		if svc.gotRequestID != 9 || svc.gotCourseID != 3 || svc.gotStudentID != 7 {
			t.Errorf("params not forwarded: request=%d course=%d student=%d",
				svc.gotRequestID, svc.gotCourseID, svc.gotStudentID)
		}
	})

	t.Run("approved lock surfaces as 409", func(t *testing.T) {
		svc := &stubRequestService{err: apperrors.NewConflictError("Cannot delete approved course")}
		router := requestTestRouter(svc)

		req := httptest.NewRequest("DELETE", "/requests/9/preferences/3/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected status 409, got %d", w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if body["message"] != "Cannot delete approved course" {
			t.Errorf("unexpected message %q", body["message"])
		}
	})

	t.Run("missing preference surfaces as 404", func(t *testing.T) {
		svc := &stubRequestService{err: apperrors.NewNotFoundError("Course not found")}
		router := requestTestRouter(svc)

		req := httptest.NewRequest("DELETE", "/requests/9/preferences/3/7", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", w.Code)
		}
	})
}
