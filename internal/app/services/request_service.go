package services

import (
	"context"
	"errors"

	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/app/repositories"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
	"github.com/oguzk/coursereg/internal/pkg/dberrors"
)

// RequiredPreferenceCount is the number of courses every submission must carry.
const RequiredPreferenceCount = 6

// RequestService defines the interface for the student-facing request lifecycle
type RequestService interface {
	ReplacePreferences(ctx context.Context, studentID int64, picks []dto.PreferencePick) ([]models.PreferenceRow, error)
	GetStudentRequests(ctx context.Context, studentID int64) ([]models.PreferenceRow, error)
	DeletePreference(ctx context.Context, requestID, courseID, studentID int64) ([]models.PreferenceRow, error)
}

// requestServiceImpl implements the RequestService interface
type requestServiceImpl struct {
	requestRepo requestStore
}

// NewRequestService creates a new request service instance
func NewRequestService(requestRepo requestStore) RequestService {
	return &requestServiceImpl{
		requestRepo: requestRepo,
	}
}

// ReplacePreferences validates the submission and atomically swaps the
// student's request for a fresh one. The count check runs before any
// mutation; a failed transaction writes nothing.
func (s *requestServiceImpl) ReplacePreferences(ctx context.Context, studentID int64, picks []dto.PreferencePick) ([]models.PreferenceRow, error) {
	if len(picks) != RequiredPreferenceCount {
		return nil, apperrors.NewValidationError("student_id and exactly 6 courses are required")
	}

	choices := make([]models.PreferenceChoice, 0, len(picks))
	for _, pick := range picks {
		choices = append(choices, models.PreferenceChoice{
			CourseID: pick.CourseID,
			Comment:  pick.Comment,
		})
	}

	requestID, err := s.requestRepo.ReplacePreferences(ctx, studentID, choices)
	if err != nil {
		// Constraint violations (duplicate course, unknown course or
		// student) all collapse into one client-facing failure; the
		// API deliberately does not distinguish sub-causes.
		if dberrors.IsUniqueViolation(err) || dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewValidationError("Create/replace failed")
		}
		return nil, err
	}

	return s.requestRepo.GetRequestRows(ctx, requestID)
}

// GetStudentRequests returns the student's flat request rows
func (s *requestServiceImpl) GetStudentRequests(ctx context.Context, studentID int64) ([]models.PreferenceRow, error) {
	return s.requestRepo.GetStudentRequestRows(ctx, studentID)
}

// DeletePreference removes one course from a student's request unless the
// supervisor has already approved it. Approved preferences are locked; the
// remaining rows are returned without re-checking the six-count.
func (s *requestServiceImpl) DeletePreference(ctx context.Context, requestID, courseID, studentID int64) ([]models.PreferenceRow, error) {
	pref, err := s.requestRepo.FindPreference(ctx, requestID, courseID, studentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			return nil, apperrors.NewNotFoundError("Course not found")
		}
		return nil, err
	}

	if pref.Status == models.StatusApproved {
		return nil, apperrors.NewConflictError("Cannot delete approved course")
	}

	if err := s.requestRepo.DeletePreference(ctx, pref.ID); err != nil {
		return nil, err
	}

	return s.requestRepo.GetRequestRowsForStudent(ctx, requestID, studentID)
}
