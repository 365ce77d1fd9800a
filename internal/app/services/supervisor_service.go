package services

import (
	"context"
	"errors"

	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/app/repositories"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

// SupervisorService defines the interface for the supervisor-facing views and
// the status adjudication operation
type SupervisorService interface {
	GetStudentRoster(ctx context.Context, supervisorID int64) ([]models.StudentRosterRow, error)
	GetPendingRequests(ctx context.Context, supervisorID int64) ([]models.SupervisorQueueRow, error)
	GetStudentRequests(ctx context.Context, supervisorID, studentID int64) ([]models.PreferenceRow, error)
	UpdatePreferenceStatus(ctx context.Context, requestID, courseID int64, status string) ([]models.PreferenceRow, error)
}

// supervisorServiceImpl implements the SupervisorService interface
type supervisorServiceImpl struct {
	userRepo    userStore
	requestRepo requestStore
}

// NewSupervisorService creates a new supervisor service instance
func NewSupervisorService(userRepo userStore, requestRepo requestStore) SupervisorService {
	return &supervisorServiceImpl{
		userRepo:    userRepo,
		requestRepo: requestRepo,
	}
}

// GetStudentRoster lists the supervisor's students with their latest
// submission timestamp
func (s *supervisorServiceImpl) GetStudentRoster(ctx context.Context, supervisorID int64) ([]models.StudentRosterRow, error) {
	return s.userRepo.GetStudentRoster(ctx, supervisorID)
}

// GetPendingRequests returns the supervisor's pending adjudication queue
func (s *supervisorServiceImpl) GetPendingRequests(ctx context.Context, supervisorID int64) ([]models.SupervisorQueueRow, error) {
	return s.requestRepo.GetPendingQueue(ctx, supervisorID)
}

// GetStudentRequests returns one supervised student's request rows
func (s *supervisorServiceImpl) GetStudentRequests(ctx context.Context, supervisorID, studentID int64) ([]models.PreferenceRow, error) {
	return s.requestRepo.GetSupervisedStudentRows(ctx, supervisorID, studentID)
}

// UpdatePreferenceStatus validates the status value against the closed enum
// before touching storage, then moves the matching preference. Transitions
// are unrestricted: approved may go back to pending; only deletion is locked
// by approval.
func (s *supervisorServiceImpl) UpdatePreferenceStatus(ctx context.Context, requestID, courseID int64, status string) ([]models.PreferenceRow, error) {
	next := models.PreferenceStatus(status)
	if !next.IsValid() {
		return nil, apperrors.NewValidationError("status must be one of pending, need_feedback, approved")
	}

	if err := s.requestRepo.UpdatePreferenceStatus(ctx, requestID, courseID, next); err != nil {
		if errors.Is(err, repositories.ErrPreferenceNotFound) {
			return nil, apperrors.NewNotFoundError("Course not found in request")
		}
		return nil, err
	}

	return s.requestRepo.GetRequestRows(ctx, requestID)
}
