package services

import (
	"context"
	"errors"

	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/app/repositories"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

// Account roles as reported by login and signup
const (
	RoleStudent    = "student"
	RoleSupervisor = "supervisor"
)

// AuthService defines the interface for signup and login operations
type AuthService interface {
	RegisterStudent(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	RegisterSupervisor(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

// authServiceImpl implements the AuthService interface
type authServiceImpl struct {
	userRepo userStore
	// defaultSupervisorID is the default assignment policy: every new
	// student starts under this supervisor.
	defaultSupervisorID int64
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo userStore, defaultSupervisorID int64) AuthService {
	return &authServiceImpl{
		userRepo:            userRepo,
		defaultSupervisorID: defaultSupervisorID,
	}
}

// RegisterStudent creates a student account under the default supervisor
func (s *authServiceImpl) RegisterStudent(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	student := &models.Student{
		Email:        req.Email,
		FullName:     req.FullName,
		Password:     req.Password,
		SupervisorID: s.defaultSupervisorID,
	}

	created, err := s.userRepo.CreateStudent(ctx, student)
	if err != nil {
		// The UNION check above races with concurrent signups; the
		// per-table unique index is the backstop.
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	supervisorID := created.SupervisorID
	return &dto.UserResponse{
		ID:           created.ID,
		Email:        created.Email,
		FullName:     created.FullName,
		SupervisorID: &supervisorID,
		Role:         RoleStudent,
	}, nil
}

// RegisterSupervisor creates a supervisor account
func (s *authServiceImpl) RegisterSupervisor(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	supervisor := &models.Supervisor{
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	}

	created, err := s.userRepo.CreateSupervisor(ctx, supervisor)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	return &dto.UserResponse{
		ID:       created.ID,
		Email:    created.Email,
		FullName: created.FullName,
		Role:     RoleSupervisor,
	}, nil
}

// Login checks credentials against students first, then supervisors.
// Passwords are compared as plain text; the legacy system never hashed them
// and parity is required here.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	student, err := s.userRepo.GetStudentByEmail(ctx, req.Email)
	if err == nil {
		if student.Password != req.Password {
			return nil, apperrors.ErrInvalidCredentials
		}
		return &dto.LoginResponse{
			ID:       student.ID,
			Role:     RoleStudent,
			FullName: student.FullName,
			Email:    student.Email,
		}, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	supervisor, err := s.userRepo.GetSupervisorByEmail(ctx, req.Email)
	if err == nil {
		if supervisor.Password != req.Password {
			return nil, apperrors.ErrInvalidCredentials
		}
		return &dto.LoginResponse{
			ID:       supervisor.ID,
			Role:     RoleSupervisor,
			FullName: supervisor.FullName,
			Email:    supervisor.Email,
		}, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	return nil, apperrors.ErrInvalidCredentials
}
