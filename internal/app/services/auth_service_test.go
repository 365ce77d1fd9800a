package services

import (
	"context"
	"errors"
	"testing"

	"github.com/oguzk/coursereg/internal/app/models/dto"
	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

func TestRegisterStudent_AssignsDefaultSupervisor(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, 7)

	resp, err := svc.RegisterStudent(context.Background(), &dto.SignupRequest{
		Email:    "ada@example.edu",
		FullName: "Ada Lovelace",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("RegisterStudent() error = %v", err)
	}
	if resp.Role != RoleStudent {
		t.Errorf("expected role %q, got %q", RoleStudent, resp.Role)
	}
	if resp.SupervisorID == nil || *resp.SupervisorID != 7 {
		t.Errorf("expected supervisor id 7, got %v", resp.SupervisorID)
	}
	if resp.ID == 0 {
		t.Error("expected a non-zero student id")
	}
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, 1)

	req := &dto.SignupRequest{Email: "ada@example.edu", FullName: "Ada", Password: "pw"}
	if _, err := svc.RegisterStudent(context.Background(), req); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := svc.RegisterStudent(context.Background(), req)
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestRegisterStudent_EmailTakenBySupervisor(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, 1)

	// Email uniqueness spans both account tables
	if _, err := svc.RegisterSupervisor(context.Background(), &dto.SignupRequest{
		Email: "shared@example.edu", FullName: "Supervisor", Password: "pw",
	}); err != nil {
		t.Fatalf("supervisor signup failed: %v", err)
	}

	_, err := svc.RegisterStudent(context.Background(), &dto.SignupRequest{
		Email: "shared@example.edu", FullName: "Student", Password: "pw",
	})
	if !errors.Is(err, apperrors.ErrEmailAlreadyExists) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}
}

func TestRegisterSupervisor(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, 1)

	resp, err := svc.RegisterSupervisor(context.Background(), &dto.SignupRequest{
		Email:    "grace@example.edu",
		FullName: "Grace Hopper",
		Password: "secret",
	})
	if err != nil {
		t.Fatalf("RegisterSupervisor() error = %v", err)
	}
	if resp.Role != RoleSupervisor {
		t.Errorf("expected role %q, got %q", RoleSupervisor, resp.Role)
	}
	if resp.SupervisorID != nil {
		t.Errorf("supervisor accounts carry no supervisor id, got %v", *resp.SupervisorID)
	}
}

func TestLogin(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, 1)

	if _, err := svc.RegisterStudent(context.Background(), &dto.SignupRequest{
		Email: "ada@example.edu", FullName: "Ada Lovelace", Password: "student-pw",
	}); err != nil {
		t.Fatalf("student signup failed: %v", err)
	}
	if _, err := svc.RegisterSupervisor(context.Background(), &dto.SignupRequest{
		Email: "grace@example.edu", FullName: "Grace Hopper", Password: "supervisor-pw",
	}); err != nil {
		t.Fatalf("supervisor signup failed: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantRole string
		wantErr  bool
	}{
		{"student ok", "ada@example.edu", "student-pw", RoleStudent, false},
		{"supervisor ok", "grace@example.edu", "supervisor-pw", RoleSupervisor, false},
		{"wrong student password", "ada@example.edu", "nope", "", true},
		{"wrong supervisor password", "grace@example.edu", "nope", "", true},
		{"unknown email", "nobody@example.edu", "pw", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Login(context.Background(), &dto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})
			if tt.wantErr {
				if !errors.Is(err, apperrors.ErrInvalidCredentials) {
					t.Fatalf("expected invalid credentials, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if resp.Role != tt.wantRole {
				t.Errorf("expected role %q, got %q", tt.wantRole, resp.Role)
			}
			if resp.Email != tt.email {
				t.Errorf("expected email %q, got %q", tt.email, resp.Email)
			}
		})
	}
}
