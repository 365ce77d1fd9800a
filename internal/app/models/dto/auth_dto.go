package dto

// SignupRequest represents a student or supervisor registration request
type SignupRequest struct {
	Email    string `json:"email" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the created account row plus the derived role.
// Keys mirror the database columns, as the legacy API returned rows directly.
type UserResponse struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	SupervisorID *int64 `json:"supervisor_id,omitempty"`
	Role         string `json:"role"`
}

// SignupResponse wraps the created user
type SignupResponse struct {
	User UserResponse `json:"user"`
}

// LoginResponse represents a successful login. The frontend stores this
// object and replays id/role as headers on supervisor routes.
type LoginResponse struct {
	ID       int64  `json:"id"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}
