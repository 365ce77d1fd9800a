package auth

import (
	"net/http"
	"strconv"

	"github.com/oguzk/coursereg/internal/pkg/apperrors"
)

// RoleSupervisor is the role value required on supervisor routes
const RoleSupervisor = "supervisor"

// Identity is the caller identity attached to authorized requests
type Identity struct {
	UserID int64
	Role   string
}

// Authenticator decides whether a request may reach supervisor routes.
// Implementations return the caller's identity or a permission error.
// The interface exists so the header-based default below can later be swapped
// for a real signed-session or token implementation without touching routes.
type Authenticator interface {
	Authorize(r *http.Request) (Identity, error)
}

// HeaderAuthenticator reads the caller's identity from the x-role and
// x-user-id request headers. The role is self-asserted by the client: there
// is no signature or session behind it. This mirrors the trust boundary of
// the legacy frontend, which replays the login response as headers.
type HeaderAuthenticator struct{}

// NewHeaderAuthenticator creates the default header-based authenticator
func NewHeaderAuthenticator() *HeaderAuthenticator {
	return &HeaderAuthenticator{}
}

// Authorize admits the request only when the asserted role is supervisor
func (a *HeaderAuthenticator) Authorize(r *http.Request) (Identity, error) {
	role := r.Header.Get("x-role")
	if role != RoleSupervisor {
		return Identity{}, apperrors.NewForbiddenError("Admin access only")
	}

	// A malformed id yields zero; supervisor queries scoped by it simply
	// return nothing.
	userID, _ := strconv.ParseInt(r.Header.Get("x-user-id"), 10, 64)

	return Identity{UserID: userID, Role: role}, nil
}
