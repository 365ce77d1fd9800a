package repositories

import (
	"errors"

	"github.com/oguzk/coursereg/internal/db"
)

// ErrNotFound is the shared sentinel for missing rows. Repositories alias it
// for their own resources; services translate it into the API error taxonomy.
var ErrNotFound = errors.New("not found")

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository    *UserRepository
	CourseRepository  *CourseRepository
	RequestRepository *RequestRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:    NewUserRepository(database.Pool),
		CourseRepository:  NewCourseRepository(database.Pool),
		RequestRepository: NewRequestRepository(database),
	}
}
