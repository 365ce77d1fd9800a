package services

import (
	"context"

	"github.com/oguzk/coursereg/internal/app/models"
)

// The store interfaces below describe what each service needs from the data
// layer. The concrete pgx repositories satisfy them; tests substitute
// in-memory fakes.

type userStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error)
	CreateSupervisor(ctx context.Context, supervisor *models.Supervisor) (*models.Supervisor, error)
	GetStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	GetSupervisorByEmail(ctx context.Context, email string) (*models.Supervisor, error)
	GetStudentRoster(ctx context.Context, supervisorID int64) ([]models.StudentRosterRow, error)
}

type courseStore interface {
	GetAllCourses(ctx context.Context) ([]models.Course, error)
}

type requestStore interface {
	ReplacePreferences(ctx context.Context, studentID int64, choices []models.PreferenceChoice) (int64, error)
	GetRequestRows(ctx context.Context, requestID int64) ([]models.PreferenceRow, error)
	GetRequestRowsForStudent(ctx context.Context, requestID, studentID int64) ([]models.PreferenceRow, error)
	GetStudentRequestRows(ctx context.Context, studentID int64) ([]models.PreferenceRow, error)
	FindPreference(ctx context.Context, requestID, courseID, studentID int64) (*models.RequestPreference, error)
	DeletePreference(ctx context.Context, preferenceID int64) error
	UpdatePreferenceStatus(ctx context.Context, requestID, courseID int64, status models.PreferenceStatus) error
	GetPendingQueue(ctx context.Context, supervisorID int64) ([]models.SupervisorQueueRow, error)
	GetSupervisedStudentRows(ctx context.Context, supervisorID, studentID int64) ([]models.PreferenceRow, error)
}
