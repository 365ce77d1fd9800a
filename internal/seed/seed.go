package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/oguzk/coursereg/internal/app/models"
	appRepos "github.com/oguzk/coursereg/internal/app/repositories"
)

// defaultCourses is the catalog installed on first boot. The API has no
// course management endpoints, so new deployments need a usable catalog.
var defaultCourses = []appModels.Course{
	{CourseNumber: "CENG301", Name: "Algorithms"},
	{CourseNumber: "CENG302", Name: "Operating Systems"},
	{CourseNumber: "CENG310", Name: "Database Systems"},
	{CourseNumber: "CENG315", Name: "Computer Networks"},
	{CourseNumber: "CENG330", Name: "Software Engineering"},
	{CourseNumber: "CENG340", Name: "Distributed Systems"},
	{CourseNumber: "CENG351", Name: "Machine Learning"},
	{CourseNumber: "CENG360", Name: "Compiler Design"},
}

// CreateDefaultData creates the default supervisor and the course catalog if
// they don't exist. Student signups are attached to the configured default
// supervisor, so that row must exist before the first signup arrives.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, defaultSupervisorID int64, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (supervisor/courses)...")
	var finalErr error

	// --- Default supervisor --- //
	var supervisorExists bool
	err := dbPool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM supervisors WHERE id = $1)`,
		defaultSupervisorID).Scan(&supervisorExists)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking default supervisor")
		finalErr = errors.Join(finalErr, err)
	} else if !supervisorExists {
		lgr.Info().Int64("supervisorID", defaultSupervisorID).Msg("Creating default supervisor...")

		supervisor := &appModels.Supervisor{
			Email:    "supervisor@coursereg.edu",
			FullName: "Default Supervisor",
			Password: "supervisor123",
		}
		created, err := userRepo.CreateSupervisor(ctx, supervisor)
		if err != nil && !errors.Is(err, appRepos.ErrEmailExists) {
			lgr.Error().Err(err).Msg("Error creating default supervisor")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			lgr.Info().Int64("supervisorID", created.ID).Msg("Default supervisor created")
			if created.ID != defaultSupervisorID {
				lgr.Warn().
					Int64("expected", defaultSupervisorID).
					Int64("actual", created.ID).
					Msg("Default supervisor id differs from configuration")
			}
		}
	}

	// --- Course catalog --- //
	var courseCount int
	err = dbPool.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&courseCount)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting courses")
		return errors.Join(finalErr, err)
	}

	if courseCount == 0 {
		lgr.Info().Msg("Seeding course catalog...")
		for _, course := range defaultCourses {
			_, err := dbPool.Exec(ctx,
				`INSERT INTO courses (course_number, name) VALUES ($1, $2)
				 ON CONFLICT (course_number) DO NOTHING`,
				course.CourseNumber, course.Name)
			if err != nil {
				lgr.Error().Err(err).Str("courseNumber", course.CourseNumber).Msg("Error seeding course")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
