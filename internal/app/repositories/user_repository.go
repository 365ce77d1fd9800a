package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/pkg/dberrors"
	"github.com/oguzk/coursereg/internal/pkg/logger"
)

// User error types
var (
	// ErrUserNotFound is returned when no account matches the lookup.
	ErrUserNotFound = ErrNotFound
	// ErrEmailExists is returned when the email is already taken by a
	// student or a supervisor.
	ErrEmailExists = errors.New("email already exists")
)

// UserRepository handles student and supervisor account operations.
// Both account kinds live in their own table; email uniqueness spans the two,
// which is why the existence check is a UNION rather than a constraint.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// EmailExists reports whether the email is registered in either table
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT email FROM students WHERE email = $1
		UNION
		SELECT email FROM supervisors WHERE email = $1
	)`

	var exists bool
	err := r.db.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		logger.Error().Err(err).Msg("Error checking email existence")
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// CreateStudent inserts a student row and returns it. The supervisor
// assignment is decided by the caller (default assignment policy).
func (r *UserRepository) CreateStudent(ctx context.Context, student *models.Student) (*models.Student, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("email", "full_name", "password", "supervisor_id").
		Values(student.Email, student.FullName, student.Password, student.SupervisorID).
		Suffix("RETURNING id, email, full_name, supervisor_id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return nil, fmt.Errorf("failed to build create student query: %w", err)
	}

	created := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Email, &created.FullName, &created.SupervisorID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return created, nil
}

// CreateSupervisor inserts a supervisor row and returns it
func (r *UserRepository) CreateSupervisor(ctx context.Context, supervisor *models.Supervisor) (*models.Supervisor, error) {
	sql, args, err := r.sb.Insert("supervisors").
		Columns("email", "full_name", "password").
		Values(supervisor.Email, supervisor.FullName, supervisor.Password).
		Suffix("RETURNING id, email, full_name").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create supervisor SQL")
		return nil, fmt.Errorf("failed to build create supervisor query: %w", err)
	}

	created := &models.Supervisor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&created.ID, &created.Email, &created.FullName)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		logger.Error().Err(err).Msg("Error executing create supervisor query")
		return nil, fmt.Errorf("error creating supervisor: %w", err)
	}

	return created, nil
}

// GetStudentByEmail retrieves a student account, password included, for login
func (r *UserRepository) GetStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "email", "full_name", "password", "supervisor_id").
		From("students").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by email SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.Email, &student.FullName, &student.Password, &student.SupervisorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by email: %w", err)
	}

	return student, nil
}

// GetSupervisorByEmail retrieves a supervisor account, password included, for login
func (r *UserRepository) GetSupervisorByEmail(ctx context.Context, email string) (*models.Supervisor, error) {
	sql, args, err := r.sb.Select("id", "email", "full_name", "password").
		From("supervisors").
		Where(squirrel.Eq{"email": email}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get supervisor by email SQL")
		return nil, fmt.Errorf("failed to build get supervisor query: %w", err)
	}

	supervisor := &models.Supervisor{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&supervisor.ID, &supervisor.Email, &supervisor.FullName, &supervisor.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning supervisor row")
		return nil, fmt.Errorf("error getting supervisor by email: %w", err)
	}

	return supervisor, nil
}

// GetStudentRoster lists a supervisor's students alphabetically, each with the
// timestamp of their most recent submission (null when none exists).
func (r *UserRepository) GetStudentRoster(ctx context.Context, supervisorID int64) ([]models.StudentRosterRow, error) {
	sql, args, err := r.sb.Select(
		"s.id", "s.full_name", "s.email",
		"(SELECT MAX(r2.submitted_at) FROM requests r2 WHERE r2.student_id = s.id) AS last_submitted_at",
	).
		From("students s").
		Where(squirrel.Eq{"s.supervisor_id": supervisorID}).
		OrderBy("s.full_name").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building student roster SQL")
		return nil, fmt.Errorf("failed to build student roster query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("supervisorID", supervisorID).Msg("Error executing student roster query")
		return nil, fmt.Errorf("error querying student roster: %w", err)
	}
	defer rows.Close()

	roster := []models.StudentRosterRow{}
	for rows.Next() {
		row := models.StudentRosterRow{}
		if err := rows.Scan(&row.ID, &row.FullName, &row.Email, &row.LastSubmittedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning student roster row")
			return nil, fmt.Errorf("error scanning student roster row: %w", err)
		}
		roster = append(roster, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating student roster rows")
		return nil, fmt.Errorf("error iterating student roster rows: %w", err)
	}

	return roster, nil
}
