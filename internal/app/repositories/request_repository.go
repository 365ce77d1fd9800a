package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/oguzk/coursereg/internal/app/models"
	"github.com/oguzk/coursereg/internal/db"
	"github.com/oguzk/coursereg/internal/pkg/helpers"
	"github.com/oguzk/coursereg/internal/pkg/logger"
)

// Request error types
var (
	// ErrPreferenceNotFound is returned when no preference matches the
	// (request, course) scope.
	ErrPreferenceNotFound = ErrNotFound
)

// preferenceRowColumns is the shared projection for the flat row views.
var preferenceRowColumns = []string{
	"r.id AS request_id",
	"r.submitted_at",
	"c.id AS course_id",
	"c.course_number",
	"c.name AS course_name",
	"rp.student_comment",
	"rp.status",
}

// RequestRepository handles request and preference database operations.
// It holds the PostgresDB wrapper rather than the bare pool because the
// replace operation needs the transaction helper.
type RequestRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewRequestRepository creates a new RequestRepository
func NewRequestRepository(database *db.PostgresDB) *RequestRepository {
	return &RequestRepository{
		db: database,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ReplacePreferences atomically replaces a student's request: any existing
// request is deleted (its preferences go with it via ON DELETE CASCADE), a
// fresh request row is inserted with a server-assigned timestamp, and the
// chosen courses are inserted with status defaulting to 'pending'. Returns
// the new request id. On any failure nothing is written.
func (r *RequestRepository) ReplacePreferences(ctx context.Context, studentID int64, choices []models.PreferenceChoice) (int64, error) {
	var requestID int64

	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM requests WHERE student_id = $1`, studentID); err != nil {
			return fmt.Errorf("error deleting existing request: %w", err)
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO requests (student_id) VALUES ($1) RETURNING id`,
			studentID,
		).Scan(&requestID)
		if err != nil {
			return fmt.Errorf("error inserting request: %w", err)
		}

		for _, choice := range choices {
			_, err := tx.Exec(ctx,
				`INSERT INTO request_preferences (request_id, course_id, student_comment) VALUES ($1, $2, $3)`,
				requestID, choice.CourseID, helpers.GetNullString(choice.Comment),
			)
			if err != nil {
				return fmt.Errorf("error inserting preference for course %d: %w", choice.CourseID, err)
			}
		}

		return nil
	})

	if err != nil {
		logger.Error().Err(err).Int64("studentID", studentID).Msg("Replace preferences transaction failed")
		return 0, err
	}

	return requestID, nil
}

// GetRequestRows retrieves the flat rows of one request, ordered by course number
func (r *RequestRepository) GetRequestRows(ctx context.Context, requestID int64) ([]models.PreferenceRow, error) {
	builder := r.sb.Select(preferenceRowColumns...).
		From("requests r").
		Join("request_preferences rp ON rp.request_id = r.id").
		Join("courses c ON c.id = rp.course_id").
		Where(squirrel.Eq{"r.id": requestID}).
		OrderBy("c.course_number")

	return r.queryPreferenceRows(ctx, builder)
}

// GetRequestRowsForStudent retrieves the flat rows of one request scoped to
// its owner, ordered by course number
func (r *RequestRepository) GetRequestRowsForStudent(ctx context.Context, requestID, studentID int64) ([]models.PreferenceRow, error) {
	builder := r.sb.Select(preferenceRowColumns...).
		From("requests r").
		Join("request_preferences rp ON rp.request_id = r.id").
		Join("courses c ON c.id = rp.course_id").
		Where(squirrel.Eq{"r.id": requestID, "r.student_id": studentID}).
		OrderBy("c.course_number")

	return r.queryPreferenceRows(ctx, builder)
}

// GetStudentRequestRows retrieves every request row of a student, most recent
// request first, courses ordered within it
func (r *RequestRepository) GetStudentRequestRows(ctx context.Context, studentID int64) ([]models.PreferenceRow, error) {
	builder := r.sb.Select(preferenceRowColumns...).
		From("requests r").
		Join("request_preferences rp ON rp.request_id = r.id").
		Join("courses c ON c.id = rp.course_id").
		Where(squirrel.Eq{"r.student_id": studentID}).
		OrderBy("r.submitted_at DESC", "c.course_number")

	return r.queryPreferenceRows(ctx, builder)
}

// FindPreference looks up a single preference scoped by request, course and
// owning student. The student scope prevents deleting another student's row.
func (r *RequestRepository) FindPreference(ctx context.Context, requestID, courseID, studentID int64) (*models.RequestPreference, error) {
	sql, args, err := r.sb.Select("rp.id", "rp.request_id", "rp.course_id", "rp.student_comment", "rp.status").
		From("requests r").
		Join("request_preferences rp ON rp.request_id = r.id").
		Where(squirrel.Eq{"r.id": requestID, "r.student_id": studentID, "rp.course_id": courseID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building find preference SQL")
		return nil, fmt.Errorf("failed to build find preference query: %w", err)
	}

	pref := &models.RequestPreference{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(&pref.ID, &pref.RequestID, &pref.CourseID, &pref.StudentComment, &pref.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPreferenceNotFound
		}
		logger.Error().Err(err).Int64("requestID", requestID).Int64("courseID", courseID).Msg("Error scanning preference row")
		return nil, fmt.Errorf("error finding preference: %w", err)
	}

	return pref, nil
}

// DeletePreference removes a single preference row; sibling rows are untouched
func (r *RequestRepository) DeletePreference(ctx context.Context, preferenceID int64) error {
	sql, args, err := r.sb.Delete("request_preferences").
		Where(squirrel.Eq{"id": preferenceID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete preference SQL")
		return fmt.Errorf("failed to build delete preference query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("preferenceID", preferenceID).Msg("Error executing delete preference query")
		return fmt.Errorf("error deleting preference: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrPreferenceNotFound
	}

	return nil
}

// UpdatePreferenceStatus sets the status of the preference matching the
// (request, course) pair
func (r *RequestRepository) UpdatePreferenceStatus(ctx context.Context, requestID, courseID int64, status models.PreferenceStatus) error {
	sql, args, err := r.sb.Update("request_preferences").
		Set("status", status).
		Where(squirrel.Eq{"request_id": requestID, "course_id": courseID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update status SQL")
		return fmt.Errorf("failed to build update status query: %w", err)
	}

	cmdTag, err := r.db.Pool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("requestID", requestID).Int64("courseID", courseID).Msg("Error executing update status query")
		return fmt.Errorf("error updating preference status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrPreferenceNotFound
	}

	return nil
}

// GetPendingQueue retrieves every pending preference of students under the
// supervisor, joined with student and course details
func (r *RequestRepository) GetPendingQueue(ctx context.Context, supervisorID int64) ([]models.SupervisorQueueRow, error) {
	sql, args, err := r.sb.Select(
		"r.id AS request_id",
		"r.submitted_at",
		"s.id AS student_id",
		"s.full_name AS student_name",
		"s.email AS student_email",
		"c.id AS course_id",
		"c.course_number",
		"c.name AS course_name",
		"rp.student_comment",
		"rp.status",
	).
		From("students s").
		Join("requests r ON r.student_id = s.id").
		Join("request_preferences rp ON rp.request_id = r.id").
		Join("courses c ON c.id = rp.course_id").
		Where(squirrel.Eq{"s.supervisor_id": supervisorID, "rp.status": models.StatusPending}).
		OrderBy("r.submitted_at DESC", "s.full_name", "c.course_number").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building pending queue SQL")
		return nil, fmt.Errorf("failed to build pending queue query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("supervisorID", supervisorID).Msg("Error executing pending queue query")
		return nil, fmt.Errorf("error querying pending queue: %w", err)
	}
	defer rows.Close()

	queue := []models.SupervisorQueueRow{}
	for rows.Next() {
		row := models.SupervisorQueueRow{}
		err := rows.Scan(
			&row.RequestID, &row.SubmittedAt,
			&row.StudentID, &row.StudentName, &row.StudentEmail,
			&row.CourseID, &row.CourseNumber, &row.CourseName,
			&row.StudentComment, &row.Status,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning pending queue row")
			return nil, fmt.Errorf("error scanning pending queue row: %w", err)
		}
		queue = append(queue, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating pending queue rows")
		return nil, fmt.Errorf("error iterating pending queue rows: %w", err)
	}

	return queue, nil
}

// GetSupervisedStudentRows retrieves every request row of one student, scoped
// to the supervising relationship
func (r *RequestRepository) GetSupervisedStudentRows(ctx context.Context, supervisorID, studentID int64) ([]models.PreferenceRow, error) {
	builder := r.sb.Select(preferenceRowColumns...).
		From("students s").
		Join("requests r ON r.student_id = s.id").
		Join("request_preferences rp ON rp.request_id = r.id").
		Join("courses c ON c.id = rp.course_id").
		Where(squirrel.Eq{"s.supervisor_id": supervisorID, "s.id": studentID}).
		OrderBy("r.submitted_at DESC", "c.course_number")

	return r.queryPreferenceRows(ctx, builder)
}

// queryPreferenceRows executes a flat row select and scans the results
func (r *RequestRepository) queryPreferenceRows(ctx context.Context, builder squirrel.SelectBuilder) ([]models.PreferenceRow, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building preference rows SQL")
		return nil, fmt.Errorf("failed to build preference rows query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing preference rows query")
		return nil, fmt.Errorf("error querying preference rows: %w", err)
	}
	defer rows.Close()

	result := []models.PreferenceRow{}
	for rows.Next() {
		row := models.PreferenceRow{}
		err := rows.Scan(
			&row.RequestID, &row.SubmittedAt,
			&row.CourseID, &row.CourseNumber, &row.CourseName,
			&row.StudentComment, &row.Status,
		)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning preference row")
			return nil, fmt.Errorf("error scanning preference row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating preference rows")
		return nil, fmt.Errorf("error iterating preference rows: %w", err)
	}

	return result, nil
}
