package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/dberrors"
	"github.com/caprinak/StudentManagement/internal/pkg/logger"
)

// ResultRepository handles result database operations. Results are addressed
// by the composite (student_id, course_id) primary key; there is no surrogate
// id column.
type ResultRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new result. A duplicate (student, course) pair that
// slipped past the service pre-check violates the primary key and is
// remapped to Conflict.
func (r *ResultRepository) Create(ctx context.Context, result *models.Result) error {
	sql, args, err := r.sb.Insert("result").
		Columns("student_id", "course_id", "grade").
		Values(result.StudentID, result.CourseID, result.Grade).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create result query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		logger.Error().Err(err).Msg("Error executing create result query")
		return fmt.Errorf("error creating result: %w", err)
	}

	return nil
}

// GetByKey retrieves the result for a (student, course) pair.
func (r *ResultRepository) GetByKey(ctx context.Context, key models.ResultID) (*models.Result, error) {
	sql, args, err := r.sb.Select("student_id", "course_id", "grade").
		From("result").
		Where(squirrel.Eq{"student_id": key.StudentID, "course_id": key.CourseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get result query: %w", err)
	}

	result := &models.Result{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&result.StudentID, &result.CourseID, &result.Grade); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("result for student %d and course %d was not found", key.StudentID, key.CourseID)
		}
		return nil, fmt.Errorf("error getting result by key: %w", err)
	}

	return result, nil
}

// GetAll retrieves all results.
func (r *ResultRepository) GetAll(ctx context.Context) ([]*models.Result, error) {
	return r.list(ctx, nil)
}

// ListByMinGrade retrieves all results with a grade of at least minGrade.
func (r *ResultRepository) ListByMinGrade(ctx context.Context, minGrade int) ([]*models.Result, error) {
	return r.list(ctx, squirrel.GtOrEq{"grade": minGrade})
}

func (r *ResultRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Result, error) {
	builder := r.sb.Select("student_id", "course_id", "grade").
		From("result").
		OrderBy("student_id", "course_id")
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list results query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}
	defer rows.Close()

	var results []*models.Result
	for rows.Next() {
		result := &models.Result{}
		if err := rows.Scan(&result.StudentID, &result.CourseID, &result.Grade); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Exists checks whether a result exists for the (student, course) pair.
func (r *ResultRepository) Exists(ctx context.Context, key models.ResultID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM result WHERE student_id = $1 AND course_id = $2)`,
		key.StudentID, key.CourseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking result existence: %w", err)
	}
	return exists, nil
}

// Update persists a changed grade.
func (r *ResultRepository) Update(ctx context.Context, result *models.Result) error {
	sql, args, err := r.sb.Update("result").
		Set("grade", result.Grade).
		Where(squirrel.Eq{"student_id": result.StudentID, "course_id": result.CourseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update result query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("result for student %d and course %d was not found", result.StudentID, result.CourseID)
	}

	return nil
}

// Delete removes the result for a (student, course) pair.
func (r *ResultRepository) Delete(ctx context.Context, key models.ResultID) error {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM result WHERE student_id = $1 AND course_id = $2`,
		key.StudentID, key.CourseID)
	if err != nil {
		return fmt.Errorf("error deleting result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("result for student %d and course %d was not found", key.StudentID, key.CourseID)
	}

	return nil
}

// DeleteByStudentID removes every result of a student.
func (r *ResultRepository) DeleteByStudentID(ctx context.Context, studentID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM result WHERE student_id = $1`, studentID); err != nil {
		return fmt.Errorf("error deleting results by student: %w", err)
	}
	return nil
}

// DeleteByCourseID removes every result of a course.
func (r *ResultRepository) DeleteByCourseID(ctx context.Context, courseID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM result WHERE course_id = $1`, courseID); err != nil {
		return fmt.Errorf("error deleting results by course: %w", err)
	}
	return nil
}
