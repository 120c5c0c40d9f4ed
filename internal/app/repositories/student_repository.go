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

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new student and fills in its generated id.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("student").
		Columns("name", "email", "gender", "date_of_birth", "cohort_id").
		Values(student.Name, student.Email, string(student.Gender), student.DateOfBirth, student.CohortID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		logger.Error().Err(err).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by id.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "email", "gender", "date_of_birth", "cohort_id").
		From("student").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student := &models.Student{}
	var gender string
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.ID, &student.Name, &student.Email, &gender, &student.DateOfBirth, &student.CohortID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("student with id %d was not found", id)
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}
	student.Gender = models.Gender(gender)

	return student, nil
}

// GetAll retrieves all students.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Sqlizer(nil))
}

// ListByCohortID retrieves all students belonging to a cohort.
func (r *StudentRepository) ListByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error) {
	return r.list(ctx, squirrel.Eq{"cohort_id": cohortID})
}

func (r *StudentRepository) list(ctx context.Context, where squirrel.Sqlizer) ([]*models.Student, error) {
	builder := r.sb.Select("id", "name", "email", "gender", "date_of_birth", "cohort_id").
		From("student").
		OrderBy("id")
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var gender string
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &gender, &student.DateOfBirth, &student.CohortID); err != nil {
			return nil, err
		}
		student.Gender = models.Gender(gender)
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// ExistsByID checks whether a student row exists.
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// EmailExists checks whether another student already uses the email.
func (r *StudentRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM student WHERE email = $1 AND id != $2)`,
		email, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student email: %w", err)
	}
	return exists, nil
}

// Update persists changed student fields.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("student").
		Set("name", student.Name).
		Set("email", student.Email).
		Set("gender", string(student.Gender)).
		Set("date_of_birth", student.DateOfBirth).
		Set("cohort_id", student.CohortID).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("student with id %d was not found", student.ID)
	}

	return nil
}

// Delete removes a student row. Dependent results and the library card must
// already be gone; the service deletes them first.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("student with id %d was not found", id)
	}

	return nil
}

// DeleteByCohortID removes every student of a cohort, returning the number of
// rows removed.
func (r *StudentRepository) DeleteByCohortID(ctx context.Context, cohortID int64) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM student WHERE cohort_id = $1`, cohortID)
	if err != nil {
		return 0, fmt.Errorf("error deleting students by cohort: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
