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

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new faculty and fills in its generated id. A unique
// violation that slipped past the service pre-check is remapped to Conflict.
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Insert("faculty").
		Columns("name").
		Values(faculty.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create faculty query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return fmt.Errorf("error creating faculty: %w", err)
	}

	return nil
}

// GetByID retrieves a faculty by id.
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("faculty").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get faculty query: %w", err)
	}

	faculty := &models.Faculty{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&faculty.ID, &faculty.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("faculty with id %d was not found", id)
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by id: %w", err)
	}

	return faculty, nil
}

// GetAll retrieves all faculties.
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	sql, args, err := r.sb.Select("id", "name").
		From("faculty").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing faculties: %w", err)
	}
	defer rows.Close()

	var faculties []*models.Faculty
	for rows.Next() {
		faculty := &models.Faculty{}
		if err := rows.Scan(&faculty.ID, &faculty.Name); err != nil {
			return nil, err
		}
		faculties = append(faculties, faculty)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return faculties, nil
}

// ExistsByID checks whether a faculty row exists.
func (r *FacultyRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM faculty WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking faculty existence: %w", err)
	}
	return exists, nil
}

// NameExists checks whether another faculty already uses the name. A non-zero
// excludeID suppresses the row's own match on the update path.
func (r *FacultyRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM faculty WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking faculty name: %w", err)
	}
	return exists, nil
}

// Update persists changed faculty fields.
func (r *FacultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	sql, args, err := r.sb.Update("faculty").
		Set("name", faculty.Name).
		Where(squirrel.Eq{"id": faculty.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		return fmt.Errorf("error updating faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("faculty with id %d was not found", faculty.ID)
	}

	return nil
}

// Delete removes a faculty row. No cascade is defined for faculties; the
// foreign keys restrict deletion while cohorts or courses still reference it,
// which surfaces as Conflict.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewConflict("faculty with id %d still has cohorts or courses", id)
		}
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("faculty with id %d was not found", id)
	}

	return nil
}
