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

// CohortRepository handles cohort database operations
type CohortRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCohortRepository creates a new CohortRepository
func NewCohortRepository(db *pgxpool.Pool) *CohortRepository {
	return &CohortRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Create inserts a new cohort and fills in its generated id.
func (r *CohortRepository) Create(ctx context.Context, cohort *models.Cohort) error {
	sql, args, err := r.sb.Insert("cohort").
		Columns("name", "faculty_id").
		Values(cohort.Name, cohort.FacultyID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create cohort query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cohort.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		logger.Error().Err(err).Msg("Error executing create cohort query")
		return fmt.Errorf("error creating cohort: %w", err)
	}

	return nil
}

// GetByID retrieves a cohort by id.
func (r *CohortRepository) GetByID(ctx context.Context, id int64) (*models.Cohort, error) {
	sql, args, err := r.sb.Select("id", "name", "faculty_id").
		From("cohort").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get cohort query: %w", err)
	}

	cohort := &models.Cohort{}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&cohort.ID, &cohort.Name, &cohort.FacultyID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("cohort with id %d was not found", id)
		}
		logger.Error().Err(err).Int64("cohortID", id).Msg("Error scanning cohort row")
		return nil, fmt.Errorf("error getting cohort by id: %w", err)
	}

	return cohort, nil
}

// GetAll retrieves all cohorts.
func (r *CohortRepository) GetAll(ctx context.Context) ([]*models.Cohort, error) {
	sql, args, err := r.sb.Select("id", "name", "faculty_id").
		From("cohort").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list cohorts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing cohorts: %w", err)
	}
	defer rows.Close()

	var cohorts []*models.Cohort
	for rows.Next() {
		cohort := &models.Cohort{}
		if err := rows.Scan(&cohort.ID, &cohort.Name, &cohort.FacultyID); err != nil {
			return nil, err
		}
		cohorts = append(cohorts, cohort)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cohorts, nil
}

// ExistsByID checks whether a cohort row exists.
func (r *CohortRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cohort WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking cohort existence: %w", err)
	}
	return exists, nil
}

// NameExists checks whether another cohort already uses the name.
func (r *CohortRepository) NameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM cohort WHERE name = $1 AND id != $2)`,
		name, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking cohort name: %w", err)
	}
	return exists, nil
}

// Update persists changed cohort fields.
func (r *CohortRepository) Update(ctx context.Context, cohort *models.Cohort) error {
	sql, args, err := r.sb.Update("cohort").
		Set("name", cohort.Name).
		Set("faculty_id", cohort.FacultyID).
		Where(squirrel.Eq{"id": cohort.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update cohort query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflict("Database constraint violation: %s", dberrors.RootCause(err))
		}
		return fmt.Errorf("error updating cohort: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("cohort with id %d was not found", cohort.ID)
	}

	return nil
}

// Delete removes a cohort row. Dependent students must already be gone; the
// service deletes them first.
func (r *CohortRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cohort WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting cohort: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFound("cohort with id %d was not found", id)
	}

	return nil
}
