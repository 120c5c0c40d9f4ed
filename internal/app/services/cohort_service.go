package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// CohortService defines the interface for cohort-related operations
type CohortService interface {
	CreateCohort(ctx context.Context, name string, facultyID int64) (*models.Cohort, error)
	GetCohortByID(ctx context.Context, id int64) (*models.Cohort, error)
	GetAllCohorts(ctx context.Context) ([]*models.Cohort, error)
	UpdateCohort(ctx context.Context, id int64, params UpdateCohortParams) (*models.Cohort, error)
	DeleteCohort(ctx context.Context, id int64) error
}

// UpdateCohortParams carries the optional fields of a cohort patch. A nil
// pointer means the field was not supplied and its stored value is kept.
type UpdateCohortParams struct {
	Name      *string
	FacultyID *int64
}

// cohortServiceImpl implements the CohortService interface
type cohortServiceImpl struct {
	cohortStore  CohortStore
	facultyStore FacultyStore
	studentStore StudentStore
	cardStore    LibraryCardStore
	resultStore  ResultStore
}

// NewCohortService creates a new cohort service instance
func NewCohortService(
	cohortStore CohortStore,
	facultyStore FacultyStore,
	studentStore StudentStore,
	cardStore LibraryCardStore,
	resultStore ResultStore,
) CohortService {
	return &cohortServiceImpl{
		cohortStore:  cohortStore,
		facultyStore: facultyStore,
		studentStore: studentStore,
		cardStore:    cardStore,
		resultStore:  resultStore,
	}
}

func validateCohortName(name string) error {
	ok := validation.NewStringValidation(name).
		WithMinLength(validation.CohortNameMinLength).
		WithMaxLength(validation.CohortNameMaxLength).
		Validate()
	if !ok {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "name",
			Message: "Name must be between 2 and 50 characters",
		})
	}
	return nil
}

// CreateCohort creates a new cohort under a faculty. The duplicate-name check
// deliberately runs before the faculty lookup so a taken name is reported
// even when the faculty id is also invalid.
func (s *cohortServiceImpl) CreateCohort(ctx context.Context, name string, facultyID int64) (*models.Cohort, error) {
	if err := validateCohortName(name); err != nil {
		return nil, err
	}

	taken, err := s.cohortStore.NameExists(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Cohort with name %s already exist", name)
	}

	exists, err := s.facultyStore.ExistsByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("faculty with id %d was not found", facultyID)
	}

	cohort := &models.Cohort{Name: name, FacultyID: facultyID}
	if err := s.cohortStore.Create(ctx, cohort); err != nil {
		return nil, err
	}
	return cohort, nil
}

// GetCohortByID retrieves a cohort by ID
func (s *cohortServiceImpl) GetCohortByID(ctx context.Context, id int64) (*models.Cohort, error) {
	return s.cohortStore.GetByID(ctx, id)
}

// GetAllCohorts retrieves all cohorts
func (s *cohortServiceImpl) GetAllCohorts(ctx context.Context) ([]*models.Cohort, error) {
	return s.cohortStore.GetAll(ctx)
}

// UpdateCohort applies a sparse patch: unsupplied fields keep their stored
// value, and a supplied value equal to the current one skips its re-check.
func (s *cohortServiceImpl) UpdateCohort(ctx context.Context, id int64, params UpdateCohortParams) (*models.Cohort, error) {
	cohort, err := s.cohortStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if params.Name != nil && *params.Name != cohort.Name {
		if err := validateCohortName(*params.Name); err != nil {
			return nil, err
		}
		taken, err := s.cohortStore.NameExists(ctx, *params.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflict("Cohort with name %s already exist", *params.Name)
		}
		cohort.Name = *params.Name
		changed = true
	}

	if params.FacultyID != nil && *params.FacultyID != cohort.FacultyID {
		exists, err := s.facultyStore.ExistsByID(ctx, *params.FacultyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFound("faculty with id %d was not found", *params.FacultyID)
		}
		cohort.FacultyID = *params.FacultyID
		changed = true
	}

	if changed {
		if err := s.cohortStore.Update(ctx, cohort); err != nil {
			return nil, err
		}
	}

	return cohort, nil
}

// DeleteCohort removes a cohort and all of its students, cascading through
// each student's results and library card first so no dangling dependent is
// ever observable.
func (s *cohortServiceImpl) DeleteCohort(ctx context.Context, id int64) error {
	exists, err := s.cohortStore.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("cohort with id %d was not found", id)
	}

	students, err := s.studentStore.ListByCohortID(ctx, id)
	if err != nil {
		return err
	}

	for _, student := range students {
		if err := s.resultStore.DeleteByStudentID(ctx, student.ID); err != nil {
			return err
		}
		if err := s.cardStore.DeleteByStudentID(ctx, student.ID); err != nil {
			return err
		}
	}

	if _, err := s.studentStore.DeleteByCohortID(ctx, id); err != nil {
		return err
	}

	return s.cohortStore.Delete(ctx, id)
}
