package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// FacultyService defines the interface for faculty-related operations
type FacultyService interface {
	CreateFaculty(ctx context.Context, name string) (*models.Faculty, error)
	GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
	UpdateFaculty(ctx context.Context, id int64, name string) (*models.Faculty, error)
	DeleteFaculty(ctx context.Context, id int64) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	facultyStore FacultyStore
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyStore FacultyStore) FacultyService {
	return &facultyServiceImpl{
		facultyStore: facultyStore,
	}
}

func validateFacultyName(name string) error {
	if !validation.NewStringValidation(name).Validate() {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "name",
			Message: "Name must not be blank",
		})
	}
	return nil
}

// CreateFaculty creates a new faculty after checking the name is not already
// taken.
func (s *facultyServiceImpl) CreateFaculty(ctx context.Context, name string) (*models.Faculty, error) {
	if err := validateFacultyName(name); err != nil {
		return nil, err
	}

	taken, err := s.facultyStore.NameExists(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Faculty with name %s already exist", name)
	}

	faculty := &models.Faculty{Name: name}
	if err := s.facultyStore.Create(ctx, faculty); err != nil {
		return nil, err
	}
	return faculty, nil
}

// GetFacultyByID retrieves a faculty by ID
func (s *facultyServiceImpl) GetFacultyByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyStore.GetByID(ctx, id)
}

// GetAllFaculties retrieves all faculties
func (s *facultyServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyStore.GetAll(ctx)
}

// UpdateFaculty renames a faculty. The uniqueness re-check is skipped when
// the supplied name equals the stored one.
func (s *facultyServiceImpl) UpdateFaculty(ctx context.Context, id int64, name string) (*models.Faculty, error) {
	faculty, err := s.facultyStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := validateFacultyName(name); err != nil {
		return nil, err
	}

	if name != faculty.Name {
		taken, err := s.facultyStore.NameExists(ctx, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflict("Faculty with name %s already exist", name)
		}
		faculty.Name = name
		if err := s.facultyStore.Update(ctx, faculty); err != nil {
			return nil, err
		}
	}

	return faculty, nil
}

// DeleteFaculty removes a faculty. No cascade is defined for faculties; a
// faculty that still owns cohorts or courses is rejected by the store's
// foreign key restriction.
func (s *facultyServiceImpl) DeleteFaculty(ctx context.Context, id int64) error {
	exists, err := s.facultyStore.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("faculty with id %d was not found", id)
	}

	return s.facultyStore.Delete(ctx, id)
}
