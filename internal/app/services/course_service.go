package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// CourseService defines the interface for course-related operations
type CourseService interface {
	CreateCourse(ctx context.Context, name string, facultyID int64) (*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, params UpdateCourseParams) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// UpdateCourseParams carries the optional fields of a course patch.
type UpdateCourseParams struct {
	Name      *string
	FacultyID *int64
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseStore  CourseStore
	facultyStore FacultyStore
	resultStore  ResultStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseStore CourseStore, facultyStore FacultyStore, resultStore ResultStore) CourseService {
	return &courseServiceImpl{
		courseStore:  courseStore,
		facultyStore: facultyStore,
		resultStore:  resultStore,
	}
}

func validateCourseName(name string) error {
	ok := validation.NewStringValidation(name).
		WithMinLength(validation.CourseNameMinLength).
		WithMaxLength(validation.CourseNameMaxLength).
		Validate()
	if !ok {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "name",
			Message: "Name must be between 2 and 100 characters",
		})
	}
	return nil
}

// CreateCourse creates a new course under a faculty. The duplicate-name check
// runs before the faculty lookup, matching the create ordering used across
// all entities.
func (s *courseServiceImpl) CreateCourse(ctx context.Context, name string, facultyID int64) (*models.Course, error) {
	if err := validateCourseName(name); err != nil {
		return nil, err
	}

	taken, err := s.courseStore.NameExists(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Course with name %s already exist", name)
	}

	exists, err := s.facultyStore.ExistsByID(ctx, facultyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("faculty with id %d was not found", facultyID)
	}

	course := &models.Course{Name: name, FacultyID: facultyID}
	if err := s.courseStore.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseStore.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseStore.GetAll(ctx)
}

// UpdateCourse applies a sparse patch to a course.
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, params UpdateCourseParams) (*models.Course, error) {
	course, err := s.courseStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if params.Name != nil && *params.Name != course.Name {
		if err := validateCourseName(*params.Name); err != nil {
			return nil, err
		}
		taken, err := s.courseStore.NameExists(ctx, *params.Name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflict("Course with name %s already exist", *params.Name)
		}
		course.Name = *params.Name
		changed = true
	}

	if params.FacultyID != nil && *params.FacultyID != course.FacultyID {
		exists, err := s.facultyStore.ExistsByID(ctx, *params.FacultyID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFound("faculty with id %d was not found", *params.FacultyID)
		}
		course.FacultyID = *params.FacultyID
		changed = true
	}

	if changed {
		if err := s.courseStore.Update(ctx, course); err != nil {
			return nil, err
		}
	}

	return course, nil
}

// DeleteCourse removes a course after deleting every result that references
// it.
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	exists, err := s.courseStore.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("course with id %d was not found", id)
	}

	if err := s.resultStore.DeleteByCourseID(ctx, id); err != nil {
		return err
	}

	return s.courseStore.Delete(ctx, id)
}
