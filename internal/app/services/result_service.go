package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// Grade bounds for a result.
const (
	MinGrade = 0
	MaxGrade = 10
)

// ResultService defines the interface for result-related operations
type ResultService interface {
	CreateResult(ctx context.Context, studentID, courseID int64, grade int) (*models.Result, error)
	GetResultByKey(ctx context.Context, key models.ResultID) (*models.Result, error)
	GetAllResults(ctx context.Context) ([]*models.Result, error)
	GetResultsByMinGrade(ctx context.Context, minGrade int) ([]*models.Result, error)
	UpdateResult(ctx context.Context, key models.ResultID, params UpdateResultParams) (*models.Result, error)
	DeleteResult(ctx context.Context, key models.ResultID) error
}

// UpdateResultParams carries the optional fields of a result patch. A nil
// pointer means the field was not supplied and its stored value is kept.
type UpdateResultParams struct {
	Grade *int
}

// resultServiceImpl implements the ResultService interface
type resultServiceImpl struct {
	resultStore  ResultStore
	studentStore StudentStore
	courseStore  CourseStore
}

// NewResultService creates a new result service instance
func NewResultService(resultStore ResultStore, studentStore StudentStore, courseStore CourseStore) ResultService {
	return &resultServiceImpl{
		resultStore:  resultStore,
		studentStore: studentStore,
		courseStore:  courseStore,
	}
}

func validateGrade(grade int) error {
	ok := validation.NewNumericValidation(grade).
		WithMin(MinGrade).
		WithMax(MaxGrade).
		Validate()
	if !ok {
		return apperrors.NewValidation(apperrors.FieldError{
			Field:   "grade",
			Message: "Grade must be between 0 and 10",
		})
	}
	return nil
}

// CreateResult records a grade for a (student, course) pair. At most one
// result may exist per pair; the duplicate-pair check runs before the
// student and course lookups.
func (s *resultServiceImpl) CreateResult(ctx context.Context, studentID, courseID int64, grade int) (*models.Result, error) {
	if err := validateGrade(grade); err != nil {
		return nil, err
	}

	key := models.ResultID{StudentID: studentID, CourseID: courseID}

	taken, err := s.resultStore.Exists(ctx, key)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Result for student %d and course %d already exist", studentID, courseID)
	}

	exists, err := s.studentStore.ExistsByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("student with id %d was not found", studentID)
	}

	exists, err = s.courseStore.ExistsByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("course with id %d was not found", courseID)
	}

	result := &models.Result{ResultID: key, Grade: grade}
	if err := s.resultStore.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetResultByKey retrieves the result for a (student, course) pair.
func (s *resultServiceImpl) GetResultByKey(ctx context.Context, key models.ResultID) (*models.Result, error) {
	return s.resultStore.GetByKey(ctx, key)
}

// GetAllResults retrieves all results
func (s *resultServiceImpl) GetAllResults(ctx context.Context) ([]*models.Result, error) {
	return s.resultStore.GetAll(ctx)
}

// GetResultsByMinGrade retrieves every result with a grade of at least
// minGrade.
func (s *resultServiceImpl) GetResultsByMinGrade(ctx context.Context, minGrade int) ([]*models.Result, error) {
	return s.resultStore.ListByMinGrade(ctx, minGrade)
}

// UpdateResult changes the grade of an existing result. An unset grade
// leaves the stored value untouched.
func (s *resultServiceImpl) UpdateResult(ctx context.Context, key models.ResultID, params UpdateResultParams) (*models.Result, error) {
	result, err := s.resultStore.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	if params.Grade == nil {
		return result, nil
	}

	if err := validateGrade(*params.Grade); err != nil {
		return nil, err
	}

	if *params.Grade != result.Grade {
		result.Grade = *params.Grade
		if err := s.resultStore.Update(ctx, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// DeleteResult removes the result for a (student, course) pair.
func (s *resultServiceImpl) DeleteResult(ctx context.Context, key models.ResultID) error {
	return s.resultStore.Delete(ctx, key)
}
