package services

import (
	"context"
	"time"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
	"github.com/caprinak/StudentManagement/internal/pkg/validation"
)

// dateLayout is the wire format for student dates of birth.
const dateLayout = "2006-01-02"

// StudentService defines the interface for student-related operations
type StudentService interface {
	CreateStudent(ctx context.Context, input CreateStudentInput) (*models.Student, error)
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetAllStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, params UpdateStudentParams) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

// CreateStudentInput carries the fields of a new student. DateOfBirth and
// Gender arrive as strings and are parsed during shape validation so a
// single request reports every malformed field at once.
type CreateStudentInput struct {
	Name        string
	Email       string
	Gender      string
	DateOfBirth string
	CohortID    int64
}

// UpdateStudentParams carries the optional fields of a student patch. A nil
// pointer means the field was not supplied.
type UpdateStudentParams struct {
	Name        *string
	Email       *string
	Gender      *string
	DateOfBirth *string
	CohortID    *int64
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentStore StudentStore
	cohortStore  CohortStore
	cardStore    LibraryCardStore
	resultStore  ResultStore
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentStore StudentStore,
	cohortStore CohortStore,
	cardStore LibraryCardStore,
	resultStore ResultStore,
) StudentService {
	return &studentServiceImpl{
		studentStore: studentStore,
		cohortStore:  cohortStore,
		cardStore:    cardStore,
		resultStore:  resultStore,
	}
}

// CreateStudent creates a new student in a cohort. Shape checks aggregate
// every offending field; the duplicate-email check runs before the cohort
// lookup.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, input CreateStudentInput) (*models.Student, error) {
	var fields []apperrors.FieldError

	if !validation.NewStringValidation(input.Name).Validate() {
		fields = append(fields, apperrors.FieldError{Field: "name", Message: "Name must not be blank"})
	}

	emailOK := validation.NewStringValidation(input.Email).
		WithPattern(validation.CompiledPatterns.Email).
		Validate()
	if !emailOK {
		fields = append(fields, apperrors.FieldError{Field: "email", Message: "Email must be a valid address"})
	}

	gender, genderOK := models.ParseGender(input.Gender)
	if !genderOK {
		fields = append(fields, apperrors.FieldError{Field: "gender", Message: "Gender must be Male or Female"})
	}

	dob, err := time.Parse(dateLayout, input.DateOfBirth)
	if err != nil {
		fields = append(fields, apperrors.FieldError{Field: "dateOfBirth", Message: "Date of birth must be a valid date in YYYY-MM-DD format"})
	}

	if len(fields) > 0 {
		return nil, apperrors.NewValidation(fields...)
	}

	taken, err := s.studentStore.EmailExists(ctx, input.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.NewConflict("Student with email %s already exist", input.Email)
	}

	exists, err := s.cohortStore.ExistsByID(ctx, input.CohortID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("cohort with id %d was not found", input.CohortID)
	}

	student := &models.Student{
		Name:        input.Name,
		Email:       input.Email,
		Gender:      gender,
		DateOfBirth: dob,
		CohortID:    input.CohortID,
	}
	if err := s.studentStore.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// GetStudentByID retrieves a student by ID
func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentStore.GetByID(ctx, id)
}

// GetAllStudents retrieves all students
func (s *studentServiceImpl) GetAllStudents(ctx context.Context) ([]*models.Student, error) {
	return s.studentStore.GetAll(ctx)
}

// UpdateStudent applies a sparse patch: unsupplied fields keep their stored
// value, and the email uniqueness re-check is skipped when the supplied
// address equals the stored one.
func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, params UpdateStudentParams) (*models.Student, error) {
	student, err := s.studentStore.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false

	if params.Name != nil && *params.Name != student.Name {
		if !validation.NewStringValidation(*params.Name).Validate() {
			return nil, apperrors.NewValidation(apperrors.FieldError{Field: "name", Message: "Name must not be blank"})
		}
		student.Name = *params.Name
		changed = true
	}

	if params.Email != nil && *params.Email != student.Email {
		emailOK := validation.NewStringValidation(*params.Email).
			WithPattern(validation.CompiledPatterns.Email).
			Validate()
		if !emailOK {
			return nil, apperrors.NewValidation(apperrors.FieldError{Field: "email", Message: "Email must be a valid address"})
		}
		taken, err := s.studentStore.EmailExists(ctx, *params.Email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.NewConflict("Student with email %s already exist", *params.Email)
		}
		student.Email = *params.Email
		changed = true
	}

	if params.Gender != nil {
		gender, ok := models.ParseGender(*params.Gender)
		if !ok {
			return nil, apperrors.NewValidation(apperrors.FieldError{Field: "gender", Message: "Gender must be Male or Female"})
		}
		if gender != student.Gender {
			student.Gender = gender
			changed = true
		}
	}

	if params.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *params.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidation(apperrors.FieldError{Field: "dateOfBirth", Message: "Date of birth must be a valid date in YYYY-MM-DD format"})
		}
		if !dob.Equal(student.DateOfBirth) {
			student.DateOfBirth = dob
			changed = true
		}
	}

	if params.CohortID != nil && *params.CohortID != student.CohortID {
		exists, err := s.cohortStore.ExistsByID(ctx, *params.CohortID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewNotFound("cohort with id %d was not found", *params.CohortID)
		}
		student.CohortID = *params.CohortID
		changed = true
	}

	if changed {
		if err := s.studentStore.Update(ctx, student); err != nil {
			return nil, err
		}
	}

	return student, nil
}

// DeleteStudent removes a student together with exactly its own results and
// library card, in that order.
func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	exists, err := s.studentStore.ExistsByID(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("student with id %d was not found", id)
	}

	if err := s.resultStore.DeleteByStudentID(ctx, id); err != nil {
		return err
	}
	if err := s.cardStore.DeleteByStudentID(ctx, id); err != nil {
		return err
	}

	return s.studentStore.Delete(ctx, id)
}
