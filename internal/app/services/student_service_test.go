package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
)

func TestCreateStudent(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)

	student, err := f.studentService.CreateStudent(context.Background(), CreateStudentInput{
		Name:        "Alex Johnson",
		Email:       "alex@example.com",
		Gender:      "Male",
		DateOfBirth: "2001-03-14",
		CohortID:    cohort.ID,
	})
	if err != nil {
		t.Fatalf("CreateStudent failed: %v", err)
	}
	if student.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if student.Gender != models.GenderMale {
		t.Fatalf("unexpected gender %q", student.Gender)
	}
	if got := student.DateOfBirth.Format("2006-01-02"); got != "2001-03-14" {
		t.Fatalf("unexpected date of birth %s", got)
	}
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cs101 := f.mustCohort(t, "CS101", faculty.ID)
	cs202 := f.mustCohort(t, "CS202", faculty.ID)
	f.mustStudent(t, "Alex Johnson", "alex@example.com", cs101.ID)

	// Same email under a different cohort is still a conflict.
	_, err := f.studentService.CreateStudent(context.Background(), CreateStudentInput{
		Name:        "Alexandra Johnson",
		Email:       "alex@example.com",
		Gender:      "Female",
		DateOfBirth: "2000-01-01",
		CohortID:    cs202.ID,
	})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "already exist") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCreateStudentMissingCohort(t *testing.T) {
	f := newFixture()

	_, err := f.studentService.CreateStudent(context.Background(), CreateStudentInput{
		Name:        "Alex Johnson",
		Email:       "alex@example.com",
		Gender:      "Male",
		DateOfBirth: "2001-03-14",
		CohortID:    404,
	})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected the missing id in the message, got %q", err.Error())
	}
}

func TestCreateStudentAggregatesFieldErrors(t *testing.T) {
	f := newFixture()

	_, err := f.studentService.CreateStudent(context.Background(), CreateStudentInput{
		Name:        " ",
		Email:       "not-an-email",
		Gender:      "Other",
		DateOfBirth: "14-03-2001",
		CohortID:    1,
	})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}

	fields := apperrors.FieldsOf(err)
	if len(fields) != 4 {
		t.Fatalf("expected all 4 violations in one error, got %v", fields)
	}
	seen := make(map[string]bool)
	for _, field := range fields {
		seen[field.Field] = true
	}
	for _, name := range []string{"name", "email", "gender", "dateOfBirth"} {
		if !seen[name] {
			t.Fatalf("missing field error for %s: %v", name, fields)
		}
	}
}

func TestUpdateStudentOmittedFieldsUnchanged(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	student := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)

	newName := "Alexander Johnson"
	updated, err := f.studentService.UpdateStudent(context.Background(), student.ID, UpdateStudentParams{Name: &newName})
	if err != nil {
		t.Fatalf("UpdateStudent failed: %v", err)
	}

	if updated.Name != newName {
		t.Fatalf("expected renamed student, got %q", updated.Name)
	}
	if updated.Email != student.Email {
		t.Fatalf("omitted email changed: %q", updated.Email)
	}
	if updated.Gender != student.Gender {
		t.Fatalf("omitted gender changed: %q", updated.Gender)
	}
	if !updated.DateOfBirth.Equal(student.DateOfBirth) {
		t.Fatalf("omitted date of birth changed: %v", updated.DateOfBirth)
	}
	if updated.CohortID != cohort.ID {
		t.Fatalf("omitted cohort changed: %d", updated.CohortID)
	}
}

func TestUpdateStudentEqualEmailSkipsUniquenessRecheck(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	student := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)

	f.students.seq++
	f.students.items[f.students.seq] = &models.Student{
		ID:       f.students.seq,
		Name:     "Impostor",
		Email:    "alex@example.com",
		Gender:   models.GenderMale,
		CohortID: cohort.ID,
	}

	email := "alex@example.com"
	if _, err := f.studentService.UpdateStudent(context.Background(), student.ID, UpdateStudentParams{Email: &email}); err != nil {
		t.Fatalf("expected update with unchanged email to succeed, got %v", err)
	}
}

func TestUpdateStudentTakenEmail(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)
	student := f.mustStudent(t, "Maria Petrova", "maria@example.com", cohort.ID)

	email := "alex@example.com"
	_, err := f.studentService.UpdateStudent(context.Background(), student.ID, UpdateStudentParams{Email: &email})
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
}

func TestUpdateStudentVanishedCohort(t *testing.T) {
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	student := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)

	missing := int64(321)
	_, err := f.studentService.UpdateStudent(context.Background(), student.ID, UpdateStudentParams{CohortID: &missing})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeleteStudentRemovesOnlyOwnDependents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	course := f.mustCourse(t, "Algorithms", faculty.ID)

	alex := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)
	maria := f.mustStudent(t, "Maria Petrova", "maria@example.com", cohort.ID)

	f.mustCard(t, "1001", alex.ID)
	mariaCard := f.mustCard(t, "1002", maria.ID)

	f.mustResult(t, alex.ID, course.ID, 9)
	f.mustResult(t, maria.ID, course.ID, 7)

	if err := f.studentService.DeleteStudent(ctx, alex.ID); err != nil {
		t.Fatalf("DeleteStudent failed: %v", err)
	}

	if _, err := f.studentService.GetStudentByID(ctx, alex.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected deleted student to be gone, got %v", err)
	}

	cards, err := f.cardService.GetAllLibraryCards(ctx)
	if err != nil {
		t.Fatalf("GetAllLibraryCards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != mariaCard.ID {
		t.Fatalf("expected exactly Maria's card to survive, got %v", cards)
	}

	results, err := f.resultService.GetAllResults(ctx)
	if err != nil {
		t.Fatalf("GetAllResults failed: %v", err)
	}
	if len(results) != 1 || results[0].StudentID != maria.ID {
		t.Fatalf("expected exactly Maria's result to survive, got %v", results)
	}
}

func TestDeleteStudentNotFound(t *testing.T) {
	f := newFixture()

	err := f.studentService.DeleteStudent(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}
