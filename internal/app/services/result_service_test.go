package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
)

func resultFixture(t *testing.T) (*fixture, int64, int64) {
	t.Helper()
	f := newFixture()
	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	student := f.mustStudent(t, "Alex Johnson", "alex@example.com", cohort.ID)
	course := f.mustCourse(t, "Algorithms", faculty.ID)
	return f, student.ID, course.ID
}

func TestCreateResult(t *testing.T) {
	f, studentID, courseID := resultFixture(t)

	result := f.mustResult(t, studentID, courseID, 9)
	if result.StudentID != studentID || result.CourseID != courseID {
		t.Fatalf("unexpected key %+v", result.ResultID)
	}
	if result.Grade != 9 {
		t.Fatalf("unexpected grade %d", result.Grade)
	}
}

func TestCreateResultDuplicatePair(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 9)

	_, err := f.resultService.CreateResult(context.Background(), studentID, courseID, 6)
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Fatalf("expected Conflict, got %v", err)
	}
	if !strings.Contains(err.Error(), "already exist") {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestCreateResultSamePairDifferentPartner(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 9)

	// Same student in another course and another student in the same course
	// are both fine: uniqueness is on the pair.
	faculty := f.mustFaculty(t, "Data Science")
	other := f.mustCourse(t, "Statistics", faculty.ID)
	f.mustResult(t, studentID, other.ID, 7)

	cohort := f.mustCohort(t, "DS101", faculty.ID)
	maria := f.mustStudent(t, "Maria Petrova", "maria@example.com", cohort.ID)
	f.mustResult(t, maria.ID, courseID, 8)
}

func TestCreateResultMissingStudent(t *testing.T) {
	f, _, courseID := resultFixture(t)

	_, err := f.resultService.CreateResult(context.Background(), 999, courseID, 9)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "student") {
		t.Fatalf("expected the student in the message, got %q", err.Error())
	}
}

func TestCreateResultMissingCourse(t *testing.T) {
	f, studentID, _ := resultFixture(t)

	_, err := f.resultService.CreateResult(context.Background(), studentID, 999, 9)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "course") {
		t.Fatalf("expected the course in the message, got %q", err.Error())
	}
}

func TestCreateResultGradeOutOfRange(t *testing.T) {
	f, studentID, courseID := resultFixture(t)

	for _, grade := range []int{-1, 11} {
		_, err := f.resultService.CreateResult(context.Background(), studentID, courseID, grade)
		if !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Fatalf("grade %d: expected ValidationFailed, got %v", grade, err)
		}
	}

	// The bounds themselves are valid.
	f.mustResult(t, studentID, courseID, 0)
}

func TestGetResultsByMinGrade(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	faculty := f.mustFaculty(t, "Computer Science")
	cohort := f.mustCohort(t, "CS101", faculty.ID)
	course := f.mustCourse(t, "Algorithms", faculty.ID)

	grades := []int{6, 7, 8, 9, 10}
	for i, grade := range grades {
		student := f.mustStudent(t, "Student", "s"+string(rune('a'+i))+"@example.com", cohort.ID)
		f.mustResult(t, student.ID, course.ID, grade)
	}

	results, err := f.resultService.GetResultsByMinGrade(ctx, 8)
	if err != nil {
		t.Fatalf("GetResultsByMinGrade failed: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected the 8/9/10 rows, got %d results", len(results))
	}
	for _, result := range results {
		if result.Grade < 8 {
			t.Fatalf("result below threshold returned: %+v", result)
		}
	}
}

func TestUpdateResult(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 6)

	key := models.ResultID{StudentID: studentID, CourseID: courseID}
	grade := 9
	updated, err := f.resultService.UpdateResult(context.Background(), key, UpdateResultParams{Grade: &grade})
	if err != nil {
		t.Fatalf("UpdateResult failed: %v", err)
	}
	if updated.Grade != 9 {
		t.Fatalf("expected grade 9, got %d", updated.Grade)
	}

	stored, err := f.resultService.GetResultByKey(context.Background(), key)
	if err != nil {
		t.Fatalf("GetResultByKey failed: %v", err)
	}
	if stored.Grade != 9 {
		t.Fatalf("grade change not persisted, got %d", stored.Grade)
	}
}

func TestUpdateResultOmittedGradeUnchanged(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 6)

	key := models.ResultID{StudentID: studentID, CourseID: courseID}
	updated, err := f.resultService.UpdateResult(context.Background(), key, UpdateResultParams{})
	if err != nil {
		t.Fatalf("empty patch must succeed, got %v", err)
	}
	if updated.Grade != 6 {
		t.Fatalf("empty patch must not touch the grade, got %d", updated.Grade)
	}

	stored, err := f.resultService.GetResultByKey(context.Background(), key)
	if err != nil {
		t.Fatalf("GetResultByKey failed: %v", err)
	}
	if stored.Grade != 6 {
		t.Fatalf("stored grade changed to %d", stored.Grade)
	}
}

func TestUpdateResultGradeOutOfRange(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 6)

	key := models.ResultID{StudentID: studentID, CourseID: courseID}
	bad := -1
	_, err := f.resultService.UpdateResult(context.Background(), key, UpdateResultParams{Grade: &bad})
	if !errors.Is(err, apperrors.ErrValidationFailed) {
		t.Fatalf("expected ValidationFailed, got %v", err)
	}
}

func TestUpdateResultNotFound(t *testing.T) {
	f, studentID, courseID := resultFixture(t)

	grade := 9
	_, err := f.resultService.UpdateResult(context.Background(), models.ResultID{StudentID: studentID, CourseID: courseID}, UpdateResultParams{Grade: &grade})
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestDeleteResult(t *testing.T) {
	f, studentID, courseID := resultFixture(t)
	f.mustResult(t, studentID, courseID, 6)

	key := models.ResultID{StudentID: studentID, CourseID: courseID}
	if err := f.resultService.DeleteResult(context.Background(), key); err != nil {
		t.Fatalf("DeleteResult failed: %v", err)
	}
	if err := f.resultService.DeleteResult(context.Background(), key); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected NotFound on second delete, got %v", err)
	}
}
