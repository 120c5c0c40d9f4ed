package services

import (
	"context"
	"testing"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/pkg/apperrors"
)

// In-memory store fakes. They mirror the error behavior of the pgx
// repositories: lookups of absent rows report NotFound, deletes of absent
// rows report NotFound, bulk cascade deletes of nothing succeed.

type fakeFacultyStore struct {
	seq   int64
	items map[int64]*models.Faculty
}

func newFakeFacultyStore() *fakeFacultyStore {
	return &fakeFacultyStore{items: make(map[int64]*models.Faculty)}
}

func (s *fakeFacultyStore) Create(_ context.Context, faculty *models.Faculty) error {
	s.seq++
	faculty.ID = s.seq
	copied := *faculty
	s.items[faculty.ID] = &copied
	return nil
}

func (s *fakeFacultyStore) GetByID(_ context.Context, id int64) (*models.Faculty, error) {
	faculty, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("faculty with id %d was not found", id)
	}
	copied := *faculty
	return &copied, nil
}

func (s *fakeFacultyStore) GetAll(_ context.Context) ([]*models.Faculty, error) {
	out := make([]*models.Faculty, 0, len(s.items))
	for _, faculty := range s.items {
		copied := *faculty
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeFacultyStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *fakeFacultyStore) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, faculty := range s.items {
		if faculty.Name == name && faculty.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFacultyStore) Update(_ context.Context, faculty *models.Faculty) error {
	if _, ok := s.items[faculty.ID]; !ok {
		return apperrors.NewNotFound("faculty with id %d was not found", faculty.ID)
	}
	copied := *faculty
	s.items[faculty.ID] = &copied
	return nil
}

func (s *fakeFacultyStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound("faculty with id %d was not found", id)
	}
	delete(s.items, id)
	return nil
}

type fakeCohortStore struct {
	seq   int64
	items map[int64]*models.Cohort
}

func newFakeCohortStore() *fakeCohortStore {
	return &fakeCohortStore{items: make(map[int64]*models.Cohort)}
}

func (s *fakeCohortStore) Create(_ context.Context, cohort *models.Cohort) error {
	s.seq++
	cohort.ID = s.seq
	copied := *cohort
	s.items[cohort.ID] = &copied
	return nil
}

func (s *fakeCohortStore) GetByID(_ context.Context, id int64) (*models.Cohort, error) {
	cohort, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("cohort with id %d was not found", id)
	}
	copied := *cohort
	return &copied, nil
}

func (s *fakeCohortStore) GetAll(_ context.Context) ([]*models.Cohort, error) {
	out := make([]*models.Cohort, 0, len(s.items))
	for _, cohort := range s.items {
		copied := *cohort
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeCohortStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *fakeCohortStore) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, cohort := range s.items {
		if cohort.Name == name && cohort.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCohortStore) Update(_ context.Context, cohort *models.Cohort) error {
	if _, ok := s.items[cohort.ID]; !ok {
		return apperrors.NewNotFound("cohort with id %d was not found", cohort.ID)
	}
	copied := *cohort
	s.items[cohort.ID] = &copied
	return nil
}

func (s *fakeCohortStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound("cohort with id %d was not found", id)
	}
	delete(s.items, id)
	return nil
}

type fakeCourseStore struct {
	seq   int64
	items map[int64]*models.Course
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{items: make(map[int64]*models.Course)}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	s.seq++
	course.ID = s.seq
	copied := *course
	s.items[course.ID] = &copied
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	course, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("course with id %d was not found", id)
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) GetAll(_ context.Context) ([]*models.Course, error) {
	out := make([]*models.Course, 0, len(s.items))
	for _, course := range s.items {
		copied := *course
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeCourseStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *fakeCourseStore) NameExists(_ context.Context, name string, excludeID int64) (bool, error) {
	for _, course := range s.items {
		if course.Name == name && course.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	if _, ok := s.items[course.ID]; !ok {
		return apperrors.NewNotFound("course with id %d was not found", course.ID)
	}
	copied := *course
	s.items[course.ID] = &copied
	return nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound("course with id %d was not found", id)
	}
	delete(s.items, id)
	return nil
}

type fakeStudentStore struct {
	seq   int64
	items map[int64]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{items: make(map[int64]*models.Student)}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	s.seq++
	student.ID = s.seq
	copied := *student
	s.items[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	student, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("student with id %d was not found", id)
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	out := make([]*models.Student, 0, len(s.items))
	for _, student := range s.items {
		copied := *student
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeStudentStore) ListByCohortID(_ context.Context, cohortID int64) ([]*models.Student, error) {
	var out []*models.Student
	for _, student := range s.items {
		if student.CohortID == cohortID {
			copied := *student
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *fakeStudentStore) EmailExists(_ context.Context, email string, excludeID int64) (bool, error) {
	for _, student := range s.items {
		if student.Email == email && student.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	if _, ok := s.items[student.ID]; !ok {
		return apperrors.NewNotFound("student with id %d was not found", student.ID)
	}
	copied := *student
	s.items[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound("student with id %d was not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *fakeStudentStore) DeleteByCohortID(_ context.Context, cohortID int64) (int64, error) {
	var deleted int64
	for id, student := range s.items {
		if student.CohortID == cohortID {
			delete(s.items, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeLibraryCardStore struct {
	seq   int64
	items map[int64]*models.LibraryCard
}

func newFakeLibraryCardStore() *fakeLibraryCardStore {
	return &fakeLibraryCardStore{items: make(map[int64]*models.LibraryCard)}
}

func (s *fakeLibraryCardStore) Create(_ context.Context, card *models.LibraryCard) error {
	s.seq++
	card.ID = s.seq
	copied := *card
	s.items[card.ID] = &copied
	return nil
}

func (s *fakeLibraryCardStore) GetByID(_ context.Context, id int64) (*models.LibraryCard, error) {
	card, ok := s.items[id]
	if !ok {
		return nil, apperrors.NewNotFound("library card with id %d was not found", id)
	}
	copied := *card
	return &copied, nil
}

func (s *fakeLibraryCardStore) GetByStudentID(_ context.Context, studentID int64) (*models.LibraryCard, error) {
	for _, card := range s.items {
		if card.StudentID == studentID {
			copied := *card
			return &copied, nil
		}
	}
	return nil, apperrors.NewNotFound("library card for student %d was not found", studentID)
}

func (s *fakeLibraryCardStore) GetAll(_ context.Context) ([]*models.LibraryCard, error) {
	out := make([]*models.LibraryCard, 0, len(s.items))
	for _, card := range s.items {
		copied := *card
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeLibraryCardStore) CardNumberExists(_ context.Context, cardNumber string, excludeID int64) (bool, error) {
	for _, card := range s.items {
		if card.CardNumber == cardNumber && card.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLibraryCardStore) StudentHasCard(_ context.Context, studentID, excludeID int64) (bool, error) {
	for _, card := range s.items {
		if card.StudentID == studentID && card.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLibraryCardStore) Update(_ context.Context, card *models.LibraryCard) error {
	if _, ok := s.items[card.ID]; !ok {
		return apperrors.NewNotFound("library card with id %d was not found", card.ID)
	}
	copied := *card
	s.items[card.ID] = &copied
	return nil
}

func (s *fakeLibraryCardStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return apperrors.NewNotFound("library card with id %d was not found", id)
	}
	delete(s.items, id)
	return nil
}

func (s *fakeLibraryCardStore) DeleteByStudentID(_ context.Context, studentID int64) error {
	for id, card := range s.items {
		if card.StudentID == studentID {
			delete(s.items, id)
		}
	}
	return nil
}

type fakeResultStore struct {
	items map[models.ResultID]*models.Result
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{items: make(map[models.ResultID]*models.Result)}
}

func (s *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	if _, ok := s.items[result.ResultID]; ok {
		return apperrors.NewConflict("Database constraint violation: duplicate key")
	}
	copied := *result
	s.items[result.ResultID] = &copied
	return nil
}

func (s *fakeResultStore) GetByKey(_ context.Context, key models.ResultID) (*models.Result, error) {
	result, ok := s.items[key]
	if !ok {
		return nil, apperrors.NewNotFound("result for student %d and course %d was not found", key.StudentID, key.CourseID)
	}
	copied := *result
	return &copied, nil
}

func (s *fakeResultStore) GetAll(_ context.Context) ([]*models.Result, error) {
	out := make([]*models.Result, 0, len(s.items))
	for _, result := range s.items {
		copied := *result
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeResultStore) ListByMinGrade(_ context.Context, minGrade int) ([]*models.Result, error) {
	var out []*models.Result
	for _, result := range s.items {
		if result.Grade >= minGrade {
			copied := *result
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (s *fakeResultStore) Exists(_ context.Context, key models.ResultID) (bool, error) {
	_, ok := s.items[key]
	return ok, nil
}

func (s *fakeResultStore) Update(_ context.Context, result *models.Result) error {
	if _, ok := s.items[result.ResultID]; !ok {
		return apperrors.NewNotFound("result for student %d and course %d was not found", result.StudentID, result.CourseID)
	}
	copied := *result
	s.items[result.ResultID] = &copied
	return nil
}

func (s *fakeResultStore) Delete(_ context.Context, key models.ResultID) error {
	if _, ok := s.items[key]; !ok {
		return apperrors.NewNotFound("result for student %d and course %d was not found", key.StudentID, key.CourseID)
	}
	delete(s.items, key)
	return nil
}

func (s *fakeResultStore) DeleteByStudentID(_ context.Context, studentID int64) error {
	for key := range s.items {
		if key.StudentID == studentID {
			delete(s.items, key)
		}
	}
	return nil
}

func (s *fakeResultStore) DeleteByCourseID(_ context.Context, courseID int64) error {
	for key := range s.items {
		if key.CourseID == courseID {
			delete(s.items, key)
		}
	}
	return nil
}

// fixture wires every fake store and every service so a test can assemble a
// full relational graph.
type fixture struct {
	faculties *fakeFacultyStore
	cohorts   *fakeCohortStore
	courses   *fakeCourseStore
	students  *fakeStudentStore
	cards     *fakeLibraryCardStore
	results   *fakeResultStore

	facultyService FacultyService
	cohortService  CohortService
	courseService  CourseService
	studentService StudentService
	cardService    LibraryCardService
	resultService  ResultService
}

func newFixture() *fixture {
	f := &fixture{
		faculties: newFakeFacultyStore(),
		cohorts:   newFakeCohortStore(),
		courses:   newFakeCourseStore(),
		students:  newFakeStudentStore(),
		cards:     newFakeLibraryCardStore(),
		results:   newFakeResultStore(),
	}
	f.facultyService = NewFacultyService(f.faculties)
	f.cohortService = NewCohortService(f.cohorts, f.faculties, f.students, f.cards, f.results)
	f.courseService = NewCourseService(f.courses, f.faculties, f.results)
	f.studentService = NewStudentService(f.students, f.cohorts, f.cards, f.results)
	f.cardService = NewLibraryCardService(f.cards, f.students)
	f.resultService = NewResultService(f.results, f.students, f.courses)
	return f
}

func (f *fixture) mustFaculty(t *testing.T, name string) *models.Faculty {
	t.Helper()
	faculty, err := f.facultyService.CreateFaculty(context.Background(), name)
	if err != nil {
		t.Fatalf("CreateFaculty(%q) failed: %v", name, err)
	}
	return faculty
}

func (f *fixture) mustCohort(t *testing.T, name string, facultyID int64) *models.Cohort {
	t.Helper()
	cohort, err := f.cohortService.CreateCohort(context.Background(), name, facultyID)
	if err != nil {
		t.Fatalf("CreateCohort(%q) failed: %v", name, err)
	}
	return cohort
}

func (f *fixture) mustCourse(t *testing.T, name string, facultyID int64) *models.Course {
	t.Helper()
	course, err := f.courseService.CreateCourse(context.Background(), name, facultyID)
	if err != nil {
		t.Fatalf("CreateCourse(%q) failed: %v", name, err)
	}
	return course
}

func (f *fixture) mustStudent(t *testing.T, name, email string, cohortID int64) *models.Student {
	t.Helper()
	student, err := f.studentService.CreateStudent(context.Background(), CreateStudentInput{
		Name:        name,
		Email:       email,
		Gender:      "Female",
		DateOfBirth: "2001-05-20",
		CohortID:    cohortID,
	})
	if err != nil {
		t.Fatalf("CreateStudent(%q) failed: %v", name, err)
	}
	return student
}

func (f *fixture) mustCard(t *testing.T, cardNumber string, studentID int64) *models.LibraryCard {
	t.Helper()
	card, err := f.cardService.CreateLibraryCard(context.Background(), cardNumber, studentID)
	if err != nil {
		t.Fatalf("CreateLibraryCard(%q) failed: %v", cardNumber, err)
	}
	return card
}

func (f *fixture) mustResult(t *testing.T, studentID, courseID int64, grade int) *models.Result {
	t.Helper()
	result, err := f.resultService.CreateResult(context.Background(), studentID, courseID, grade)
	if err != nil {
		t.Fatalf("CreateResult(student %d, course %d) failed: %v", studentID, courseID, err)
	}
	return result
}
