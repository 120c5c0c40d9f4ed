package services

import (
	"context"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/app/repositories"
)

// The store interfaces below describe what the services need from the
// persistence layer. The pgx repositories satisfy them; tests substitute
// in-memory fakes.

// FacultyStore is the persistence contract for faculties.
type FacultyStore interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id int64) error
}

// CohortStore is the persistence contract for cohorts.
type CohortStore interface {
	Create(ctx context.Context, cohort *models.Cohort) error
	GetByID(ctx context.Context, id int64) (*models.Cohort, error)
	GetAll(ctx context.Context) ([]*models.Cohort, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, cohort *models.Cohort) error
	Delete(ctx context.Context, id int64) error
}

// CourseStore is the persistence contract for courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	NameExists(ctx context.Context, name string, excludeID int64) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id int64) error
}

// StudentStore is the persistence contract for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	ListByCohortID(ctx context.Context, cohortID int64) ([]*models.Student, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	DeleteByCohortID(ctx context.Context, cohortID int64) (int64, error)
}

// LibraryCardStore is the persistence contract for library cards.
type LibraryCardStore interface {
	Create(ctx context.Context, card *models.LibraryCard) error
	GetByID(ctx context.Context, id int64) (*models.LibraryCard, error)
	GetByStudentID(ctx context.Context, studentID int64) (*models.LibraryCard, error)
	GetAll(ctx context.Context) ([]*models.LibraryCard, error)
	CardNumberExists(ctx context.Context, cardNumber string, excludeID int64) (bool, error)
	StudentHasCard(ctx context.Context, studentID, excludeID int64) (bool, error)
	Update(ctx context.Context, card *models.LibraryCard) error
	Delete(ctx context.Context, id int64) error
	DeleteByStudentID(ctx context.Context, studentID int64) error
}

// ResultStore is the persistence contract for results.
type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	GetByKey(ctx context.Context, key models.ResultID) (*models.Result, error)
	GetAll(ctx context.Context) ([]*models.Result, error)
	ListByMinGrade(ctx context.Context, minGrade int) ([]*models.Result, error)
	Exists(ctx context.Context, key models.ResultID) (bool, error)
	Update(ctx context.Context, result *models.Result) error
	Delete(ctx context.Context, key models.ResultID) error
	DeleteByStudentID(ctx context.Context, studentID int64) error
	DeleteByCourseID(ctx context.Context, courseID int64) error
}

// Services holds all the service instances
type Services struct {
	FacultyService     FacultyService
	CohortService      CohortService
	CourseService      CourseService
	StudentService     StudentService
	LibraryCardService LibraryCardService
	ResultService      ResultService
}

// NewServices initializes all services with their repository dependencies
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		FacultyService: NewFacultyService(repos.FacultyRepository),
		CohortService: NewCohortService(
			repos.CohortRepository,
			repos.FacultyRepository,
			repos.StudentRepository,
			repos.LibraryCardRepository,
			repos.ResultRepository,
		),
		CourseService: NewCourseService(
			repos.CourseRepository,
			repos.FacultyRepository,
			repos.ResultRepository,
		),
		StudentService: NewStudentService(
			repos.StudentRepository,
			repos.CohortRepository,
			repos.LibraryCardRepository,
			repos.ResultRepository,
		),
		LibraryCardService: NewLibraryCardService(
			repos.LibraryCardRepository,
			repos.StudentRepository,
		),
		ResultService: NewResultService(
			repos.ResultRepository,
			repos.StudentRepository,
			repos.CourseRepository,
		),
	}
}
