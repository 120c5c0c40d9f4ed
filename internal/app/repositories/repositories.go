package repositories

import (
	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	FacultyRepository     *FacultyRepository
	CohortRepository      *CohortRepository
	CourseRepository      *CourseRepository
	StudentRepository     *StudentRepository
	LibraryCardRepository *LibraryCardRepository
	ResultRepository      *ResultRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:     NewFacultyRepository(db),
		CohortRepository:      NewCohortRepository(db),
		CourseRepository:      NewCourseRepository(db),
		StudentRepository:     NewStudentRepository(db),
		LibraryCardRepository: NewLibraryCardRepository(db),
		ResultRepository:      NewResultRepository(db),
	}
}

// statementBuilder returns the shared squirrel builder with postgres
// placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
