package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/caprinak/StudentManagement/internal/db"
	"github.com/caprinak/StudentManagement/internal/pkg/logger"
)

// Demo inserts the demonstration dataset: three faculties, five cohorts,
// nine students with library cards, eight courses and fourteen results. The
// whole batch runs in one transaction and is skipped when any faculty
// already exists, so restarting the process never duplicates data.
func Demo(ctx context.Context, database *db.PostgresDB) error {
	var populated bool
	err := database.Pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM faculty)`).Scan(&populated)
	if err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if populated {
		logger.Debug().Msg("Demo data already present, skipping seed")
		return nil
	}

	err = database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		facultyIDs, err := insertFaculties(ctx, tx)
		if err != nil {
			return err
		}
		cohortIDs, err := insertCohorts(ctx, tx, facultyIDs)
		if err != nil {
			return err
		}
		studentIDs, err := insertStudents(ctx, tx, cohortIDs)
		if err != nil {
			return err
		}
		if err := insertLibraryCards(ctx, tx, studentIDs); err != nil {
			return err
		}
		courseIDs, err := insertCourses(ctx, tx, facultyIDs)
		if err != nil {
			return err
		}
		return insertResults(ctx, tx, studentIDs, courseIDs)
	})
	if err != nil {
		return fmt.Errorf("failed to seed demo data: %w", err)
	}

	logger.Info().Msg("Demo data seeded")
	return nil
}

func insertFaculties(ctx context.Context, tx pgx.Tx) ([]int64, error) {
	names := []string{"Computer Science", "Data Science", "Arts"}
	ids := make([]int64, len(names))
	for i, name := range names {
		err := tx.QueryRow(ctx,
			`INSERT INTO faculty (name) VALUES ($1) RETURNING id`, name).Scan(&ids[i])
		if err != nil {
			return nil, fmt.Errorf("failed to seed faculty %s: %w", name, err)
		}
	}
	return ids, nil
}

func insertCohorts(ctx context.Context, tx pgx.Tx, facultyIDs []int64) ([]int64, error) {
	cohorts := []struct {
		name    string
		faculty int
	}{
		{"CS101", 0},
		{"CS202", 0},
		{"DS101", 1},
		{"DS202", 1},
		{"ART101", 2},
	}
	ids := make([]int64, len(cohorts))
	for i, c := range cohorts {
		err := tx.QueryRow(ctx,
			`INSERT INTO cohort (name, faculty_id) VALUES ($1, $2) RETURNING id`,
			c.name, facultyIDs[c.faculty]).Scan(&ids[i])
		if err != nil {
			return nil, fmt.Errorf("failed to seed cohort %s: %w", c.name, err)
		}
	}
	return ids, nil
}

func insertStudents(ctx context.Context, tx pgx.Tx, cohortIDs []int64) ([]int64, error) {
	students := []struct {
		name   string
		email  string
		gender string
		dob    string
		cohort int
	}{
		{"Alex Johnson", "alex.johnson@example.com", "Male", "2001-03-14", 0},
		{"Maria Petrova", "maria.petrova@example.com", "Female", "2000-11-02", 0},
		{"James Lee", "james.lee@example.com", "Male", "2002-01-25", 1},
		{"Sofia Ramirez", "sofia.ramirez@example.com", "Female", "2001-07-19", 1},
		{"Daniel Kim", "daniel.kim@example.com", "Male", "2000-05-30", 2},
		{"Emma Novak", "emma.novak@example.com", "Female", "2002-09-08", 2},
		{"Lucas Weber", "lucas.weber@example.com", "Male", "2001-12-11", 3},
		{"Olivia Rossi", "olivia.rossi@example.com", "Female", "2000-02-27", 4},
		{"Ethan Brown", "ethan.brown@example.com", "Male", "2002-06-04", 4},
	}
	ids := make([]int64, len(students))
	for i, s := range students {
		dob, err := time.Parse("2006-01-02", s.dob)
		if err != nil {
			return nil, err
		}
		err = tx.QueryRow(ctx,
			`INSERT INTO student (name, email, gender, date_of_birth, cohort_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			s.name, s.email, s.gender, dob, cohortIDs[s.cohort]).Scan(&ids[i])
		if err != nil {
			return nil, fmt.Errorf("failed to seed student %s: %w", s.name, err)
		}
	}
	return ids, nil
}

func insertLibraryCards(ctx context.Context, tx pgx.Tx, studentIDs []int64) error {
	for i, studentID := range studentIDs {
		cardNumber := fmt.Sprintf("%d", 1001+i)
		_, err := tx.Exec(ctx,
			`INSERT INTO library_card (card_number, student_id) VALUES ($1, $2)`,
			cardNumber, studentID)
		if err != nil {
			return fmt.Errorf("failed to seed library card %s: %w", cardNumber, err)
		}
	}
	return nil
}

func insertCourses(ctx context.Context, tx pgx.Tx, facultyIDs []int64) ([]int64, error) {
	courses := []struct {
		name    string
		faculty int
	}{
		{"Algorithms", 0},
		{"Operating Systems", 0},
		{"Databases", 0},
		{"Machine Learning", 1},
		{"Statistics", 1},
		{"Data Mining", 1},
		{"Art History", 2},
		{"Painting", 2},
	}
	ids := make([]int64, len(courses))
	for i, c := range courses {
		err := tx.QueryRow(ctx,
			`INSERT INTO course (name, faculty_id) VALUES ($1, $2) RETURNING id`,
			c.name, facultyIDs[c.faculty]).Scan(&ids[i])
		if err != nil {
			return nil, fmt.Errorf("failed to seed course %s: %w", c.name, err)
		}
	}
	return ids, nil
}

func insertResults(ctx context.Context, tx pgx.Tx, studentIDs, courseIDs []int64) error {
	results := []struct {
		student, course int
		grade           int
	}{
		{0, 0, 9}, {0, 1, 8}, {0, 2, 10},
		{1, 0, 7}, {1, 2, 8},
		{2, 0, 6}, {2, 1, 7},
		{3, 1, 9},
		{4, 3, 8}, {4, 4, 6},
		{5, 3, 10}, {5, 5, 9},
		{7, 6, 7},
		{8, 7, 8},
	}
	for _, r := range results {
		_, err := tx.Exec(ctx,
			`INSERT INTO result (student_id, course_id, grade) VALUES ($1, $2, $3)`,
			studentIDs[r.student], courseIDs[r.course], r.grade)
		if err != nil {
			return fmt.Errorf("failed to seed result: %w", err)
		}
	}
	return nil
}
