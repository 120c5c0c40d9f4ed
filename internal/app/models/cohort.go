package models

// Cohort represents a named student group tied to one faculty.
type Cohort struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	FacultyID int64    `json:"facultyId"`
	Faculty   *Faculty `json:"faculty,omitempty"`
}
