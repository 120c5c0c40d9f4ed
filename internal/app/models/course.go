package models

// Course represents a taught course owned by one faculty.
type Course struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	FacultyID int64    `json:"facultyId"`
	Faculty   *Faculty `json:"faculty,omitempty"`
}
