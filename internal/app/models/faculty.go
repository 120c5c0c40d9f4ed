package models

// Faculty represents an academic department owning cohorts and courses.
type Faculty struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
