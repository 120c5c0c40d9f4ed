package models

import "time"

// Gender is the enumerated gender of a student.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender maps an input string to a Gender, reporting whether it is one
// of the known values.
func ParseGender(s string) (Gender, bool) {
	switch Gender(s) {
	case GenderMale:
		return GenderMale, true
	case GenderFemale:
		return GenderFemale, true
	}
	return "", false
}

// Student represents an enrolled student belonging to exactly one cohort.
type Student struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Gender      Gender    `json:"gender"`
	DateOfBirth time.Time `json:"dateOfBirth"`
	CohortID    int64     `json:"cohortId"`
	Cohort      *Cohort   `json:"cohort,omitempty"`
}
