package models

// LibraryCard represents a library card owned by exactly one student.
type LibraryCard struct {
	ID         int64    `json:"id"`
	CardNumber string   `json:"cardNumber"`
	StudentID  int64    `json:"studentId"`
	Student    *Student `json:"student,omitempty"`
}
