package models

// ResultID is the composite key of a result. It is a plain comparable value:
// two ResultIDs are equal exactly when both components are equal, so it can
// serve directly as a map key.
type ResultID struct {
	StudentID int64 `json:"studentId"`
	CourseID  int64 `json:"courseId"`
}

// Result represents a grade for one (student, course) pair. At most one
// result exists per pair.
type Result struct {
	ResultID
	Grade   int      `json:"grade"`
	Student *Student `json:"student,omitempty"`
	Course  *Course  `json:"course,omitempty"`
}
