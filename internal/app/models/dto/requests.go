package dto

// Request bodies for create and update operations. Foreign references and
// update values travel as query parameters, mirroring the API surface; the
// bodies carry only the entity's own fields.

// CreateFacultyRequest represents faculty creation data.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateFacultyRequest represents faculty update data.
type UpdateFacultyRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCohortRequest represents cohort creation data. The owning faculty id
// arrives as a required query parameter.
type CreateCohortRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// CreateCourseRequest represents course creation data. The owning faculty id
// arrives as a required query parameter.
type CreateCourseRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

// CreateStudentRequest represents student creation data. The owning cohort id
// arrives as a required query parameter. DateOfBirth uses the 2006-01-02 form.
type CreateStudentRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Gender      string `json:"gender" binding:"required,oneof=Male Female"`
	DateOfBirth string `json:"dateOfBirth" binding:"required"`
}

// CreateLibraryCardRequest represents library card creation data. The owning
// student id arrives as a required query parameter.
type CreateLibraryCardRequest struct {
	CardNumber string `json:"cardNumber" binding:"required,min=4,max=20,numeric"`
}

// CreateResultRequest represents result creation data. The student and course
// ids arrive as required query parameters.
type CreateResultRequest struct {
	Grade int `json:"grade" binding:"min=0,max=10"`
}
