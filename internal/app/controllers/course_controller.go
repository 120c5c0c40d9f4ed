package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/models/dto"
	"github.com/caprinak/StudentManagement/internal/app/services"
	"github.com/caprinak/StudentManagement/internal/middleware"
)

// CourseController handles course-related operations
type CourseController struct {
	courseService services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GetAllCourses handles GET /courses
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAllCourses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID handles GET /courses/:id
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.GetCourseByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles POST /courses?facultyId=
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	facultyID, err := requiredQueryInt64(ctx, "facultyId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.courseService.CreateCourse(ctx, req.Name, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /courses/:id?name=&facultyId=
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	facultyID, err := optionalQueryInt64(ctx, "facultyId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	course, err := c.courseService.UpdateCourse(ctx, id, services.UpdateCourseParams{
		Name:      optionalQueryString(ctx, "name"),
		FacultyID: facultyID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse handles DELETE /courses/:id
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.courseService.DeleteCourse(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
