package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/models"
	"github.com/caprinak/StudentManagement/internal/app/models/dto"
	"github.com/caprinak/StudentManagement/internal/app/services"
	"github.com/caprinak/StudentManagement/internal/middleware"
)

// ResultController handles result-related operations. Results are addressed
// by their (student, course) composite key rather than a surrogate id.
type ResultController struct {
	resultService services.ResultService
}

// NewResultController creates a new ResultController
func NewResultController(resultService services.ResultService) *ResultController {
	return &ResultController{
		resultService: resultService,
	}
}

func resultKey(ctx *gin.Context) (models.ResultID, error) {
	studentID, err := pathID(ctx, "studentId")
	if err != nil {
		return models.ResultID{}, err
	}
	courseID, err := pathID(ctx, "courseId")
	if err != nil {
		return models.ResultID{}, err
	}
	return models.ResultID{StudentID: studentID, CourseID: courseID}, nil
}

// GetAllResults handles GET /results
func (c *ResultController) GetAllResults(ctx *gin.Context) {
	results, err := c.resultService.GetAllResults(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// GetResult handles GET /results/student/:studentId/course/:courseId
func (c *ResultController) GetResult(ctx *gin.Context) {
	key, err := resultKey(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.resultService.GetResultByKey(ctx, key)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetResultsByMinGrade handles GET /results/grade/:grade, returning every
// result with a grade of at least the given value.
func (c *ResultController) GetResultsByMinGrade(ctx *gin.Context) {
	grade, err := pathID(ctx, "grade")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	results, err := c.resultService.GetResultsByMinGrade(ctx, int(grade))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, results)
}

// CreateResult handles POST /results?studentId=&courseId=
func (c *ResultController) CreateResult(ctx *gin.Context) {
	studentID, err := requiredQueryInt64(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	courseID, err := requiredQueryInt64(ctx, "courseId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.resultService.CreateResult(ctx, studentID, courseID, req.Grade); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// UpdateResult handles PUT /results/student/:studentId/course/:courseId?grade=
func (c *ResultController) UpdateResult(ctx *gin.Context) {
	key, err := resultKey(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	grade, err := optionalQueryInt(ctx, "grade")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	result, err := c.resultService.UpdateResult(ctx, key, services.UpdateResultParams{Grade: grade})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DeleteResult handles DELETE /results/student/:studentId/course/:courseId
func (c *ResultController) DeleteResult(ctx *gin.Context) {
	key, err := resultKey(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.resultService.DeleteResult(ctx, key); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
