package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/models/dto"
	"github.com/caprinak/StudentManagement/internal/app/services"
	"github.com/caprinak/StudentManagement/internal/middleware"
)

// CohortController handles cohort-related operations
type CohortController struct {
	cohortService services.CohortService
}

// NewCohortController creates a new CohortController
func NewCohortController(cohortService services.CohortService) *CohortController {
	return &CohortController{
		cohortService: cohortService,
	}
}

// GetAllCohorts handles GET /cohorts
func (c *CohortController) GetAllCohorts(ctx *gin.Context) {
	cohorts, err := c.cohortService.GetAllCohorts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cohorts)
}

// GetCohortByID handles GET /cohorts/:id
func (c *CohortController) GetCohortByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	cohort, err := c.cohortService.GetCohortByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cohort)
}

// CreateCohort handles POST /cohorts?facultyId=
func (c *CohortController) CreateCohort(ctx *gin.Context) {
	facultyID, err := requiredQueryInt64(ctx, "facultyId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateCohortRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.cohortService.CreateCohort(ctx, req.Name, facultyID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// UpdateCohort handles PUT /cohorts/:id?name=&facultyId=
func (c *CohortController) UpdateCohort(ctx *gin.Context) {
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

	cohort, err := c.cohortService.UpdateCohort(ctx, id, services.UpdateCohortParams{
		Name:      optionalQueryString(ctx, "name"),
		FacultyID: facultyID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cohort)
}

// DeleteCohort handles DELETE /cohorts/:id
func (c *CohortController) DeleteCohort(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.cohortService.DeleteCohort(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
