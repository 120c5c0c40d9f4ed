package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caprinak/StudentManagement/internal/app/models/dto"
	"github.com/caprinak/StudentManagement/internal/app/services"
	"github.com/caprinak/StudentManagement/internal/middleware"
)

// LibraryCardController handles library card operations
type LibraryCardController struct {
	cardService services.LibraryCardService
}

// NewLibraryCardController creates a new LibraryCardController
func NewLibraryCardController(cardService services.LibraryCardService) *LibraryCardController {
	return &LibraryCardController{
		cardService: cardService,
	}
}

// GetAllLibraryCards handles GET /library-cards
func (c *LibraryCardController) GetAllLibraryCards(ctx *gin.Context) {
	cards, err := c.cardService.GetAllLibraryCards(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cards)
}

// GetLibraryCardByID handles GET /library-cards/:id
func (c *LibraryCardController) GetLibraryCardByID(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	card, err := c.cardService.GetLibraryCardByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, card)
}

// CreateLibraryCard handles POST /library-cards?studentId=
func (c *LibraryCardController) CreateLibraryCard(ctx *gin.Context) {
	studentID, err := requiredQueryInt64(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	var req dto.CreateLibraryCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if _, err := c.cardService.CreateLibraryCard(ctx, req.CardNumber, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusCreated)
}

// UpdateLibraryCard handles PUT /library-cards/:id?cardNumber=&studentId=
func (c *LibraryCardController) UpdateLibraryCard(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	studentID, err := optionalQueryInt64(ctx, "studentId")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	card, err := c.cardService.UpdateLibraryCard(ctx, id, services.UpdateLibraryCardParams{
		CardNumber: optionalQueryString(ctx, "cardNumber"),
		StudentID:  studentID,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, card)
}

// DeleteLibraryCard handles DELETE /library-cards/:id
func (c *LibraryCardController) DeleteLibraryCard(ctx *gin.Context) {
	id, err := pathID(ctx, "id")
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.cardService.DeleteLibraryCard(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
