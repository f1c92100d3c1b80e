package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
)

// WinnerController handles event winner endpoints
type WinnerController struct {
	winnerService *services.WinnerService
}

// NewWinnerController creates a new winner controller
func NewWinnerController(winnerService *services.WinnerService) *WinnerController {
	return &WinnerController{
		winnerService: winnerService,
	}
}

// DeclareForEvent handles POST /api/v1/events/:id/winners
func (ctrl *WinnerController) DeclareForEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Rank and prize are required"))
		return
	}

	winner, err := ctrl.winnerService.DeclareWinner(c.Request.Context(), eventID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(winner, "Winner declared"))
}

// GetByEvent handles GET /api/v1/events/:id/winners
func (ctrl *WinnerController) GetByEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	winners, err := ctrl.winnerService.GetWinnersByEvent(c.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(winners, "Winners retrieved"))
}

// Update handles PUT /api/v1/winners/:id
func (ctrl *WinnerController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWinnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	winner, err := ctrl.winnerService.UpdateWinner(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(winner, "Winner updated"))
}

// Delete handles DELETE /api/v1/winners/:id
func (ctrl *WinnerController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.winnerService.DeleteWinner(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Winner removed"))
}
