package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
	"github.com/frolicdev/frolic/internal/pkg/helpers"
)

// ParticipantController handles participant endpoints
type ParticipantController struct {
	participantService *services.ParticipantService
}

// NewParticipantController creates a new participant controller
func NewParticipantController(participantService *services.ParticipantService) *ParticipantController {
	return &ParticipantController{
		participantService: participantService,
	}
}

// AddToGroup handles POST /api/v1/groups/:id/participants
func (ctrl *ParticipantController) AddToGroup(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Full name, phone, institute and department are required"))
		return
	}

	participant, err := ctrl.participantService.AddToGroup(c.Request.Context(), groupID, middleware.UserID(c), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(participant, "Participant added to group"))
}

// GetAll handles GET /api/v1/participants
func (ctrl *ParticipantController) GetAll(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)

	participants, pagination, err := ctrl.participantService.GetAllParticipants(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"participants": participants,
		"pagination":   pagination,
	}, "Participants retrieved"))
}

// GetByID handles GET /api/v1/participants/:id
func (ctrl *ParticipantController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	participant, err := ctrl.participantService.GetParticipantByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(participant, "Participant retrieved"))
}

// Update handles PUT /api/v1/participants/:id
func (ctrl *ParticipantController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	participant, err := ctrl.participantService.UpdateParticipant(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(participant, "Participant updated"))
}

// Delete handles DELETE /api/v1/participants/:id
func (ctrl *ParticipantController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.participantService.DeleteParticipant(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Participant removed"))
}
