package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
)

// EventController handles event endpoints
type EventController struct {
	eventService *services.EventService
}

// NewEventController creates a new event controller
func NewEventController(eventService *services.EventService) *EventController {
	return &EventController{
		eventService: eventService,
	}
}

// Create handles POST /api/v1/events
func (ctrl *EventController) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Title, description, date, time, location and category are required"))
		return
	}

	event, err := ctrl.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(event, "Event created"))
}

// List handles GET /api/v1/events
func (ctrl *EventController) List(c *gin.Context) {
	var filter dto.EventFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid filter parameters"))
		return
	}

	resp, err := ctrl.eventService.ListEvents(c.Request.Context(), &filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Events retrieved"))
}

// GetByID handles GET /api/v1/events/:id
func (ctrl *EventController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := ctrl.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event retrieved"))
}

// Update handles PUT /api/v1/events/:id
func (ctrl *EventController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	event, err := ctrl.eventService.UpdateEvent(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(event, "Event updated"))
}

// Delete handles DELETE /api/v1/events/:id
func (ctrl *EventController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.eventService.DeleteEvent(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event removed"))
}

// Summary handles GET /api/v1/events/:id/summary
func (ctrl *EventController) Summary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := ctrl.eventService.GetEventSummary(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(summary, "Event summary retrieved"))
}
