package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
)

// GroupController handles group endpoints
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new group controller
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

// CreateForEvent handles POST /api/v1/events/:id/groups
func (ctrl *GroupController) CreateForEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Group name is required"))
		return
	}

	group, err := ctrl.groupService.CreateGroup(c.Request.Context(), eventID, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(group, "Group created"))
}

// GetByEvent handles GET /api/v1/events/:id/groups
func (ctrl *GroupController) GetByEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	groups, err := ctrl.groupService.GetGroupsByEvent(c.Request.Context(), eventID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(groups, "Groups retrieved"))
}

// Members handles GET /api/v1/groups/:id/participants
func (ctrl *GroupController) Members(c *gin.Context) {
	groupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	members, err := ctrl.groupService.GetGroupMembers(c.Request.Context(), groupID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(members, "Group members retrieved"))
}

// Update handles PUT /api/v1/groups/:id
func (ctrl *GroupController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	group, err := ctrl.groupService.UpdateGroup(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(group, "Group updated"))
}

// Delete handles DELETE /api/v1/groups/:id
func (ctrl *GroupController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.groupService.DeleteGroup(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Group removed"))
}
