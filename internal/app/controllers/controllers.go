package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
)

// Controllers is a container for all controller instances
type Controllers struct {
	AuthController        *AuthController
	InstituteController   *InstituteController
	DepartmentController  *DepartmentController
	EventController       *EventController
	GroupController       *GroupController
	ParticipantController *ParticipantController
	WinnerController      *WinnerController
	DashboardController   *DashboardController
}

// parseIDParam reads a positive integer path parameter. On failure it writes
// the 400 envelope itself and reports false.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}
