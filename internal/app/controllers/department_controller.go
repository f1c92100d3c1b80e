package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
)

// DepartmentController handles department endpoints
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// Create handles POST /api/v1/departments
func (ctrl *DepartmentController) Create(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, hod, contact email and institute are required"))
		return
	}

	department, err := ctrl.departmentService.CreateDepartment(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(department, "Department created"))
}

// GetAll handles GET /api/v1/departments
func (ctrl *DepartmentController) GetAll(c *gin.Context) {
	departments, err := ctrl.departmentService.GetAllDepartments(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(departments, "Departments retrieved"))
}

// GetByID handles GET /api/v1/departments/:id
func (ctrl *DepartmentController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	department, err := ctrl.departmentService.GetDepartmentByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department retrieved"))
}

// Update handles PUT /api/v1/departments/:id
func (ctrl *DepartmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	department, err := ctrl.departmentService.UpdateDepartment(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(department, "Department updated"))
}

// Delete handles DELETE /api/v1/departments/:id
func (ctrl *DepartmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.departmentService.DeleteDepartment(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Department removed"))
}

// Events handles GET /api/v1/departments/:id/events
func (ctrl *DepartmentController) Events(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	events, err := ctrl.departmentService.GetDepartmentEvents(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(events, "Events retrieved"))
}
