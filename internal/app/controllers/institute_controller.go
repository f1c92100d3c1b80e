package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/frolicdev/frolic/internal/app/models/dto"
	"github.com/frolicdev/frolic/internal/app/services"
	"github.com/frolicdev/frolic/internal/middleware"
	"github.com/frolicdev/frolic/internal/pkg/helpers"
)

// InstituteController handles institute endpoints
type InstituteController struct {
	instituteService *services.InstituteService
}

// NewInstituteController creates a new institute controller
func NewInstituteController(instituteService *services.InstituteService) *InstituteController {
	return &InstituteController{
		instituteService: instituteService,
	}
}

// Create handles POST /api/v1/institutes
func (ctrl *InstituteController) Create(c *gin.Context) {
	var req dto.CreateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, location and contact are required"))
		return
	}

	institute, err := ctrl.instituteService.CreateInstitute(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccessResponse(institute, "Institute created"))
}

// GetAll handles GET /api/v1/institutes
func (ctrl *InstituteController) GetAll(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)

	resp, err := ctrl.instituteService.GetAllInstitutes(c.Request.Context(), page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(resp, "Institutes retrieved"))
}

// GetByID handles GET /api/v1/institutes/:id
func (ctrl *InstituteController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	institute, err := ctrl.instituteService.GetInstituteByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(institute, "Institute retrieved"))
}

// Update handles PUT /api/v1/institutes/:id
func (ctrl *InstituteController) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInstituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	institute, err := ctrl.instituteService.UpdateInstitute(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(institute, "Institute updated"))
}

// Delete handles DELETE /api/v1/institutes/:id
func (ctrl *InstituteController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.instituteService.DeleteInstitute(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Institute removed"))
}

// Summary handles GET /api/v1/institutes/:id/summary
func (ctrl *InstituteController) Summary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := ctrl.instituteService.GetInstituteSummary(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(summary, "Institute summary retrieved"))
}

// Departments handles GET /api/v1/institutes/:id/departments
func (ctrl *InstituteController) Departments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	departments, err := ctrl.instituteService.GetInstituteDepartments(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse(departments, "Departments retrieved"))
}
