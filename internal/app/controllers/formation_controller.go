package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/app/services"
	"github.com/findup-dz/findup-api/internal/middleware"
	"github.com/findup-dz/findup-api/internal/pkg/helpers"
)

// FormationController handles formation catalog endpoints.
type FormationController struct {
	formationService *services.FormationService
}

// NewFormationController creates a new FormationController
func NewFormationController(formationService *services.FormationService) *FormationController {
	return &FormationController{formationService: formationService}
}

// optionalQuery returns a pointer to the query value, or nil when absent or
// empty.
func optionalQuery(c *gin.Context, key string) *string {
	if value := c.Query(key); value != "" {
		return &value
	}
	return nil
}

// pathID parses the :id path parameter as a positive integer.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List godoc
// @Summary List published formations
// @Tags formations
// @Produce json
// @Param category query string false "Category filter"
// @Param level query string false "Level filter" Enums(beginner, intermediate, advanced)
// @Param search query string false "Search in title and description"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse{items=[]dto.FormationResponse}
// @Router /formations [get]
func (ctrl *FormationController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := &dto.FormationFilterRequest{
		Category: optionalQuery(c, "category"),
		Level:    optionalQuery(c, "level"),
		Search:   optionalQuery(c, "search"),
		Page:     page,
		Limit:    limit,
	}

	formations, total, err := ctrl.formationService.List(c.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.FormationResponse, 0, len(formations))
	for _, f := range formations {
		items = append(items, dto.FromFormation(f))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPagination(total, page, limit),
	})
}

// GetByID godoc
// @Summary Get a formation with its modules
// @Tags formations
// @Produce json
// @Param id path int true "Formation id"
// @Success 200 {object} dto.FormationDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /formations/{id} [get]
func (ctrl *FormationController) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation identifier"))
		return
	}

	formation, err := ctrl.formationService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFormationDetail(formation))
}

// Create godoc
// @Summary Create a formation
// @Description Administrators only
// @Tags formations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFormationRequest true "Formation data"
// @Success 201 {object} dto.FormationDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /formations [post]
func (ctrl *FormationController) Create(c *gin.Context) {
	var req dto.CreateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation data"))
		return
	}

	formation, err := ctrl.formationService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromFormationDetail(formation))
}

// Update godoc
// @Summary Update a formation
// @Description Administrators only; omitted fields are unchanged
// @Tags formations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Formation id"
// @Param request body dto.UpdateFormationRequest true "Fields to change"
// @Success 200 {object} dto.FormationDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /formations/{id} [put]
func (ctrl *FormationController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation identifier"))
		return
	}

	var req dto.UpdateFormationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation data"))
		return
	}

	formation, err := ctrl.formationService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromFormationDetail(formation))
}

// Delete godoc
// @Summary Delete a formation
// @Description Administrators only
// @Tags formations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Formation id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /formations/{id} [delete]
func (ctrl *FormationController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation identifier"))
		return
	}

	if err := ctrl.formationService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Formation deleted successfully"})
}
