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

// EnrollmentController handles the caller's formation enrollments.
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// Create godoc
// @Summary Enroll in a formation
// @Description Creates the caller's enrollment; at most one per formation
// @Tags enrollments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEnrollmentRequest true "Formation to enroll in"
// @Success 201 {object} dto.EnrollmentCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /enrollments [post]
func (ctrl *EnrollmentController) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.CreateEnrollmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid formation identifier"))
		return
	}

	enrollment, err := ctrl.enrollmentService.Enroll(c.Request.Context(), caller.UserID, req.FormationID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.EnrollmentCreatedResponse{
		Message: "Enrollment created successfully",
		Enrollment: dto.EnrollmentSummary{
			ID:        enrollment.ID,
			Status:    string(enrollment.Status),
			StartDate: enrollment.StartDate,
		},
	})
}

// List godoc
// @Summary List own enrollments
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(active, completed, cancelled, paused)
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse{items=[]dto.EnrollmentItemResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /enrollments [get]
func (ctrl *EnrollmentController) List(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	page, limit := helpers.ParsePaginationParams(c)
	status := optionalQuery(c, "status")

	enrollments, total, err := ctrl.enrollmentService.List(c.Request.Context(), caller.UserID, status, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.EnrollmentItemResponse, 0, len(enrollments))
	for _, e := range enrollments {
		items = append(items, dto.FromEnrollmentListItem(e))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPagination(total, page, limit),
	})
}

// Recent godoc
// @Summary List recent enrollments for the profile page
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RecentFormationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/formations [get]
func (ctrl *EnrollmentController) Recent(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	enrollments, err := ctrl.enrollmentService.ListRecent(c.Request.Context(), caller.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.RecentFormationResponse, 0, len(enrollments))
	for _, e := range enrollments {
		item := dto.RecentFormationResponse{
			ID:        e.ID,
			Title:     dto.UnknownFormationLabel,
			Provider:  dto.UnknownFormationLabel,
			Progress:  e.Progress,
			StartDate: e.StartDate,
		}
		if e.FormationTitle != nil {
			item.Title = *e.FormationTitle
		}
		if e.FormationProvider != nil {
			item.Provider = *e.FormationProvider
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// Withdraw godoc
// @Summary Withdraw from a formation
// @Description Deletes the caller's enrollment identified by the id query parameter
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param id query int true "Enrollment id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/formations [delete]
func (ctrl *EnrollmentController) Withdraw(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid enrollment identifier"))
		return
	}

	if err := ctrl.enrollmentService.Withdraw(c.Request.Context(), caller.UserID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Enrollment withdrawn successfully"})
}
