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

// ApplicationController handles the caller's job applications.
type ApplicationController struct {
	applicationService *services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService *services.ApplicationService) *ApplicationController {
	return &ApplicationController{applicationService: applicationService}
}

// Create godoc
// @Summary Apply to a job
// @Description Creates the caller's application; at most one per job
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateApplicationRequest true "Job to apply to"
// @Success 201 {object} dto.ApplicationCreatedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /applications [post]
func (ctrl *ApplicationController) Create(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job identifier"))
		return
	}

	application, err := ctrl.applicationService.Apply(c.Request.Context(), caller.UserID, req.JobID, req.CoverLetter)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ApplicationCreatedResponse{
		Message: "Application submitted successfully",
		Application: dto.ApplicationSummary{
			ID:        application.ID,
			Status:    string(application.Status),
			AppliedAt: application.AppliedAt,
		},
	})
}

// List godoc
// @Summary List own applications
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter" Enums(pending, reviewed, interview, accepted, rejected)
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse{items=[]dto.ApplicationItemResponse}
// @Failure 401 {object} dto.ErrorResponse
// @Router /applications [get]
func (ctrl *ApplicationController) List(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	page, limit := helpers.ParsePaginationParams(c)
	status := optionalQuery(c, "status")

	applications, total, err := ctrl.applicationService.List(c.Request.Context(), caller.UserID, status, page, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.ApplicationItemResponse, 0, len(applications))
	for _, a := range applications {
		items = append(items, dto.FromApplicationListItem(a))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPagination(total, page, limit),
	})
}

// Recent godoc
// @Summary List recent applications for the profile page
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.RecentApplicationResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /users/applications [get]
func (ctrl *ApplicationController) Recent(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	applications, err := ctrl.applicationService.ListRecent(c.Request.Context(), caller.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.RecentApplicationResponse, 0, len(applications))
	for _, a := range applications {
		item := dto.RecentApplicationResponse{
			ID:      a.ID,
			Job:     dto.UnknownJobLabel,
			Company: dto.UnknownJobLabel,
			Date:    a.AppliedAt,
			Status:  string(a.Status),
		}
		if a.JobTitle != nil {
			item.Job = *a.JobTitle
		}
		if a.JobCompany != nil {
			item.Company = *a.JobCompany
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, items)
}

// Withdraw godoc
// @Summary Withdraw a job application
// @Description Deletes the caller's application identified by the id query parameter
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id query int true "Application id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /users/applications [delete]
func (ctrl *ApplicationController) Withdraw(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid application identifier"))
		return
	}

	if err := ctrl.applicationService.Withdraw(c.Request.Context(), caller.UserID, id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application withdrawn successfully"})
}
