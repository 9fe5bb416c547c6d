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

// JobController handles job catalog endpoints.
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{jobService: jobService}
}

// List godoc
// @Summary List active job postings
// @Tags jobs
// @Produce json
// @Param category query string false "Category filter"
// @Param type query string false "Job type filter"
// @Param location query string false "Location filter (substring match)"
// @Param remote query bool false "Remote only"
// @Param search query string false "Search in title, company and description"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PaginatedResponse{items=[]dto.JobResponse}
// @Router /jobs [get]
func (ctrl *JobController) List(c *gin.Context) {
	page, limit := helpers.ParsePaginationParams(c)
	filter := &dto.JobFilterRequest{
		Category: optionalQuery(c, "category"),
		Type:     optionalQuery(c, "type"),
		Location: optionalQuery(c, "location"),
		Search:   optionalQuery(c, "search"),
		Page:     page,
		Limit:    limit,
	}

	var remote *bool
	if raw := c.Query("remote"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			remote = &value
		}
	}

	jobs, total, err := ctrl.jobService.List(c.Request.Context(), filter, remote)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	items := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, dto.FromJob(j))
	}

	c.JSON(http.StatusOK, dto.PaginatedResponse{
		Items:      items,
		Pagination: helpers.NewPagination(total, page, limit),
	})
}

// GetByID godoc
// @Summary Get a job posting
// @Tags jobs
// @Produce json
// @Param id path int true "Job id"
// @Success 200 {object} dto.JobDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [get]
func (ctrl *JobController) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job identifier"))
		return
	}

	job, err := ctrl.jobService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromJobDetail(job))
}

// Create godoc
// @Summary Create a job posting
// @Description Administrators only
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateJobRequest true "Job data"
// @Success 201 {object} dto.JobDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /jobs [post]
func (ctrl *JobController) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	job, err := ctrl.jobService.Create(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromJobDetail(job))
}

// Update godoc
// @Summary Update a job posting
// @Description Administrators only; omitted fields are unchanged
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job id"
// @Param request body dto.UpdateJobRequest true "Fields to change"
// @Success 200 {object} dto.JobDetailResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [put]
func (ctrl *JobController) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job identifier"))
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job data"))
		return
	}

	job, err := ctrl.jobService.Update(c.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromJobDetail(job))
}

// Delete godoc
// @Summary Delete a job posting
// @Description Administrators only
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "Job id"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /jobs/{id} [delete]
func (ctrl *JobController) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid job identifier"))
		return
	}

	if err := ctrl.jobService.Delete(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted successfully"})
}
