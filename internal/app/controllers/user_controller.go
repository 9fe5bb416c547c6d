package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/app/services"
	"github.com/findup-dz/findup-api/internal/middleware"
)

// UserController handles profile endpoints.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /profile [get]
func (ctrl *UserController) GetProfile(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	user, err := ctrl.userService.GetProfile(c.Request.Context(), caller.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Applies the given fields to the caller's profile; omitted fields are unchanged
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /profile [put]
func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	upd := &models.ProfileUpdate{
		Name:       req.Name,
		Image:      req.Image,
		Phone:      req.Phone,
		Bio:        req.Bio,
		Education:  req.Education,
		Skills:     req.Skills,
		Experience: req.Experience,
		Location:   req.Location,
	}

	user, err := ctrl.userService.UpdateProfile(c.Request.Context(), caller.UserID, upd)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}
