package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/findup-dz/findup-api/internal/app/models/dto"
	"github.com/findup-dz/findup-api/internal/app/services"
	"github.com/findup-dz/findup-api/internal/middleware"
	"github.com/findup-dz/findup-api/internal/pkg/apperrors"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
)

// AuthController handles registration, login and session identity endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new account
// @Description Creates an account with role user and returns its public profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email and password are required"))
		return
	}

	user, err := ctrl.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "Account created successfully",
		User:    dto.FromUser(user),
	})
}

// Login godoc
// @Summary Authenticate an account
// @Description Verifies credentials and returns a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	user, token, expiresIn, err := ctrl.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// An unknown email reads the same as a wrong password so the
		// endpoint cannot be used to probe registered addresses.
		if errors.Is(err, apperrors.ErrUserNotFound) {
			logger.Warn().Str("email", req.Email).Msg("Login failed: unknown email")
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password"))
			return
		}
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      dto.FromUser(user),
	})
}

// Me godoc
// @Summary Get the current account
// @Description Returns the account behind the session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (ctrl *AuthController) Me(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
		return
	}

	user, err := ctrl.authService.GetCurrentUser(c.Request.Context(), caller.UserID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromUser(user))
}
