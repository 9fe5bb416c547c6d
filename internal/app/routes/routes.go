package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/findup-dz/findup-api/internal/app/controllers"
	"github.com/findup-dz/findup-api/internal/app/models"
	"github.com/findup-dz/findup-api/internal/middleware"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
)

// Controllers bundles all HTTP controllers for route registration.
type Controllers struct {
	Auth        *controllers.AuthController
	User        *controllers.UserController
	Formation   *controllers.FormationController
	Job         *controllers.JobController
	Enrollment  *controllers.EnrollmentController
	Application *controllers.ApplicationController
}

// Register wires all routes onto the engine. The API lives under /api/v1;
// health, metrics and the Swagger UI sit at the root.
func Register(engine *gin.Engine, ctrls *Controllers, jwtService *auth.JWTService) {
	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := engine.Group("/api/v1")
	authenticated := middleware.JWTAuth(jwtService)
	adminOnly := middleware.RoleRequired(models.RoleAdmin)

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", ctrls.Auth.Register)
		authGroup.POST("/login", ctrls.Auth.Login)
		authGroup.GET("/me", authenticated, ctrls.Auth.Me)
	}

	profileGroup := api.Group("/profile", authenticated)
	{
		profileGroup.GET("", ctrls.User.GetProfile)
		profileGroup.PUT("", ctrls.User.UpdateProfile)
	}

	formationGroup := api.Group("/formations")
	{
		formationGroup.GET("", ctrls.Formation.List)
		formationGroup.GET("/:id", ctrls.Formation.GetByID)
		formationGroup.POST("", authenticated, adminOnly, ctrls.Formation.Create)
		formationGroup.PUT("/:id", authenticated, adminOnly, ctrls.Formation.Update)
		formationGroup.DELETE("/:id", authenticated, adminOnly, ctrls.Formation.Delete)
	}

	jobGroup := api.Group("/jobs")
	{
		jobGroup.GET("", ctrls.Job.List)
		jobGroup.GET("/:id", ctrls.Job.GetByID)
		jobGroup.POST("", authenticated, adminOnly, ctrls.Job.Create)
		jobGroup.PUT("/:id", authenticated, adminOnly, ctrls.Job.Update)
		jobGroup.DELETE("/:id", authenticated, adminOnly, ctrls.Job.Delete)
	}

	enrollmentGroup := api.Group("/enrollments", authenticated)
	{
		enrollmentGroup.POST("", ctrls.Enrollment.Create)
		enrollmentGroup.GET("", ctrls.Enrollment.List)
	}

	applicationGroup := api.Group("/applications", authenticated)
	{
		applicationGroup.POST("", ctrls.Application.Create)
		applicationGroup.GET("", ctrls.Application.List)
	}

	// Profile-page projections and withdrawals live under /users and
	// address the relationship rows, not the catalog entries.
	userGroup := api.Group("/users", authenticated)
	{
		userGroup.GET("/formations", ctrls.Enrollment.Recent)
		userGroup.DELETE("/formations", ctrls.Enrollment.Withdraw)
		userGroup.GET("/applications", ctrls.Application.Recent)
		userGroup.DELETE("/applications", ctrls.Application.Withdraw)
	}
}
