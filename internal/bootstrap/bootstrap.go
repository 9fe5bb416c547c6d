package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	_ "github.com/findup-dz/findup-api/docs" // generated swagger docs
	"github.com/findup-dz/findup-api/internal/app/controllers"
	"github.com/findup-dz/findup-api/internal/app/migrations"
	"github.com/findup-dz/findup-api/internal/app/repositories"
	"github.com/findup-dz/findup-api/internal/app/routes"
	"github.com/findup-dz/findup-api/internal/app/services"
	"github.com/findup-dz/findup-api/internal/config"
	"github.com/findup-dz/findup-api/internal/db"
	"github.com/findup-dz/findup-api/internal/middleware"
	"github.com/findup-dz/findup-api/internal/pkg/auth"
	"github.com/findup-dz/findup-api/internal/pkg/logger"
	"github.com/findup-dz/findup-api/internal/seed"
)

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos       *repositories.Repositories
	JWTService  *auth.JWTService
	Controllers *routes.Controllers
}

// LoadConfigAndSetupLogger loads .env and configuration, then configures the
// global logger from it.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(filepath.Join("configs", "config.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	middleware.SetExposeInternalErrors(cfg.IsDevelopment())

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("mode", cfg.Server.Mode).
		Msg("Configuration loaded")
	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, runs migrations, and seeds demo data
// when demo mode is on.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	pool := database.Pool
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrations.NewMigrator(pool).MigrateFromDirectory(migrationsDir); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if cfg.DemoMode {
		if err := seed.CreateDemoData(context.Background(), pool); err != nil {
			// Seeding is a convenience; a failed seed should not keep
			// the API down.
			logger.Error().Err(err).Msg("Failed to seed demo data, continuing")
		}
	}

	return pool, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(cfg *config.Config, pool *pgxpool.Pool) *Dependencies {
	repos := repositories.NewRepositories(pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.TokenExpiry(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	authService := services.NewAuthService(repos.UserRepository, jwtService)
	userService := services.NewUserService(repos.UserRepository)
	formationService := services.NewFormationService(repos.FormationRepository)
	jobService := services.NewJobService(repos.JobRepository)
	enrollmentService := services.NewEnrollmentService(repos.EnrollmentRepository, repos.FormationRepository, repos.UserRepository)
	applicationService := services.NewApplicationService(repos.ApplicationRepository, repos.JobRepository, repos.UserRepository)

	return &Dependencies{
		Repos:      repos,
		JWTService: jwtService,
		Controllers: &routes.Controllers{
			Auth:        controllers.NewAuthController(authService),
			User:        controllers.NewUserController(userService),
			Formation:   controllers.NewFormationController(formationService),
			Job:         controllers.NewJobController(jobService),
			Enrollment:  controllers.NewEnrollmentController(enrollmentService),
			Application: controllers.NewApplicationController(applicationService),
		},
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.Metrics())

	routes.Register(engine, deps.Controllers, deps.JWTService)
	return engine
}
