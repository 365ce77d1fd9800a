package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/oguzk/coursereg/internal/app/auth"
	appControllers "github.com/oguzk/coursereg/internal/app/controllers"
	appMigrations "github.com/oguzk/coursereg/internal/app/migrations"
	appRepos "github.com/oguzk/coursereg/internal/app/repositories"
	appRoutes "github.com/oguzk/coursereg/internal/app/routes"
	appServices "github.com/oguzk/coursereg/internal/app/services"
	"github.com/oguzk/coursereg/internal/config"
	"github.com/oguzk/coursereg/internal/db"
	appMiddleware "github.com/oguzk/coursereg/internal/middleware"
	"github.com/oguzk/coursereg/internal/pkg/logger"
	"github.com/oguzk/coursereg/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	CourseService        appServices.CourseService
	RequestService       appServices.RequestService
	SupervisorService    appServices.SupervisorService
	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	RequestController    *appControllers.RequestController
	SupervisorController *appControllers.SupervisorController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// installs the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg.Registration.DefaultSupervisorID, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, cfg.Registration.DefaultSupervisorID)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.RequestService = appServices.NewRequestService(deps.Repos.RequestRepository)
	deps.SupervisorService = appServices.NewSupervisorService(deps.Repos.UserRepository, deps.Repos.RequestRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(appAuth.NewHeaderAuthenticator())

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.RequestController = appControllers.NewRequestController(deps.RequestService, lgr)
	deps.SupervisorController = appControllers.NewSupervisorController(deps.SupervisorService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.RequestController,
		deps.SupervisorController,
		deps.AuthMiddleware,
	)

	return router
}
