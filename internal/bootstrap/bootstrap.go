package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/caprinak/StudentManagement/internal/app/controllers"
	appMigrations "github.com/caprinak/StudentManagement/internal/app/migrations"
	appRepos "github.com/caprinak/StudentManagement/internal/app/repositories"
	appRoutes "github.com/caprinak/StudentManagement/internal/app/routes"
	appServices "github.com/caprinak/StudentManagement/internal/app/services"
	"github.com/caprinak/StudentManagement/internal/config"
	"github.com/caprinak/StudentManagement/internal/db"
	appMiddleware "github.com/caprinak/StudentManagement/internal/middleware"
	"github.com/caprinak/StudentManagement/internal/pkg/logger"
	"github.com/caprinak/StudentManagement/internal/pkg/metrics"
	"github.com/caprinak/StudentManagement/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services              *appServices.Services
	Repos                 *appRepos.Repositories
	FacultyController     *appControllers.FacultyController
	CohortController      *appControllers.CohortController
	CourseController      *appControllers.CourseController
	StudentController     *appControllers.StudentController
	LibraryCardController *appControllers.LibraryCardController
	ResultController      *appControllers.ResultController
	Logger                zerolog.Logger
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
// seeds demo data when enabled.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied")

	if cfg.Seed.Demo {
		if err := seed.Demo(ctx, database); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database, nil
}

// BuildDependencies wires repositories, services and controllers.
func BuildDependencies(database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	repos := appRepos.NewRepositories(database.Pool)
	services := appServices.NewServices(repos)

	return &Dependencies{
		Services:              services,
		Repos:                 repos,
		FacultyController:     appControllers.NewFacultyController(services.FacultyService),
		CohortController:      appControllers.NewCohortController(services.CohortService),
		CourseController:      appControllers.NewCourseController(services.CourseService),
		StudentController:     appControllers.NewStudentController(services.StudentService),
		LibraryCardController: appControllers.NewLibraryCardController(services.LibraryCardService),
		ResultController:      appControllers.NewResultController(services.ResultService),
		Logger:                lgr,
	}
}

// SetupRouter creates the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(metrics.Middleware())

	router.GET("/metrics", metrics.Handler())

	appRoutes.SetupRouter(
		router,
		deps.FacultyController,
		deps.CohortController,
		deps.CourseController,
		deps.StudentController,
		deps.LibraryCardController,
		deps.ResultController,
	)

	return router
}
