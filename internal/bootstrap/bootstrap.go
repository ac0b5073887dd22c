package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/campushub/internal/app/controllers"
	appMigrations "github.com/kaan/campushub/internal/app/migrations"
	appRepos "github.com/kaan/campushub/internal/app/repositories"
	appRoutes "github.com/kaan/campushub/internal/app/routes"
	appServices "github.com/kaan/campushub/internal/app/services"
	"github.com/kaan/campushub/internal/config"
	"github.com/kaan/campushub/internal/db"
	appMiddleware "github.com/kaan/campushub/internal/middleware"
	"github.com/kaan/campushub/internal/pkg/filestorage"
	"github.com/kaan/campushub/internal/pkg/logger"
	"github.com/kaan/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services        *appServices.Services
	AuthController  *appControllers.AuthController
	PostController  *appControllers.PostController
	UserController  *appControllers.UserController
	AdminController *appControllers.AdminController
	FileController  *appControllers.FileController
	PageController  *appControllers.PageController
	AuthMiddleware  *appMiddleware.AuthMiddleware
	Repos           *appRepos.Repositories
	Logger          zerolog.Logger
	FileStorage     *filestorage.LocalStorage
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed demo data outside of production (after migrations)
	if !cfg.IsProduction() {
		if err := seed.CreateDemoData(context.Background(), dbPool, lgr); err != nil {
			// Log the error but don't fail the startup
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Initialize file storage; baseURL must match the static file serving path
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Services = appServices.NewServices(deps.Repos, cfg, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.Session)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, deps.Services.Session, lgr)
	deps.PostController = appControllers.NewPostController(deps.Services.Post, deps.Services.Relation, lgr)
	deps.UserController = appControllers.NewUserController(deps.Services.User, deps.Services.Relation, deps.Services.Session, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.Services.User, lgr)
	deps.FileController = appControllers.NewFileController(deps.FileStorage, lgr)
	deps.PageController = appControllers.NewPageController()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupSwagger(router)

	// Serve uploaded files from the storage directory
	router.Static("/uploads", cfg.Server.StoragePath)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.PostController,
		deps.UserController,
		deps.AdminController,
		deps.FileController,
		deps.PageController,
		deps.AuthMiddleware,
		deps.Services.Session.CookieName(),
	)

	return router
}
