package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/bayms/backend/internal/app/controllers"
	appMigrations "github.com/bayms/backend/internal/app/migrations"
	appRepos "github.com/bayms/backend/internal/app/repositories"
	appRoutes "github.com/bayms/backend/internal/app/routes"
	appServices "github.com/bayms/backend/internal/app/services"
	"github.com/bayms/backend/internal/config"
	"github.com/bayms/backend/internal/db"
	appMiddleware "github.com/bayms/backend/internal/middleware"
	pkgAuth "github.com/bayms/backend/internal/pkg/auth"
	"github.com/bayms/backend/internal/pkg/filestorage"
	"github.com/bayms/backend/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	Services            *appServices.Services
	JWTService          *pkgAuth.JWTService
	FileStorage         *filestorage.LocalStorage
	AuthController      *appControllers.AuthController
	ProfileController   *appControllers.ProfileController
	ContentController   *appControllers.ContentController
	MemberController    *appControllers.MemberController
	EventController     *appControllers.EventController
	LocationController  *appControllers.LocationController
	RecordingController *appControllers.RecordingController
	HighlightController *appControllers.HighlightController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Logger              zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

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
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage references must resolve through the static file
	// serving endpoint
	baseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid access token expiration: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth)
	deps.ProfileController = appControllers.NewProfileController(deps.Services.Profile)
	deps.ContentController = appControllers.NewContentController(deps.Services.Performance, deps.Services.Member)
	deps.MemberController = appControllers.NewMemberController(deps.Services.Member)
	deps.EventController = appControllers.NewEventController(deps.Services.Event)
	deps.LocationController = appControllers.NewLocationController(deps.Services.Location)
	deps.RecordingController = appControllers.NewRecordingController(deps.Services.Recording)
	deps.HighlightController = appControllers.NewHighlightController(deps.Services.Highlight)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ProfileController,
		deps.ContentController,
		deps.MemberController,
		deps.EventController,
		deps.LocationController,
		deps.RecordingController,
		deps.HighlightController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
