package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	appAvailability "github.com/Dermofet/MephiApp-sub000/internal/app/availability"
	appControllers "github.com/Dermofet/MephiApp-sub000/internal/app/controllers"
	appMigrations "github.com/Dermofet/MephiApp-sub000/internal/app/migrations"
	"github.com/Dermofet/MephiApp-sub000/internal/app/models"
	appRepos "github.com/Dermofet/MephiApp-sub000/internal/app/repositories"
	appRoutes "github.com/Dermofet/MephiApp-sub000/internal/app/routes"
	appServices "github.com/Dermofet/MephiApp-sub000/internal/app/services"
	"github.com/Dermofet/MephiApp-sub000/internal/config"
	"github.com/Dermofet/MephiApp-sub000/internal/db"
	"github.com/Dermofet/MephiApp-sub000/internal/importer"
	appMiddleware "github.com/Dermofet/MephiApp-sub000/internal/middleware"
	pkgAuth "github.com/Dermofet/MephiApp-sub000/internal/pkg/auth"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/filestorage"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/logger"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/publish"
	"github.com/Dermofet/MephiApp-sub000/internal/pkg/websocket"
	"github.com/Dermofet/MephiApp-sub000/internal/seed"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CorpsService    appServices.CorpsService
	RoomService     appServices.RoomService
	LessonService   appServices.LessonService
	SemesterService appServices.SemesterService
	FreeRoomService appServices.FreeRoomService
	ImportService   appServices.ImportService
	AuthService     *appServices.AuthService

	AuthController     *appControllers.AuthController
	CorpsController    *appControllers.CorpsController
	RoomController     *appControllers.RoomController
	LessonController   *appControllers.LessonController
	SemesterController *appControllers.SemesterController
	FreeRoomController *appControllers.FreeRoomController
	ImportController   *appControllers.ImportController
	WebSocketHandler   *websocket.Handler

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Hub            *websocket.Hub
	Listener       *websocket.Listener // nil unless auto publishing is on
	ImportDB       *sqlx.DB
	FileStorage    *filestorage.LocalStorage
	Publisher      publish.Publisher
	PublishWindow  appAvailability.Window
	Logger         zerolog.Logger
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
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
			Compress:   true,
		},
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Str("path", cfg.Database.MigrationsDir).Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	defaults := seed.Defaults{
		Corps:         cfg.Seed.Corps,
		SemesterStart: cfg.Seed.SemesterStart,
	}
	if err := seed.CreateDefaultData(ctx, appRepos.NewCorpsRepository(dbPool), appRepos.NewSemesterRepository(dbPool), defaults, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// publishWindow parses the configured window of published snapshots
func publishWindow(cfg *config.Config) (appAvailability.Window, error) {
	start, err := models.ParseTimeOfDay(cfg.Firebase.WindowStart)
	if err != nil {
		return appAvailability.Window{}, err
	}
	end, err := models.ParseTimeOfDay(cfg.Firebase.WindowEnd)
	if err != nil {
		return appAvailability.Window{}, err
	}
	return appAvailability.NewWindow(start, end)
}

// newPublisher connects to the realtime database, or returns a publisher that refuses every call
func newPublisher(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (publish.Publisher, error) {
	if !cfg.Firebase.Enabled {
		lgr.Info().Msg("Firebase publishing disabled")
		return publish.Disabled{}, nil
	}
	publisher, err := publish.NewFirebasePublisher(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.DatabaseURL, lgr)
	if err != nil {
		return nil, err
	}
	lgr.Info().Str("databaseURL", cfg.Firebase.DatabaseURL).Msg("Firebase publisher initialized")
	return publisher, nil
}

// BuildDependencies initializes repositories, services and controllers.
// The hub and the listener are created but not started.
func BuildDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	var err error

	deps.Repos = appRepos.NewRepositories(dbPool)
	deps.Hub = websocket.NewHub(lgr)

	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.ImportArchiveDir, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.ImportDB, err = importer.Open(cfg.GetPostgresConnectionString())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open import database handle")
		return nil, fmt.Errorf("failed to open import database handle: %w", err)
	}

	deps.PublishWindow, err = publishWindow(cfg)
	if err != nil {
		deps.Close()
		return nil, fmt.Errorf("invalid publish window: %w", err)
	}

	deps.Publisher, err = newPublisher(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize firebase publisher")
		deps.Close()
		return nil, fmt.Errorf("failed to initialize firebase publisher: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// Services
	deps.AuthService = appServices.NewAuthService(appServices.AdminAccount{
		Username:     cfg.Auth.AdminUsername,
		PasswordHash: cfg.Auth.AdminPasswordHash,
	}, deps.JWTService, lgr)
	if cfg.Auth.AdminPasswordHash == "" {
		lgr.Warn().Msg("No administrator password hash configured, editing endpoints are unreachable")
	}

	deps.CorpsService = appServices.NewCorpsService(deps.Repos.CorpsRepository, deps.Hub)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository, deps.Hub)
	deps.LessonService = appServices.NewLessonService(deps.Repos.LessonRepository, deps.Hub)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, deps.Hub, cfg.Location())
	deps.FreeRoomService = appServices.NewFreeRoomService(
		deps.Repos.AvailabilityRepository,
		deps.Repos.CorpsRepository,
		deps.Publisher,
		appServices.FreeRoomOptions{
			MinGap:        cfg.MinGap(),
			Location:      cfg.Location(),
			PublishWindow: deps.PublishWindow,
		},
		lgr,
	)
	deps.ImportService = appServices.NewImportService(
		deps.FileStorage,
		importer.NewLoader(deps.ImportDB, lgr),
		deps.Hub,
		lgr,
	)

	if cfg.Firebase.Enabled && cfg.Firebase.AutoPublish {
		deps.Listener = websocket.NewListener(deps.Hub, deps.FreeRoomService.RepublishToday, cfg.PublishDebounce(), lgr)
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	// Controllers
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CorpsController = appControllers.NewCorpsController(deps.CorpsService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService)
	deps.SemesterController = appControllers.NewSemesterController(deps.SemesterService)
	deps.FreeRoomController = appControllers.NewFreeRoomController(deps.FreeRoomService, deps.PublishWindow)
	deps.ImportController = appControllers.NewImportController(deps.ImportService)
	deps.WebSocketHandler = websocket.NewHandler(deps.Hub, lgr)

	return deps, nil
}

// Start runs the background workers until ctx is cancelled
func (d *Dependencies) Start(ctx context.Context) {
	go d.Hub.Run(ctx)
	if d.Listener != nil {
		d.Listener.Start(ctx)
		d.Logger.Info().Msg("Automatic free room publishing enabled")
	}
}

// Close releases the resources not owned by the pool
func (d *Dependencies) Close() {
	if d.ImportDB != nil {
		if err := d.ImportDB.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Failed to close import database handle")
		}
	}
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

	if err := appMiddleware.RegisterValidators(); err != nil {
		lgr.Error().Err(err).Msg("Failed to register request validators")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CorpsController,
		deps.RoomController,
		deps.LessonController,
		deps.SemesterController,
		deps.FreeRoomController,
		deps.ImportController,
		deps.WebSocketHandler,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success", "time": time.Now().UTC()})
	})

	return router
}
