package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pet-census-api/config"
	deliveryHttp "pet-census-api/internal/delivery/http"
	"pet-census-api/internal/delivery/http/handler"
	"pet-census-api/internal/delivery/http/middleware"
	"pet-census-api/internal/infrastructure/cache"
	"pet-census-api/internal/infrastructure/database"
	"pet-census-api/internal/infrastructure/storage"
	"pet-census-api/internal/repository"
	"pet-census-api/internal/service"
	"pet-census-api/internal/usecase"
	"pet-census-api/pkg/jwt"
	"pet-census-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, db, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize token service
	tokenService := service.NewTokenService(log, jwtService, redisClient)

	// Initialize photo storage
	photoStore, err := storage.NewPhotoStore(afero.NewOsFs(), cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository()
	petRepo := repository.NewPetRepository()
	consultationRepo := repository.NewConsultationRepository()

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, ownerRepo, tokenService)
	ownerUsecase := usecase.NewOwnerUsecase(db, log, ownerRepo)
	profileUsecase := usecase.NewProfileUsecase(db, log, ownerRepo, petRepo, tokenService, photoStore)
	petUsecase := usecase.NewPetUsecase(db, log, ownerRepo, petRepo, consultationRepo, photoStore)
	consultationUsecase := usecase.NewConsultationUsecase(db, log, ownerRepo, petRepo, consultationRepo)
	userUsecase := usecase.NewUserUsecase(db, log, ownerRepo, petRepo, tokenService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	ownerHandler := handler.NewOwnerHandler(ownerUsecase)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	petHandler := handler.NewPetHandler(petUsecase, customValidator)
	consultationHandler := handler.NewConsultationHandler(consultationUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, ownerHandler, profileHandler, petHandler, consultationHandler, userHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
