// @title Game Roster API
// @version 1.0
// @description Игроки, игры и состав игр (не больше 5 игроков в игре).
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/game-roster/config"
	"github.com/Dosada05/game-roster/db"
	"github.com/Dosada05/game-roster/events"
	"github.com/Dosada05/game-roster/handlers"
	"github.com/Dosada05/game-roster/repositories"
	api "github.com/Dosada05/game-roster/routes"
	"github.com/Dosada05/game-roster/services"
	"github.com/Dosada05/game-roster/storage"
)

func main() {
	// Логгер до загрузки конфигурации
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		logger.Error("invalid log level", slog.Any("error", err))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort), slog.String("db_driver", cfg.DBDriver))

	if cfg.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET_KEY is not set, tokens are signed with the default secret")
	}

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(migrateCtx, dbConn, cfg.DBDriver)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("database migrations applied")

	// Загрузчик логотипов (Cloudflare R2) опционален
	var uploader storage.FileUploader
	if cfg.StorageEnabled() {
		uploader, err = storage.NewCloudflareR2Uploader(context.Background(), storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		logger.Info("R2 storage is not configured, logo uploads are disabled")
	}

	// WebSocket Hub
	wsHub := events.NewHub(logger)

	// Репозитории
	playerRepo := repositories.NewPlayerRepository(dbConn)
	gameRepo := repositories.NewGameRepository(dbConn)

	// Сервисы
	authService, err := services.NewAuthService(services.AuthConfig{
		Username:  cfg.AuthUsername,
		Password:  cfg.AuthPassword,
		Secret:    cfg.JWTSecretKey,
		AccessTTL: cfg.JWTAccessTTL,
	})
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	playerService := services.NewPlayerService(playerRepo)
	gameService := services.NewGameService(gameRepo, playerRepo, uploader, wsHub, logger)
	adminService := services.NewAdminService(playerRepo, gameRepo)
	dashboardService := services.NewDashboardService(playerRepo, gameRepo)
	logger.Info("Services initialized")

	router := api.NewRouter(api.Options{
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
		Tokens:         authService,
	}, api.Handlers{
		Auth:      handlers.NewAuthHandler(authService),
		Player:    handlers.NewPlayerHandler(playerService),
		Game:      handlers.NewGameHandler(gameService),
		Admin:     handlers.NewAdminHandler(adminService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.AllowedOrigins, logger),
		Health:    handlers.NewHealthHandler(dbConn),
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		// Websocket-соединения hijacked, Shutdown их не ждёт.
		wsHub.Close()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
