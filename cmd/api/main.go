package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/meeting-minutes-team/meeting-minutes/internal/adapter/handler"
	minutesuse "github.com/meeting-minutes-team/meeting-minutes/internal/usecase/minutes"
	"github.com/meeting-minutes-team/meeting-minutes/internal/usecase/report"
	"github.com/meeting-minutes-team/meeting-minutes/internal/usecase/transcription"
	pkgai "github.com/meeting-minutes-team/meeting-minutes/pkg/ai"
	"github.com/meeting-minutes-team/meeting-minutes/pkg/config"
	pkgvalidator "github.com/meeting-minutes-team/meeting-minutes/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Register HTML template renderer
	e.Renderer = handler.NewTemplateRenderer()

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// Initialize the Groq client; one credential covers transcription and
	// chat extraction.
	groqClient := pkgai.NewGroqClient(&cfg.Groq)

	// Initialize pipeline services
	transcriber := transcription.NewService(groqClient, cfg.Documents.TempDir, cfg.Groq.CallTimeout, logger)
	assembler := minutesuse.NewService(groqClient, cfg.Groq.CallTimeout, logger)
	renderer := report.NewService(cfg.Documents.Dir, logger)

	minutesHandler := handler.NewMinutesHandler(transcriber, assembler, renderer, logger)

	router := handler.NewRouter(cfg, minutesHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
