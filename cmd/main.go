package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/japanesestudent/courseview/docs"
	"github.com/japanesestudent/courseview/internal/config"
	"github.com/japanesestudent/courseview/internal/handlers"
	"github.com/japanesestudent/courseview/internal/logger"
	"github.com/japanesestudent/courseview/internal/middleware"
	"github.com/japanesestudent/courseview/internal/repositories"
	"github.com/japanesestudent/courseview/internal/services"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title JapaneseStudent Course View API
// @version 1.0
// @description Lesson table state and course reads for the course front end

// @contact.name API Support
// @contact.email shelyahin.mihail@gmail.com

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting JapaneseStudent Course View Service",
		zap.String("courses_api", cfg.CoursesAPI.BaseURL),
	)

	// Initialize backend gateway
	backendClient := repositories.NewBackendClient(cfg.CoursesAPI.BaseURL, cfg.CoursesAPI.Timeout)
	coursesGateway := repositories.NewCoursesGateway(backendClient, logger.Logger)

	// Initialize services
	notifier := services.NewLogNotifier(logger.Logger)
	lessonViewService := services.NewLessonViewService(coursesGateway, notifier, logger.Logger)
	courseDraftService := services.NewCourseDraftService(logger.Logger)

	// Initialize handlers
	lessonViewHandler := handlers.NewLessonViewHandler(lessonViewService, logger.Logger)
	courseDraftHandler := handlers.NewCourseDraftHandler(courseDraftService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		lessonViewHandler.RegisterRoutes(r)
		courseDraftHandler.RegisterRoutes(r)
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.CoursesAPI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	lessonViewService.Close()

	logger.Logger.Info("Server exited")
}
