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

	"github.com/darshan1301/psfa-landing-page-sub001/config"
	"github.com/darshan1301/psfa-landing-page-sub001/db"
	"github.com/darshan1301/psfa-landing-page-sub001/handlers"
	"github.com/darshan1301/psfa-landing-page-sub001/middleware"
	"github.com/darshan1301/psfa-landing-page-sub001/realtime"
	"github.com/darshan1301/psfa-landing-page-sub001/repositories"
	api "github.com/darshan1301/psfa-landing-page-sub001/routes"
	"github.com/darshan1301/psfa-landing-page-sub001/services"
	"github.com/darshan1301/psfa-landing-page-sub001/storage"
	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
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

	// Инициализация загрузчика файлов (S3)
	uploader, err := storage.NewS3Uploader(storage.S3UploaderConfig{
		Region:          cfg.AWSRegion,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
		BucketName:      cfg.AWSBucketName,
		PublicBaseURL:   cfg.PublicBaseURL,
	})
	if err != nil {
		logger.Error("failed to initialize S3 uploader", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("S3 uploader initialized")

	// Лента событий панели администратора
	hub := realtime.NewHub(logger)
	go hub.Run()

	// Инициализация репозиториев
	sportRepo := repositories.NewPostgresSportRepository(dbConn)
	testimonialRepo := repositories.NewPostgresTestimonialRepository(dbConn)
	teamMemberRepo := repositories.NewPostgresTeamMemberRepository(dbConn)
	milestoneRepo := repositories.NewPostgresMilestoneRepository(dbConn)
	infraRepo := repositories.NewPostgresInfrastructureRepository(dbConn)
	positionRepo := repositories.NewPostgresJobPositionRepository(dbConn)
	applicationRepo := repositories.NewPostgresJobApplicationRepository(dbConn)
	enquiryRepo := repositories.NewPostgresEnquiryRepository(dbConn)
	subscriberRepo := repositories.NewPostgresSubscriberRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminUserRepository(dbConn)
	logger.Info("repositories initialized")

	// Инициализация сервисов
	bucket := cfg.AWSBucketName
	emailService := services.NewEmailService(cfg, logger)
	authService := services.NewAuthService(adminRepo, cfg.AdminSignupSecret)
	sportService := services.NewSportService(sportRepo, uploader, bucket, logger)
	testimonialService := services.NewTestimonialService(testimonialRepo, uploader, bucket, logger)
	teamMemberService := services.NewTeamMemberService(teamMemberRepo, uploader, bucket, logger)
	milestoneService := services.NewMilestoneService(milestoneRepo, uploader, bucket, logger)
	infraService := services.NewInfrastructureService(infraRepo, uploader, bucket, logger)
	jobService := services.NewJobService(positionRepo, applicationRepo)
	enquiryService := services.NewEnquiryService(enquiryRepo)
	subscriberService := services.NewSubscriberService(subscriberRepo)
	logger.Info("services initialized")

	// Инициализация обработчиков HTTP
	h := api.Handlers{
		Auth:           handlers.NewAuthHandler(authService, cfg.JWTSecretKey, cfg.IsProduction()),
		Sport:          handlers.NewSportHandler(sportService),
		Testimonial:    handlers.NewTestimonialHandler(testimonialService),
		TeamMember:     handlers.NewTeamMemberHandler(teamMemberService),
		Milestone:      handlers.NewMilestoneHandler(milestoneService),
		Infrastructure: handlers.NewInfrastructureHandler(infraService),
		Job:            handlers.NewJobHandler(jobService, emailService, hub),
		Enquiry:        handlers.NewEnquiryHandler(enquiryService, emailService, hub),
		Subscriber:     handlers.NewSubscriberHandler(subscriberService, hub),
		Upload:         handlers.NewUploadHandler(uploader),
		Events:         handlers.NewEventsHandler(hub, logger),
	}

	// Настройка маршрутизатора
	gate := middleware.NewPanelGate(cfg.JWTSecretKey)
	router := chi.NewRouter()
	api.SetupRoutes(router, gate, h)
	logger.Info("routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
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
