package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sirupsen/logrus"
	"github.com/ssmapp/safety_management_system/internal/config"
	v1 "github.com/ssmapp/safety_management_system/internal/handler/http/v1"
	"github.com/ssmapp/safety_management_system/internal/notify"
	"github.com/ssmapp/safety_management_system/internal/repository"
	"github.com/ssmapp/safety_management_system/internal/service"
	"github.com/ssmapp/safety_management_system/pkg/logger"
	"github.com/ssmapp/safety_management_system/pkg/postgres"
	redisclient "github.com/ssmapp/safety_management_system/pkg/redis"

	_ "github.com/ssmapp/safety_management_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Management System API
// @version 1.0
// @description Occupational safety management API: incident reporting, trainings, risk assessments and site attendance.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey SessionAuth
// @in header
// @name X-Session-Token
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация репозиториев
	userRepo := repository.NewUserRepository(dbpool)
	sessionRepo := repository.NewSessionRepository(redisClient)
	incidentRepo := repository.NewIncidentRepository(dbpool, redisClient)
	projectRepo := repository.NewProjectRepository(dbpool)
	trainingRepo := repository.NewTrainingRepository(dbpool)
	riskRepo := repository.NewRiskAssessmentRepository(dbpool)
	attendanceRepo := repository.NewAttendanceRepository(dbpool)
	notificationRepo := repository.NewNotificationRepository(dbpool)

	// Инициализация издателя событий
	eventPublisher := notify.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера уведомлений
	notifyWorker := notify.NewWorker(redisClient, notificationRepo, userRepo, log, cfg)
	notifyWorker.Start(ctx)

	// Инициализация сервисов
	services := v1.Services{
		Auth:          service.NewAuthService(userRepo, sessionRepo, log, cfg),
		Users:         service.NewUserService(userRepo, log),
		Incidents:     service.NewIncidentService(incidentRepo, log, cfg, eventPublisher),
		Projects:      service.NewProjectService(projectRepo, log),
		Trainings:     service.NewTrainingService(trainingRepo, log, cfg),
		Risks:         service.NewRiskAssessmentService(riskRepo, log),
		Attendance:    service.NewAttendanceService(attendanceRepo, log),
		Notifications: service.NewNotificationService(notificationRepo, log),
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
