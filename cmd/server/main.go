package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/database"
	"github.com/dnevnik/dnevnik-backend/internal/handler"
	"github.com/dnevnik/dnevnik-backend/internal/logger"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
	"github.com/dnevnik/dnevnik-backend/internal/router"
	"github.com/dnevnik/dnevnik-backend/internal/service"
	"github.com/dnevnik/dnevnik-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Dnevnik Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	guardService := service.NewGuardService(classRepo)
	userService := service.NewUserService(userRepo, classRepo, authService, log)
	classService := service.NewClassService(classRepo, userRepo)
	studentService := service.NewStudentService(studentRepo, guardService)
	attendanceService := service.NewAttendanceService(studentRepo, attendanceRepo, classRepo, guardService, rdb, log)
	statisticsService := service.NewStatisticsService(studentRepo, attendanceRepo, classRepo, guardService, rdb, cfg.StatsCacheTTL, log)

	// ─── Seed Initial Admin ───────────────────────────────────────────
	if err := userService.EnsureSeedAdmin(ctx, cfg.AdminLogin, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed initial admin")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(userService),
		User:       handler.NewUserHandler(userService),
		Class:      handler.NewClassHandler(classService),
		Student:    handler.NewStudentHandler(studentService),
		Attendance: handler.NewAttendanceHandler(attendanceService),
		Statistics: handler.NewStatisticsHandler(statisticsService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
