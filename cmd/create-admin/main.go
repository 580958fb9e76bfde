package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/dnevnik/dnevnik-backend/internal/config"
	"github.com/dnevnik/dnevnik-backend/internal/database"
	"github.com/dnevnik/dnevnik-backend/internal/logger"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/repository"
	"github.com/dnevnik/dnevnik-backend/internal/service"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := repository.NewUserRepository(pool)
	authService := service.NewAuthService(cfg)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	fmt.Print("Enter Login: ")
	login, _ := reader.ReadString('\n')
	login = strings.TrimSpace(login)
	if login == "" {
		fmt.Println("Error: Login is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	fmt.Println()
	password := strings.TrimSpace(string(bytePassword))
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	hash, err := authService.HashPassword(password)
	if err != nil {
		fmt.Printf("Error: failed to hash password: %v\n", err)
		return
	}

	user := &model.User{
		Login:        login,
		PasswordHash: hash,
		Role:         model.RoleAdmin,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		fmt.Printf("Error: failed to create admin: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully (id=%d, login=%s)\n", user.ID, user.Login)
}
