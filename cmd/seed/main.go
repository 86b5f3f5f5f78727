package main

import (
	"context"
	"log"
	"time"

	"claimvista/internal/models"
	"claimvista/internal/repository"
	"claimvista/pkg/auth"
	"claimvista/pkg/config"
	"claimvista/pkg/logger"
	"claimvista/pkg/postgres"

	"go.uber.org/zap"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	role       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
)`

// demoPassword is shared by every demo account.
const demoPassword = "password"

type demoAccount struct {
	id    string
	name  string
	email string
	role  models.Role
}

var demoAccounts = []demoAccount{
	{id: "1", name: "Admin User", email: "admin@example.com", role: models.RoleAdmin},
	{id: "2", name: "Hospital Staff", email: "hospital@example.com", role: models.RoleHospital},
	{id: "3", name: "Insurance Agent", email: "agent@example.com", role: models.RoleAgent},
	{id: "4", name: "Regular User", email: "user@example.com", role: models.RoleUser},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Starting database seeding...")

	if _, err := db.Exec(ctx, schema); err != nil {
		appLogger.Fatal("Failed to create users table", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash demo password", zap.Error(err))
	}

	now := time.Now()
	for _, account := range demoAccounts {
		if existing, _ := userRepo.GetByEmail(ctx, account.email); existing != nil {
			appLogger.Info("Demo account already present, skipping",
				zap.String("email", account.email),
			)
			continue
		}

		user := &models.User{
			ID:        account.id,
			Name:      account.name,
			Email:     account.email,
			Password:  hashed,
			Role:      account.role,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			appLogger.Fatal("Failed to seed demo account",
				zap.String("email", account.email),
				zap.Error(err),
			)
		}
		appLogger.Info("Seeded demo account",
			zap.String("email", account.email),
			zap.String("role", string(account.role)),
		)
	}

	appLogger.Info("Database seeding completed successfully!")
}
