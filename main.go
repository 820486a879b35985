package main

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"shopping-helper-admin/client"
	"shopping-helper-admin/config"
	"shopping-helper-admin/logger"
	"shopping-helper-admin/routes"
	"shopping-helper-admin/utils"
	"shopping-helper-admin/workspace"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/helmet"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/joho/godotenv"
)

// @title Shopping Helper Admin
// @version 1.0
// @description Server-rendered admin for stores, products and prices of the shopping helper backend.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := config.LoadConfig()

	sugar, err := logger.Init(cfg.LogLevel, cfg.IsProduction())
	if err != nil {
		log.Fatalf("❌ Failed to initialise logger: %v", err)
	}
	defer logger.Sync()

	// Backend client and per-session workspaces
	backend := client.New(cfg.ApiBaseUrl, time.Duration(cfg.ApiTimeoutSeconds)*time.Second, sugar)

	sessionTTL := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	sealer, err := workspace.NewSessionSealer(cfg.SessionSecret, sessionTTL)
	if err != nil {
		sugar.Fatalw("Failed to build session sealer", "error", err)
	}
	registry := workspace.NewRegistry(backend, sessionTTL, sugar)

	ctx, stop := utils.GracefulContext(context.Background())
	defer stop()
	registry.StartSweeper(ctx, time.Minute)

	app := fiber.New(fiber.Config{
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(utils.ErrorResponse{
				Success: false,
				Error:   err.Error(),
			})
		},
		AppName:      cfg.AppName,
		ServerHeader: "Fiber",
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitMax,
		Expiration: 60 * time.Second,
	}))

	// Setup routes
	routes.SetupRoutes(app, cfg, backend, registry, sealer)

	go func() {
		<-ctx.Done()
		sugar.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			sugar.Errorw("Server shutdown failed", "error", err)
		}
	}()

	sugar.Infow("Server ready",
		"port", cfg.Port,
		"admin", cfg.AppUrl+"/",
		"health", cfg.AppUrl+"/api/health",
		"docs", cfg.AppUrl+"/docs",
		"backend", cfg.ApiBaseUrl,
	)

	if err := app.Listen(":" + cfg.Port); err != nil {
		sugar.Fatalw("Failed to start server", "error", err)
	}
}
