package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"shopping-helper-admin/config"
	"shopping-helper-admin/models"
	"shopping-helper-admin/workspace"
)

// HealthChecker queries the backend health endpoint. *client.Client satisfies it.
type HealthChecker interface {
	Health(ctx context.Context) (*models.Health, error)
	BaseURL() string
}

type HealthController struct {
	cfg      *config.Config
	backend  HealthChecker
	registry *workspace.Registry
}

func NewHealthController(cfg *config.Config, backend HealthChecker, registry *workspace.Registry) *HealthController {
	return &HealthController{cfg: cfg, backend: backend, registry: registry}
}

// Health reports the admin app status together with the backend status
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/health [get]
func (hc *HealthController) Health(c fiber.Ctx) error {
	body := fiber.Map{
		"application": hc.cfg.AppName,
		"version":     "1.0.0",
		"status":      "ok",
		"sessions":    hc.registry.Len(),
		"time":        time.Now().Format("02-01-2006 15:04:05"),
	}

	backend, err := hc.backend.Health(c.Context())
	if err != nil {
		body["status"] = "degraded"
		body["backend"] = fiber.Map{"status": "unreachable", "url": hc.backend.BaseURL(), "error": err.Error()}
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}

	body["backend"] = fiber.Map{
		"status":       backend.Status,
		"stores_in_db": backend.StoresInDB,
		"url":          hc.backend.BaseURL(),
	}
	return c.Status(fiber.StatusOK).JSON(body)
}
