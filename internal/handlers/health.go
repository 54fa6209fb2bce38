package handlers

import (
	"shiprate/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

// HealthCheck reports service and dependency status.
func HealthCheck(c *fiber.Ctx) error {
	status := fiber.Map{
		"status":   "ok",
		"database": "ok",
		"cache":    "ok",
	}

	sqlDB, err := repositories.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		status["status"] = "degraded"
		status["database"] = "unreachable"
	}

	if repositories.CacheService != nil {
		if err := repositories.CacheService.HealthCheck(c.Context()); err != nil {
			status["status"] = "degraded"
			status["cache"] = "unreachable"
		}
	}

	code := fiber.StatusOK
	if status["status"] != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(status)
}
