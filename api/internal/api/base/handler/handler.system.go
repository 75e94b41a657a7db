package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
)

// SystemHandler serves the system routes.
type SystemHandler struct{}

// NewSystemHandler creates a SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// HandleHealth reports API and database status. Returns 503 when the
// database does not answer the ping.
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	healthData := fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"services": fiber.Map{
			"api": "ok",
		},
	}

	if global.MongoDB_Session != nil {
		err := global.MongoDB_Session.Ping(ctx, nil)
		if err != nil {
			healthData["status"] = "degraded"
			healthData["services"].(fiber.Map)["database"] = "error"
			return JSONResponse(c, common.StatusServiceUnavailable, fiber.Map{
				"success": false,
				"message": "Service indisponible",
				"data":    healthData,
			})
		}
		healthData["services"].(fiber.Map)["database"] = "ok"
	} else {
		healthData["status"] = "degraded"
		healthData["services"].(fiber.Map)["database"] = "not_initialized"
	}

	return JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": common.MsgSuccess,
		"data":    healthData,
	})
}
