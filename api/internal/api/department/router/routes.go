// Package router registers the department routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	depthdl "leoni_app/api/internal/api/department/handler"
	"leoni_app/api/internal/api/middleware"
	apirouter "leoni_app/api/internal/api/router"
)

// Register registers the department routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	departmentHandler, err := depthdl.NewDepartmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create department handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/departments", "GET", "/", []fiber.Handler{authOnlyMiddleware}, departmentHandler.HandleList)
	return nil
}
