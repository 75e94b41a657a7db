// Package router registers the news routes, feed and admin sides.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"leoni_app/api/internal/api/middleware"
	newshdl "leoni_app/api/internal/api/news/handler"
	apirouter "leoni_app/api/internal/api/router"
	"leoni_app/api/internal/api/scope"
)

// Register registers the news routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	newsHandler, err := newshdl.NewNewsHandler()
	if err != nil {
		return fmt.Errorf("failed to create news handler: %w", err)
	}
	newsAdminHandler, err := newshdl.NewNewsAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create news admin handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/news", "GET", "/", []fiber.Handler{authOnlyMiddleware}, newsHandler.HandleFeed)

	adminMiddleware := middleware.AuthMiddleware(scope.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/news", "GET", "/", []fiber.Handler{adminMiddleware}, newsAdminHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/news", "POST", "/", []fiber.Handler{adminMiddleware}, newsAdminHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/news", "PUT", "/:id", []fiber.Handler{adminMiddleware}, newsAdminHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/news", "DELETE", "/:id", []fiber.Handler{adminMiddleware}, newsAdminHandler.HandleDelete)
	return nil
}
