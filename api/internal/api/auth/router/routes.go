// Package router registers the auth domain routes: public auth,
// profile, admin account management and system health.
package router

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/limiter"

	authhdl "leoni_app/api/internal/api/auth/handler"
	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/middleware"
	apirouter "leoni_app/api/internal/api/router"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/global"
)

// Register registers every auth route on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerAdminRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler := basehdl.NewSystemHandler()
	router.Get("/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}

	router.Post("/auth/register", authHandler.HandleRegister)
	router.Post("/auth/password/forgot", authHandler.HandleForgotPassword)
	router.Post("/auth/password/reset", authHandler.HandleResetPassword)

	// Brute-force protection on the credentials endpoint.
	if global.MongoDB_ServerConfig.RateLimit_Enabled {
		loginLimiter := limiter.New(limiter.Config{
			Max:        global.MongoDB_ServerConfig.RateLimit_Max,
			Expiration: time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second,
		})
		apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/login", []fiber.Handler{loginLimiter}, authHandler.HandleLogin)
	} else {
		router.Post("/auth/login", authHandler.HandleLogin)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/me", []fiber.Handler{authOnlyMiddleware}, authHandler.HandleUpdateMe)
	return nil
}

func registerAdminRoutes(router fiber.Router) error {
	adminHandler, err := authhdl.NewAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin handler: %w", err)
	}

	adminMiddleware := middleware.AuthMiddleware(scope.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employees", "GET", "/", []fiber.Handler{adminMiddleware}, adminHandler.HandleListEmployees)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/employees", "PUT", "/:id/approve", []fiber.Handler{adminMiddleware}, adminHandler.HandleApproveEmployee)

	superadminMiddleware := middleware.AuthMiddleware(scope.RoleSuperAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/admins", "POST", "/", []fiber.Handler{superadminMiddleware}, adminHandler.HandleCreateAdmin)
	apirouter.RegisterRouteWithMiddleware(router, "/admin/admins", "GET", "/", []fiber.Handler{superadminMiddleware}, adminHandler.HandleListAdmins)
	return nil
}
