// Package router registers the chat routes, employee and admin sides.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	chathdl "leoni_app/api/internal/api/chat/handler"
	"leoni_app/api/internal/api/middleware"
	apirouter "leoni_app/api/internal/api/router"
	"leoni_app/api/internal/api/scope"
)

// Register registers the chat routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	chatHandler, err := chathdl.NewChatHandler()
	if err != nil {
		return fmt.Errorf("failed to create chat handler: %w", err)
	}
	chatAdminHandler, err := chathdl.NewChatAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create chat admin handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/chats", "POST", "/", []fiber.Handler{authOnlyMiddleware}, chatHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/chats", "GET", "/", []fiber.Handler{authOnlyMiddleware}, chatHandler.HandleListOwn)
	apirouter.RegisterRouteWithMiddleware(v1, "/chats", "GET", "/:id/messages", []fiber.Handler{authOnlyMiddleware}, chatHandler.HandleMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/chats", "POST", "/:id/messages", []fiber.Handler{authOnlyMiddleware}, chatHandler.HandleAppend)

	adminMiddleware := middleware.AuthMiddleware(scope.RoleAdmin)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/chats", "GET", "/", []fiber.Handler{adminMiddleware}, chatAdminHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/chats", "GET", "/:id/messages", []fiber.Handler{adminMiddleware}, chatHandler.HandleMessages)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/chats", "POST", "/:id/messages", []fiber.Handler{adminMiddleware}, chatHandler.HandleAppend)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/chats", "PUT", "/:id/status", []fiber.Handler{adminMiddleware}, chatAdminHandler.HandleUpdateStatus)
	return nil
}
