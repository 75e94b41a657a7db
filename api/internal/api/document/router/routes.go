// Package router registers the document routes, employee and admin
// sides.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	dochdl "leoni_app/api/internal/api/document/handler"
	"leoni_app/api/internal/api/middleware"
	apirouter "leoni_app/api/internal/api/router"
	"leoni_app/api/internal/api/scope"
)

// Register registers the document routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	documentHandler, err := dochdl.NewDocumentHandler()
	if err != nil {
		return fmt.Errorf("failed to create document handler: %w", err)
	}
	documentAdminHandler, err := dochdl.NewDocumentAdminHandler()
	if err != nil {
		return fmt.Errorf("failed to create document admin handler: %w", err)
	}

	authOnlyMiddleware := middleware.AuthMiddleware("")
	apirouter.RegisterRouteWithMiddleware(v1, "/documents", "POST", "/", []fiber.Handler{authOnlyMiddleware}, documentHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/documents", "GET", "/", []fiber.Handler{authOnlyMiddleware}, documentHandler.HandleListOwn)
	apirouter.RegisterRouteWithMiddleware(v1, "/documents", "DELETE", "/:id", []fiber.Handler{authOnlyMiddleware}, documentHandler.HandleDelete)

	adminMiddleware := middleware.AuthMiddleware(scope.RoleAdmin)
	// Statistics before :id routes so the literal path wins.
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/documents", "GET", "/statistics", []fiber.Handler{adminMiddleware}, documentAdminHandler.HandleStatistics)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/documents", "GET", "/", []fiber.Handler{adminMiddleware}, documentAdminHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/documents", "PUT", "/:id/status", []fiber.Handler{adminMiddleware}, documentAdminHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/documents", "POST", "/:id/comments", []fiber.Handler{adminMiddleware}, documentAdminHandler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/admin/documents", "PUT", "/:id/assign", []fiber.Handler{adminMiddleware}, documentAdminHandler.HandleAssign)
	return nil
}
