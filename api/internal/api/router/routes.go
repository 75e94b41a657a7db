// Package router wires domain route registrations onto the Fiber app.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// Router is passed to each domain registration.
type Router struct {
	app *fiber.App
}

// RoutePrefix holds the base API prefixes.
type RoutePrefix struct {
	Base string
	V1   string
}

// NewRoutePrefix returns the default prefixes.
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter creates a Router over the app.
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// RegisterRouteWithMiddleware registers a route whose middlewares go
// through group.Use(). In Fiber v3 a middleware passed directly in
// router.Get(path, middleware, handler) is silently skipped, so every
// protected route must be registered through this helper.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc registers one domain's routes on the v1 group.
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes mounts every domain registration under /api/v1.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
