package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	authrouter "leoni_app/api/internal/api/auth/router"
	chatrouter "leoni_app/api/internal/api/chat/router"
	deptrouter "leoni_app/api/internal/api/department/router"
	docrouter "leoni_app/api/internal/api/document/router"
	newsrouter "leoni_app/api/internal/api/news/router"
	apirouter "leoni_app/api/internal/api/router"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/logger"
)

// InitFiberApp builds the Fiber app with its middleware stack and
// every domain route mounted.
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "Leoni App API",
		ServerHeader:  "Leoni App API",
		StrictRouting: false,
		CaseSensitive: true,
		BodyLimit:     10 * 1024 * 1024,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  30 * time.Second,
		IdleTimeout:   120 * time.Second,
		ErrorHandler:  errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	app.Use(cors.New(corsConfig()))

	// Minimal security headers for the mobile clients behind a proxy.
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	if global.MongoDB_ServerConfig.RateLimit_Enabled && global.MongoDB_ServerConfig.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        global.MongoDB_ServerConfig.RateLimit_Max,
			Expiration: time.Duration(global.MongoDB_ServerConfig.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"success": false,
					"message": "Trop de requêtes, veuillez réessayer plus tard",
				})
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/api/v1/health" || c.Method() == "OPTIONS"
			},
		}))
	}

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"panic": e,
				"path":  c.Path(),
			}).Error("Panic recovered")
		},
	}))

	if err := apirouter.SetupRoutes(app,
		authrouter.Register,
		deptrouter.Register,
		chatrouter.Register,
		docrouter.Register,
		newsrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to setup routes: %v", err)
	}

	return app
}

func corsConfig() cors.Config {
	corsOrigins := global.MongoDB_ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	return cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		AllowCredentials: global.MongoDB_ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}
}

// errorHandler maps Fiber-level errors onto the response envelope.
func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := common.MsgInternalError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		switch code {
		case fiber.StatusNotFound:
			message = common.MsgNotFound
		case fiber.StatusMethodNotAllowed:
			message = "Méthode non autorisée"
		default:
			message = e.Message
		}
	}

	logger.GetErrorLogger().WithFields(map[string]interface{}{
		"status": code,
		"path":   c.Path(),
	}).Warn("Request error")

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}
