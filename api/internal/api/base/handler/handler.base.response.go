package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// JSONResponse writes a JSON response with an explicit utf-8 charset,
// the mobile app renders French accented content.
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// SafeHandler wraps a handler with recover so a panic still produces
// a response for the client.
func SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			logger.GetErrorLogger().WithField("panic", fmt.Sprintf("%v", r)).Error("Recovered from handler panic")

			HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}

// HandleResponse writes the uniform response envelope. Errors carry
// {"success": false, "message": ...} with the taxonomy's HTTP status;
// successes carry {"success": true, "data": ...}.
func HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			body := fiber.Map{
				"success": false,
				"message": customErr.Message,
			}
			if customErr.Details != nil {
				body["details"] = customErr.Details
			}
			_ = JSONResponse(c, customErr.StatusCode, body)
			return
		}

		logger.GetErrorLogger().WithError(err).Error("Unclassified handler error")
		_ = JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"success": false,
			"message": common.MsgInternalError,
		})
		return
	}

	_ = JSONResponse(c, common.StatusOK, fiber.Map{
		"success": true,
		"message": common.MsgSuccess,
		"data":    data,
	})
}

// HandleCreated is HandleResponse for successful creations (201).
func HandleCreated(c fiber.Ctx, data interface{}) {
	_ = JSONResponse(c, common.StatusCreated, fiber.Map{
		"success": true,
		"message": common.MsgCreated,
		"data":    data,
	})
}
