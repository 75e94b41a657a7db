// Package newshdl holds the HTTP handlers of the news domain.
package newshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/middleware"
	newssvc "leoni_app/api/internal/api/news/service"
	"leoni_app/api/internal/common"
)

// NewsHandler serves the employee news feed.
type NewsHandler struct {
	newsService *newssvc.NewsService
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler() (*NewsHandler, error) {
	newsService, err := newssvc.NewNewsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create news service: %v", err)
	}
	return &NewsHandler{newsService: newsService}, nil
}

// HandleFeed returns active news targeted at the caller.
func (h *NewsHandler) HandleFeed(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	items, err := h.newsService.Feed(c.Context(), principal.Department, principal.Location)
	basehdl.HandleResponse(c, items, err)
	return nil
}
