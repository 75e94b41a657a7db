package newshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/middleware"
	newsdto "leoni_app/api/internal/api/news/dto"
	newssvc "leoni_app/api/internal/api/news/service"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// NewsAdminHandler serves the admin news management routes.
type NewsAdminHandler struct {
	newsService *newssvc.NewsService
}

// NewNewsAdminHandler creates a NewsAdminHandler.
func NewNewsAdminHandler() (*NewsAdminHandler, error) {
	newsService, err := newssvc.NewNewsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create news service: %v", err)
	}
	return &NewsAdminHandler{newsService: newsService}, nil
}

// HandleList lists news in the acting admin's scope.
func (h *NewsAdminHandler) HandleList(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	page, limit := basehdl.ParsePagination(c)
	result, err := h.newsService.ListAdmin(c.Context(), actor, page, limit, c.Query("department"), c.Query("location"))
	basehdl.HandleResponse(c, result, err)
	return nil
}

// HandleCreate publishes an announcement.
func (h *NewsAdminHandler) HandleCreate(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	var input newsdto.CreateNewsInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	item, err := h.newsService.Create(c.Context(), principal, &input)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create", "news", item.ID.Hex(), c, nil)
	basehdl.HandleCreated(c, item)
	return nil
}

// HandleUpdate edits an announcement in scope.
func (h *NewsAdminHandler) HandleUpdate(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	var input newsdto.UpdateNewsInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	item, err := h.newsService.Update(c.Context(), actor, id, &input)
	if err == nil {
		logger.LogCRUD("update", "news", id.Hex(), c, nil)
	}
	basehdl.HandleResponse(c, item, err)
	return nil
}

// HandleDelete removes an announcement in scope.
func (h *NewsAdminHandler) HandleDelete(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	err = h.newsService.Delete(c.Context(), actor, id)
	if err == nil {
		logger.LogCRUD("delete", "news", id.Hex(), c, nil)
	}
	basehdl.HandleResponse(c, nil, err)
	return nil
}
