// Package dochdl holds the HTTP handlers of the document domain.
package dochdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	docdto "leoni_app/api/internal/api/document/dto"
	docsvc "leoni_app/api/internal/api/document/service"
	"leoni_app/api/internal/api/middleware"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// DocumentHandler serves the employee side of document requests.
type DocumentHandler struct {
	documentService *docsvc.DocumentService
}

// NewDocumentHandler creates a DocumentHandler.
func NewDocumentHandler() (*DocumentHandler, error) {
	documentService, err := docsvc.NewDocumentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create document service: %v", err)
	}
	return &DocumentHandler{documentService: documentService}, nil
}

// HandleCreate files a new request for the caller.
func (h *DocumentHandler) HandleCreate(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	var input docdto.CreateDocumentInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	request, err := h.documentService.Create(c.Context(), principal, &input)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}
	basehdl.HandleCreated(c, request)
	return nil
}

// HandleListOwn lists the caller's requests.
func (h *DocumentHandler) HandleListOwn(c fiber.Ctx) error {
	id, ok := middleware.PrincipalID(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	requests, err := h.documentService.ListOwn(c.Context(), id)
	basehdl.HandleResponse(c, requests, err)
	return nil
}

// HandleDelete withdraws one of the caller's requests.
func (h *DocumentHandler) HandleDelete(c fiber.Ctx) error {
	principalID, ok := middleware.PrincipalID(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	err = h.documentService.DeleteOwn(c.Context(), principalID, id)
	if err == nil {
		logger.LogCRUD("delete", "document_request", id.Hex(), c, nil)
	}
	basehdl.HandleResponse(c, nil, err)
	return nil
}
