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
	"leoni_app/api/internal/utility"
)

// DocumentAdminHandler serves the admin side of document requests.
type DocumentAdminHandler struct {
	documentService *docsvc.DocumentService
}

// NewDocumentAdminHandler creates a DocumentAdminHandler.
func NewDocumentAdminHandler() (*DocumentAdminHandler, error) {
	documentService, err := docsvc.NewDocumentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create document service: %v", err)
	}
	return &DocumentAdminHandler{documentService: documentService}, nil
}

// HandleList lists requests in the acting admin's scope. The status
// query param narrows to one lifecycle state; department and location
// are honored for SUPERADMIN only.
func (h *DocumentAdminHandler) HandleList(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	page, limit := basehdl.ParsePagination(c)
	result, err := h.documentService.ListAdmin(c.Context(), actor, page, limit,
		c.Query("department"), c.Query("location"), c.Query("status"))
	basehdl.HandleResponse(c, result, err)
	return nil
}

// HandleUpdateStatus applies a lifecycle transition.
func (h *DocumentAdminHandler) HandleUpdateStatus(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	actorID, okID := middleware.PrincipalID(c)
	if !ok || !okID {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	var input docdto.UpdateStatusInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	request, err := h.documentService.UpdateStatus(c.Context(), actor, actorID, id, &input)
	if err == nil {
		logger.LogCRUD("update", "document_request", id.Hex(), c, map[string]interface{}{"status": input.Status})
	}
	basehdl.HandleResponse(c, request, err)
	return nil
}

// HandleAddComment attaches an admin note.
func (h *DocumentAdminHandler) HandleAddComment(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	actorID, okID := middleware.PrincipalID(c)
	if !ok || !okID {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	var input docdto.AddCommentInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	request, err := h.documentService.AddComment(c.Context(), actor, actorID, id, input.Comment)
	basehdl.HandleResponse(c, request, err)
	return nil
}

// HandleAssign assigns a request to an admin.
func (h *DocumentAdminHandler) HandleAssign(c fiber.Ctx) error {
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

	var input docdto.AssignInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	// AdminID passed len/hex/exists validation, the conversion cannot fail.
	adminID := utility.String2ObjectID(input.AdminID)

	request, err := h.documentService.Assign(c.Context(), actor, id, adminID)
	if err == nil {
		logger.LogCRUD("update", "document_request", id.Hex(), c, map[string]interface{}{"assigned_admin_id": input.AdminID})
	}
	basehdl.HandleResponse(c, request, err)
	return nil
}

// HandleStatistics aggregates per-status counts over the actor's
// scope.
func (h *DocumentAdminHandler) HandleStatistics(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	stats, err := h.documentService.Statistics(c.Context(), actor, c.Query("department"), c.Query("location"))
	basehdl.HandleResponse(c, stats, err)
	return nil
}
