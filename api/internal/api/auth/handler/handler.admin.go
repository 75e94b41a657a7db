package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "leoni_app/api/internal/api/auth/dto"
	authsvc "leoni_app/api/internal/api/auth/service"
	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/middleware"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// AdminHandler serves the account management routes of the admin
// surface.
type AdminHandler struct {
	principalService *authsvc.PrincipalService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler() (*AdminHandler, error) {
	principalService, err := authsvc.NewPrincipalService()
	if err != nil {
		return nil, fmt.Errorf("failed to create principal service: %v", err)
	}
	return &AdminHandler{principalService: principalService}, nil
}

// HandleListEmployees lists employees visible to the acting admin.
// The department and location query params narrow the scope and are
// honored for SUPERADMIN only.
func (h *AdminHandler) HandleListEmployees(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	page, limit := basehdl.ParsePagination(c)
	result, err := h.principalService.ListEmployees(c.Context(), actor, page, limit, c.Query("department"), c.Query("location"))
	basehdl.HandleResponse(c, result, err)
	return nil
}

// HandleApproveEmployee approves an employee account in scope.
func (h *AdminHandler) HandleApproveEmployee(c fiber.Ctx) error {
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

	principal, err := h.principalService.ApproveEmployee(c.Context(), actor, id)
	if err == nil {
		logger.LogCRUD("update", "principal", id.Hex(), c, map[string]interface{}{"action": "approve"})
	}
	basehdl.HandleResponse(c, principal, err)
	return nil
}

// HandleCreateAdmin creates an ADMIN principal. The route is gated to
// SUPERADMIN by its middleware.
func (h *AdminHandler) HandleCreateAdmin(c fiber.Ctx) error {
	var input authdto.CreateAdminInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	principal, err := h.principalService.CreateAdmin(c.Context(), &input)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogCRUD("create", "principal", principal.ID.Hex(), c, map[string]interface{}{"role": principal.Role})
	basehdl.HandleCreated(c, principal)
	return nil
}

// HandleListAdmins lists ADMIN principals. SUPERADMIN only.
func (h *AdminHandler) HandleListAdmins(c fiber.Ctx) error {
	page, limit := basehdl.ParsePagination(c)
	result, err := h.principalService.ListAdmins(c.Context(), page, limit)
	basehdl.HandleResponse(c, result, err)
	return nil
}
