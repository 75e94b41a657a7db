// Package depthdl holds the HTTP handlers of the department domain.
package depthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	deptsvc "leoni_app/api/internal/api/department/service"
)

// DepartmentHandler serves the department reference routes.
type DepartmentHandler struct {
	departmentService *deptsvc.DepartmentService
}

// NewDepartmentHandler creates a DepartmentHandler.
func NewDepartmentHandler() (*DepartmentHandler, error) {
	departmentService, err := deptsvc.NewDepartmentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create department service: %v", err)
	}
	return &DepartmentHandler{departmentService: departmentService}, nil
}

// HandleList returns the active departments.
func (h *DepartmentHandler) HandleList(c fiber.Ctx) error {
	departments, err := h.departmentService.ListActive(c.Context())
	basehdl.HandleResponse(c, departments, err)
	return nil
}
