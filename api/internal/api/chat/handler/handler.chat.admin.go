package chathdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	chatdto "leoni_app/api/internal/api/chat/dto"
	chatsvc "leoni_app/api/internal/api/chat/service"
	"leoni_app/api/internal/api/middleware"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// ChatAdminHandler serves the admin side of the chat.
type ChatAdminHandler struct {
	chatService *chatsvc.ChatService
}

// NewChatAdminHandler creates a ChatAdminHandler.
func NewChatAdminHandler() (*ChatAdminHandler, error) {
	chatService, err := chatsvc.NewChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %v", err)
	}
	return &ChatAdminHandler{chatService: chatService}, nil
}

// HandleList lists conversations in the acting admin's scope. The
// department and location query params are honored for SUPERADMIN
// only.
func (h *ChatAdminHandler) HandleList(c fiber.Ctx) error {
	actor, ok := middleware.PrincipalScope(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	page, limit := basehdl.ParsePagination(c)
	result, err := h.chatService.ListAdmin(c.Context(), actor, page, limit, c.Query("department"), c.Query("location"))
	basehdl.HandleResponse(c, result, err)
	return nil
}

// HandleUpdateStatus moves a conversation through its lifecycle.
func (h *ChatAdminHandler) HandleUpdateStatus(c fiber.Ctx) error {
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

	var input chatdto.UpdateStatusInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	conversation, err := h.chatService.UpdateStatus(c.Context(), actor, id, input.Status)
	if err == nil {
		logger.LogCRUD("update", "conversation", id.Hex(), c, map[string]interface{}{"status": input.Status})
	}
	basehdl.HandleResponse(c, conversation, err)
	return nil
}
