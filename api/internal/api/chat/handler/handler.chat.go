// Package chathdl holds the HTTP handlers of the chat domain.
package chathdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "leoni_app/api/internal/api/base/handler"
	chatdto "leoni_app/api/internal/api/chat/dto"
	chatsvc "leoni_app/api/internal/api/chat/service"
	"leoni_app/api/internal/api/middleware"
	"leoni_app/api/internal/common"
)

// ChatHandler serves the employee side of the chat.
type ChatHandler struct {
	chatService *chatsvc.ChatService
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler() (*ChatHandler, error) {
	chatService, err := chatsvc.NewChatService()
	if err != nil {
		return nil, fmt.Errorf("failed to create chat service: %v", err)
	}
	return &ChatHandler{chatService: chatService}, nil
}

// HandleCreate opens a conversation with its first message.
func (h *ChatHandler) HandleCreate(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	var input chatdto.CreateConversationInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	summary, err := h.chatService.CreateConversation(c.Context(), principal, &input)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}
	basehdl.HandleCreated(c, summary)
	return nil
}

// HandleListOwn lists the caller's conversations.
func (h *ChatHandler) HandleListOwn(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	summaries, err := h.chatService.ListOwn(c.Context(), principal.ID)
	basehdl.HandleResponse(c, summaries, err)
	return nil
}

// HandleMessages returns one conversation's messages chronologically
// and marks the counterpart's messages read.
func (h *ChatHandler) HandleMessages(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	messages, err := h.chatService.Messages(c.Context(), principal, id)
	basehdl.HandleResponse(c, messages, err)
	return nil
}

// HandleAppend appends one message to a conversation.
func (h *ChatHandler) HandleAppend(c fiber.Ctx) error {
	principal, ok := middleware.Principal(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	id, err := basehdl.ObjectIDFromParam(c, "id")
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	var input chatdto.AppendMessageInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	message, err := h.chatService.AppendMessage(c.Context(), principal, id, input.Content)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}
	basehdl.HandleCreated(c, message)
	return nil
}
