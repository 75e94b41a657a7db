// Package dto holds request and response shapes for the chat domain.
package dto

import (
	models "leoni_app/api/internal/api/chat/models"
)

// CreateConversationInput opens a conversation with its first message.
type CreateConversationInput struct {
	Subject string `json:"subject" validate:"required,no_xss"`
	Message string `json:"message" validate:"required"`
}

// AppendMessageInput appends one message to a conversation.
type AppendMessageInput struct {
	Content string `json:"content" validate:"required"`
}

// UpdateStatusInput moves a conversation to a new status.
type UpdateStatusInput struct {
	Status string `json:"status" validate:"required,oneof=open in_progress closed"`
}

// ConversationSummary is a conversation enriched with its last message
// and the viewer's unread count.
type ConversationSummary struct {
	models.Conversation
	LastMessage *models.Message `json:"lastMessage,omitempty"`
	UnreadCount int64           `json:"unreadCount"`
}
