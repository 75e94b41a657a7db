// Package models holds the persistent models of the chat domain.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Conversation status values.
const (
	ConversationOpen       = "open"
	ConversationInProgress = "in_progress"
	ConversationClosed     = "closed"
)

// SenderRole values stored on messages.
const (
	SenderEmployee = "employee"
	SenderAdmin    = "admin"
)

// Conversation is one employee support thread. The target department
// and location are frozen from the owner at creation time; later
// profile edits never touch them.
type Conversation struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID           primitive.ObjectID `json:"userId" bson:"userId"`
	Subject          string             `json:"subject" bson:"subject"`
	TargetDepartment string             `json:"targetDepartment" bson:"targetDepartment"`
	TargetLocation   string             `json:"targetLocation" bson:"targetLocation"`
	Status           string             `json:"status" bson:"status"`
	MessageCount     int64              `json:"messageCount" bson:"messageCount"`
	LastActivityAt   int64              `json:"lastActivityAt" bson:"lastActivityAt"`
	Version          int64              `json:"-" bson:"version"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}

// ValidStatusTransition reports whether a conversation may move from
// one status to the other. Reopening a closed thread is not allowed.
func ValidStatusTransition(from, to string) bool {
	switch from {
	case ConversationOpen:
		return to == ConversationInProgress || to == ConversationClosed
	case ConversationInProgress:
		return to == ConversationClosed
	default:
		return false
	}
}
