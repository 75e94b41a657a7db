package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Message is one entry in a conversation. isRead is the only mutable
// field; everything else is immutable once written.
type Message struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	ConversationID primitive.ObjectID `json:"conversationId" bson:"conversationId"`
	SenderID       primitive.ObjectID `json:"senderId" bson:"senderId"`
	SenderRole     string             `json:"senderRole" bson:"senderRole"`
	Content        string             `json:"content" bson:"content"`
	IsRead         bool               `json:"isRead" bson:"isRead"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
}
