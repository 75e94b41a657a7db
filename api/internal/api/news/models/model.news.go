// Package models holds the persistent models of the news domain.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TargetAll is the wildcard target value; nil and TargetAll both mean
// unrestricted.
const TargetAll = "All"

// NewsItem is one announcement shown in the mobile feed. The author
// fields are a snapshot of the publishing admin, there is no owner
// reference.
type NewsItem struct {
	ID               primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title            string             `json:"title" bson:"title"`
	Content          string             `json:"content" bson:"content"`
	ImageURL         string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	TargetDepartment *string            `json:"targetDepartment" bson:"targetDepartment"`
	TargetLocation   *string            `json:"targetLocation" bson:"targetLocation"`
	AuthorName       string             `json:"authorName" bson:"authorName"`
	AuthorRole       string             `json:"authorRole" bson:"authorRole"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	PublishedAt      int64              `json:"publishedAt" bson:"publishedAt"`
	CreatedAt        int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt        int64              `json:"updatedAt" bson:"updatedAt"`
}
