// Package models holds the persistent models of the department domain.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Department is one department at one plant location. The pair is
// reference data the mobile app offers at registration.
type Department struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Location  string             `json:"location" bson:"location"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
