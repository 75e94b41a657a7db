// Package models holds the persistent models of the auth domain.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is an account in the unified principals collection. The
// role field discriminates employees, admins and the superadmin; there
// is no separate admins collection.
type Principal struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email      string             `json:"email" bson:"email"`
	Password   string             `json:"-" bson:"password,omitempty"`
	FirstName  string             `json:"firstName" bson:"firstName"`
	LastName   string             `json:"lastName" bson:"lastName"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Role       string             `json:"role" bson:"role"`
	Department string             `json:"department" bson:"department"`
	Location   string             `json:"location" bson:"location"`
	Approved   bool               `json:"approved" bson:"approved"`
	Active     bool               `json:"active" bson:"active"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
