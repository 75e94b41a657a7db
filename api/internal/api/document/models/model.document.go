// Package models holds the persistent models of the document domain.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Document request status values, in lifecycle order. The two last
// ones are terminal branches.
const (
	StatusPending    = "en attente"
	StatusInProgress = "en cours"
	StatusAccepted   = "accepté"
	StatusRefused    = "refusé"
)

// LifecycleSteps is the progress checklist seeded on every request.
var LifecycleSteps = []string{StatusPending, StatusInProgress, StatusAccepted, StatusRefused}

// StatusInfo is the embedded current status of a request.
type StatusInfo struct {
	Current   string             `json:"current" bson:"current"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy primitive.ObjectID `json:"updatedBy,omitempty" bson:"updatedBy,omitempty"`
}

// ProgressStep is one checklist entry. Date stays nil until the step
// completes and is never recomputed afterwards.
type ProgressStep struct {
	Step      string `json:"step" bson:"step"`
	Completed bool   `json:"completed" bson:"completed"`
	Date      *int64 `json:"date" bson:"date"`
}

// AdminComment is one admin note on a request.
type AdminComment struct {
	AuthorID  primitive.ObjectID `json:"authorId" bson:"authorId"`
	Comment   string             `json:"comment" bson:"comment"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
}

// DocumentRequest is an employee's request for an administrative
// document. The user department and location are frozen from the
// owner at creation time.
type DocumentRequest struct {
	ID              primitive.ObjectID  `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID  `json:"userId" bson:"userId"`
	DocumentType    string              `json:"documentType" bson:"documentType"`
	Description     string              `json:"description" bson:"description"`
	UserDepartment  string              `json:"userDepartment" bson:"userDepartment"`
	UserLocation    string              `json:"userLocation" bson:"userLocation"`
	Status          StatusInfo          `json:"status" bson:"status"`
	Progress        []ProgressStep      `json:"progress" bson:"progress"`
	AdminComments   []AdminComment      `json:"adminComments" bson:"adminComments"`
	AssignedAdminID *primitive.ObjectID `json:"assignedAdminId,omitempty" bson:"assignedAdminId,omitempty"`
	Version         int64               `json:"-" bson:"version"`
	CreatedAt       int64               `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64               `json:"updatedAt" bson:"updatedAt"`
}

// NewProgress seeds the full checklist with only the first step
// completed at the given time.
func NewProgress(now int64) []ProgressStep {
	progress := make([]ProgressStep, 0, len(LifecycleSteps))
	for _, step := range LifecycleSteps {
		entry := ProgressStep{Step: step}
		if step == StatusPending {
			entry.Completed = true
			entry.Date = &now
		}
		progress = append(progress, entry)
	}
	return progress
}
