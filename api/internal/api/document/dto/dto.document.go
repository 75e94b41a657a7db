// Package dto holds request and response shapes for the document
// domain.
package dto

// CreateDocumentInput files a new document request.
type CreateDocumentInput struct {
	DocumentType string `json:"documentType" validate:"required,no_xss"`
	Description  string `json:"description" validate:"omitempty,no_xss"`
}

// UpdateStatusInput moves a request through the lifecycle. An optional
// comment is recorded alongside the transition.
type UpdateStatusInput struct {
	Status  string `json:"status" validate:"required,oneof='en attente' 'en cours' 'accepté' 'refusé'"`
	Comment string `json:"comment" validate:"omitempty,no_xss"`
}

// AddCommentInput attaches an admin note.
type AddCommentInput struct {
	Comment string `json:"comment" validate:"required,no_xss"`
}

// AssignInput assigns a request to an admin.
type AssignInput struct {
	AdminID string `json:"adminId" validate:"required,len=24,hexadecimal,exists=principals"`
}

// Statistics summarizes requests per status plus recent volume.
type Statistics struct {
	Total       int64            `json:"total"`
	ByStatus    map[string]int64 `json:"byStatus"`
	Last24Hours int64            `json:"last24Hours"`
}
