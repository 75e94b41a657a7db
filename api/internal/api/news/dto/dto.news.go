// Package dto holds request and response shapes for the news domain.
package dto

// CreateNewsInput publishes an announcement. Empty or "All" targets
// leave the corresponding axis unrestricted.
type CreateNewsInput struct {
	Title            string  `json:"title" validate:"required,no_xss"`
	Content          string  `json:"content" validate:"required"`
	ImageURL         string  `json:"imageUrl" validate:"omitempty,url"`
	TargetDepartment *string `json:"targetDepartment" validate:"omitempty,no_xss"`
	TargetLocation   *string `json:"targetLocation" validate:"omitempty,no_xss"`
}

// UpdateNewsInput edits an announcement. Nil fields stay untouched.
type UpdateNewsInput struct {
	Title            *string `json:"title" validate:"omitempty,no_xss"`
	Content          *string `json:"content"`
	ImageURL         *string `json:"imageUrl" validate:"omitempty,url"`
	TargetDepartment *string `json:"targetDepartment" validate:"omitempty,no_xss"`
	TargetLocation   *string `json:"targetLocation" validate:"omitempty,no_xss"`
	IsActive         *bool   `json:"isActive"`
}
