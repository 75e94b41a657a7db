// Package dto holds request and response shapes for the auth domain.
package dto

// RegisterInput is the employee self-registration payload.
type RegisterInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,strong_password"`
	FirstName  string `json:"firstName" validate:"required,no_xss"`
	LastName   string `json:"lastName" validate:"required,no_xss"`
	Phone      string `json:"phone" validate:"omitempty,no_xss"`
	Department string `json:"department" validate:"required,no_xss"`
	Location   string `json:"location" validate:"required,no_xss"`
}

// LoginInput is the credentials payload for employees and admins alike.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the token with its bearer.
type LoginResponse struct {
	Token     string      `json:"token"`
	Principal interface{} `json:"principal"`
}

// UpdateProfileInput is the self-service profile update. Role, scope
// and approval are deliberately absent.
type UpdateProfileInput struct {
	FirstName string `json:"firstName" validate:"omitempty,no_xss"`
	LastName  string `json:"lastName" validate:"omitempty,no_xss"`
	Phone     string `json:"phone" validate:"omitempty,no_xss"`
}

// ForgotPasswordInput requests a reset code by mail.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput redeems a reset code.
type ResetPasswordInput struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// CreateAdminInput creates an ADMIN principal. Superadmin only.
type CreateAdminInput struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,strong_password"`
	FirstName  string `json:"firstName" validate:"required,no_xss"`
	LastName   string `json:"lastName" validate:"required,no_xss"`
	Department string `json:"department" validate:"omitempty,no_xss"`
	Location   string `json:"location" validate:"omitempty,no_xss"`
}
