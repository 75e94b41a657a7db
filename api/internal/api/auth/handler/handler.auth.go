// Package authhdl holds the HTTP handlers of the auth domain.
package authhdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authdto "leoni_app/api/internal/api/auth/dto"
	authsvc "leoni_app/api/internal/api/auth/service"
	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/middleware"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/logger"
)

// AuthHandler serves registration, login and self-service profile
// routes.
type AuthHandler struct {
	principalService *authsvc.PrincipalService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler() (*AuthHandler, error) {
	principalService, err := authsvc.NewPrincipalService()
	if err != nil {
		return nil, fmt.Errorf("failed to create principal service: %v", err)
	}
	return &AuthHandler{principalService: principalService}, nil
}

// HandleRegister creates an unapproved employee account.
func (h *AuthHandler) HandleRegister(c fiber.Ctx) error {
	var input authdto.RegisterInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	principal, err := h.principalService.Register(c.Context(), &input)
	if err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("register", c, map[string]interface{}{"principal_id": principal.ID.Hex()})
	basehdl.HandleCreated(c, principal)
	return nil
}

// HandleLogin checks credentials and returns a token.
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	var input authdto.LoginInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	principal, token, err := h.principalService.Login(c.Context(), &input)
	if err != nil {
		logger.LogAuth("login_failed", c, map[string]interface{}{"email": input.Email})
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	logger.LogAuth("login", c, map[string]interface{}{"principal_id": principal.ID.Hex()})
	basehdl.HandleResponse(c, authdto.LoginResponse{Token: token, Principal: principal}, nil)
	return nil
}

// HandleMe returns the authenticated principal.
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	id, ok := middleware.PrincipalID(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	principal, err := h.principalService.FindOneById(c.Context(), id)
	basehdl.HandleResponse(c, principal, err)
	return nil
}

// HandleUpdateMe applies a self-service profile update.
func (h *AuthHandler) HandleUpdateMe(c fiber.Ctx) error {
	id, ok := middleware.PrincipalID(c)
	if !ok {
		basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
		return nil
	}

	var input authdto.UpdateProfileInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	principal, err := h.principalService.UpdateProfile(c.Context(), id, &input)
	basehdl.HandleResponse(c, principal, err)
	return nil
}

// HandleForgotPassword mails a reset code.
func (h *AuthHandler) HandleForgotPassword(c fiber.Ctx) error {
	var input authdto.ForgotPasswordInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	err := h.principalService.ForgotPassword(c.Context(), input.Email)
	basehdl.HandleResponse(c, fiber.Map{"sent": err == nil}, err)
	return nil
}

// HandleResetPassword redeems a reset code.
func (h *AuthHandler) HandleResetPassword(c fiber.Ctx) error {
	var input authdto.ResetPasswordInput
	if err := basehdl.ParseRequestBody(c, &input); err != nil {
		basehdl.HandleResponse(c, nil, err)
		return nil
	}

	err := h.principalService.ResetPassword(c.Context(), &input)
	if err == nil {
		logger.LogAuth("password_reset", c, map[string]interface{}{"email": input.Email})
	}
	basehdl.HandleResponse(c, nil, err)
	return nil
}
