// Package middleware holds the HTTP middlewares shared across domains.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "leoni_app/api/internal/api/auth/models"
	authsvc "leoni_app/api/internal/api/auth/service"
	basehdl "leoni_app/api/internal/api/base/handler"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/utility"
)

// Locals keys populated by AuthMiddleware.
const (
	LocalPrincipalID = "principal_id"
	LocalPrincipal   = "principal"
	LocalScope       = "principal_scope"
)

// AuthMiddleware authenticates the request and optionally enforces a
// role. An empty requireRole admits any authenticated principal. The
// ADMIN requirement also admits SUPERADMIN.
func AuthMiddleware(requireRole string) fiber.Handler {
	return func(c fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			basehdl.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		claims, err := authsvc.ParseToken(strings.TrimSpace(parts[1]))
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		principalID, err := primitive.ObjectIDFromHex(claims.Subject)
		if err != nil {
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		principalService, err := authsvc.NewPrincipalService()
		if err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		principal, err := principalService.FindOneById(c.Context(), principalID)
		if err != nil {
			// Token refers to a deleted account.
			basehdl.HandleResponse(c, nil, common.ErrTokenInvalid)
			return nil
		}

		if !principal.Active {
			basehdl.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}
		if principal.Role == scope.RoleEmployee && !principal.Approved {
			basehdl.HandleResponse(c, nil, common.ErrAccountNotApproved)
			return nil
		}

		if !roleAllows(requireRole, principal.Role) {
			basehdl.HandleResponse(c, nil, common.ErrForbidden)
			return nil
		}

		c.Locals(LocalPrincipalID, utility.ObjectID2String(principal.ID))
		c.Locals(LocalPrincipal, &principal)
		c.Locals(LocalScope, scope.Principal{
			Role:       principal.Role,
			Department: principal.Department,
			Location:   principal.Location,
		})

		return c.Next()
	}
}

// roleAllows checks a role requirement. Scoping stays with the scope
// package, this only gates which surfaces a role may reach.
func roleAllows(required, actual string) bool {
	switch required {
	case "":
		return true
	case scope.RoleAdmin:
		return actual == scope.RoleAdmin || actual == scope.RoleSuperAdmin
	default:
		return actual == required
	}
}

// Principal reads the full principal stored by AuthMiddleware.
func Principal(c fiber.Ctx) (*authmodels.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(*authmodels.Principal)
	return p, ok
}

// PrincipalScope reads the scope principal stored by AuthMiddleware.
func PrincipalScope(c fiber.Ctx) (scope.Principal, bool) {
	p, ok := c.Locals(LocalScope).(scope.Principal)
	return p, ok
}

// PrincipalID reads the authenticated principal id stored by
// AuthMiddleware.
func PrincipalID(c fiber.Ctx) (primitive.ObjectID, bool) {
	hex, ok := c.Locals(LocalPrincipalID).(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
