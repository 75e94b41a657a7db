package authsvc

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"leoni_app/api/config"
	models "leoni_app/api/internal/api/auth/models"
	"leoni_app/api/internal/api/scope"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
)

func setTokenConfig(t *testing.T, expiryHours int) {
	t.Helper()
	previous := global.MongoDB_ServerConfig
	global.MongoDB_ServerConfig = &config.Configuration{
		JwtSecret:      "unit-test-secret",
		JwtExpiryHours: expiryHours,
	}
	t.Cleanup(func() { global.MongoDB_ServerConfig = previous })
}

func TestTokenRoundTrip(t *testing.T) {
	setTokenConfig(t, 1)

	principal := models.Principal{
		ID:         primitive.NewObjectID(),
		Role:       scope.RoleAdmin,
		Department: "Production",
		Location:   "Messadine",
	}

	signed, err := CreateToken(&principal)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := ParseToken(signed)
	require.NoError(t, err)
	assert.Equal(t, principal.ID.Hex(), claims.Subject)
	assert.Equal(t, scope.RoleAdmin, claims.Role)
	assert.Equal(t, "Production", claims.Department)
	assert.Equal(t, "Messadine", claims.Location)
	assert.Greater(t, claims.ExpiresAt, claims.IssuedAt)
}

func TestParseTokenExpired(t *testing.T) {
	setTokenConfig(t, -1)

	principal := models.Principal{ID: primitive.NewObjectID(), Role: scope.RoleEmployee}
	signed, err := CreateToken(&principal)
	require.NoError(t, err)

	_, err = ParseToken(signed)
	assert.True(t, errors.Is(err, common.ErrTokenExpired))
}

func TestParseTokenTampered(t *testing.T) {
	setTokenConfig(t, 1)

	principal := models.Principal{ID: primitive.NewObjectID(), Role: scope.RoleEmployee}
	signed, err := CreateToken(&principal)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	_, err = ParseToken(tampered)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestParseTokenGarbage(t *testing.T) {
	setTokenConfig(t, 1)

	_, err := ParseToken("not-a-token")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}
