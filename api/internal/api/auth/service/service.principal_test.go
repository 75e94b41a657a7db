package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	authdto "leoni_app/api/internal/api/auth/dto"
	"leoni_app/api/internal/common"
)

func TestProfileSetOnlyContactFields(t *testing.T) {
	set := profileSet(&authdto.UpdateProfileInput{
		FirstName: "Amine",
		LastName:  "Ben Salah",
		Phone:     "+216 20 123 456",
	})

	assert.Equal(t, map[string]interface{}{
		"firstName": "Amine",
		"lastName":  "Ben Salah",
		"phone":     "+216 20 123 456",
	}, set)

	for _, frozen := range []string{"department", "location", "role", "email", "password", "approved", "active"} {
		assert.NotContains(t, set, frozen)
	}
}

func TestProfileSetPartialInput(t *testing.T) {
	set := profileSet(&authdto.UpdateProfileInput{Phone: "22333444"})
	assert.Equal(t, map[string]interface{}{"phone": "22333444"}, set)
}

func TestProfileSetEmptyInput(t *testing.T) {
	assert.Empty(t, profileSet(&authdto.UpdateProfileInput{}))
}

func TestProfileSetTrimsSpaces(t *testing.T) {
	set := profileSet(&authdto.UpdateProfileInput{FirstName: "  Amine  "})
	assert.Equal(t, "Amine", set["firstName"])
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@leoni.com", normalizeEmail("  User@Leoni.COM "))
}

func TestEnsureSuperadminRejectsBadCredentials(t *testing.T) {
	service := &PrincipalService{}

	err := service.EnsureSuperadmin(context.Background(), "not-an-email", "Str0ngEnough")
	assert.True(t, errors.Is(err, common.ErrInvalidEmail))

	err = service.EnsureSuperadmin(context.Background(), "admin@leoni.com", "short")
	assert.True(t, errors.Is(err, common.ErrWeakPassword))
}

func TestEnsureSuperadminSkipsWithoutPassword(t *testing.T) {
	service := &PrincipalService{}
	assert.NoError(t, service.EnsureSuperadmin(context.Background(), "admin@leoni.com", ""))
}
