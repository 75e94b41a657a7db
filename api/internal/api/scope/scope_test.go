package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFilterSuperAdminSeesEverything(t *testing.T) {
	p := Principal{Role: RoleSuperAdmin, Department: "Production", Location: "Mateur"}
	filter := Filter(p)
	assert.Empty(t, filter)
}

func TestFilterSuperAdminOverride(t *testing.T) {
	p := Principal{Role: RoleSuperAdmin}
	filter := Filter(p, WithOverride("Production", "Sousse"))

	assert.Len(t, filter, 2)
	dept := filter["userDepartment"].(primitive.Regex)
	assert.Equal(t, "^Production$", dept.Pattern)
	assert.Equal(t, "i", dept.Options)
	loc := filter["userLocation"].(primitive.Regex)
	assert.Equal(t, "^Sousse$", loc.Pattern)
}

func TestFilterOverrideIgnoredForAdmin(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	filter := Filter(p, WithOverride("Qualité", "Sousse"))

	dept := filter["userDepartment"].(primitive.Regex)
	assert.Equal(t, "^Production$", dept.Pattern)
	loc := filter["userLocation"].(primitive.Regex)
	assert.Equal(t, "^Mateur$", loc.Pattern)
}

func TestFilterAdminBothFields(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	filter := Filter(p)

	assert.Len(t, filter, 2)
	assert.Contains(t, filter, "userDepartment")
	assert.Contains(t, filter, "userLocation")
}

func TestFilterAdminEmptyLocationRelaxes(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production"}
	filter := Filter(p)

	assert.Len(t, filter, 1)
	assert.Contains(t, filter, "userDepartment")
	assert.NotContains(t, filter, "userLocation")
}

func TestFilterEmployeeMatchesNothing(t *testing.T) {
	p := Principal{Role: RoleEmployee, Department: "Production", Location: "Mateur"}
	filter := Filter(p)
	assert.Equal(t, bson.M{"_id": bson.M{"$exists": false}}, filter)
}

func TestFilterCustomFields(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Qualité", Location: "Messadine"}
	filter := Filter(p, WithFields("targetDepartment", "targetLocation"))

	assert.Contains(t, filter, "targetDepartment")
	assert.Contains(t, filter, "targetLocation")
}

func TestFilterQuotesRegexMeta(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "R&D (Tunis)", Location: "Mateur"}
	filter := Filter(p)

	dept := filter["userDepartment"].(primitive.Regex)
	assert.Equal(t, `^R&D \(Tunis\)$`, dept.Pattern)
}

func TestFilterIsPure(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	first := Filter(p)
	second := Filter(p)
	assert.Equal(t, first, second)
}

func TestMatchSuperAdmin(t *testing.T) {
	p := Principal{Role: RoleSuperAdmin}
	assert.True(t, Match(p, "Production", "Mateur"))
	assert.True(t, Match(p, "", ""))
}

func TestMatchAdminSameScope(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	assert.True(t, Match(p, "Production", "Mateur"))
}

func TestMatchAdminDifferentLocation(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	assert.False(t, Match(p, "Production", "Sousse"))
}

func TestMatchAdminDifferentDepartment(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production", Location: "Mateur"}
	assert.False(t, Match(p, "Qualité", "Mateur"))
}

func TestMatchAdminEmptyFieldRelaxes(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: "Production"}
	assert.True(t, Match(p, "Production", "Mateur"))
	assert.True(t, Match(p, "Production", "Sousse"))
	assert.False(t, Match(p, "Qualité", "Sousse"))
}

func TestMatchCaseAndSpaceInsensitive(t *testing.T) {
	p := Principal{Role: RoleAdmin, Department: " production ", Location: "MATEUR"}
	assert.True(t, Match(p, "Production", "mateur "))
}

func TestMatchEmployeeRefused(t *testing.T) {
	p := Principal{Role: RoleEmployee, Department: "Production", Location: "Mateur"}
	assert.False(t, Match(p, "Production", "Mateur"))
}

func TestNormalizeNoOpOnCleanValue(t *testing.T) {
	assert.Equal(t, "Production", Normalize("Production"))
	assert.Equal(t, "Production", Normalize("  Production\t"))
}
