package newssvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	models "leoni_app/api/internal/api/news/models"
	"leoni_app/api/internal/api/scope"
)

func strPtr(s string) *string { return &s }

func TestVisibleToTruthTable(t *testing.T) {
	cases := []struct {
		name     string
		dept     *string
		loc      *string
		expected bool
	}{
		{"both nil", nil, nil, true},
		{"both wildcard", strPtr("All"), strPtr("All"), true},
		{"department match", strPtr("Production"), nil, true},
		{"department mismatch", strPtr("Qualité"), nil, false},
		{"location match", nil, strPtr("Mateur"), true},
		{"location mismatch", nil, strPtr("Sousse"), false},
		{"both match", strPtr("Production"), strPtr("Mateur"), true},
		{"department match location mismatch", strPtr("Production"), strPtr("Sousse"), false},
		{"department mismatch location match", strPtr("Qualité"), strPtr("Mateur"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := models.NewsItem{TargetDepartment: tc.dept, TargetLocation: tc.loc}
			assert.Equal(t, tc.expected, VisibleTo(&item, "Production", "Mateur"))
		})
	}
}

func TestVisibleToCaseInsensitive(t *testing.T) {
	item := models.NewsItem{TargetDepartment: strPtr("production"), TargetLocation: strPtr(" MATEUR ")}
	assert.True(t, VisibleTo(&item, "Production", "Mateur"))
}

func TestFeedFilterShape(t *testing.T) {
	filter := FeedFilter("Production", "Mateur")

	assert.Equal(t, true, filter["isActive"])
	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 2)

	deptOr, ok := clauses[0]["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, deptOr, 3)
	assert.Equal(t, bson.M{"targetDepartment": nil}, deptOr[0])
	assert.Equal(t, bson.M{"targetDepartment": models.TargetAll}, deptOr[1])
}

func TestAdminFilterSuperAdminUnrestricted(t *testing.T) {
	filter := AdminFilter(scope.Principal{Role: scope.RoleSuperAdmin}, "", "")
	assert.Empty(t, filter)
}

func TestAdminFilterSuperAdminOverride(t *testing.T) {
	filter := AdminFilter(scope.Principal{Role: scope.RoleSuperAdmin}, "Production", "")
	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, clauses, 1)
}

func TestAdminFilterAdminScoped(t *testing.T) {
	actor := scope.Principal{Role: scope.RoleAdmin, Department: "Production", Location: "Mateur"}
	filter := AdminFilter(actor, "Qualité", "Sousse")

	// Overrides are ignored below SUPERADMIN.
	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	require.Len(t, clauses, 2)
}

func TestAdminFilterAdminEmptyFieldRelaxes(t *testing.T) {
	actor := scope.Principal{Role: scope.RoleAdmin, Department: "Production"}
	filter := AdminFilter(actor, "", "")

	clauses, ok := filter["$and"].([]bson.M)
	require.True(t, ok)
	assert.Len(t, clauses, 1)
}
