// Package newssvc implements the targeted news feed.
package newssvc

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	models "leoni_app/api/internal/api/news/models"
	"leoni_app/api/internal/api/scope"
)

// targetClause matches documents whose field is unrestricted (absent,
// null or the wildcard) or equals the value, case-insensitively.
func targetClause(field, value string) bson.M {
	exact := primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(scope.Normalize(value)) + "$",
		Options: "i",
	}
	return bson.M{"$or": []bson.M{
		{field: nil},
		{field: models.TargetAll},
		{field: exact},
	}}
}

// FeedFilter builds the Mongo filter for an employee's feed: active
// items whose department and location targets both admit the reader.
func FeedFilter(department, location string) bson.M {
	return bson.M{
		"isActive": true,
		"$and": []bson.M{
			targetClause("targetDepartment", department),
			targetClause("targetLocation", location),
		},
	}
}

// VisibleTo is the in-process form of FeedFilter for a single item.
func VisibleTo(item *models.NewsItem, department, location string) bool {
	return targetAdmits(item.TargetDepartment, department) &&
		targetAdmits(item.TargetLocation, location)
}

func targetAdmits(target *string, value string) bool {
	if target == nil || *target == models.TargetAll {
		return true
	}
	return strings.EqualFold(scope.Normalize(*target), scope.Normalize(value))
}

// AdminFilter builds the listing filter for an admin: SUPERADMIN sees
// every item unless an override narrows it; an ADMIN sees items whose
// targets admit their own department and location, with unrestricted
// targets matching any admin.
func AdminFilter(actor scope.Principal, overrideDept, overrideLoc string) bson.M {
	dept, loc := actor.Department, actor.Location
	if actor.Role == scope.RoleSuperAdmin {
		dept, loc = overrideDept, overrideLoc
	}

	clauses := []bson.M{}
	if scope.Normalize(dept) != "" {
		clauses = append(clauses, targetClause("targetDepartment", dept))
	}
	if scope.Normalize(loc) != "" {
		clauses = append(clauses, targetClause("targetLocation", loc))
	}
	if len(clauses) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": clauses}
}
