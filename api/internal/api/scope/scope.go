// Package scope computes visibility of department and location scoped
// resources for a given principal. ADMIN principals see only resources
// matching their own department and location, SUPERADMIN principals see
// everything. The same rules are exposed twice: as a MongoDB filter for
// queries and as an in-memory predicate for single entities.
package scope

import (
	"regexp"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on principals and carried in tokens.
const (
	RoleEmployee   = "EMPLOYEE"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// Principal is the minimal identity a scope decision needs.
type Principal struct {
	Role       string
	Department string
	Location   string
}

// options configures which document fields a Mongo filter targets and
// an optional scope override for SUPERADMIN principals.
type options struct {
	departmentField string
	locationField   string
	overrideDept    string
	overrideLoc     string
	hasOverride     bool
}

// Option customizes Filter.
type Option func(*options)

// WithFields changes the document field names the filter matches on.
// Defaults are "userDepartment" and "userLocation".
func WithFields(departmentField, locationField string) Option {
	return func(o *options) {
		o.departmentField = departmentField
		o.locationField = locationField
	}
}

// WithOverride narrows the result to an explicit department and location
// pair. Only SUPERADMIN principals may widen or narrow their scope, so
// the override is ignored for every other role.
func WithOverride(department, location string) Option {
	return func(o *options) {
		o.overrideDept = department
		o.overrideLoc = location
		o.hasOverride = true
	}
}

// Normalize trims surrounding whitespace from a scope value. Comparison
// itself is case insensitive, so no case folding happens here.
func Normalize(v string) string {
	return strings.TrimSpace(v)
}

// equalFold reports whether two scope values match after normalization.
func equalFold(a, b string) bool {
	return strings.EqualFold(Normalize(a), Normalize(b))
}

// exactInsensitive builds an anchored case-insensitive regex matching
// the whole value. Meta characters in the value are quoted so user data
// never becomes a pattern.
func exactInsensitive(v string) primitive.Regex {
	return primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(Normalize(v)) + "$",
		Options: "i",
	}
}

// Filter returns the MongoDB filter restricting a query to the
// resources the principal may see. An empty filter means no
// restriction. EMPLOYEE principals get a filter matching nothing since
// scope filtering is an admin surface.
func Filter(p Principal, opts ...Option) bson.M {
	o := options{
		departmentField: "userDepartment",
		locationField:   "userLocation",
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch p.Role {
	case RoleSuperAdmin:
		if o.hasOverride {
			return fieldFilter(o, o.overrideDept, o.overrideLoc)
		}
		return bson.M{}
	case RoleAdmin:
		return fieldFilter(o, p.Department, p.Location)
	default:
		// Matches no document.
		return bson.M{"_id": bson.M{"$exists": false}}
	}
}

func fieldFilter(o options, dept, loc string) bson.M {
	filter := bson.M{}
	if Normalize(dept) != "" {
		filter[o.departmentField] = exactInsensitive(dept)
	}
	if Normalize(loc) != "" {
		filter[o.locationField] = exactInsensitive(loc)
	}
	return filter
}

// Match reports whether the principal may see a single entity carrying
// the given department and location. SUPERADMIN sees everything. ADMIN
// requires both fields to match its own, with an empty principal field
// matching anything. Every other role is refused.
func Match(p Principal, entityDept, entityLoc string) bool {
	switch p.Role {
	case RoleSuperAdmin:
		return true
	case RoleAdmin:
		if Normalize(p.Department) != "" && !equalFold(p.Department, entityDept) {
			return false
		}
		if Normalize(p.Location) != "" && !equalFold(p.Location, entityLoc) {
			return false
		}
		return true
	default:
		return false
	}
}
