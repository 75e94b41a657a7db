// Package global holds the process-wide singletons: the parsed
// configuration, the mongo session and the collection registry.
package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"leoni_app/api/config"
	"leoni_app/api/internal/registry"
)

var (
	// MongoDB_ServerConfig is the parsed server configuration.
	MongoDB_ServerConfig *config.Configuration

	// MongoDB_Session is the shared mongo client.
	MongoDB_Session *mongo.Client

	// Validate is the shared validator instance, see InitValidator.
	Validate *validator.Validate

	// RegistryCollections holds the named *mongo.Collection handles.
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// Collection names. Registered in init.registry.go at startup and
// resolved through RegistryCollections everywhere else.
const (
	ColPrincipals       = "principals"
	ColConversations    = "conversations"
	ColMessages         = "messages"
	ColDocumentRequests = "document_requests"
	ColNews             = "news"
	ColDepartments      = "departments"
)
