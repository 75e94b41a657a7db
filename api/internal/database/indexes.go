package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"leoni_app/api/internal/logger"
)

// EnsureIndexes creates the indexes every query path depends on.
// CreateMany is idempotent, so this runs on every startup.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	specs := map[string][]mongo.IndexModel{
		"principals": {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "role", Value: 1}, {Key: "department", Value: 1}, {Key: "location", Value: 1}}},
		},
		"conversations": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "lastActivityAt", Value: -1}}},
			{Keys: bson.D{{Key: "targetDepartment", Value: 1}, {Key: "targetLocation", Value: 1}}},
		},
		"messages": {
			{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "createdAt", Value: 1}}},
			{Keys: bson.D{{Key: "conversationId", Value: 1}, {Key: "isRead", Value: 1}, {Key: "senderRole", Value: 1}}},
		},
		"document_requests": {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "userDepartment", Value: 1}, {Key: "userLocation", Value: 1}}},
			{Keys: bson.D{{Key: "status.current", Value: 1}}},
		},
		"news": {
			{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "publishedAt", Value: -1}}},
			{Keys: bson.D{{Key: "targetDepartment", Value: 1}, {Key: "targetLocation", Value: 1}}},
		},
		"departments": {
			{
				Keys:    bson.D{{Key: "name", Value: 1}, {Key: "location", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
		logger.GetAppLogger().WithField("collection", collection).Debug("Indexes ensured")
	}

	return nil
}
