package main

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"leoni_app/api/config"
	"leoni_app/api/internal/global"
)

// InitRegistry registers every collection in the global registry.
func InitRegistry() {
	if err := initCollections(global.MongoDB_Session, global.MongoDB_ServerConfig); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

func initCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)
	colNames := []string{
		global.ColPrincipals,
		global.ColConversations,
		global.ColMessages,
		global.ColDocumentRequests,
		global.ColNews,
		global.ColDepartments,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}
		if registered {
			logrus.Infof("Collection %s registered", name)
		}
	}
	return nil
}
