package main

import (
	"github.com/sirupsen/logrus"

	"leoni_app/api/config"
	"leoni_app/api/internal/database"
	"leoni_app/api/internal/global"
)

// InitGlobal initializes the process-wide state: validator, config and
// the MongoDB connection with its indexes.
func InitGlobal() {
	initValidator()
	initConfig()
	initDatabaseMongoDB()
}

func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

func initConfig() {
	global.MongoDB_ServerConfig = config.NewConfig()
	if global.MongoDB_ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil")
	}
	logrus.Info("Initialized server config")
}

func initDatabaseMongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err)
	}
	logrus.Info("Connected to MongoDB")

	db := global.MongoDB_Session.Database(global.MongoDB_ServerConfig.MongoDB_DBName)
	if err := database.EnsureIndexes(db); err != nil {
		logrus.Fatalf("Failed to ensure indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}
