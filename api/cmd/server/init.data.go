package main

import (
	"context"

	authsvc "leoni_app/api/internal/api/auth/service"
	deptsvc "leoni_app/api/internal/api/department/service"
	"leoni_app/api/internal/global"
	"leoni_app/api/internal/logger"
)

// InitDefaultData seeds reference data and the superadmin bootstrap
// account. Seeding runs only in init mode; both steps are idempotent.
func InitDefaultData() {
	log := logger.GetAppLogger()
	if !global.MongoDB_ServerConfig.InitMode {
		log.Info("Init mode disabled, skipping default data")
		return
	}

	ctx := context.Background()

	departmentService, err := deptsvc.NewDepartmentService()
	if err != nil {
		log.Fatalf("Failed to create department service: %v", err)
	}
	if err := departmentService.SeedDefaults(ctx); err != nil {
		log.Fatalf("Failed to seed departments: %v", err)
	}
	log.Info("Department grid ready")

	principalService, err := authsvc.NewPrincipalService()
	if err != nil {
		log.Fatalf("Failed to create principal service: %v", err)
	}
	cfg := global.MongoDB_ServerConfig
	if err := principalService.EnsureSuperadmin(ctx, cfg.SuperadminEmail, cfg.SuperadminPassword); err != nil {
		log.Fatalf("Failed to ensure superadmin account: %v", err)
	}
	log.Info("Superadmin account ready")
}
