// Package deptsvc implements the department reference data service.
package deptsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	models "leoni_app/api/internal/api/department/models"
	basesvc "leoni_app/api/internal/api/base/service"
	"leoni_app/api/internal/common"
	"leoni_app/api/internal/global"
)

// Default grid seeded when the collection is empty.
var (
	defaultDepartments = []string{
		"Production",
		"Qualité",
		"Maintenance",
		"Logistique",
		"Ressources Humaines",
		"Informatique",
		"Finance",
	}
	defaultLocations = []string{
		"Messadine",
		"Mateur",
		"Manzel Hayet",
	}
)

// DepartmentService manages the departments collection.
type DepartmentService struct {
	*basesvc.BaseServiceMongoImpl[models.Department]
}

// NewDepartmentService creates a DepartmentService.
func NewDepartmentService() (*DepartmentService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColDepartments)
	if !exist {
		return nil, fmt.Errorf("failed to get departments collection: %v", common.ErrNotFound)
	}
	return &DepartmentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Department](collection),
	}, nil
}

// ListActive returns the active departments sorted by name then
// location. Seeds the default grid first when the collection is empty.
func (s *DepartmentService) ListActive(ctx context.Context) ([]models.Department, error) {
	if err := s.SeedDefaults(ctx); err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "location", Value: 1}})
	return s.Find(ctx, bson.M{"active": true}, opts)
}

// SeedDefaults inserts the default department and location grid when
// the collection holds no document. Idempotent.
func (s *DepartmentService) SeedDefaults(ctx context.Context) error {
	count, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	departments := make([]models.Department, 0, len(defaultDepartments)*len(defaultLocations))
	for _, name := range defaultDepartments {
		for _, location := range defaultLocations {
			departments = append(departments, models.Department{
				Name:     name,
				Location: location,
				Active:   true,
			})
		}
	}

	if _, err := s.InsertMany(ctx, departments); err != nil {
		// A concurrent seeder may have won the race.
		if errors.Is(err, common.ErrDuplicate) {
			return nil
		}
		return err
	}

	logrus.WithField("count", len(departments)).Info("SeedDefaults: grille des départements initialisée")
	return nil
}
