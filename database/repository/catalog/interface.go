package catalogRepo

import (
	"context"
	"log"

	"dbswash/database"
	"dbswash/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository provides access to the catalog reference data consumed by the
// booking wizard: service packages, extra services and branch locations.
type Repository interface {
	GetPackages(ctx context.Context) ([]models.ServicePackage, error)
	GetPackageByID(ctx context.Context, id int) (*models.ServicePackage, error)
	UpsertPackage(ctx context.Context, pkg *models.ServicePackage) error
	DeletePackage(ctx context.Context, id int) error

	GetExtras(ctx context.Context) ([]models.ExtraService, error)
	UpsertExtra(ctx context.Context, extra *models.ExtraService) error
	DeleteExtra(ctx context.Context, id int) error

	GetLocations(ctx context.Context) ([]models.Location, error)
	GetLocationByID(ctx context.Context, id int) (*models.Location, error)
	UpsertLocation(ctx context.Context, loc *models.Location) error
	DeleteLocation(ctx context.Context, id int) error
}

type mongoCatalogRepo struct {
	packages  *mongo.Collection
	extras    *mongo.Collection
	locations *mongo.Collection
}

// NewMongoCatalogRepo returns a new Repository instance using MongoDB.
func NewMongoCatalogRepo() Repository {
	db := database.MongoClient.Database("dbswash")
	repo := &mongoCatalogRepo{
		packages:  db.Collection("packages"),
		extras:    db.Collection("extras"),
		locations: db.Collection("locations"),
	}
	if err := repo.ensureIndexes(); err != nil {
		log.Printf("catalog repo: %v", err)
	}
	return repo
}
