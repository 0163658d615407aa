package catalogRepo

import (
	"context"
	"errors"

	"dbswash/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPackages returns all active service packages ordered by id.
func (r *mongoCatalogRepo) GetPackages(ctx context.Context) ([]models.ServicePackage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.packages.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var packages []models.ServicePackage
	if err := cursor.All(ctx, &packages); err != nil {
		return nil, err
	}
	return packages, nil
}

// GetPackageByID returns a single package by its numeric id.
func (r *mongoCatalogRepo) GetPackageByID(ctx context.Context, id int) (*models.ServicePackage, error) {
	var pkg models.ServicePackage
	err := r.packages.FindOne(ctx, bson.M{"id": id}).Decode(&pkg)
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

// UpsertPackage inserts or replaces a package. A zero id is assigned the next
// free id in the collection.
func (r *mongoCatalogRepo) UpsertPackage(ctx context.Context, pkg *models.ServicePackage) error {
	if pkg.ID == 0 {
		next, err := nextID(ctx, r.packages)
		if err != nil {
			return err
		}
		pkg.ID = next
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.packages.ReplaceOne(ctx, bson.M{"id": pkg.ID}, pkg, opts)
	return err
}

// DeletePackage removes a package by id.
func (r *mongoCatalogRepo) DeletePackage(ctx context.Context, id int) error {
	res, err := r.packages.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("package not found")
	}
	return nil
}

// nextID returns max(id)+1 for a catalog collection. Catalog writes go through
// the single admin surface, so a read-then-write allocation is acceptable.
func nextID(ctx context.Context, coll *mongo.Collection) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "id", Value: -1}})
	var doc struct {
		ID int `bson:"id"`
	}
	err := coll.FindOne(ctx, bson.M{}, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	return doc.ID + 1, nil
}
