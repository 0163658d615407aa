package catalogRepo

import (
	"context"
	"errors"

	"dbswash/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetLocations returns all branch locations ordered by id.
func (r *mongoCatalogRepo) GetLocations(ctx context.Context) ([]models.Location, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.locations.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

// GetLocationByID returns a single branch by its numeric id.
func (r *mongoCatalogRepo) GetLocationByID(ctx context.Context, id int) (*models.Location, error) {
	var loc models.Location
	err := r.locations.FindOne(ctx, bson.M{"id": id}).Decode(&loc)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// UpsertLocation inserts or replaces a branch location.
func (r *mongoCatalogRepo) UpsertLocation(ctx context.Context, loc *models.Location) error {
	if loc.ID == 0 {
		next, err := nextID(ctx, r.locations)
		if err != nil {
			return err
		}
		loc.ID = next
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.locations.ReplaceOne(ctx, bson.M{"id": loc.ID}, loc, opts)
	return err
}

// DeleteLocation removes a branch location by id.
func (r *mongoCatalogRepo) DeleteLocation(ctx context.Context, id int) error {
	res, err := r.locations.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("location not found")
	}
	return nil
}
