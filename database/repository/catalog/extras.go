package catalogRepo

import (
	"context"
	"errors"

	"dbswash/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetExtras returns all extra services ordered by id.
func (r *mongoCatalogRepo) GetExtras(ctx context.Context) ([]models.ExtraService, error) {
	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.extras.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var extras []models.ExtraService
	if err := cursor.All(ctx, &extras); err != nil {
		return nil, err
	}
	return extras, nil
}

// UpsertExtra inserts or replaces an extra service.
func (r *mongoCatalogRepo) UpsertExtra(ctx context.Context, extra *models.ExtraService) error {
	if extra.ID == 0 {
		next, err := nextID(ctx, r.extras)
		if err != nil {
			return err
		}
		extra.ID = next
	}
	opts := options.Replace().SetUpsert(true)
	_, err := r.extras.ReplaceOne(ctx, bson.M{"id": extra.ID}, extra, opts)
	return err
}

// DeleteExtra removes an extra service by id.
func (r *mongoCatalogRepo) DeleteExtra(ctx context.Context, id int) error {
	res, err := r.extras.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("extra service not found")
	}
	return nil
}
