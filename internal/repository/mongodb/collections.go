package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nirbani/dairy/internal/domain/models"
)

// CollectionRepo is the Mongo-backed CollectionRepository.
type CollectionRepo struct {
	coll *mongo.Collection
}

func (r *CollectionRepo) Insert(ctx context.Context, col models.MilkCollection) error {
	_, err := r.coll.InsertOne(ctx, col)
	if mongo.IsDuplicateKeyError(err) {
		return &models.DuplicateCollectionError{FarmerID: col.FarmerID, Date: col.Date, Shift: col.Shift}
	}
	if err != nil {
		return fmt.Errorf("insert collection: %w", err)
	}
	return nil
}

func (r *CollectionRepo) FindByID(ctx context.Context, id string) (*models.MilkCollection, error) {
	var col models.MilkCollection
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&col)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find collection %s: %w", id, err)
	}
	return &col, nil
}

func (r *CollectionRepo) ExistsForSlot(ctx context.Context, farmerID, date string, shift models.Shift) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"farmer_id": farmerID, "date": date, "shift": shift})
	if err != nil {
		return false, fmt.Errorf("check collection slot: %w", err)
	}
	return n > 0, nil
}

func (r *CollectionRepo) List(ctx context.Context, filter CollectionFilter) ([]models.MilkCollection, error) {
	query := bson.M{}
	if filter.FarmerID != "" {
		query["farmer_id"] = filter.FarmerID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	} else if rng := dateRange(filter.StartDate, filter.EndDate); len(rng) > 0 {
		query["date"] = rng
	}
	if filter.Shift != "" {
		query["shift"] = filter.Shift
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	var cols []models.MilkCollection
	if err := cursor.All(ctx, &cols); err != nil {
		return nil, fmt.Errorf("decode collections: %w", err)
	}
	return cols, nil
}

func (r *CollectionRepo) Replace(ctx context.Context, col models.MilkCollection) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": col.ID}, col)
	if err != nil {
		return fmt.Errorf("replace collection %s: %w", col.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrCollectionNotFound
	}
	return nil
}

func (r *CollectionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete collection %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrCollectionNotFound
	}
	return nil
}

func (r *CollectionRepo) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"farmer_id": farmerID})
	if err != nil {
		return 0, fmt.Errorf("count farmer collections: %w", err)
	}
	return n, nil
}
