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

// PlantRepo is the Mongo-backed PlantRepository.
type PlantRepo struct {
	coll *mongo.Collection
}

func (r *PlantRepo) Insert(ctx context.Context, plant models.DairyPlant) error {
	if _, err := r.coll.InsertOne(ctx, plant); err != nil {
		return fmt.Errorf("insert dairy plant: %w", err)
	}
	return nil
}

func (r *PlantRepo) FindByID(ctx context.Context, id string) (*models.DairyPlant, error) {
	var plant models.DairyPlant
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&plant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrPlantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find dairy plant %s: %w", id, err)
	}
	return &plant, nil
}

func (r *PlantRepo) List(ctx context.Context) ([]models.DairyPlant, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list dairy plants: %w", err)
	}

	var plants []models.DairyPlant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, fmt.Errorf("decode dairy plants: %w", err)
	}
	return plants, nil
}

// ApplyLedgerDelta increments the plant's running totals in one $inc.
func (r *PlantRepo) ApplyLedgerDelta(ctx context.Context, id string, delta models.PlantLedgerDelta) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{
			"total_milk_supplied": delta.MilkKg,
			"total_amount":        delta.Amount,
			"total_paid":          delta.Paid,
			"balance":             delta.Balance,
		},
	})
	if err != nil {
		return fmt.Errorf("apply plant ledger delta %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrPlantNotFound
	}
	return nil
}
