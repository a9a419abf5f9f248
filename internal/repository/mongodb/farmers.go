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

// FarmerRepo is the Mongo-backed FarmerRepository.
type FarmerRepo struct {
	coll *mongo.Collection
}

func (r *FarmerRepo) Insert(ctx context.Context, farmer models.Farmer) error {
	if _, err := r.coll.InsertOne(ctx, farmer); err != nil {
		return fmt.Errorf("insert farmer: %w", err)
	}
	return nil
}

func (r *FarmerRepo) FindByID(ctx context.Context, id string) (*models.Farmer, error) {
	var farmer models.Farmer
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&farmer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrFarmerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find farmer %s: %w", id, err)
	}
	return &farmer, nil
}

func (r *FarmerRepo) List(ctx context.Context, filter FarmerFilter) ([]models.Farmer, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := bson.M{"$regex": filter.Search, "$options": "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"phone": pattern},
			bson.M{"village": pattern},
		}
	}
	if filter.IsActive != nil {
		query["is_active"] = *filter.IsActive
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list farmers: %w", err)
	}

	var farmers []models.Farmer
	if err := cursor.All(ctx, &farmers); err != nil {
		return nil, fmt.Errorf("decode farmers: %w", err)
	}
	return farmers, nil
}

func (r *FarmerRepo) Update(ctx context.Context, id string, set map[string]interface{}) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update farmer %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrFarmerNotFound
	}
	return nil
}

func (r *FarmerRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete farmer %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrFarmerNotFound
	}
	return nil
}

// ApplyLedgerDelta increments the running totals in a single $inc so
// concurrent transactions for the same farmer cannot interleave partially.
func (r *FarmerRepo) ApplyLedgerDelta(ctx context.Context, id string, delta models.FarmerLedgerDelta) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{
		"$inc": bson.M{
			"total_milk": delta.Milk,
			"total_due":  delta.Due,
			"total_paid": delta.Paid,
			"balance":    delta.Balance,
		},
	})
	if err != nil {
		return fmt.Errorf("apply farmer ledger delta %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrFarmerNotFound
	}
	return nil
}

func (r *FarmerRepo) Count(ctx context.Context, onlyActive bool) (int64, error) {
	query := bson.M{}
	if onlyActive {
		query["is_active"] = true
	}
	n, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("count farmers: %w", err)
	}
	return n, nil
}

// TotalBalance sums outstanding balances across all farmers.
func (r *FarmerRepo) TotalBalance(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": nil, "total": bson.M{"$sum": "$balance"}}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate farmer balances: %w", err)
	}

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode balance aggregate: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}
