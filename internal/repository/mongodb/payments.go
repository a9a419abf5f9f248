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

// PaymentRepo is the Mongo-backed PaymentRepository.
type PaymentRepo struct {
	coll *mongo.Collection
}

func (r *PaymentRepo) Insert(ctx context.Context, payment models.Payment) error {
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	var payment models.Payment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find payment %s: %w", id, err)
	}
	return &payment, nil
}

func (r *PaymentRepo) List(ctx context.Context, filter PaymentFilter) ([]models.Payment, error) {
	query := bson.M{}
	if filter.FarmerID != "" {
		query["farmer_id"] = filter.FarmerID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	} else if rng := dateRange(filter.StartDate, filter.EndDate); len(rng) > 0 {
		query["date"] = rng
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete payment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrPaymentNotFound
	}
	return nil
}

func (r *PaymentRepo) CountByFarmer(ctx context.Context, farmerID string) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"farmer_id": farmerID})
	if err != nil {
		return 0, fmt.Errorf("count farmer payments: %w", err)
	}
	return n, nil
}
