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

// DispatchRepo is the Mongo-backed DispatchRepository.
type DispatchRepo struct {
	coll *mongo.Collection
}

func (r *DispatchRepo) Insert(ctx context.Context, dispatch models.Dispatch) error {
	if _, err := r.coll.InsertOne(ctx, dispatch); err != nil {
		return fmt.Errorf("insert dispatch: %w", err)
	}
	return nil
}

func (r *DispatchRepo) FindByID(ctx context.Context, id string) (*models.Dispatch, error) {
	var dispatch models.Dispatch
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&dispatch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrDispatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find dispatch %s: %w", id, err)
	}
	return &dispatch, nil
}

func (r *DispatchRepo) List(ctx context.Context, filter DispatchFilter) ([]models.Dispatch, error) {
	query := bson.M{}
	if filter.PlantID != "" {
		query["dairy_plant_id"] = filter.PlantID
	}
	if rng := dateRange(filter.StartDate, filter.EndDate); len(rng) > 0 {
		query["date"] = rng
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}

	var dispatches []models.Dispatch
	if err := cursor.All(ctx, &dispatches); err != nil {
		return nil, fmt.Errorf("decode dispatches: %w", err)
	}
	return dispatches, nil
}

func (r *DispatchRepo) Replace(ctx context.Context, dispatch models.Dispatch) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": dispatch.ID}, dispatch)
	if err != nil {
		return fmt.Errorf("replace dispatch %s: %w", dispatch.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrDispatchNotFound
	}
	return nil
}

func (r *DispatchRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete dispatch %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrDispatchNotFound
	}
	return nil
}

// DairyPaymentRepo is the Mongo-backed DairyPaymentRepository.
type DairyPaymentRepo struct {
	coll *mongo.Collection
}

func (r *DairyPaymentRepo) Insert(ctx context.Context, payment models.DairyPayment) error {
	if _, err := r.coll.InsertOne(ctx, payment); err != nil {
		return fmt.Errorf("insert dairy payment: %w", err)
	}
	return nil
}

func (r *DairyPaymentRepo) FindByID(ctx context.Context, id string) (*models.DairyPayment, error) {
	var payment models.DairyPayment
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&payment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrDairyPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find dairy payment %s: %w", id, err)
	}
	return &payment, nil
}

func (r *DairyPaymentRepo) List(ctx context.Context, plantID string) ([]models.DairyPayment, error) {
	query := bson.M{}
	if plantID != "" {
		query["dairy_plant_id"] = plantID
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list dairy payments: %w", err)
	}

	var payments []models.DairyPayment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("decode dairy payments: %w", err)
	}
	return payments, nil
}

func (r *DairyPaymentRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete dairy payment %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrDairyPaymentNotFound
	}
	return nil
}
