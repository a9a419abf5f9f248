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

// ExpenseRepo is the Mongo-backed ExpenseRepository.
type ExpenseRepo struct {
	coll *mongo.Collection
}

func (r *ExpenseRepo) Insert(ctx context.Context, expense models.Expense) error {
	if _, err := r.coll.InsertOne(ctx, expense); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepo) FindByID(ctx context.Context, id string) (*models.Expense, error) {
	var expense models.Expense
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&expense)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrExpenseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find expense %s: %w", id, err)
	}
	return &expense, nil
}

func (r *ExpenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]models.Expense, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if rng := dateRange(filter.StartDate, filter.EndDate); len(rng) > 0 {
		query["date"] = rng
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}

	var expenses []models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

func (r *ExpenseRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete expense %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrExpenseNotFound
	}
	return nil
}
