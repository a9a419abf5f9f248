package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nirbani/dairy/internal/domain/models"
)

// RateChartRepo is the Mongo-backed RateChartRepository.
type RateChartRepo struct {
	coll *mongo.Collection
}

func (r *RateChartRepo) Insert(ctx context.Context, chart models.RateChart) error {
	if _, err := r.coll.InsertOne(ctx, chart); err != nil {
		return fmt.Errorf("insert rate chart: %w", err)
	}
	return nil
}

func (r *RateChartRepo) FindByID(ctx context.Context, id string) (*models.RateChart, error) {
	var chart models.RateChart
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&chart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrRateChartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find rate chart %s: %w", id, err)
	}
	return &chart, nil
}

func (r *RateChartRepo) FindDefault(ctx context.Context) (*models.RateChart, error) {
	var chart models.RateChart
	err := r.coll.FindOne(ctx, bson.M{"is_default": true}).Decode(&chart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, models.ErrRateChartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find default rate chart: %w", err)
	}
	return &chart, nil
}

func (r *RateChartRepo) List(ctx context.Context) ([]models.RateChart, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list rate charts: %w", err)
	}

	var charts []models.RateChart
	if err := cursor.All(ctx, &charts); err != nil {
		return nil, fmt.Errorf("decode rate charts: %w", err)
	}
	return charts, nil
}

func (r *RateChartRepo) Replace(ctx context.Context, chart models.RateChart) error {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": chart.ID}, chart)
	if err != nil {
		return fmt.Errorf("replace rate chart %s: %w", chart.ID, err)
	}
	if res.MatchedCount == 0 {
		return models.ErrRateChartNotFound
	}
	return nil
}

func (r *RateChartRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete rate chart %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return models.ErrRateChartNotFound
	}
	return nil
}

// ClearDefault unsets is_default everywhere; called before promoting a chart.
func (r *RateChartRepo) ClearDefault(ctx context.Context) error {
	if _, err := r.coll.UpdateMany(ctx, bson.M{}, bson.M{"$set": bson.M{"is_default": false}}); err != nil {
		return fmt.Errorf("clear default rate chart: %w", err)
	}
	return nil
}
