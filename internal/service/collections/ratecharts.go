package collections

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nirbani/dairy/internal/domain/models"
)

// CreateRateChart stores a quality table. Marking it default unsets every
// other default first; at most one chart drives resolution.
func (s *Service) CreateRateChart(ctx context.Context, req models.CreateRateChartRequest) (*models.RateChart, error) {
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: rate chart needs at least one entry", models.ErrValidation)
	}

	if req.IsDefault {
		if err := s.charts.ClearDefault(ctx); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	chart := models.RateChart{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Entries:   req.Entries,
		IsDefault: req.IsDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.charts.Insert(ctx, chart); err != nil {
		return nil, err
	}

	s.logger.Info("rate chart created", zap.String("chart_id", chart.ID), zap.Bool("is_default", chart.IsDefault))
	return &chart, nil
}

// UpdateRateChart replaces a chart's name, entries and default flag.
func (s *Service) UpdateRateChart(ctx context.Context, id string, req models.CreateRateChartRequest) (*models.RateChart, error) {
	chart, err := s.charts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(req.Entries) == 0 {
		return nil, fmt.Errorf("%w: rate chart needs at least one entry", models.ErrValidation)
	}

	if req.IsDefault {
		if err := s.charts.ClearDefault(ctx); err != nil {
			return nil, err
		}
	}

	chart.Name = req.Name
	chart.Entries = req.Entries
	chart.IsDefault = req.IsDefault
	chart.UpdatedAt = s.now().UTC()

	if err := s.charts.Replace(ctx, *chart); err != nil {
		return nil, err
	}
	return chart, nil
}

// DeleteRateChart removes a chart.
func (s *Service) DeleteRateChart(ctx context.Context, id string) error {
	return s.charts.Delete(ctx, id)
}

// ListRateCharts returns all charts.
func (s *Service) ListRateCharts(ctx context.Context) ([]models.RateChart, error) {
	return s.charts.List(ctx)
}

// DefaultRateChart returns the chart currently driving resolution.
func (s *Service) DefaultRateChart(ctx context.Context) (*models.RateChart, error) {
	return s.charts.FindDefault(ctx)
}
