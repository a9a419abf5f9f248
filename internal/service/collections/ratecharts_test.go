package collections

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbani/dairy/internal/domain/models"
)

func TestCreateRateChartSingleDefault(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateRateChart(ctx, models.CreateRateChartRequest{
		Name:      "summer",
		Entries:   []models.RateChartEntry{{Fat: 4.0, SNF: 9.0, Rate: 40}},
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, first.IsDefault)

	second, err := svc.CreateRateChart(ctx, models.CreateRateChartRequest{
		Name:      "winter",
		Entries:   []models.RateChartEntry{{Fat: 4.0, SNF: 9.0, Rate: 44}},
		IsDefault: true,
	})
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	// Marking the second chart default demoted the first.
	def, err := svc.DefaultRateChart(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, def.ID)

	charts, err := svc.ListRateCharts(ctx)
	require.NoError(t, err)
	defaults := 0
	for _, chart := range charts {
		if chart.IsDefault {
			defaults++
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestDeleteRateChart(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	chart, err := svc.CreateRateChart(ctx, models.CreateRateChartRequest{
		Name:    "plain",
		Entries: []models.RateChartEntry{{Fat: 4.0, SNF: 9.0, Rate: 40}},
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRateChart(ctx, chart.ID))
	err = svc.DeleteRateChart(ctx, chart.ID)
	assert.ErrorIs(t, err, models.ErrRateChartNotFound)
}
