package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nirbani/dairy/internal/domain/models"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 152.24, Round2(152.244774))
	assert.Equal(t, 152.25, Round2(152.245))
	assert.Equal(t, -152.25, Round2(-152.245))
	assert.Equal(t, 10.0, Round2(10))
}

func TestDeriveSNF(t *testing.T) {
	assert.Equal(t, 9.55, DeriveSNF(4.2))
	assert.Equal(t, 10.0, DeriveSNF(6.0))
	assert.Equal(t, 9.33, DeriveSNF(3.333))
}

func TestComputeAmount(t *testing.T) {
	assert.Equal(t, 152.24, ComputeAmount(3.333, 45.678))
	assert.Equal(t, 243.65, ComputeAmount(5.5, 44.3))
	assert.Equal(t, 52000.0, ComputeAmount(1000, 52))
	assert.Equal(t, 0.0, ComputeAmount(0, 45))
}

func TestFormulaRate(t *testing.T) {
	// fat*6 + snf*2
	assert.Equal(t, 44.3, FormulaRate(4.2, 9.55))
	assert.Equal(t, 38.66, FormulaRate(3.5, 8.83))
}

func TestResolveOverrideWinsOverEverything(t *testing.T) {
	farmer := &models.Farmer{FixedRate: 40}
	chart := &models.RateChart{Entries: []models.RateChartEntry{{Fat: 4.0, SNF: 9.5, Rate: 45}}}

	rate := Resolve(Quote{Fat: 4.0, SNF: 9.5, Override: 50}, farmer, chart)
	assert.Equal(t, 50.0, rate)
}

func TestResolveFarmerFixedRates(t *testing.T) {
	farmer := &models.Farmer{
		MilkType:    models.MilkTypeMix,
		FixedRate:   40,
		CowRate:     35,
		BuffaloRate: 55,
	}

	assert.Equal(t, 55.0, Resolve(Quote{Fat: 7, SNF: 9, MilkType: models.MilkTypeBuffalo}, farmer, nil))
	assert.Equal(t, 35.0, Resolve(Quote{Fat: 4, SNF: 8.5, MilkType: models.MilkTypeCow}, farmer, nil))
	// Mix falls through to the generic fixed rate.
	assert.Equal(t, 40.0, Resolve(Quote{Fat: 5, SNF: 9, MilkType: models.MilkTypeMix}, farmer, nil))
}

func TestResolveFallsBackToFarmerMilkType(t *testing.T) {
	farmer := &models.Farmer{MilkType: models.MilkTypeBuffalo, BuffaloRate: 58}

	// No milk type on the quote; the farmer's registered type selects the rate.
	assert.Equal(t, 58.0, Resolve(Quote{Fat: 7.5, SNF: 9.2}, farmer, nil))
}

func TestResolveSpecificRateUnsetFallsThrough(t *testing.T) {
	farmer := &models.Farmer{FixedRate: 42}

	// Buffalo requested but no buffalo rate set: generic fixed rate applies.
	assert.Equal(t, 42.0, Resolve(Quote{Fat: 7, SNF: 9, MilkType: models.MilkTypeBuffalo}, farmer, nil))
}

func TestResolveChartNearestMatch(t *testing.T) {
	chart := &models.RateChart{Entries: []models.RateChartEntry{
		{Fat: 3.5, SNF: 8.5, Rate: 32},
		{Fat: 4.0, SNF: 9.0, Rate: 38},
		{Fat: 4.5, SNF: 9.5, Rate: 44},
	}}

	// Exact hit.
	assert.Equal(t, 38.0, Resolve(Quote{Fat: 4.0, SNF: 9.0}, nil, chart))
	// Nearest by |Δfat| + |Δsnf|.
	assert.Equal(t, 44.0, Resolve(Quote{Fat: 4.4, SNF: 9.4}, nil, chart))
	assert.Equal(t, 32.0, Resolve(Quote{Fat: 3.4, SNF: 8.6}, nil, chart))
}

func TestResolveChartTieFirstEntryWins(t *testing.T) {
	chart := &models.RateChart{Entries: []models.RateChartEntry{
		{Fat: 3.9, SNF: 9.0, Rate: 36},
		{Fat: 4.1, SNF: 9.0, Rate: 40},
	}}

	// 4.0/9.0 is equidistant from both entries; the earlier one wins.
	assert.Equal(t, 36.0, Resolve(Quote{Fat: 4.0, SNF: 9.0}, nil, chart))
}

func TestResolveFormulaFallback(t *testing.T) {
	// No override, no farmer rates, no chart.
	assert.Equal(t, 44.3, Resolve(Quote{Fat: 4.2, SNF: 9.55}, nil, nil))
	assert.Equal(t, 44.3, Resolve(Quote{Fat: 4.2, SNF: 9.55}, &models.Farmer{}, &models.RateChart{}))
}
