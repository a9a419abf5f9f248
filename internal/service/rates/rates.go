// Package rates turns milk quality measurements into prices and amounts.
// Everything here is pure; callers supply the farmer and the chart.
package rates

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/nirbani/dairy/internal/domain/models"
)

// Round2 rounds to two decimal places, half away from zero. This rounding is
// authoritative for every stored amount.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// DeriveSNF estimates SNF from fat when no reading was taken.
// Standard formula: SNF = 8.5 + fat/4.
func DeriveSNF(fat float64) float64 {
	return Round2(8.5 + fat/4)
}

// ComputeAmount is the payable amount for a quantity at a rate.
func ComputeAmount(quantity, rate float64) float64 {
	q := decimal.NewFromFloat(quantity)
	r := decimal.NewFromFloat(rate)
	return q.Mul(r).Round(2).InexactFloat64()
}

// FormulaRate is the fallback price when neither a farmer rate nor a chart
// applies: fat*6 + snf*2.
func FormulaRate(fat, snf float64) float64 {
	return Round2(fat*6 + snf*2)
}

// Quote carries the per-transaction inputs to rate resolution.
type Quote struct {
	Fat      float64
	SNF      float64
	MilkType models.MilkType
	// Override, when positive, is used as-is and bypasses all other logic
	// (backdated or manual corrections).
	Override float64
}

// Resolve picks the rate for a quote. Resolution order, first match wins:
//
//  1. positive per-transaction override
//  2. farmer fixed pricing (buffalo/cow specific, then generic)
//  3. nearest chart entry by |Δfat| + |Δsnf|, earlier entry wins ties
//  4. the fat/snf formula
//
// The chart lookup is an approximation: an exact fat/snf hit is not
// guaranteed to win when several entries tie on distance.
func Resolve(q Quote, farmer *models.Farmer, chart *models.RateChart) float64 {
	if q.Override > 0 {
		return q.Override
	}

	if farmer != nil {
		milkType := q.MilkType
		if milkType == "" {
			milkType = farmer.MilkType
		}
		switch {
		case milkType == models.MilkTypeBuffalo && farmer.BuffaloRate > 0:
			return farmer.BuffaloRate
		case milkType == models.MilkTypeCow && farmer.CowRate > 0:
			return farmer.CowRate
		case farmer.FixedRate > 0:
			return farmer.FixedRate
		}
	}

	if chart != nil && len(chart.Entries) > 0 {
		best := chart.Entries[0].Rate
		bestDiff := math.Inf(1)
		for _, entry := range chart.Entries {
			diff := math.Abs(entry.Fat-q.Fat) + math.Abs(entry.SNF-q.SNF)
			if diff < bestDiff {
				bestDiff = diff
				best = entry.Rate
			}
		}
		return best
	}

	return FormulaRate(q.Fat, q.SNF)
}
