package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// MonthlyRate converts an annual percentage rate into the monthly-equivalent
// rate m satisfying (1+m)^12 = 1 + r/100. Zero and negative annual rates are
// valid; the conversion is undefined only at or below -100%, which input
// validation rejects before any engine runs.
//
// The twelfth root is taken in float64 and lifted back into decimal. The
// accumulators stay in decimal; only the rate constant passes through float,
// which is well within tolerance for annual rates in [-99, +10000].
func MonthlyRate(annualPercent decimal.Decimal) decimal.Decimal {
	annual := annualPercent.InexactFloat64() / 100
	monthly := math.Pow(1+annual, 1.0/12) - 1
	return decimal.NewFromFloat(monthly)
}

// MonthlyGrowthFactor returns 1 + MonthlyRate(annualPercent), the multiplier
// applied to a balance each month.
func MonthlyGrowthFactor(annualPercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(MonthlyRate(annualPercent))
}
