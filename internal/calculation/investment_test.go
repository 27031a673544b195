package calculation

import (
	"testing"

	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatInputs returns a plan with every rate zeroed and an identity exchange
// rate, the baseline most tests perturb.
func flatInputs(monthlyContribution int64, horizonYears int) *domain.SimulationInputs {
	return &domain.SimulationInputs{
		Plan: domain.PlanTerms{
			MonthlyContribution: decimal.NewFromInt(monthlyContribution),
			HorizonYears:        horizonYears,
			Currency:            "KRW",
			AssetCurrency:       "USD",
		},
		Exchange: domain.ExchangeAssumptions{
			InitialRate: decimal.NewFromInt(1),
		},
	}
}

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	assert.True(t, want.Equal(actual), "expected %s, got %s: %v", want, actual, msgAndArgs)
}

func TestSimulateInvestment_ZeroRateConcreteScenario(t *testing.T) {
	in := flatInputs(500000, 1)

	records := SimulateInvestment(in)
	require.Len(t, records, 1, "One-year horizon should emit exactly one record")

	rec := records[0]
	assert.Equal(t, 1, rec.YearIndex)
	assertDecimalEqual(t, "6000000", rec.CumulativeContributions, "12 contributions of 500000")
	assertDecimalEqual(t, "6000000", rec.PostTaxAssetValue, "No growth and no tax base")
	assertDecimalEqual(t, "6000000", rec.PreTaxAssetValue)
	assertDecimalEqual(t, "0", rec.CumulativeCapitalGains)
	assertDecimalEqual(t, "0", rec.CumulativeDividendsAfterTax)
	assertDecimalEqual(t, "0", rec.CapitalGainsTaxPaid)
}

func TestSimulateInvestment_SeedCapitalCountsAsContribution(t *testing.T) {
	in := flatInputs(500000, 2)
	in.Plan.SeedCapital = decimal.NewFromInt(1000000)

	records := SimulateInvestment(in)
	require.Len(t, records, 2)

	final := records[1]
	assertDecimalEqual(t, "13000000", final.CumulativeContributions, "seed + 24 contributions")
	assertDecimalEqual(t, "13000000", final.PostTaxAssetValue)
}

func TestSimulateInvestment_ZeroMonthsIsEmpty(t *testing.T) {
	in := flatInputs(500000, 0)
	assert.Empty(t, SimulateInvestment(in), "Zero-month horizon is a defined degenerate case, not an error")
}

func TestSimulateInvestment_SingleGainsTaxEvent(t *testing.T) {
	in := flatInputs(500000, 5)
	in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(7.0)
	in.Investment.CapitalGainsTaxRate = decimal.NewFromFloat(22.0)

	records := SimulateInvestment(in)
	require.Len(t, records, 5)

	for _, rec := range records[:4] {
		assert.True(t, rec.CapitalGainsTaxPaid.IsZero(),
			"Year %d should carry no capital-gains tax, got %s", rec.YearIndex, rec.CapitalGainsTaxPaid)
		assert.True(t, rec.PreTaxAssetValue.Equal(rec.PostTaxAssetValue),
			"Pre- and post-tax values should match before the disposal year")
	}

	final := records[4]
	assert.True(t, final.CapitalGainsTaxPaid.IsPositive(), "Disposal year should pay capital-gains tax")
	assert.True(t, final.PostTaxAssetValue.LessThan(final.PreTaxAssetValue),
		"Tax should reduce the final asset value")

	// Tax equals 22% of the taxable gain, and the reported gain is net of it.
	expectedTax := final.PreTaxAssetValue.Sub(final.CumulativeContributions).
		Mul(decimal.NewFromFloat(0.22))
	assert.InDelta(t, expectedTax.InexactFloat64(), final.CapitalGainsTaxPaid.InexactFloat64(), 1.0)
}

func TestSimulateInvestment_AllowanceClampsTaxToZero(t *testing.T) {
	in := flatInputs(500000, 3)
	in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(5.0)
	in.Investment.CapitalGainsTaxRate = decimal.NewFromFloat(22.0)
	in.Investment.CapitalGainsAllowance = decimal.NewFromInt(100000000)

	records := SimulateInvestment(in)
	final := records[len(records)-1]

	assert.True(t, final.CumulativeCapitalGains.IsPositive(), "Plan should be in profit")
	assert.True(t, final.CapitalGainsTaxPaid.IsZero(),
		"Gains below the allowance should be tax free, got %s", final.CapitalGainsTaxPaid)
	assert.True(t, final.PreTaxAssetValue.Equal(final.PostTaxAssetValue))
}

func TestSimulateInvestment_LossNeverBecomesLiability(t *testing.T) {
	in := flatInputs(500000, 2)
	in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(-30.0)
	in.Investment.CapitalGainsTaxRate = decimal.NewFromFloat(22.0)

	records := SimulateInvestment(in)
	final := records[len(records)-1]

	assert.True(t, final.CumulativeCapitalGains.IsNegative(), "Plan should be at a loss")
	assert.True(t, final.CapitalGainsTaxPaid.IsZero(), "A loss must not produce a tax charge")
}

func TestSimulateInvestment_DividendTaxWithheldEvenWhenPaidOut(t *testing.T) {
	in := flatInputs(500000, 1)
	in.Investment.AnnualDividendYield = decimal.NewFromFloat(6.0)
	in.Investment.DividendTaxRate = decimal.NewFromFloat(15.0)
	in.Investment.ReinvestDividends = false

	records := SimulateInvestment(in)
	final := records[0]

	assert.True(t, final.CumulativeDividendsAfterTax.IsPositive(), "Dividends should accrue")
	// Paid-out dividends are excluded from the asset value and the cost basis.
	assertDecimalEqual(t, "6000000", final.PostTaxAssetValue,
		"With zero growth, paid-out dividends leave only contributions in the plan")
	assertDecimalEqual(t, "0", final.CumulativeCapitalGains)
}

func TestSimulateInvestment_ReinvestmentCompounds(t *testing.T) {
	payout := flatInputs(500000, 10)
	payout.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(7.0)
	payout.Investment.AnnualDividendYield = decimal.NewFromFloat(3.5)
	payout.Investment.DividendTaxRate = decimal.NewFromFloat(15.0)

	reinvest := flatInputs(500000, 10)
	reinvest.Investment = payout.Investment
	reinvest.Investment.ReinvestDividends = true

	payoutFinal := SimulateInvestment(payout)[9]
	reinvestFinal := SimulateInvestment(reinvest)[9]

	assert.True(t, reinvestFinal.PostTaxAssetValue.GreaterThan(payoutFinal.PostTaxAssetValue),
		"Reinvested dividends should compound into a larger final value")
	// Reinvested dividends enter the cost basis, so they are not capital gains.
	assert.True(t, reinvestFinal.CumulativeCapitalGains.LessThan(
		reinvestFinal.PostTaxAssetValue.Sub(reinvestFinal.CumulativeContributions)),
		"Cost basis should include reinvested dividends")
}

func TestSimulateInvestment_ValueNonDecreasingUnderNonNegativeRates(t *testing.T) {
	in := flatInputs(450000, 15)
	in.Investment.AnnualPriceGrowthRate = decimal.NewFromFloat(7.0)
	in.Investment.AnnualDividendYield = decimal.NewFromFloat(3.5)
	in.Investment.DividendTaxRate = decimal.NewFromFloat(15.0)
	in.Investment.ReinvestDividends = true

	records := SimulateInvestment(in)
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i].PostTaxAssetValue.GreaterThan(records[i-1].PostTaxAssetValue),
			"Asset value should grow year over year with non-negative rates (year %d)", records[i].YearIndex)
	}
}

func TestSimulateInvestment_AnnualExpenseDragAppliedAtYearEnd(t *testing.T) {
	in := flatInputs(500000, 1)
	in.Investment.AnnualExpenseRatio = decimal.NewFromFloat(1.2)

	records := SimulateInvestment(in)
	final := records[0]

	// 6,000,000 * (1 - 0.012), deducted once at the year boundary.
	assertDecimalEqual(t, "5928000", final.PostTaxAssetValue)
	assertDecimalEqual(t, "-72000", final.CumulativeCapitalGains,
		"Expense drag reduces the reported gains")
	assert.True(t, final.CapitalGainsTaxPaid.IsZero(), "Expense-driven loss must not be taxed")
}

func TestSimulateInvestment_ExchangeDriftIsReportingOnly(t *testing.T) {
	in := flatInputs(500000, 1)
	in.Exchange.InitialRate = decimal.NewFromInt(1)
	in.Exchange.AnnualDriftRate = decimal.NewFromFloat(5.0)

	records := SimulateInvestment(in)
	final := records[0]

	// After a full year the rate has drifted by the annual rate.
	assert.InDelta(t, 1.05, final.ExchangeRate.InexactFloat64(), 1e-9)

	// The asset-currency balance is still 12 contributions; only the
	// reporting conversion moved.
	assetCurrencyValue := final.PostTaxAssetValue.Div(final.ExchangeRate)
	assert.InDelta(t, 6000000, assetCurrencyValue.InexactFloat64(), 1e-4,
		"Drift must not leak into the asset-currency arithmetic")
}

func TestSimulateInvestment_ContributionConvertedAtInitialRate(t *testing.T) {
	in := flatInputs(500000, 1)
	in.Exchange.InitialRate = decimal.NewFromInt(1380)

	records := SimulateInvestment(in)
	final := records[0]

	// With no drift the conversion round-trips: reported contributions are
	// exactly the reporting-currency amounts paid in.
	assert.InDelta(t, 6000000, final.CumulativeContributions.InexactFloat64(), 1e-4)
}
