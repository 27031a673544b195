package calculation

import (
	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// SimulateInvestment runs the month-by-month recurrence for the market-linked
// plan and returns one record per completed year. The caller must have
// validated the inputs; a horizon that resolves to zero months yields an
// empty series.
//
// The recurrence runs entirely in the asset currency. The contribution and
// seed capital are converted once at the initial exchange rate; the drifting
// rate only converts each emitted record back to the reporting currency, so
// rounding from the conversion never compounds into the tax base.
//
// The expense ratio is deducted annually, at each year boundary, before the
// capital-gains figure is computed. Capital-gains tax is levied exactly once,
// at the horizon end, modeling a single full liquidation.
func SimulateInvestment(in *domain.SimulationInputs) []domain.YearlyRecord {
	totalMonths := in.Plan.TotalMonths()
	if totalMonths <= 0 {
		return nil
	}

	growthFactor := MonthlyGrowthFactor(in.Investment.AnnualPriceGrowthRate)
	dividendYield := MonthlyRate(in.Investment.AnnualDividendYield)
	driftFactor := MonthlyGrowthFactor(in.Exchange.AnnualDriftRate)
	dividendKeep := one.Sub(in.Investment.DividendTaxRate.Div(hundred))
	expenseKeep := one.Sub(in.Investment.AnnualExpenseRatio.Div(hundred))

	exchangeRate := in.Exchange.InitialRate
	contribution := in.Plan.MonthlyContribution.Div(exchangeRate)

	// Cost basis tracks contributions plus reinvested after-tax dividends;
	// contributed tracks contributions alone for reporting.
	assetValue := in.Plan.SeedCapital.Div(exchangeRate)
	contributed := assetValue
	costBasis := assetValue

	cumulativeDividends := decimal.Zero
	yearDividends := decimal.Zero

	records := make([]domain.YearlyRecord, 0, in.Plan.HorizonYears)

	for month := 1; month <= totalMonths; month++ {
		// Growth compounds before the dividend is computed on the grown base.
		assetValue = assetValue.Mul(growthFactor)

		dividend := assetValue.Mul(dividendYield)
		afterTaxDividend := dividend.Mul(dividendKeep)
		cumulativeDividends = cumulativeDividends.Add(afterTaxDividend)
		yearDividends = yearDividends.Add(afterTaxDividend)

		assetValue = assetValue.Add(contribution)
		contributed = contributed.Add(contribution)
		costBasis = costBasis.Add(contribution)

		if in.Investment.ReinvestDividends {
			assetValue = assetValue.Add(afterTaxDividend)
			costBasis = costBasis.Add(afterTaxDividend)
		}

		exchangeRate = exchangeRate.Mul(driftFactor)

		if month%12 != 0 {
			continue
		}

		// Year boundary: annual expense drag, then the gains figure.
		assetValue = assetValue.Mul(expenseKeep)
		preTaxValue := assetValue
		capitalGains := assetValue.Sub(costBasis)

		taxPaid := decimal.Zero
		if month == totalMonths {
			// A loss never becomes a liability: the taxable base is clamped
			// at zero after the allowance.
			allowance := in.Investment.CapitalGainsAllowance.Div(exchangeRate)
			taxableGain := capitalGains.Sub(allowance)
			if taxableGain.IsNegative() {
				taxableGain = decimal.Zero
			}
			taxPaid = taxableGain.Mul(in.Investment.CapitalGainsTaxRate).Div(hundred)
			assetValue = assetValue.Sub(taxPaid)
			capitalGains = capitalGains.Sub(taxPaid)
		}

		records = append(records, domain.YearlyRecord{
			YearIndex:                   month / 12,
			CumulativeContributions:     contributed.Mul(exchangeRate),
			PreTaxAssetValue:            preTaxValue.Mul(exchangeRate),
			PostTaxAssetValue:           assetValue.Mul(exchangeRate),
			CumulativeCapitalGains:      capitalGains.Mul(exchangeRate),
			AnnualDividendsAfterTax:     yearDividends.Mul(exchangeRate),
			CumulativeDividendsAfterTax: cumulativeDividends.Mul(exchangeRate),
			CapitalGainsTaxPaid:         taxPaid.Mul(exchangeRate),
			ExchangeRate:                exchangeRate,
		})
		yearDividends = decimal.Zero
	}

	return records
}
