package calculation

import (
	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
)

// DeflationFactor returns (1 + inflation/100)^years, the cumulative price
// level after the given number of whole years.
func DeflationFactor(annualInflationPercent decimal.Decimal, years int) decimal.Decimal {
	base := one.Add(annualInflationPercent.Div(hundred))
	return base.Pow(decimal.NewFromInt(int64(years)))
}

// PresentValue deflates a nominal amount dated years after the plan start to
// the purchasing power of the start year.
func PresentValue(nominal, annualInflationPercent decimal.Decimal, years int) decimal.Decimal {
	return nominal.Div(DeflationFactor(annualInflationPercent, years))
}

// AnnotatePresentValue fills the real-terms columns on each comparison row.
// Nominal columns are never touched; with zero inflation the real columns
// equal the nominal ones.
func AnnotatePresentValue(rows []domain.ComparisonRow, annualInflationPercent decimal.Decimal) {
	for i := range rows {
		factor := DeflationFactor(annualInflationPercent, rows[i].YearIndex)
		rows[i].RealPostTaxAssetValue = rows[i].Investment.PostTaxAssetValue.Div(factor)
		rows[i].RealAnnualDividendsAfterTax = rows[i].Investment.AnnualDividendsAfterTax.Div(factor)
		rows[i].RealSavingsBalance = rows[i].Savings.Balance.Div(factor)
	}
}
