package calculation

import (
	"fmt"

	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
)

var negativeHundred = decimal.NewFromInt(-100)

// ValidateInputs rejects inputs the engines cannot run on. The config layer
// calls this after defaulting; the engine calls it again so a caller that
// builds SimulationInputs by hand gets the same guarantees.
func ValidateInputs(in *domain.SimulationInputs) error {
	if in.Plan.HorizonYears < 1 {
		return fmt.Errorf("%w: got %d years", ErrInvalidHorizon, in.Plan.HorizonYears)
	}
	if in.Plan.MonthlyContribution.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("monthly contribution must be positive, got %s", in.Plan.MonthlyContribution)
	}
	if in.Plan.SeedCapital.IsNegative() {
		return fmt.Errorf("seed capital cannot be negative, got %s", in.Plan.SeedCapital)
	}
	if in.Exchange.InitialRate.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("initial exchange rate must be positive, got %s", in.Exchange.InitialRate)
	}

	annualRates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"annual_price_growth_rate", in.Investment.AnnualPriceGrowthRate},
		{"annual_dividend_yield", in.Investment.AnnualDividendYield},
		{"annual_expense_ratio", in.Investment.AnnualExpenseRatio},
		{"annual_drift_rate", in.Exchange.AnnualDriftRate},
		{"savings_interest_rate", in.Savings.InterestRate},
		{"annual_inflation_rate", in.Macro.AnnualInflationRate},
	}
	for _, r := range annualRates {
		if r.rate.LessThanOrEqual(negativeHundred) {
			return fmt.Errorf("%w: %s is %s%%", ErrInvalidRate, r.name, r.rate)
		}
	}

	taxRates := []struct {
		name string
		rate decimal.Decimal
	}{
		{"dividend_tax_rate", in.Investment.DividendTaxRate},
		{"capital_gains_tax_rate", in.Investment.CapitalGainsTaxRate},
		{"savings_interest_tax_rate", in.Savings.InterestTaxRate},
	}
	for _, r := range taxRates {
		if r.rate.IsNegative() || r.rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%s must be between 0%% and 100%%, got %s%%", r.name, r.rate)
		}
	}
	if in.Investment.CapitalGainsAllowance.IsNegative() {
		return fmt.Errorf("capital gains allowance cannot be negative, got %s", in.Investment.CapitalGainsAllowance)
	}

	return nil
}
