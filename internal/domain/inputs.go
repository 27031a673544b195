package domain

import (
	"github.com/shopspring/decimal"
)

// Rate model presets for the investment assumptions. A preset fills in the
// price growth and dividend yield; "custom" leaves whatever the file says.
const (
	RateModelSCHD   = "schd"
	RateModelJEPI   = "jepi"
	RateModelCustom = "custom"
)

// SimulationInputs is the complete, validated input record for one plan run.
// All rates are annual percentages (7.0 means 7%); all monetary amounts are
// stated in the reporting currency.
type SimulationInputs struct {
	Plan       PlanTerms             `yaml:"plan" json:"plan"`
	Investment InvestmentAssumptions `yaml:"investment" json:"investment"`
	Exchange   ExchangeAssumptions   `yaml:"exchange" json:"exchange"`
	Savings    SavingsAssumptions    `yaml:"savings" json:"savings"`
	Macro      MacroAssumptions      `yaml:"macro" json:"macro"`
}

// PlanTerms describes the contribution schedule shared by both plans.
type PlanTerms struct {
	MonthlyContribution decimal.Decimal `yaml:"monthly_contribution" json:"monthlyContribution"`
	HorizonYears        int             `yaml:"horizon_years" json:"horizonYears"`
	SeedCapital         decimal.Decimal `yaml:"seed_capital" json:"seedCapital"`
	Currency            string          `yaml:"currency" json:"currency"`
	AssetCurrency       string          `yaml:"asset_currency" json:"assetCurrency"`
}

// InvestmentAssumptions describes the market-linked plan.
type InvestmentAssumptions struct {
	RateModel             string          `yaml:"rate_model" json:"rateModel"`
	AnnualPriceGrowthRate decimal.Decimal `yaml:"annual_price_growth_rate" json:"annualPriceGrowthRate"`
	AnnualDividendYield   decimal.Decimal `yaml:"annual_dividend_yield" json:"annualDividendYield"`
	DividendTaxRate       decimal.Decimal `yaml:"dividend_tax_rate" json:"dividendTaxRate"`
	AnnualExpenseRatio    decimal.Decimal `yaml:"annual_expense_ratio" json:"annualExpenseRatio"`
	ReinvestDividends     bool            `yaml:"reinvest_dividends" json:"reinvestDividends"`
	CapitalGainsTaxRate   decimal.Decimal `yaml:"capital_gains_tax_rate" json:"capitalGainsTaxRate"`
	CapitalGainsAllowance decimal.Decimal `yaml:"capital_gains_allowance" json:"capitalGainsAllowance"`
}

// ExchangeAssumptions describes the reporting/asset currency relationship.
// The drift affects reporting conversion only, never the asset-currency
// recurrence itself.
type ExchangeAssumptions struct {
	InitialRate     decimal.Decimal `yaml:"initial_rate" json:"initialRate"`
	AnnualDriftRate decimal.Decimal `yaml:"annual_drift_rate" json:"annualDriftRate"`
}

// SavingsAssumptions describes the parallel interest-bearing deposit plan.
type SavingsAssumptions struct {
	InterestRate    decimal.Decimal `yaml:"interest_rate" json:"interestRate"`
	InterestTaxRate decimal.Decimal `yaml:"interest_tax_rate" json:"interestTaxRate"`
}

// MacroAssumptions holds economy-wide assumptions.
type MacroAssumptions struct {
	AnnualInflationRate decimal.Decimal `yaml:"annual_inflation_rate" json:"annualInflationRate"`
}

// TotalMonths returns the plan horizon in whole months.
func (p PlanTerms) TotalMonths() int {
	return p.HorizonYears * 12
}
