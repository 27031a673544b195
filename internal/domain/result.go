package domain

import (
	"github.com/shopspring/decimal"
)

// YearlyRecord is one completed year of the market-linked plan. Monetary
// fields are converted to the reporting currency at the exchange rate in
// effect at the year boundary. Records are never mutated after emission.
type YearlyRecord struct {
	YearIndex                   int             `json:"yearIndex"`
	CumulativeContributions     decimal.Decimal `json:"cumulativeContributions"`
	PreTaxAssetValue            decimal.Decimal `json:"preTaxAssetValue"`
	PostTaxAssetValue           decimal.Decimal `json:"postTaxAssetValue"`
	CumulativeCapitalGains      decimal.Decimal `json:"cumulativeCapitalGains"`
	AnnualDividendsAfterTax     decimal.Decimal `json:"annualDividendsAfterTax"`
	CumulativeDividendsAfterTax decimal.Decimal `json:"cumulativeDividendsAfterTax"`
	CapitalGainsTaxPaid         decimal.Decimal `json:"capitalGainsTaxPaid"`
	ExchangeRate                decimal.Decimal `json:"exchangeRate"`
}

// SavingsYearlyRecord is one completed year of the deposit plan. The deposit
// plan is domestic, so everything is already in the reporting currency.
type SavingsYearlyRecord struct {
	YearIndex               int             `json:"yearIndex"`
	CumulativeContributions decimal.Decimal `json:"cumulativeContributions"`
	Balance                 decimal.Decimal `json:"balance"`
	AnnualInterestAfterTax  decimal.Decimal `json:"annualInterestAfterTax"`
	InterestTaxPaid         decimal.Decimal `json:"interestTaxPaid"`
}

// ComparisonRow joins both plans for a single year and carries the
// present-value columns. The nominal records are embedded untouched; the
// Real* fields are appended by the present-value pass.
type ComparisonRow struct {
	YearIndex  int                 `json:"yearIndex"`
	Investment YearlyRecord        `json:"investment"`
	Savings    SavingsYearlyRecord `json:"savings"`

	RealPostTaxAssetValue       decimal.Decimal `json:"realPostTaxAssetValue"`
	RealAnnualDividendsAfterTax decimal.Decimal `json:"realAnnualDividendsAfterTax"`
	RealSavingsBalance          decimal.Decimal `json:"realSavingsBalance"`
}

// InvestmentAdvantage returns how far the market plan ends ahead of (or
// behind) the deposit plan for this year, in nominal reporting currency.
func (r ComparisonRow) InvestmentAdvantage() decimal.Decimal {
	return r.Investment.PostTaxAssetValue.Sub(r.Savings.Balance)
}

// PlanSummary condenses the final year of a run for report headers.
type PlanSummary struct {
	HorizonYears          int             `json:"horizonYears"`
	TotalContributions    decimal.Decimal `json:"totalContributions"`
	FinalAssetValue       decimal.Decimal `json:"finalAssetValue"`
	TotalProfit           decimal.Decimal `json:"totalProfit"`
	FinalYearDividends    decimal.Decimal `json:"finalYearDividends"`
	MonthlyDividendIncome decimal.Decimal `json:"monthlyDividendIncome"`
	CapitalGainsTaxPaid   decimal.Decimal `json:"capitalGainsTaxPaid"`
	FinalSavingsBalance   decimal.Decimal `json:"finalSavingsBalance"`
	InvestmentAdvantage   decimal.Decimal `json:"investmentAdvantage"`
}

// PlanResult is the complete output of one simulation run.
type PlanResult struct {
	Inputs     *SimulationInputs     `json:"inputs"`
	Investment []YearlyRecord        `json:"investment"`
	Savings    []SavingsYearlyRecord `json:"savings"`
	Rows       []ComparisonRow       `json:"rows"`
	Summary    PlanSummary           `json:"summary"`
}

// FinalYear returns the last investment record, or false if the run was the
// zero-month degenerate case.
func (pr *PlanResult) FinalYear() (YearlyRecord, bool) {
	if len(pr.Investment) == 0 {
		return YearlyRecord{}, false
	}
	return pr.Investment[len(pr.Investment)-1], true
}
