package calculation

import (
	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Engine orchestrates one simulation run: validation, both plan engines,
// the year-by-year merge, present-value annotation, and the summary. A run
// is a pure function of its inputs; the engine holds no state between runs.
type Engine struct {
	Logger *zap.Logger
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: zap.NewNop()}
}

// SetLogger replaces the engine's logger. A nil logger restores the no-op.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e.Logger = logger
}

// RunPlan simulates both plans over the shared horizon and returns the
// merged, PV-annotated result. Identical inputs always produce identical
// results.
func (e *Engine) RunPlan(in *domain.SimulationInputs) (*domain.PlanResult, error) {
	if err := ValidateInputs(in); err != nil {
		return nil, err
	}

	e.Logger.Debug("running plan",
		zap.Int("horizon_years", in.Plan.HorizonYears),
		zap.String("monthly_contribution", in.Plan.MonthlyContribution.String()),
		zap.Bool("reinvest_dividends", in.Investment.ReinvestDividends),
	)

	investment := SimulateInvestment(in)
	savings := SimulateSavings(in)

	rows, err := MergeResults(investment, savings)
	if err != nil {
		return nil, err
	}
	AnnotatePresentValue(rows, in.Macro.AnnualInflationRate)

	result := &domain.PlanResult{
		Inputs:     in,
		Investment: investment,
		Savings:    savings,
		Rows:       rows,
		Summary:    buildSummary(in, investment, savings),
	}

	e.Logger.Debug("plan complete",
		zap.Int("years", len(rows)),
		zap.String("final_asset_value", result.Summary.FinalAssetValue.String()),
	)
	return result, nil
}

// buildSummary condenses the final year of both series for report headers.
func buildSummary(in *domain.SimulationInputs, investment []domain.YearlyRecord, savings []domain.SavingsYearlyRecord) domain.PlanSummary {
	summary := domain.PlanSummary{HorizonYears: in.Plan.HorizonYears}
	if len(investment) == 0 {
		return summary
	}

	final := investment[len(investment)-1]
	summary.TotalContributions = final.CumulativeContributions
	summary.FinalAssetValue = final.PostTaxAssetValue
	summary.TotalProfit = final.PostTaxAssetValue.Sub(final.CumulativeContributions)
	summary.FinalYearDividends = final.AnnualDividendsAfterTax
	summary.MonthlyDividendIncome = final.AnnualDividendsAfterTax.Div(decimal.NewFromInt(12))
	summary.CapitalGainsTaxPaid = final.CapitalGainsTaxPaid

	if len(savings) > 0 {
		finalSavings := savings[len(savings)-1]
		summary.FinalSavingsBalance = finalSavings.Balance
		summary.InvestmentAdvantage = final.PostTaxAssetValue.Sub(finalSavings.Balance)
	}
	return summary
}
