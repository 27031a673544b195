package output

import (
	"fmt"
	"strings"

	"github.com/hanmin/dcasim/internal/domain"
)

// TableFormatter renders a plan result as a console table with a summary
// header, one row per completed year.
type TableFormatter struct{}

// Format generates the console report.
func (tf *TableFormatter) Format(result *domain.PlanResult) (string, error) {
	var sb strings.Builder
	cur := result.Inputs.Plan.Currency

	sb.WriteString("ACCUMULATION PLAN PROJECTION\n")
	sb.WriteString(strings.Repeat("=", 112) + "\n")
	sb.WriteString(fmt.Sprintf("Horizon: %d years   Monthly contribution: %s\n",
		result.Summary.HorizonYears,
		FormatAmount(result.Inputs.Plan.MonthlyContribution, cur)))

	if len(result.Rows) == 0 {
		sb.WriteString("\nNo completed years to report.\n")
		return sb.String(), nil
	}

	sb.WriteString(fmt.Sprintf("Total contributions:  %s\n", FormatAmount(result.Summary.TotalContributions, cur)))
	sb.WriteString(fmt.Sprintf("Final asset value:    %s (profit %s)\n",
		FormatAmount(result.Summary.FinalAssetValue, cur),
		FormatAmount(result.Summary.TotalProfit, cur)))
	sb.WriteString(fmt.Sprintf("Final-year dividends: %s (%s per month)\n",
		FormatAmount(result.Summary.FinalYearDividends, cur),
		FormatAmount(result.Summary.MonthlyDividendIncome, cur)))
	if result.Summary.CapitalGainsTaxPaid.IsPositive() {
		sb.WriteString(fmt.Sprintf("Capital-gains tax:    %s\n", FormatAmount(result.Summary.CapitalGainsTaxPaid, cur)))
	}
	sb.WriteString(fmt.Sprintf("Savings alternative:  %s (investment advantage %s)\n",
		FormatAmount(result.Summary.FinalSavingsBalance, cur),
		FormatAmount(result.Summary.InvestmentAdvantage, cur)))
	sb.WriteString("\n")

	numWidth := 17
	sb.WriteString(fmt.Sprintf("%4s %*s %*s %*s %*s %*s %*s\n",
		"Year",
		numWidth, "Contributions",
		numWidth, "Asset Value",
		numWidth, "Capital Gains",
		numWidth, "Year Dividends",
		numWidth, "Real Value",
		numWidth, "Savings Balance"))
	sb.WriteString(strings.Repeat("-", 112) + "\n")

	for _, row := range result.Rows {
		sb.WriteString(fmt.Sprintf("%4d %*s %*s %*s %*s %*s %*s\n",
			row.YearIndex,
			numWidth, row.Investment.CumulativeContributions.StringFixed(0),
			numWidth, row.Investment.PostTaxAssetValue.StringFixed(0),
			numWidth, row.Investment.CumulativeCapitalGains.StringFixed(0),
			numWidth, row.Investment.AnnualDividendsAfterTax.StringFixed(0),
			numWidth, row.RealPostTaxAssetValue.StringFixed(0),
			numWidth, row.Savings.Balance.StringFixed(0)))
	}
	sb.WriteString(strings.Repeat("=", 112) + "\n")

	return sb.String(), nil
}
