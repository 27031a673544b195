package output

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/hanmin/dcasim/internal/domain"
)

// CSVFormatter renders the merged year-by-year table as CSV.
type CSVFormatter struct{}

// Format generates CSV output with one row per completed year.
func (cf *CSVFormatter) Format(result *domain.PlanResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Year",
		"Cumulative Contributions",
		"Pre-Tax Asset Value",
		"Post-Tax Asset Value",
		"Capital Gains",
		"Annual Dividends (After Tax)",
		"Cumulative Dividends (After Tax)",
		"Capital Gains Tax Paid",
		"Exchange Rate",
		"Real Asset Value",
		"Real Annual Dividends",
		"Savings Balance",
		"Savings Interest Tax Paid",
		"Real Savings Balance",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.YearIndex),
			row.Investment.CumulativeContributions.StringFixed(2),
			row.Investment.PreTaxAssetValue.StringFixed(2),
			row.Investment.PostTaxAssetValue.StringFixed(2),
			row.Investment.CumulativeCapitalGains.StringFixed(2),
			row.Investment.AnnualDividendsAfterTax.StringFixed(2),
			row.Investment.CumulativeDividendsAfterTax.StringFixed(2),
			row.Investment.CapitalGainsTaxPaid.StringFixed(2),
			row.Investment.ExchangeRate.StringFixed(4),
			row.RealPostTaxAssetValue.StringFixed(2),
			row.RealAnnualDividendsAfterTax.StringFixed(2),
			row.Savings.Balance.StringFixed(2),
			row.Savings.InterestTaxPaid.StringFixed(2),
			row.RealSavingsBalance.StringFixed(2),
		}
		if err := writer.Write(record); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
