package calculation

import (
	"github.com/hanmin/dcasim/internal/domain"
	"github.com/shopspring/decimal"
)

// SimulateSavings runs the deposit-plan recurrence and returns one record per
// completed year. The deposit plan is domestic, so the whole recurrence runs
// in the reporting currency.
//
// Interest accrues on the balance before the month's contribution is added,
// so a contribution earns nothing until the following month. Interest tax is
// settled every year, the way deposit interest is typically withheld, unlike
// the investment plan's single disposal-time levy.
func SimulateSavings(in *domain.SimulationInputs) []domain.SavingsYearlyRecord {
	totalMonths := in.Plan.TotalMonths()
	if totalMonths <= 0 {
		return nil
	}

	monthlyRate := MonthlyRate(in.Savings.InterestRate)
	taxRate := in.Savings.InterestTaxRate.Div(hundred)

	balance := in.Plan.SeedCapital
	contributed := balance
	yearInterest := decimal.Zero

	records := make([]domain.SavingsYearlyRecord, 0, in.Plan.HorizonYears)

	for month := 1; month <= totalMonths; month++ {
		interest := balance.Mul(monthlyRate)
		balance = balance.Add(interest)
		yearInterest = yearInterest.Add(interest)

		balance = balance.Add(in.Plan.MonthlyContribution)
		contributed = contributed.Add(in.Plan.MonthlyContribution)

		if month%12 != 0 {
			continue
		}

		taxableInterest := yearInterest
		if taxableInterest.IsNegative() {
			taxableInterest = decimal.Zero
		}
		tax := taxableInterest.Mul(taxRate)
		balance = balance.Sub(tax)

		records = append(records, domain.SavingsYearlyRecord{
			YearIndex:               month / 12,
			CumulativeContributions: contributed,
			Balance:                 balance,
			AnnualInterestAfterTax:  yearInterest.Sub(tax),
			InterestTaxPaid:         tax,
		})
		yearInterest = decimal.Zero
	}

	return records
}
