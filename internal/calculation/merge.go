package calculation

import (
	"fmt"

	"github.com/hanmin/dcasim/internal/domain"
)

// MergeResults left-joins the investment series to the savings series on
// year index. Both series come from the same horizon, so a length or index
// mismatch is an internal consistency error, not bad user input. Two empty
// series merge to an empty result, the defined zero-month degenerate case.
func MergeResults(investment []domain.YearlyRecord, savings []domain.SavingsYearlyRecord) ([]domain.ComparisonRow, error) {
	if len(investment) == 0 && len(savings) == 0 {
		return nil, nil
	}
	if len(investment) != len(savings) {
		return nil, fmt.Errorf("%w: investment covers %d years, savings covers %d",
			ErrMergeDomainMismatch, len(investment), len(savings))
	}

	rows := make([]domain.ComparisonRow, len(investment))
	for i, inv := range investment {
		sav := savings[i]
		if inv.YearIndex != sav.YearIndex {
			return nil, fmt.Errorf("%w: year %d on the investment side meets year %d on the savings side",
				ErrMergeDomainMismatch, inv.YearIndex, sav.YearIndex)
		}
		rows[i] = domain.ComparisonRow{
			YearIndex:  inv.YearIndex,
			Investment: inv,
			Savings:    sav,
		}
	}
	return rows, nil
}
