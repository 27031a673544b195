package output

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders a decimal amount in the given ISO currency with the
// currency's own grouping and symbol. Unknown codes fall back to a plain
// two-decimal figure.
func FormatAmount(amount decimal.Decimal, code string) string {
	currency := money.GetCurrency(code)
	if currency == nil {
		return amount.StringFixed(2)
	}
	scale := decimal.NewFromFloat(math.Pow10(currency.Fraction))
	minorUnits := amount.Mul(scale).Round(0).IntPart()
	return money.New(minorUnits, code).Display()
}
