package mapping

import (
	"math"

	"github.com/chris/debt-ledger/pkg/ledger"
	"github.com/shopspring/decimal"
)

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// ToMinor converts a positive decimal amount with at most two fractional digits into minor units.
func ToMinor(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, ledger.ValidationError("amount must be greater than zero")
	}
	minor := amount.Shift(2)
	if !minor.IsInteger() {
		return 0, ledger.ValidationError("amount %s has more than two decimal places", amount.String())
	}
	if minor.GreaterThan(maxMinor) {
		return 0, ledger.ValidationError("amount %s is too large", amount.String())
	}
	return minor.IntPart(), nil
}

// FromMinor converts minor units back into a decimal amount.
func FromMinor(v int64) decimal.Decimal {
	return decimal.New(v, -2)
}
