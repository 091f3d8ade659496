package money

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid monetary amount")

// Cents is the precision kept for stored and summed values.
const Cents = 2

// Parse reads a JSON number (or numeric string) into a decimal. The precision sent is kept;
// the order domain rejects more than Cents decimals.
func Parse(n json.Number) (decimal.Decimal, error) {
	if n == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Number renders d as an unquoted JSON number with two decimals.
func Number(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(Cents))
}

func Sum(values ...decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(values[0], values[1:]...)
}
