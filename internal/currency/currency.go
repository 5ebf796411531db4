// Package currency converts catalog prices from the base currency (USD) to
// the display currency (INR) at a fixed configured rate.
package currency

import "math"

// DefaultRate is the fallback USD to INR exchange rate.
const DefaultRate = 83.12

// Converter applies a fixed exchange rate with a single rounding rule:
// round half away from zero to the nearest whole unit.
type Converter struct {
	Rate float64
}

// New returns a Converter for the given rate, falling back to DefaultRate
// when the rate is not positive.
func New(rate float64) Converter {
	if rate <= 0 {
		rate = DefaultRate
	}
	return Converter{Rate: rate}
}

// Convert returns the display-currency amount for a base-currency amount.
func (c Converter) Convert(amount float64) int {
	return int(math.Round(amount * c.Rate))
}
