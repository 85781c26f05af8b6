// Package moneycalc holds the money arithmetic primitives every other part of
// the calculation core builds on. All intermediates are exact decimals;
// multiplication always happens before division, and round-half-up is the one
// rounding rule applied as the final step.
package moneycalc

import (
	"github.com/paletteworks/studio-finance/internal/core/domain"
	"github.com/shopspring/decimal"
)

var half = decimal.New(5, -1)

// RoundHalfUp rounds to the nearest integer, with halves rounding toward
// positive infinity: floor(d + 0.5).
func RoundHalfUp(d decimal.Decimal) int64 {
	return d.Add(half).Floor().IntPart()
}

// Add returns a + b.
func Add(a, b domain.Amount) domain.Amount { return a + b }

// Subtract returns a - b.
func Subtract(a, b domain.Amount) domain.Amount { return a - b }

// Sum totals a list of amounts. An empty list sums to zero.
func Sum(amounts []domain.Amount) domain.Amount {
	var total domain.Amount
	for _, a := range amounts {
		total += a
	}
	return total
}

// LineItemAmount computes unitPrice * qty / 1000, rounded half up. The shift
// by -3 divides by the quantity scale exactly, so no precision is lost before
// rounding.
func LineItemAmount(unitPrice domain.Amount, qty domain.QtyM) domain.Amount {
	exact := unitPrice.Decimal().Mul(qty.Decimal()).Shift(-3)
	return domain.Amount(RoundHalfUp(exact))
}

// ApplyRate computes amount * rate / 10000, rounded half up.
func ApplyRate(amount domain.Amount, rate domain.RateBp) domain.Amount {
	exact := amount.Decimal().Mul(rate.Decimal()).Shift(-4)
	return domain.Amount(RoundHalfUp(exact))
}

// ToPercentage expresses part as a share of total in basis points, rounded
// half up. A zero total yields zero rather than an error.
func ToPercentage(part, total domain.Amount) domain.RateBp {
	if total == 0 {
		return 0
	}
	exact := part.Decimal().Shift(4).Div(total.Decimal())
	return domain.RateBp(RoundHalfUp(exact))
}
