package domain

import (
	"math"
	"strconv"

	"github.com/paletteworks/studio-finance/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value in the organization's minor currency unit
// (e.g. cents). Amounts are always whole numbers of minor units; fractional
// money never exists in this core.
type Amount int64

// RateBp is a rate in basis points (hundredths of a percent); 10000 = 100%.
type RateBp int64

// QtyM is a quantity in thousandths of a unit; 1000 = 1.0 units.
type QtyM int64

const (
	// FullRate is the whole of an amount, expressed in basis points.
	FullRate RateBp = 10000

	// OneQty is a single whole unit of quantity.
	OneQty QtyM = 1000
)

// NewAmount constructs an Amount from a decimal, rejecting non-integral values.
func NewAmount(d decimal.Decimal) (Amount, error) {
	v, err := integralFromDecimal(d, "Amount")
	return Amount(v), err
}

// NewAmountFromFloat constructs an Amount from a float, rejecting NaN,
// infinities and fractional values.
func NewAmountFromFloat(f float64) (Amount, error) {
	v, err := integralFromFloat(f, "Amount")
	return Amount(v), err
}

// NewRateBp constructs a RateBp from a decimal, rejecting non-integral values.
func NewRateBp(d decimal.Decimal) (RateBp, error) {
	v, err := integralFromDecimal(d, "RateBp")
	return RateBp(v), err
}

// NewRateBpFromFloat constructs a RateBp from a float, rejecting NaN,
// infinities and fractional values.
func NewRateBpFromFloat(f float64) (RateBp, error) {
	v, err := integralFromFloat(f, "RateBp")
	return RateBp(v), err
}

// NewQtyM constructs a QtyM from a decimal, rejecting non-integral values.
func NewQtyM(d decimal.Decimal) (QtyM, error) {
	v, err := integralFromDecimal(d, "QtyM")
	return QtyM(v), err
}

// NewQtyMFromFloat constructs a QtyM from a float, rejecting NaN, infinities
// and fractional values.
func NewQtyMFromFloat(f float64) (QtyM, error) {
	v, err := integralFromFloat(f, "QtyM")
	return QtyM(v), err
}

// Decimal returns the raw scaled integer as an exact decimal.
func (a Amount) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(a)) }

// Decimal returns the raw basis-point integer as an exact decimal.
func (r RateBp) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(r)) }

// Decimal returns the raw thousandths integer as an exact decimal.
func (q QtyM) Decimal() decimal.Decimal { return decimal.NewFromInt(int64(q)) }

func integralFromDecimal(d decimal.Decimal, unit string) (int64, error) {
	if !d.IsInteger() {
		return 0, &apperrors.UnitValueError{Unit: unit, Value: d.String()}
	}
	return d.IntPart(), nil
}

func integralFromFloat(f float64, unit string) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, &apperrors.UnitValueError{Unit: unit, Value: strconv.FormatFloat(f, 'g', -1, 64)}
	}
	return int64(f), nil
}
