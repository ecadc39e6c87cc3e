package money

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Rounding determines how an amount is quantized to a currency's scale.
// The zero value is [RoundUp], which is the mode used by [DefaultProvider].
type Rounding uint8

const (
	// RoundUp rounds away from zero whenever truncation would discard a
	// nonzero digit, regardless of the value of that digit.
	// It matches the original "round up in magnitude" currency policy:
	// 4.191 quantized to 2 decimal places becomes 4.20, and -4.191
	// becomes -4.20.
	RoundUp Rounding = iota

	// RoundDown rounds toward zero, discarding excess digits.
	RoundDown

	// RoundCeiling rounds toward positive infinity.
	RoundCeiling

	// RoundFloor rounds toward negative infinity.
	RoundFloor

	// RoundHalfUp rounds to the nearest representable value, with ties
	// rounded away from zero.
	RoundHalfUp

	// RoundHalfEven rounds to the nearest representable value, with ties
	// rounded to the nearest even digit (banker's rounding).
	RoundHalfEven
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rounding) String() string {
	switch r {
	case RoundUp:
		return "ROUND_UP"
	case RoundDown:
		return "ROUND_DOWN"
	case RoundCeiling:
		return "ROUND_CEILING"
	case RoundFloor:
		return "ROUND_FLOOR"
	case RoundHalfUp:
		return "ROUND_HALF_UP"
	case RoundHalfEven:
		return "ROUND_HALF_EVEN"
	}
	return "ROUND_UNKNOWN"
}

// quantize rounds d to the given number of digits after the decimal point
// and zero-pads the result to exactly that scale.
//
// quantize returns an error if:
//   - the scale is negative;
//   - the rounding mode is unknown;
//   - the integer part of the result has more than
//     ([decimal.MaxPrec] - scale) digits.
func (r Rounding) quantize(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("quantizing to %v decimal places: %w", scale, ErrInvalidAmount)
	}
	switch r {
	case RoundUp:
		if d.IsNeg() {
			d = d.Floor(scale)
		} else {
			d = d.Ceil(scale)
		}
	case RoundDown:
		d = d.Trunc(scale)
	case RoundCeiling:
		d = d.Ceil(scale)
	case RoundFloor:
		d = d.Floor(scale)
	case RoundHalfUp:
		var err error
		d, err = roundHalfUp(d, scale)
		if err != nil {
			return decimal.Decimal{}, err
		}
	case RoundHalfEven:
		d = d.Round(scale)
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown rounding mode %d", uint8(r))
	}
	d = d.Pad(scale)
	if d.Scale() < scale {
		return decimal.Decimal{}, fmt.Errorf("padding amount: %w", errAmountOverflow)
	}
	return d, nil
}

// roundHalfUp rounds d to the given scale, with ties rounded away from zero.
// The decimal package only provides half-even rounding, so the mode is
// composed from truncation and an explicit tie comparison.
func roundHalfUp(d decimal.Decimal, scale int) (decimal.Decimal, error) {
	t := d.Trunc(scale)
	rem, err := d.Sub(t)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if rem.IsZero() {
		return t, nil
	}
	half, err := decimal.New(5, scale+1)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if rem.CmpAbs(half) < 0 {
		return t, nil
	}
	ulp, err := decimal.New(1, scale)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return t.Add(ulp.CopySign(d))
}
