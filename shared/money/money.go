package money

import (
	"fmt"
)

// Cents is a monetary amount in the currency's minor unit. Amounts are kept
// as integers end to end so nightly rate sums never accumulate float drift.
type Cents int64

const centsPerUnit = 100

// FromUnits builds an amount from whole currency units.
func FromUnits(units int64) Cents {
	return Cents(units * centsPerUnit)
}

// Units returns the whole-unit part of the amount.
func (c Cents) Units() int64 {
	return int64(c) / centsPerUnit
}

// String formats the amount as a plain decimal, e.g. "1250.00".
func (c Cents) String() string {
	sign := ""
	v := int64(c)

	if v < 0 {
		sign = "-"
		v = -v
	}

	return fmt.Sprintf("%s%d.%02d", sign, v/centsPerUnit, v%centsPerUnit)
}
