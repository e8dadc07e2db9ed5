// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymdelta

// Neg returns d with the sign of both fields swapped. The rounding policy
// is retained.
func (d Delta) Neg() Delta {
	return Delta{years: -d.years, months: -d.months, norounding: d.norounding}
}

// Add returns the field-wise sum of d and o without normalizing the result.
// The stricter rounding policy wins: the sum rounds only if both operands
// round.
func (d Delta) Add(o Delta) Delta {
	return Delta{
		years:      d.years + o.years,
		months:     d.months + o.months,
		norounding: d.norounding || o.norounding,
	}
}

// AddMonths returns d with n added to its months field. The years field and
// rounding policy are unchanged.
func (d Delta) AddMonths(n int) Delta {
	return Delta{years: d.years, months: d.months + n, norounding: d.norounding}
}

// Sub is d.Add(o.Neg()).
func (d Delta) Sub(o Delta) Delta {
	return d.Add(o.Neg())
}

// SubMonths is d.AddMonths(-n).
func (d Delta) SubMonths(n int) Delta {
	return d.AddMonths(-n)
}

// Mul returns d with both fields multiplied by n. Only integer multipliers
// are supported; fractions of a month are not representable.
func (d Delta) Mul(n int) Delta {
	return Delta{years: d.years * n, months: d.months * n, norounding: d.norounding}
}

// Compare orders d and o by their total months and returns -1, 0 or +1.
// The rounding policy does not participate in the ordering, so eg.
// New(1, 0) and New(0, 12) compare equal.
func (d Delta) Compare(o Delta) int {
	a, b := d.TotalMonths(), o.TotalMonths()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equal returns true if d and o represent the same total number of months.
// Deltas that differ only in their rounding policy are equal.
func (d Delta) Equal(o Delta) bool {
	return d.TotalMonths() == o.TotalMonths()
}
