// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ymdelta provides a signed calendar offset expressed in years and
// months, together with arithmetic over such offsets and their application
// to time.Time values. Unlike a time.Duration, a year/month offset has no
// fixed length; applying one to a date can produce a day of month that does
// not exist in the resulting month (eg. Jan 31 plus one month). By default
// such results are rounded down to the last day of the resulting month;
// rounding can be disabled per Delta to surface these cases as errors.
package ymdelta

import "fmt"

// Delta is a signed year and month offset. The years and months fields are
// stored exactly as given, without normalization, and may be redundant or of
// inconsistent sign (eg. 1 year, -13 months); normalization happens only
// when a Delta is rendered or applied to a date. The zero value is a zero
// offset with rounding enabled. Deltas are immutable; all methods return new
// values and a Delta may be shared freely across goroutines.
type Delta struct {
	years, months int
	norounding    bool
}

// New returns a Delta for the given number of years and months with
// rounding enabled. The values are stored as given, no normalization is
// performed.
func New(years, months int) Delta {
	return Delta{years: years, months: months}
}

// WithRounding returns a copy of d with the rounding policy set to rounding.
func (d Delta) WithRounding(rounding bool) Delta {
	d.norounding = !rounding
	return d
}

// Years returns the years field as stored, without normalization.
func (d Delta) Years() int {
	return d.years
}

// Months returns the months field as stored, without normalization.
func (d Delta) Months() int {
	return d.months
}

// Rounding returns true if applying d rounds impossible day of month values
// down to the last day of the resulting month.
func (d Delta) Rounding() bool {
	return !d.norounding
}

// TotalMonths returns years*12+months, the canonical magnitude of d.
// It is invariant under normalization.
func (d Delta) TotalMonths() int {
	return d.years*12 + d.months
}

// Normalize converts a possibly redundant or sign-inconsistent years and
// months pair into canonical form: the returned pair represents the same
// total number of months, and unless both are zero the returned months value
// is in [1..12] (or [-12..-1] for negative totals) with the same sign as the
// total and with years absorbing the remainder. Normalize(2000, 25) is
// (2002, 1), Normalize(1, -25) is (-1, -1).
func Normalize(years, months int) (int, int) {
	total := years*12 + months
	if total == 0 {
		return 0, 0
	}
	mag := total
	if mag < 0 {
		mag = -mag
	}
	y, m := (mag-1)/12, (mag-1)%12+1
	if total < 0 {
		return -y, -m
	}
	return y, m
}

func pluralize(count int, singular, plural string) string {
	if count == 1 || count == -1 {
		return singular
	}
	return plural
}

// String renders d in normalized form as eg. "2 years 1 month", using the
// singular label when the normalized count is 1 or -1 and the plural
// otherwise (including zero).
func (d Delta) String() string {
	years, months := Normalize(d.years, d.months)
	return fmt.Sprintf("%d %s %d %s",
		years, pluralize(years, "year", "years"),
		months, pluralize(months, "month", "months"))
}

// GoString implements fmt.GoStringer using the raw, unnormalized fields.
func (d Delta) GoString() string {
	return fmt.Sprintf("ymdelta.New(%d, %d).WithRounding(%v)", d.years, d.months, !d.norounding)
}
