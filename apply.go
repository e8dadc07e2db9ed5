// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymdelta

import (
	"errors"
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// ErrInvalidDate is returned when applying a Delta produces a date that does
// not exist on the proleptic Gregorian calendar.
var ErrInvalidDate = errors.New("invalid date")

// AddTo applies d to t. The year and month of t are offset by d and
// normalized, and the day of month is carried over unchanged; the time of
// day and location of t are preserved. If the carried-over day exceeds the
// number of days in the resulting month it is rounded down to the last day
// of that month when d's rounding policy is enabled, otherwise AddTo fails
// with an error wrapping ErrInvalidDate. For example with rounding,
// Mar 31 plus New(0, -1) yields Feb 28 (or Feb 29 in a leap year).
func (d Delta) AddTo(t time.Time) (time.Time, error) {
	year, month := Normalize(t.Year()+d.years, int(t.Month())+d.months)
	if month < 1 {
		return time.Time{}, fmt.Errorf("year %d month %d is out of range: %w", year, month, ErrInvalidDate)
	}
	day := t.Day()
	if last := int(datetime.DaysInMonth(year, datetime.Month(month))); day > last {
		if d.norounding {
			return time.Time{}, fmt.Errorf("day %d is out of range for %04d-%02d: %w", day, year, month, ErrInvalidDate)
		}
		day = last
	}
	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location()), nil
}

// SubFrom applies the negation of d to t, so t minus d is d.Neg().AddTo(t).
func (d Delta) SubFrom(t time.Time) (time.Time, error) {
	return d.Neg().AddTo(t)
}
