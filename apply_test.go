// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymdelta_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/ymdelta"
)

func newDatetime(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddTo(t *testing.T) {
	nd, ndt := ymdelta.New, newDatetime
	for _, tc := range []struct {
		d    ymdelta.Delta
		when time.Time
		want time.Time
	}{
		{nd(0, 1), ndt(2000, 1, 1), ndt(2000, 2, 1)},
		{nd(0, -1), ndt(2013, 3, 31), ndt(2013, 2, 28)},
		{nd(0, -1), ndt(2000, 3, 31), ndt(2000, 2, 29)},
		{nd(0, 1), ndt(2013, 12, 15), ndt(2014, 1, 15)},
		{nd(0, -12), ndt(2013, 6, 30), ndt(2012, 6, 30)},
		{nd(1, 1), ndt(2013, 12, 31), ndt(2015, 1, 31)},
		{nd(0, 11), ndt(2000, 2, 29), ndt(2001, 1, 29)},
		{nd(-4, 0), ndt(2004, 2, 29), ndt(2000, 2, 29)},
		{nd(0, 0), ndt(2013, 3, 31), ndt(2013, 3, 31)},
		{nd(2000, 25), ndt(1, 1, 1), ndt(2003, 2, 1)},
	} {
		when, err := tc.d.AddTo(tc.when)
		if err != nil {
			t.Errorf("%v + %v: %v", tc.when, tc.d, err)
			continue
		}
		if got, want := when, tc.want; !got.Equal(want) {
			t.Errorf("%v + %v: got %v, want %v", tc.when, tc.d, got, want)
		}
	}
}

func TestSubFrom(t *testing.T) {
	nd, ndt := ymdelta.New, newDatetime
	for _, tc := range []struct {
		d    ymdelta.Delta
		when time.Time
		want time.Time
	}{
		{nd(0, 1), ndt(2000, 3, 31), ndt(2000, 2, 29)},
		{nd(1, 0), ndt(2004, 2, 29), ndt(2003, 2, 28)},
		{nd(4, 0), ndt(2004, 2, 29), ndt(2000, 2, 29)},
		{nd(0, -1), ndt(2013, 1, 15), ndt(2013, 2, 15)},
	} {
		when, err := tc.d.SubFrom(tc.when)
		if err != nil {
			t.Errorf("%v - %v: %v", tc.when, tc.d, err)
			continue
		}
		if got, want := when, tc.want; !got.Equal(want) {
			t.Errorf("%v - %v: got %v, want %v", tc.when, tc.d, got, want)
		}
	}
}

func TestAddToPreservesTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	when := time.Date(2013, 3, 31, 13, 14, 15, 16, loc)
	got, err := ymdelta.New(0, -1).AddTo(when)
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	want := time.Date(2013, 2, 28, 13, 14, 15, 16, loc)
	if !got.Equal(want) || got.Location() != loc {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddToNoRounding(t *testing.T) {
	nd, ndt := ymdelta.New, newDatetime

	// Without rounding impossible day of month values are errors.
	if _, err := nd(0, -1).WithRounding(false).AddTo(ndt(2013, 3, 31)); !errors.Is(err, ymdelta.ErrInvalidDate) {
		t.Errorf("failed to return ErrInvalidDate: %v", err)
	}
	if _, err := nd(1, 0).WithRounding(false).SubFrom(ndt(2004, 2, 29)); !errors.Is(err, ymdelta.ErrInvalidDate) {
		t.Errorf("failed to return ErrInvalidDate: %v", err)
	}

	// Exact results succeed regardless of the policy.
	when, err := nd(4, 0).WithRounding(false).SubFrom(ndt(2004, 2, 29))
	if err != nil {
		t.Fatalf("failed: %v", err)
	}
	if got, want := when, ndt(2000, 2, 29); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestAddToOutOfRange(t *testing.T) {
	// Offsets that land at or before the zero month are not representable.
	if _, err := ymdelta.New(-1, -1).AddTo(newDatetime(1, 1, 15)); !errors.Is(err, ymdelta.ErrInvalidDate) {
		t.Errorf("failed to return ErrInvalidDate: %v", err)
	}
}
