// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ymdelta

import (
	"errors"
	"fmt"
	"time"
)

// ErrTypeMismatch is returned by the operator functions when given an
// operand combination they do not support. The wrapping error names both
// operand types.
var ErrTypeMismatch = errors.New("type mismatch")

// The free functions below mirror the full operator table for Delta values,
// dispatching on dynamic operand types. They exist for callers that need the
// complete contract, including the combinations the typed methods cannot
// express (eg. date + Delta vs the unsupported int + Delta). Callers working
// with known types should prefer the Delta methods directly.

func mismatch(op string, a, b any) error {
	return fmt.Errorf("unsupported operand type(s) for %s: %T and %T: %w", op, a, b, ErrTypeMismatch)
}

// Add adds b to a. Supported combinations: Delta + Delta (field-wise sum,
// see Delta.Add), Delta + int (months, see Delta.AddMonths), and Delta +
// time.Time or time.Time + Delta (application, see Delta.AddTo; date
// addition is commutative). Any other combination, including int + Delta,
// fails with an error wrapping ErrTypeMismatch.
func Add(a, b any) (any, error) {
	if d, ok := a.(Delta); ok {
		switch o := b.(type) {
		case Delta:
			return d.Add(o), nil
		case int:
			return d.AddMonths(o), nil
		case time.Time:
			return d.AddTo(o)
		}
	}
	if t, ok := a.(time.Time); ok {
		if d, ok := b.(Delta); ok {
			return d.AddTo(t)
		}
	}
	return nil, mismatch("+", a, b)
}

// Sub subtracts b from a. Supported combinations: Delta - Delta, Delta - int
// (months) and time.Time - Delta (which applies the negated Delta).
// Delta - time.Time has no meaning and fails with an error wrapping
// ErrTypeMismatch, as does any other combination.
func Sub(a, b any) (any, error) {
	if d, ok := a.(Delta); ok {
		switch o := b.(type) {
		case Delta:
			return d.Sub(o), nil
		case int:
			return d.SubMonths(o), nil
		}
		return nil, mismatch("-", a, b)
	}
	if t, ok := a.(time.Time); ok {
		if d, ok := b.(Delta); ok {
			return d.SubFrom(t)
		}
	}
	return nil, mismatch("-", a, b)
}

// Mul multiplies a Delta by an integer; Delta * int and int * Delta are both
// supported. Multiplication by any other type, floats included, fails with
// an error wrapping ErrTypeMismatch: a fractional month count is ambiguous
// and deliberately unrepresentable.
func Mul(a, b any) (any, error) {
	if d, ok := a.(Delta); ok {
		if n, ok := b.(int); ok {
			return d.Mul(n), nil
		}
	}
	if n, ok := a.(int); ok {
		if d, ok := b.(Delta); ok {
			return d.Mul(n), nil
		}
	}
	return nil, mismatch("*", a, b)
}

// Compare orders two Deltas by total months, returning -1, 0 or +1. Both
// operands must be Deltas; comparing a Delta to any other type fails with an
// error wrapping ErrTypeMismatch rather than reporting an ordering.
func Compare(a, b any) (int, error) {
	da, ok := a.(Delta)
	if !ok {
		return 0, fmt.Errorf("can't compare %T to %T: %w", a, b, ErrTypeMismatch)
	}
	db, ok := b.(Delta)
	if !ok {
		return 0, fmt.Errorf("can't compare %T to %T: %w", a, b, ErrTypeMismatch)
	}
	return da.Compare(db), nil
}

// Equal reports whether two Deltas represent the same total number of
// months. As with Compare, both operands must be Deltas; equality against
// any other type fails with an error wrapping ErrTypeMismatch instead of
// returning false. Callers that want a non-failing comparison against a
// known Delta should use Delta.Equal.
func Equal(a, b any) (bool, error) {
	n, err := Compare(a, b)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}
