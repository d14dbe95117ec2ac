// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package bigcount is a thin facade over math/big.Int restricted to the
// handful of operations a keyspace counter needs: add, subtract,
// multiply by a small (machine-word) factor, divide-and-modulo by a
// small factor, compare, and decimal formatting. Every value is a
// non-negative arbitrary-precision integer.
package bigcount

import (
	"math/big"

	"github.com/pkg/errors"
)

// Count is a non-negative arbitrary-precision integer.
type Count struct {
	v big.Int
}

// Zero returns a Count holding 0.
func Zero() Count {
	return Count{}
}

// FromUint64 builds a Count from a machine-word value.
func FromUint64(n uint64) Count {
	var c Count
	c.v.SetUint64(n)
	return c
}

// FromString parses a decimal string into a Count. Returns an error if
// the string is not a valid non-negative base-10 integer.
func FromString(s string) (Count, error) {
	var c Count
	_, ok := c.v.SetString(s, 10)
	if !ok {
		return Count{}, errors.Errorf("not a valid non-negative integer: %q", s)
	}
	if c.v.Sign() < 0 {
		return Count{}, errors.Errorf("must be non-negative: %q", s)
	}
	return c, nil
}

// Add returns a + b.
func Add(a, b Count) Count {
	var c Count
	c.v.Add(&a.v, &b.v)
	return c
}

// Sub returns a - b. Panics if b > a (callers never subtract a larger
// value in this engine; every call site established a ≥ b beforehand).
func Sub(a, b Count) Count {
	if a.v.Cmp(&b.v) < 0 {
		panic("bigcount: Sub underflow")
	}
	var c Count
	c.v.Sub(&a.v, &b.v)
	return c
}

// MulSmall returns a * n for a machine-word n.
func MulSmall(a Count, n uint64) Count {
	var c Count
	c.v.Mul(&a.v, new(big.Int).SetUint64(n))
	return c
}

// DivModSmall returns (a div n, a mod n) for a machine-word n > 0. The
// modulo result is itself a machine word because it is strictly less
// than n.
func DivModSmall(a Count, n uint64) (q Count, r uint64) {
	if n == 0 {
		panic("bigcount: DivModSmall by zero")
	}
	var qq, rr big.Int
	qq.DivMod(&a.v, new(big.Int).SetUint64(n), &rr)
	return Count{v: qq}, rr.Uint64()
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func Cmp(a, b Count) int {
	return a.v.Cmp(&b.v)
}

// IsZero reports whether the count is exactly zero.
func (c Count) IsZero() bool {
	return c.v.Sign() == 0
}

// Min returns the smaller of a and b.
func Min(a, b Count) Count {
	if Cmp(a, b) <= 0 {
		return a
	}
	return b
}

// String renders the count in decimal.
func (c Count) String() string {
	return c.v.String()
}

// Uint64 narrows c to a machine word. Callers must only invoke this
// when the value is known to fit (bounded by a weight or quota that is
// itself a machine word); it is never used to narrow an unbounded
// keyspace total.
func (c Count) Uint64() uint64 {
	if !c.v.IsUint64() {
		panic("bigcount: value does not fit in a uint64")
	}
	return c.v.Uint64()
}
