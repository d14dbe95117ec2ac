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

// Package chain enumerates the compositions of a candidate length into
// element-length parts (a "chain"), computes each chain's keyspace,
// and decodes/increments a chain's position into a concrete candidate
// buffer via little-endian mixed-radix arithmetic.
package chain

import (
	"sort"

	"github.com/xtaci/princeprocessor/internal/bigcount"
	"github.com/xtaci/princeprocessor/internal/elements"
)

// KMax is the largest number of parts a chain may hold: the bitmask
// encoding below has one bit per candidate-length-1 cut point, and a
// chain of length LenMax (16) can have at most 15 cuts, but the
// configuration surface separately caps elem-cnt-max at KMax.
const KMax = 8

// Chain is a composition of a candidate length into positive parts,
// each part referencing an element length in the store.
type Chain struct {
	Parts []int

	ksCnt bigcount.Count // Π |E[part]|, fixed at construction
	ksPos bigcount.Count // next keyspace offset to emit, in [0, ksCnt]

	curIndices [KMax]uint64 // mixed-radix decoding of ksPos
}

// KsCnt returns the chain's keyspace size.
func (c *Chain) KsCnt() bigcount.Count { return c.ksCnt }

// KsPos returns the chain's current keyspace cursor.
func (c *Chain) KsPos() bigcount.Count { return c.ksPos }

// SetKsPos sets the cursor to pos and re-decodes curIndices from it.
// pos must be in [0, ksCnt]. Used when positioning a chain wholesale
// (seek engine, initial entry into a chain).
func (c *Chain) SetKsPos(pos bigcount.Count, store *elements.Store) {
	c.ksPos = pos
	c.DecodeIndices(pos, store)
}

// AdvanceKsPos moves the cursor forward by delta without touching
// curIndices: used after a run of Increment calls (or a skip-only
// pass) has already walked curIndices forward by the same delta.
func (c *Chain) AdvanceKsPos(delta bigcount.Count) {
	c.ksPos = bigcount.Add(c.ksPos, delta)
}

// DecodeIndices computes curIndices as the little-endian mixed-radix
// decoding of pos, leaving ksPos untouched. Part 0 is the least
// significant digit.
func (c *Chain) DecodeIndices(pos bigcount.Count, store *elements.Store) {
	rem := pos
	for i, p := range c.Parts {
		cnt := uint64(store.Count(p))
		var digit uint64
		rem, digit = bigcount.DivModSmall(rem, cnt)
		c.curIndices[i] = digit
	}
}

// ResetIndices zeroes curIndices. Called after a chain is exhausted;
// curIndices should already have cycled back to all zeros by then, but
// this guards against any off-by-one in the increment path.
func (c *Chain) ResetIndices() {
	for i := range c.curIndices {
		c.curIndices[i] = 0
	}
}

// BuildInto writes the concrete candidate for the current curIndices
// into buf[:Σ Parts], which must be at least that long.
func (c *Chain) BuildInto(buf []byte, store *elements.Store) {
	off := 0
	for i, p := range c.Parts {
		copy(buf[off:off+p], store.At(p, int(c.curIndices[i])))
		off += p
	}
}

// Increment advances curIndices by one in little-endian mixed-radix
// order and patches buf in place: the changing part, and every part
// that wraps to zero ahead of it, are re-copied; parts beyond the
// first non-wrapping part are left untouched.
func (c *Chain) Increment(buf []byte, store *elements.Store) {
	off := 0
	for i, p := range c.Parts {
		cnt := uint64(store.Count(p))
		c.curIndices[i]++
		if c.curIndices[i] < cnt {
			copy(buf[off:off+p], store.At(p, int(c.curIndices[i])))
			return
		}
		c.curIndices[i] = 0
		copy(buf[off:off+p], store.At(p, 0))
		off += p
	}
}

// valid reports whether every part in parts has at least one element
// in store, and the part count falls within [elemCntMin, elemCntMax].
func valid(parts []int, store *elements.Store, elemCntMin, elemCntMax int) bool {
	k := len(parts)
	if k < elemCntMin || k > elemCntMax {
		return false
	}
	for _, p := range parts {
		if store.Count(p) == 0 {
			return false
		}
	}
	return true
}

// decompose returns the composition of length encoded by mask, using
// the bit-per-cut-point scheme: bit i set means a new part starts
// after logical position i.
func decompose(length int, mask int) []int {
	parts := make([]int, 0, KMax)
	part := 1
	for i := 0; i < length-1; i++ {
		if (mask>>uint(i))&1 == 1 {
			parts = append(parts, part)
			part = 1
		} else {
			part++
		}
	}
	parts = append(parts, part)
	return parts
}

// GenerateForLength enumerates every valid chain for candidate length
// pwLen, computes its keyspace, and returns the list sorted ascending
// by keyspace (ties broken by generation order — Go's sort.SliceStable
// preserves it).
func GenerateForLength(pwLen, elemCntMin, elemCntMax int, store *elements.Store) []*Chain {
	n := pwLen - 1
	total := 1 << uint(n)

	chains := make([]*Chain, 0, total)
	for mask := 0; mask < total; mask++ {
		parts := decompose(pwLen, mask)
		if !valid(parts, store, elemCntMin, elemCntMax) {
			continue
		}
		c := &Chain{Parts: parts, ksCnt: bigcount.FromUint64(1)}
		for _, p := range parts {
			c.ksCnt = bigcount.MulSmall(c.ksCnt, uint64(store.Count(p)))
		}
		chains = append(chains, c)
	}

	sort.SliceStable(chains, func(i, j int) bool {
		return bigcount.Cmp(chains[i].ksCnt, chains[j].ksCnt) < 0
	})

	return chains
}

// TotalKs sums ksCnt across chains.
func TotalKs(chains []*Chain) bigcount.Count {
	total := bigcount.Zero()
	for _, c := range chains {
		total = bigcount.Add(total, c.ksCnt)
	}
	return total
}
