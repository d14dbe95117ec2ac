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

// Package wordlen holds the built-in candidate-length weight table and
// derives per-length weights either from it or from the ingested
// element counts.
package wordlen

import "github.com/xtaci/princeprocessor/internal/elements"

// defaultDist is the default word-length distribution, calculated out
// of the first 1,000,000 entries of rockyou.txt. Index 0 is unused
// (lengths start at 1).
var defaultDist = [...]uint64{
	0,
	15,
	56,
	350,
	3315,
	43721,
	276252,
	201748,
	226412,
	119885,
	75075,
	26323,
	13373,
	6353,
	3540,
	1877,
	972,
	311,
	151,
	81,
	66,
	21,
	16,
	13,
	13,
}

// Weight returns the emission weight for candidate length l. Lengths
// beyond the built-in table default to weight 1.
func Weight(l int) uint64 {
	if l >= 0 && l < len(defaultDist) {
		return defaultDist[l]
	}
	return 1
}

// Weights returns a weight per length in [pwMin, pwMax]. When
// useElemCounts is true (the --wl-dist-len flag), weight[L] is the
// number of ingested elements of length L; otherwise it is the
// built-in distribution.
func Weights(pwMin, pwMax int, useElemCounts bool, store *elements.Store) map[int]uint64 {
	w := make(map[int]uint64, pwMax-pwMin+1)
	for l := pwMin; l <= pwMax; l++ {
		if useElemCounts {
			w[l] = uint64(store.Count(l))
		} else {
			w[l] = Weight(l)
		}
	}
	return w
}
