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

// Package fingerprint hashes an ingested element store into a single
// 64-bit value, so that distributed PRINCE workers splitting a
// keyspace by --skip/--limit can assert they loaded byte-identical
// dictionaries in the same per-length order before trusting their
// shards to tile the same keyspace without overlap. Elements are hashed
// grouped by length, so reordering lines of different lengths relative
// to each other does not change the fingerprint.
package fingerprint

import (
	"encoding/binary"

	"github.com/xtaci/princeprocessor/internal/elements"
	"github.com/zxdev/xxhash"
)

// Of hashes every element in store, in length-then-insertion order,
// each prefixed by its own length so that e.g. {"ab","c"} and
// {"a","bc"} never collide.
func Of(store *elements.Store) uint64 {
	var buf []byte
	var lenPrefix [8]byte
	acc := uint64(0)
	for l := elements.LenMin; l <= elements.LenMax; l++ {
		n := store.Count(l)
		for i := 0; i < n; i++ {
			elem := store.At(l, i)
			binary.LittleEndian.PutUint64(lenPrefix[:], uint64(len(elem)))
			buf = append(buf[:0], lenPrefix[:]...)
			buf = append(buf, elem...)
			// fold each element's hash into the running fingerprint so
			// order still matters without re-hashing the whole store
			acc = acc*1099511628211 ^ xxhash.Sum(buf)
		}
	}
	return acc
}
