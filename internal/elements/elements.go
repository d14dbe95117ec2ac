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

// Package elements is the append-only element store: per length L in
// [1..LenMax], an ordered sequence of fixed-width byte strings ingested
// from a wordlist. Insertion order is the authoritative index used by
// every later keyspace computation.
package elements

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

const (
	// LenMin is the shortest element length accepted from the source.
	LenMin = 1
	// LenMax is the longest element length accepted from the source,
	// and the width of the per-length bucket array.
	LenMax = 16
)

// Store holds ingested elements bucketed by length.
type Store struct {
	buckets [LenMax + 1][][]byte
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Count returns the number of elements ingested at length L. Out of
// range lengths report zero.
func (s *Store) Count(l int) int {
	if l < LenMin || l > LenMax {
		return 0
	}
	return len(s.buckets[l])
}

// At returns the idx-th element ingested at length L, in insertion order.
func (s *Store) At(l, idx int) []byte {
	return s.buckets[l][idx]
}

// Ingest reads newline-delimited elements from r. Each line has its
// trailing \r and \n stripped; a line whose stripped length falls
// outside [LenMin, LenMax] is silently discarded (not an error — lets
// callers feed mixed-length wordlists without pre-filtering).
// Duplicates are preserved; arrival order becomes the insertion index.
// A single line longer than the 1 MiB scanner buffer is not skipped: it
// stops ingestion and Ingest returns an error.
func (s *Store) Ingest(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := chomp(scanner.Bytes())
		n := len(line)
		if n < LenMin || n > LenMax {
			continue
		}
		buf := make([]byte, n)
		copy(buf, line)
		s.buckets[n] = append(s.buckets[n], buf)
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "ingest elements")
	}
	return nil
}

// chomp strips a trailing \r and/or \n, matching in_superchop's
// behavior of stripping both regardless of platform line ending.
func chomp(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}
