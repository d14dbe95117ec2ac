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

// Package schedule owns the length buckets, the round-robin emission
// loop, and the whole-round seek engine that fast-forwards past a
// skip value without emitting.
package schedule

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/xtaci/princeprocessor/internal/bigcount"
	"github.com/xtaci/princeprocessor/internal/chain"
	"github.com/xtaci/princeprocessor/internal/elements"
)

// Bucket is the per-length B[L]: its valid chains sorted ascending by
// keyspace, and a cursor into that list.
type Bucket struct {
	Len       int
	Chains    []*chain.Chain
	ChainsPos int
	KsCnt     bigcount.Count // Σ ks_cnt over Chains
}

func (b *Bucket) exhausted() bool {
	return b.ChainsPos == len(b.Chains)
}

// Sink receives one candidate at a time.
type Sink interface {
	Emit(buf []byte) error
}

// Scheduler drives the whole run: the length order, the buckets, and
// the global skip/limit cursors.
type Scheduler struct {
	store   *elements.Store
	buckets map[int]*Bucket
	order   []int // lengths, descending by weight, ties by ascending length
	weight  map[int]uint64

	TotalKsCnt bigcount.Count
	TotalKsPos bigcount.Count

	skip bigcount.Count
}

// New builds buckets and the length order for every length in
// [pwMin, pwMax], using weight as the per-length emission weight.
func New(store *elements.Store, pwMin, pwMax, elemCntMin, elemCntMax int, weight map[int]uint64) *Scheduler {
	s := &Scheduler{
		store:   store,
		buckets: make(map[int]*Bucket, pwMax-pwMin+1),
		weight:  weight,
	}

	order := make([]int, 0, pwMax-pwMin+1)
	for l := pwMin; l <= pwMax; l++ {
		chains := chain.GenerateForLength(l, elemCntMin, elemCntMax, store)
		s.buckets[l] = &Bucket{
			Len:    l,
			Chains: chains,
			KsCnt:  chain.TotalKs(chains),
		}
		order = append(order, l)
		s.TotalKsCnt = bigcount.Add(s.TotalKsCnt, s.buckets[l].KsCnt)
	}

	sort.SliceStable(order, func(i, j int) bool {
		return weight[order[i]] > weight[order[j]]
	})
	s.order = order

	return s
}

// ClampToWindow restricts the keyspace to [skip, skip+limit) after
// validating skip < TotalKsCnt and skip+limit <= TotalKsCnt. hasLimit ==
// false means "no limit" (emit through the end of the keyspace); a zero
// limit with hasLimit set leaves an empty window.
func (s *Scheduler) ClampToWindow(skip, limit bigcount.Count, hasLimit bool) error {
	if !skip.IsZero() && bigcount.Cmp(skip, s.TotalKsCnt) >= 0 {
		return errors.New("--skip must be smaller than the total keyspace")
	}
	s.skip = skip

	if hasLimit {
		if bigcount.Cmp(limit, s.TotalKsCnt) > 0 {
			return errors.New("--limit cannot be larger than the total keyspace")
		}
		end := bigcount.Add(skip, limit)
		if bigcount.Cmp(end, s.TotalKsCnt) > 0 {
			return errors.New("--skip + --limit cannot be larger than the total keyspace")
		}
		s.TotalKsCnt = end
	}
	return nil
}

// Seek fast-forwards every bucket's cursor to the position it would
// hold after `skip` candidates were produced, without emitting any of
// them. It jumps whole rounds at a time: round_weight is the sum of
// weights of buckets still holding keyspace, and skip_left/round_weight
// whole rounds can be skipped in one step.
func (s *Scheduler) Seek(skip bigcount.Count) {
	if skip.IsZero() {
		return
	}

	pwKsPos := make(map[int]bigcount.Count, len(s.buckets))
	for l := range s.buckets {
		pwKsPos[l] = bigcount.Zero()
	}

	skipLeft := skip
	for {
		roundWeight := uint64(0)
		for l, b := range s.buckets {
			if bigcount.Cmp(pwKsPos[l], b.KsCnt) < 0 {
				roundWeight += s.weight[l]
			}
		}
		if roundWeight == 0 {
			break
		}

		mainLoops, _ := bigcount.DivModSmall(skipLeft, roundWeight)
		if mainLoops.IsZero() {
			break
		}

		for l, b := range s.buckets {
			if bigcount.Cmp(pwKsPos[l], b.KsCnt) >= 0 {
				continue
			}
			delta := bigcount.MulSmall(mainLoops, s.weight[l])
			pwKsPos[l] = bigcount.Add(pwKsPos[l], delta)
			skipLeft = bigcount.Sub(skipLeft, delta)

			if bigcount.Cmp(pwKsPos[l], b.KsCnt) > 0 {
				excess := bigcount.Sub(pwKsPos[l], b.KsCnt)
				skipLeft = bigcount.Add(skipLeft, excess)
			}
		}
	}

	s.TotalKsPos = bigcount.Sub(skip, skipLeft)

	for l, b := range s.buckets {
		remaining := pwKsPos[l]
		for i, c := range b.Chains {
			if bigcount.Cmp(remaining, c.KsCnt()) < 0 {
				c.SetKsPos(remaining, s.store)
				b.ChainsPos = i
				break
			}
			remaining = bigcount.Sub(remaining, c.KsCnt())
			b.ChainsPos = i + 1
		}
	}
}

// Run executes the main emission loop until TotalKsPos reaches
// TotalKsCnt, respecting skip (candidates before skip are positioned
// but never emitted) and writing every emitted candidate, followed by
// a newline, to sink.
func (s *Scheduler) Run(sink Sink) error {
	buf := make([]byte, elements.LenMax+1)

	for bigcount.Cmp(s.TotalKsPos, s.TotalKsCnt) < 0 {
		for _, l := range s.order {
			b := s.buckets[l]
			buf[l] = '\n'

			quota := s.weight[l]
			done := uint64(0)

			for done < quota {
				if b.exhausted() {
					break
				}
				c := b.Chains[b.ChainsPos]

				before := c.KsPos()
				totalLeft := bigcount.Sub(s.TotalKsCnt, s.TotalKsPos)
				iterMax := bigcount.Sub(c.KsCnt(), before)
				iterMax = bigcount.Min(iterMax, totalLeft)
				iterMax = bigcount.Min(iterMax, bigcount.FromUint64(quota-done))
				iterMaxU64 := iterMax.Uint64()

				reached := bigcount.Add(s.TotalKsPos, iterMax)
				if bigcount.Cmp(reached, s.skip) > 0 {
					var enter uint64
					if bigcount.Cmp(s.TotalKsPos, s.skip) < 0 {
						enter = bigcount.Sub(s.skip, s.TotalKsPos).Uint64()
						c.DecodeIndices(bigcount.Add(before, bigcount.FromUint64(enter)), s.store)
					}

					c.BuildInto(buf[:l], s.store)
					for i := enter; i < iterMaxU64; i++ {
						if err := sink.Emit(buf[:l+1]); err != nil {
							return errors.Wrap(err, "emit candidate")
						}
						c.Increment(buf[:l], s.store)
					}
				} else {
					c.DecodeIndices(bigcount.Add(before, iterMax), s.store)
				}

				done += iterMaxU64
				s.TotalKsPos = bigcount.Add(s.TotalKsPos, iterMax)
				c.AdvanceKsPos(iterMax)

				if bigcount.Cmp(c.KsPos(), c.KsCnt()) == 0 {
					b.ChainsPos++
					c.ResetIndices()
				}

				if bigcount.Cmp(s.TotalKsPos, s.TotalKsCnt) == 0 {
					break
				}
			}

			if bigcount.Cmp(s.TotalKsPos, s.TotalKsCnt) == 0 {
				break
			}
		}
	}

	return nil
}
