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

// Package driver is the glue between the CLI surface and the
// enumeration engine: it ingests elements, builds the scheduler, prints
// the --fingerprint line, runs the --keyspace short-circuit, seeks if
// needed, and drives the scheduler into a sink.
package driver

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/xtaci/princeprocessor/internal/bigcount"
	"github.com/xtaci/princeprocessor/internal/config"
	"github.com/xtaci/princeprocessor/internal/elements"
	"github.com/xtaci/princeprocessor/internal/fingerprint"
	"github.com/xtaci/princeprocessor/internal/schedule"
	"github.com/xtaci/princeprocessor/internal/wordlen"
)

// Sink is the subset of sink.Writer the driver needs: something that
// accepts finished candidates and can be flushed/closed.
type Sink interface {
	schedule.Sink
	Close() error
}

// Run ingests elements from in, builds the scheduler per cfg, prints
// the fingerprint first when requested, and then either prints the
// keyspace and returns, or runs the scheduler to completion writing every candidate into the sink
// openSink produces. openSink is only invoked once emission is known
// to be necessary, so --keyspace and --limit=0 runs never touch the
// output file. out receives the --keyspace value (the original prints
// it to stdout for callers to capture); diag receives diagnostics such
// as the --fingerprint line, matching the teacher's stdout/stderr split.
func Run(cfg config.Config, in io.Reader, openSink func() (Sink, error), out, diag io.Writer) error {
	store := elements.NewStore()
	if err := store.Ingest(in); err != nil {
		return errors.Wrap(err, "ingest")
	}

	weight := wordlen.Weights(cfg.PwMin, cfg.PwMax, cfg.WlDistLen, store)
	sched := schedule.New(store, cfg.PwMin, cfg.PwMax, cfg.ElemCntMin, cfg.ElemCntMax, weight)

	if cfg.PrintFingerprint {
		fmt.Fprintf(diag, "%x\n", fingerprint.Of(store))
	}

	skip, limit, hasLimit, err := parseBounds(cfg)
	if err != nil {
		return err
	}

	if cfg.Keyspace {
		fmt.Fprintln(out, sched.TotalKsCnt.String())
		return nil
	}

	if err := sched.ClampToWindow(skip, limit, hasLimit); err != nil {
		return err
	}

	if hasLimit && limit.IsZero() {
		// limit=0: nothing to emit, exit successfully without a seek.
		return nil
	}

	sched.Seek(skip)

	snk, err := openSink()
	if err != nil {
		return err
	}

	if err := sched.Run(snk); err != nil {
		return err
	}

	return snk.Close()
}

// parseBounds turns the string skip/limit config fields into
// bigcount.Counts, defaulting both to zero (and limit to "no limit").
func parseBounds(cfg config.Config) (skip, limit bigcount.Count, hasLimit bool, err error) {
	skip = bigcount.Zero()
	if cfg.Skip != "" {
		skip, err = bigcount.FromString(cfg.Skip)
		if err != nil {
			return skip, limit, false, errors.Wrap(err, "--skip")
		}
	}

	if cfg.Limit != "" {
		limit, err = bigcount.FromString(cfg.Limit)
		if err != nil {
			return skip, limit, false, errors.Wrap(err, "--limit")
		}
		hasLimit = true
	}

	return skip, limit, hasLimit, nil
}
