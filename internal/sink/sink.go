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

// Package sink is the candidate output sink: a buffered writer, with
// an optional snappy compression layer, that the scheduler pushes
// finished candidates into.
package sink

import (
	"bufio"
	"io"
	"os"

	"github.com/golang/snappy"
	"github.com/pkg/errors"
)

// bufSize mirrors the teacher's BUFSIZ-scale output buffer.
const bufSize = 64 * 1024

// Writer buffers candidates and flushes them to an underlying
// io.Writer, optionally through a snappy compressor.
type Writer struct {
	bw       *bufio.Writer
	compress io.WriteCloser // non-nil when --output-compress is set
	file     *os.File       // non-nil when writing to --output-file
}

// Open returns a Writer targeting stdout, or appending to path when
// path is non-empty. When compress is true, candidates are snappy
// compressed before hitting the underlying writer.
func Open(path string, compress bool) (*Writer, error) {
	var f *os.File
	var dst io.Writer = os.Stdout

	if path != "" {
		var err error
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, errors.Wrapf(err, "open output file %q", path)
		}
		dst = f
	}

	w := &Writer{file: f}

	if compress {
		w.compress = snappy.NewBufferedWriter(dst)
		w.bw = bufio.NewWriterSize(w.compress, bufSize)
	} else {
		w.bw = bufio.NewWriterSize(dst, bufSize)
	}

	return w, nil
}

// Emit implements schedule.Sink: writes buf verbatim (the scheduler
// already appended the trailing newline).
func (w *Writer) Emit(buf []byte) error {
	if _, err := w.bw.Write(buf); err != nil {
		return errors.Wrap(err, "write candidate")
	}
	return nil
}

// Close flushes every buffering layer and closes the output file, if any.
func (w *Writer) Close() error {
	if err := w.bw.Flush(); err != nil {
		return errors.Wrap(err, "flush output buffer")
	}
	if w.compress != nil {
		if err := w.compress.Close(); err != nil {
			return errors.Wrap(err, "close compressor")
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return errors.Wrap(err, "close output file")
		}
	}
	return nil
}
