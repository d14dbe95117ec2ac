package driver

import (
	"bytes"
	"strings"
	"testing"

	"github.com/xtaci/princeprocessor/internal/config"
)

// memSink is an in-memory Sink for driver tests.
type memSink struct {
	buf    bytes.Buffer
	closed bool
}

func (m *memSink) Emit(buf []byte) error {
	_, err := m.buf.Write(buf)
	return err
}

func (m *memSink) Close() error {
	m.closed = true
	return nil
}

func TestRunUnrestricted(t *testing.T) {
	cfg := config.Default()
	cfg.PwMin, cfg.PwMax = 1, 2
	cfg.ElemCntMin, cfg.ElemCntMax = 1, 2

	sinkUsed := &memSink{}
	var out, diag bytes.Buffer

	err := Run(cfg, strings.NewReader("a\nb\n"), func() (Sink, error) { return sinkUsed, nil }, &out, &diag)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !sinkUsed.closed {
		t.Fatal("sink was never closed")
	}
	want := "aa\nba\nab\nbb\na\nb\n"
	if sinkUsed.buf.String() != want {
		t.Fatalf("got %q, want %q", sinkUsed.buf.String(), want)
	}
}

func TestRunKeyspaceShortCircuitsEmission(t *testing.T) {
	cfg := config.Default()
	cfg.PwMin, cfg.PwMax = 1, 2
	cfg.ElemCntMin, cfg.ElemCntMax = 1, 2
	cfg.Keyspace = true

	sinkOpened := false
	var out, diag bytes.Buffer

	err := Run(cfg, strings.NewReader("a\nb\n"), func() (Sink, error) {
		sinkOpened = true
		return &memSink{}, nil
	}, &out, &diag)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sinkOpened {
		t.Fatal("--keyspace must never open the output sink")
	}
	if out.String() != "6\n" {
		t.Fatalf("keyspace output = %q, want %q", out.String(), "6\n")
	}
	if diag.Len() != 0 {
		t.Fatalf("--keyspace must not write to diag, got %q", diag.String())
	}
}

func TestRunZeroLimitSkipsSinkAndEmission(t *testing.T) {
	cfg := config.Default()
	cfg.PwMin, cfg.PwMax = 1, 2
	cfg.ElemCntMin, cfg.ElemCntMax = 1, 2
	cfg.Limit = "0"

	sinkOpened := false
	var out, diag bytes.Buffer

	err := Run(cfg, strings.NewReader("a\nb\n"), func() (Sink, error) {
		sinkOpened = true
		return &memSink{}, nil
	}, &out, &diag)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sinkOpened {
		t.Fatal("--limit=0 must never open the output sink")
	}
}

func TestRunRejectsSkipBeyondKeyspace(t *testing.T) {
	cfg := config.Default()
	cfg.PwMin, cfg.PwMax = 1, 2
	cfg.ElemCntMin, cfg.ElemCntMax = 1, 2
	cfg.Skip = "6" // total keyspace is exactly 6

	err := Run(cfg, strings.NewReader("a\nb\n"), func() (Sink, error) { return &memSink{}, nil }, new(bytes.Buffer), new(bytes.Buffer))
	if err == nil {
		t.Fatal("expected an error when skip equals the total keyspace")
	}
}

func TestRunFingerprintIsPrintedToDiag(t *testing.T) {
	cfg := config.Default()
	cfg.PwMin, cfg.PwMax = 1, 1
	cfg.ElemCntMin, cfg.ElemCntMax = 1, 1
	cfg.PrintFingerprint = true

	var out, diag bytes.Buffer
	err := Run(cfg, strings.NewReader("a\n"), func() (Sink, error) { return &memSink{}, nil }, &out, &diag)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diag.Len() == 0 {
		t.Fatal("expected a fingerprint line on diag")
	}
}
