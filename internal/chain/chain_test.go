package chain

import (
	"strings"
	"testing"

	"github.com/xtaci/princeprocessor/internal/bigcount"
	"github.com/xtaci/princeprocessor/internal/elements"
)

func storeWith(t *testing.T, lines string) *elements.Store {
	t.Helper()
	s := elements.NewStore()
	if err := s.Ingest(strings.NewReader(lines)); err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	return s
}

func TestDecomposeProducesAllCompositions(t *testing.T) {
	// length 3 has 4 compositions: (1,1,1) (1,2) (2,1) (3)
	want := [][]int{
		{1, 1, 1},
		{2, 1},
		{1, 2},
		{3},
	}
	got := make(map[string]bool)
	for mask := 0; mask < 1<<2; mask++ {
		parts := decompose(3, mask)
		sum := 0
		for _, p := range parts {
			sum += p
		}
		if sum != 3 {
			t.Fatalf("decompose(3, %d) = %v, parts do not sum to 3", mask, parts)
		}
		got[key(parts)] = true
	}
	if len(got) != len(want) {
		t.Fatalf("got %d distinct compositions, want %d", len(got), len(want))
	}
	for _, w := range want {
		if !got[key(w)] {
			t.Errorf("missing composition %v", w)
		}
	}
}

func key(parts []int) string {
	s := ""
	for _, p := range parts {
		s += string(rune('0' + p))
	}
	return s
}

func TestGenerateForLengthFiltersInvalidChains(t *testing.T) {
	// only length-1 elements exist; elem_cnt_max=3 so length-3 chains
	// (1,1,1) and (1,2)/(2,1)/(3) are attempted but only (1,1,1) is valid.
	store := storeWith(t, "a\nb\n")
	chains := GenerateForLength(3, 1, 3, store)
	if len(chains) != 1 {
		t.Fatalf("got %d valid chains, want 1: %+v", len(chains), chains)
	}
	if len(chains[0].Parts) != 3 {
		t.Fatalf("expected the (1,1,1) chain, got %v", chains[0].Parts)
	}
}

func TestGenerateForLengthRespectsElemCntBounds(t *testing.T) {
	store := storeWith(t, "a\nb\n")
	// elem_cnt_max=1 should exclude every multi-part composition of length 3.
	chains := GenerateForLength(3, 1, 1, store)
	if len(chains) != 0 {
		t.Fatalf("expected no valid chains with elem_cnt_max=1 and no length-3 elements, got %d", len(chains))
	}
}

func TestChainsSortedAscendingByKeyspace(t *testing.T) {
	store := storeWith(t, "a\nb\nc\nde\nfg\n") // 3 length-1, 2 length-2 elements
	chains := GenerateForLength(3, 1, 3, store)
	for i := 1; i < len(chains); i++ {
		if bigcount.Cmp(chains[i-1].KsCnt(), chains[i].KsCnt()) > 0 {
			t.Fatalf("chains not sorted ascending by ks_cnt at index %d", i)
		}
	}
}

func TestBuildIntoAndIncrementEnumerateDistinctCandidates(t *testing.T) {
	store := storeWith(t, "a\nb\n")
	chains := GenerateForLength(2, 1, 2, store)
	if len(chains) != 1 {
		t.Fatalf("expected exactly one chain for length 2, got %d", len(chains))
	}
	c := chains[0]

	n := int(c.KsCnt().Uint64())
	buf := make([]byte, 2)
	c.SetKsPos(c.KsPos(), store)
	c.BuildInto(buf, store)

	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		seen[string(buf)] = true
		if i != n-1 {
			c.Increment(buf, store)
		}
	}
	if len(seen) != n {
		t.Fatalf("got %d distinct candidates, want %d: %v", len(seen), n, seen)
	}
}
