package unlimited

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/coregx/agrep/myers"
	"github.com/coregx/agrep/search"
)

func mustNew(t testing.TB, pattern string, flags search.Flags) *Pattern {
	t.Helper()
	p, err := New([]byte(pattern), flags)
	if err != nil {
		t.Fatalf("failed to compile %q: %v", pattern, err)
	}
	return p
}

// Text symbols compare as IUPAC codes in either case: d matches T and y
// matches M below.
func TestFindFirst(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		threshold int
		want      search.Match
		found     bool
	}{
		{"exact", "MATCH", 0, search.Match{Position: 0, Length: 5, Score: 0}, true},
		{"inside", "xxMATCHvv", 0, search.Match{Position: 2, Length: 5, Score: 0}, true},
		{"deletion", "xxxMACHvv", 1, search.Match{Position: 3, Length: 4, Score: 1}, true},
		{"two_insertions", "xxxMAdTCaHvv", 2, search.Match{Position: 3, Length: 4, Score: 1}, true},
		{"loose", "xATxx", 5, search.Match{Position: 1, Length: 2, Score: 3}, true},
		{"first_not_best", "MTCH__MITCH_MTACH_MATCH_MATCH", 1, search.Match{Position: 0, Length: 4, Score: 1}, true},
		{"match_anything", "xyzvuwpiuuuu", 5, search.Match{Position: 1, Length: 1, Score: 4}, true},
		{"no_match", "xzpqiojfx", 4, search.Match{}, false},
	}

	p := mustNew(t, "MATCH", search.ModeASCII)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.FindFirst(tt.threshold, []byte(tt.text))
			if ok != tt.found {
				t.Fatalf("FindFirst(%q, %d) found = %v, want %v", tt.text, tt.threshold, ok, tt.found)
			}
			if ok && got != tt.want {
				t.Errorf("FindFirst(%q, %d) = %v, want %v", tt.text, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestFindBest(t *testing.T) {
	p := mustNew(t, "MATCH", search.ModeASCII)
	got, ok := p.FindBest([]byte("MTCH__MITCH_MTACH_MATCH_MATCH"))
	want := search.Match{Position: 18, Length: 5, Score: 0}
	if !ok || got != want {
		t.Errorf("FindBest = %v, %v; want %v", got, ok, want)
	}

	got, ok = p.FindBest([]byte("zzzz"))
	if !ok || got != (search.Match{Score: 5}) {
		t.Errorf("FindBest without any matching byte = %v, %v", got, ok)
	}
	if _, ok := p.FindBest(nil); ok {
		t.Error("FindBest on an empty buffer should report false")
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		text      string
		threshold int
		want      []search.Match
	}{
		{"xxMATCHvv", 0, []search.Match{{Position: 2, Length: 5, Score: 0}}},
		{"MATCH_MATCH", 0, []search.Match{
			{Position: 0, Length: 5, Score: 0},
			{Position: 6, Length: 5, Score: 0},
		}},
		{"xyzzy", 0, nil},
	}
	p := mustNew(t, "MATCH", search.ModeASCII)
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			var got []search.Match
			p.FindAll(tt.threshold, []byte(tt.text), func(m search.Match) search.Action {
				got = append(got, m)
				return search.Continue
			})
			if len(got) != len(tt.want) {
				t.Fatalf("FindAll = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("match %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFindAllStop(t *testing.T) {
	p := mustNew(t, "AC", search.ModeASCII)
	calls := 0
	act := p.FindAll(0, []byte("ACACAC"), func(search.Match) search.Action {
		calls++
		return search.Stop
	})
	if act != search.Stop || calls != 1 {
		t.Errorf("FindAll returned %v after %d calls", act, calls)
	}
}

func TestInvalidSymbol(t *testing.T) {
	_, err := New([]byte("MAXCH"), search.ModeASCII)
	if !errors.Is(err, search.ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}

	p := mustNew(t, "MAXCH", search.ModeASCII|search.AnythingElseIsN)
	m, ok := p.FindFirst(0, []byte("ccMAGCHcc"))
	if !ok || m != (search.Match{Position: 2, Length: 5, Score: 0}) {
		t.Errorf("X read as N: FindFirst = %v, %v", m, ok)
	}
}

func TestTextExpanded2NA(t *testing.T) {
	text := []byte{3, 2, 0, 3, 1, 2}
	p := mustNew(t, "GATC", search.Pattern4NA)
	if m, ok := p.FindFirst(0, text); ok {
		t.Errorf("2NA text matched without TextExpanded2NA: %v", m)
	}
	p = mustNew(t, "GATC", search.Pattern4NA|search.TextExpanded2NA)
	m, ok := p.FindFirst(0, text)
	if !ok || m != (search.Match{Position: 1, Length: 4, Score: 0}) {
		t.Errorf("2NA FindFirst = %v, %v", m, ok)
	}
}

func TestLowerCaseAndAmbiguousText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want search.Match
	}{
		{"lower", "xxacgtxx", search.Match{Position: 2, Length: 4, Score: 0}},
		{"ambiguous", "xxRCGTxx", search.Match{Position: 2, Length: 4, Score: 0}},
		{"lower_ambiguous", "xxmsktxx", search.Match{Position: 2, Length: 4, Score: 0}},
	}
	p := mustNew(t, "ACGT", search.Pattern4NA)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.FindFirst(1, []byte(tt.text))
			if !ok || got != tt.want {
				t.Errorf("FindFirst(1, %q) = %v, %v; want %v", tt.text, got, ok, tt.want)
			}
		})
	}

	lower := mustNew(t, "acgt", search.Pattern4NA)
	if got, ok := lower.FindFirst(0, []byte("ttACGTtt")); !ok || got.Position != 2 || got.Length != 4 {
		t.Errorf("lower-case pattern FindFirst = %v, %v", got, ok)
	}
}

func randomACGT(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[rng.Intn(4)]
	}
	return string(b)
}

func TestLongPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, m := range []int{65, 128, 200, 513} {
		pattern := randomACGT(rng, m)
		prefix := randomACGT(rng, 300)
		text := prefix + pattern + randomACGT(rng, 300)
		p := mustNew(t, pattern, search.Pattern4NA)
		if p.Len() != m {
			t.Fatalf("Len = %d, want %d", p.Len(), m)
		}

		got, ok := p.FindBest([]byte(text))
		want := search.Match{Position: len(prefix), Length: m, Score: 0}
		if !ok || got != want {
			t.Errorf("m=%d: FindBest = %v, %v; want %v", m, got, ok, want)
		}

		// Three substitutions cost at most three edits.
		mutated := []byte(pattern)
		for _, i := range []int{m / 4, m / 2, 3 * m / 4} {
			mutated[i] = map[byte]byte{'A': 'C', 'C': 'G', 'G': 'T', 'T': 'A'}[mutated[i]]
		}
		got, ok = p.FindFirst(3, []byte(prefix+string(mutated)))
		if !ok || got.Score > 3 {
			t.Errorf("m=%d: FindFirst with substitutions = %v, %v", m, got, ok)
		}
	}
}

func TestAgreesWithBoundedMyers(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for iter := 0; iter < 200; iter++ {
		pattern := randomACGT(rng, 1+rng.Intn(myers.MaxLen))
		text := []byte(randomACGT(rng, 1+rng.Intn(200)))

		bounded, err := myers.New([]byte(pattern), search.Pattern4NA)
		if err != nil {
			t.Fatal(err)
		}
		p := mustNew(t, pattern, search.Pattern4NA)

		want, _ := bounded.FindBest(text)
		got, _ := p.FindBest(text)
		if got != want {
			t.Fatalf("FindBest(%q in %q): unlimited %v, bounded %v", pattern, text, got, want)
		}

		threshold := rng.Intn(len(pattern) + 1)
		want, wok := bounded.FindFirst(threshold, text)
		got, gok := p.FindFirst(threshold, text)
		if gok != wok || got.Score != want.Score {
			t.Fatalf("FindFirst(%q in %q, %d): unlimited %v %v, bounded %v %v",
				pattern, text, threshold, got, gok, want, wok)
		}
	}
}

func TestConcurrentSearch(t *testing.T) {
	p := mustNew(t, strings.Repeat("GATTACA", 20), search.Pattern4NA)
	text := []byte(strings.Repeat("C", 50) + strings.Repeat("GATTACA", 20) + strings.Repeat("C", 50))
	done := make(chan search.Match)
	for range 8 {
		go func() {
			m, _ := p.FindBest(text)
			done <- m
		}()
	}
	for range 8 {
		if m := <-done; m.Position != 50 || m.Score != 0 {
			t.Errorf("concurrent FindBest = %v", m)
		}
	}
}

func BenchmarkFindAll(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	p := mustNew(b, randomACGT(rng, 150), search.Pattern4NA)
	text := []byte(randomACGT(rng, 64*1024))
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FindAll(10, text, func(search.Match) search.Action { return search.Continue })
	}
}
