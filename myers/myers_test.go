package myers

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

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
		{"two_insertions", "xxxMAdTCaHvv", 2, search.Match{Position: 3, Length: 5, Score: 2}, true},
		{"loose", "xATxx", 5, search.Match{Position: 1, Length: 2, Score: 3}, true},
		{"first_not_best", "MTCH__MITCH_MTACH_MATCH_MATCH", 1, search.Match{Position: 0, Length: 4, Score: 1}, true},
		{"match_anything", "xyzvuwpiuuuu", 5, search.Match{Position: 0, Length: 1, Score: 5}, true},
		{"no_match", "xyzvuwpiu", 4, search.Match{}, false},
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
	if !ok || got.Score != 5 || got.Length != 0 {
		t.Errorf("FindBest without any matching byte = %v, %v", got, ok)
	}
}

func TestFindAll(t *testing.T) {
	tests := []struct {
		text      string
		threshold int
		want      []search.Match
	}{
		{"xxMATCHvv", 0, []search.Match{{Position: 2, Length: 5, Score: 0}}},
		{"xxxMACHvv", 1, []search.Match{{Position: 3, Length: 4, Score: 1}}},
		{"MATCH_MATCH", 0, []search.Match{
			{Position: 0, Length: 5, Score: 0},
			{Position: 6, Length: 5, Score: 0},
		}},
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

func TestPatternTooLong(t *testing.T) {
	if _, err := New([]byte(strings.Repeat("A", MaxLen)), search.ModeASCII); err != nil {
		t.Errorf("64-symbol pattern should compile: %v", err)
	}
	_, err := New([]byte(strings.Repeat("A", MaxLen+1)), search.ModeASCII)
	if !errors.Is(err, search.ErrPatternTooLong) {
		t.Errorf("expected ErrPatternTooLong, got %v", err)
	}
}

func TestEmptyPattern(t *testing.T) {
	p := mustNew(t, "", search.ModeASCII)
	text := []byte("ACGT")
	if m, ok := p.FindFirst(0, text); ok {
		t.Errorf("FindFirst = %v", m)
	}
	if m, ok := p.FindBest(text); ok {
		t.Errorf("FindBest = %v", m)
	}
	if got := p.StartingPosition(text, 2, 0); got != 3 {
		t.Errorf("StartingPosition = %d, want 3", got)
	}
}

func TestFullWordPattern(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	pattern := randomACGT(rng, MaxLen)
	text := randomACGT(rng, 100) + pattern + randomACGT(rng, 100)
	p := mustNew(t, pattern, search.ModeASCII)
	m, ok := p.FindBest([]byte(text))
	if !ok || m.Score != 0 || m.Position != 100 || m.Length != MaxLen {
		t.Errorf("FindBest = %v, %v", m, ok)
	}
}

func TestIUPAC(t *testing.T) {
	p := mustNew(t, "GAWTC", search.Pattern4NA)
	m, ok := p.FindFirst(0, []byte("CCGACTCCC"))
	if ok {
		t.Errorf("W matched C: %v", m)
	}
	m, ok = p.FindFirst(0, []byte("ccGaTtCcc"))
	if !ok || m != (search.Match{Position: 2, Length: 5, Score: 0}) {
		t.Errorf("FindFirst = %v, %v", m, ok)
	}
	m, ok = p.FindFirst(0, []byte{1, 2, 0, 3, 3, 1})
	if ok {
		t.Errorf("2NA text matched without TextExpanded2NA: %v", m)
	}
	p = mustNew(t, "GAWTC", search.Pattern4NA|search.TextExpanded2NA)
	m, ok = p.FindFirst(0, []byte{1, 2, 0, 0, 3, 1})
	if !ok || m.Position != 1 || m.Length != 5 {
		t.Errorf("2NA FindFirst = %v, %v", m, ok)
	}
}

func randomACGT(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = "ACGT"[rng.Intn(4)]
	}
	return string(b)
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j-1]+cost, prev[j]+1, cur[j-1]+1)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func TestFindBestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for iter := 0; iter < 300; iter++ {
		pattern := randomACGT(rng, 1+rng.Intn(10))
		text := randomACGT(rng, 1+rng.Intn(25))

		want := len(pattern)
		for i := 0; i <= len(text); i++ {
			for j := i; j <= len(text); j++ {
				want = min(want, editDistance(pattern, text[i:j]))
			}
		}

		p := mustNew(t, pattern, search.ModeASCII)
		m, ok := p.FindBest([]byte(text))
		if !ok || m.Score != want {
			t.Fatalf("FindBest(%q in %q) = %v, want score %d", pattern, text, m, want)
		}
		if m.Length > 0 && editDistance(pattern, text[m.Position:m.End()]) != want {
			t.Fatalf("FindBest(%q in %q) = %v: span scores %d", pattern, text, m,
				editDistance(pattern, text[m.Position:m.End()]))
		}
	}
}

func BenchmarkFindAll(b *testing.B) {
	rng := rand.New(rand.NewSource(3))
	p := mustNew(b, "GATTACAGATTACA", search.ModeASCII)
	text := []byte(randomACGT(rng, 64*1024))
	b.SetBytes(int64(len(text)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.FindAll(3, text, func(search.Match) search.Action { return search.Continue })
	}
}
