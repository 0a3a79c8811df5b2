package search

import (
	"errors"
	"fmt"
	"testing"
)

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "0"},
		{ModeASCII, "ModeASCII"},
		{Pattern4NA | AlgMyers, "Pattern4NA|AlgMyers"},
		{ExtendSame | ExtendBetter | AlgDP, "ExtendSame|ExtendBetter|AlgDP"},
		{AlgMyersUnlimited << 1, "0x2000"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%d).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}

func TestErrorIs(t *testing.T) {
	err := CheckLength("myers", 65, 64)
	if err == nil {
		t.Fatal("expected error for 65 > 64")
	}
	if !errors.Is(err, ErrPatternTooLong) {
		t.Errorf("errors.Is(%v, ErrPatternTooLong) = false", err)
	}
	if errors.Is(err, ErrInvalidSymbol) {
		t.Errorf("errors.Is(%v, ErrInvalidSymbol) = true", err)
	}

	wrapped := fmt.Errorf("compile: %w", Errorf(InvalidSymbol, "bad %q", 'X'))
	if !errors.Is(wrapped, ErrInvalidSymbol) {
		t.Errorf("wrapped error lost its kind: %v", wrapped)
	}

	var se *Error
	if !errors.As(wrapped, &se) || se.Kind != InvalidSymbol {
		t.Errorf("errors.As failed for %v", wrapped)
	}

	if CheckLength("myers", 64, 64) != nil {
		t.Error("64 should fit a 64-bit word")
	}
}

func TestErrorKindString(t *testing.T) {
	if got := MemoryExhausted.String(); got != "MemoryExhausted" {
		t.Errorf("got %q", got)
	}
	if got := ErrorKind(99).String(); got != "UnknownErrorKind(99)" {
		t.Errorf("got %q", got)
	}
}

type emitted struct{ pos, score int }

func runExtender(e Extender, scores []int, threshold int) {
	for i, s := range scores {
		if s <= threshold {
			e.Hit(i, s)
		} else {
			e.Miss()
		}
	}
	e.Flush()
}

func TestExtender(t *testing.T) {
	scores := []int{3, 1, 1, 0, 0, 1, 2, 3, 1, 1}

	tests := []struct {
		name  string
		flags Flags
		start bool
		want  []emitted
	}{
		{
			name: "no_policy",
			want: []emitted{{1, 1}, {2, 1}, {3, 0}, {4, 0}, {5, 1}, {8, 1}, {9, 1}},
		},
		{
			name:  "extend_same",
			flags: ExtendSame,
			// 5 is worse: flush (4,0) and drop 5; 8,9 reopen
			want: []emitted{{4, 0}, {9, 1}},
		},
		{
			name:  "extend_better",
			flags: ExtendBetter,
			want:  []emitted{{3, 0}, {8, 1}},
		},
		{
			name:  "extend_better_start",
			flags: ExtendBetter,
			start: true,
			// an equal score flushes and is dropped
			want: []emitted{{1, 1}, {3, 0}, {5, 1}, {8, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []emitted
			emit := func(pos, score int) Action {
				got = append(got, emitted{pos, score})
				return Continue
			}
			e := NewExtender(tt.flags, emit)
			if tt.start {
				e = NewStartExtender(tt.flags, emit)
			}
			runExtender(e, scores, 1)
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("emitted %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtenderStop(t *testing.T) {
	calls := 0
	e := NewExtender(0, func(pos, score int) Action {
		calls++
		return Stop
	})
	if e.Hit(0, 0) != Stop {
		t.Error("Hit should propagate Stop")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if e.Pending() {
		t.Error("no policy never holds a match")
	}
}

func TestNormalizePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		flags   Flags
		want    string
		err     error
	}{
		{"ascii", "MaTcH", ModeASCII, "MaTcH", nil},
		{"ascii_ignore_case", "MaTcH", ModeASCII | IgnoreCase, "match", nil},
		{"iupac", "ACGTRYN", Pattern4NA, "ACGTRYN", nil},
		{"iupac_invalid", "ACXT", Pattern4NA, "", ErrInvalidSymbol},
		{"iupac_anything_else", "ACXT", Pattern4NA | AnythingElseIsN, "ACNT", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePattern([]byte(tt.pattern), tt.flags)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("err = %v, want %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	if got := string(Reverse([]byte("MATCH"))); got != "HCTAM" {
		t.Errorf("Reverse = %q", got)
	}
	if got := Reverse(nil); len(got) != 0 {
		t.Errorf("Reverse(nil) = %v", got)
	}
}

func TestMatch(t *testing.T) {
	m := Match{Position: 2, Length: 5, Score: 0}
	if m.End() != 7 {
		t.Errorf("End = %d", m.End())
	}
	if m.String() != "[2,7) score=0" {
		t.Errorf("String = %q", m.String())
	}
}
