// Package myers implements Myers' bit-parallel edit-distance search for
// patterns of up to 64 symbols.
//
// One uint64 holds a whole DP column as vertical deltas (Pv/Mv). Each text
// byte advances every cell at once; the score of the bottom cell is tracked
// from the horizontal delta at bit m-1. A second table built from the
// reversed pattern runs the same recurrence backward to locate match starts.
package myers

import (
	"github.com/coregx/agrep/search"
)

// MaxLen is the longest pattern the engine accepts.
const MaxLen = 64

// Pattern is a compiled bit-vector pattern. It holds no per-search state and
// is safe for concurrent use.
type Pattern struct {
	m     int
	flags search.Flags
	peq   [256]uint64 // forward: bit i set if pattern[i] matches the byte
	peqR  [256]uint64 // reversed pattern
}

// Footprint returns the bytes of table memory a pattern needs. It does not
// depend on the pattern length.
func Footprint(int) int {
	return 2 * 256 * 8
}

// New compiles pattern under flags. It fails with search.ErrPatternTooLong
// if pattern is longer than MaxLen.
func New(pattern []byte, flags search.Flags) (*Pattern, error) {
	if err := search.CheckLength("myers", len(pattern), MaxLen); err != nil {
		return nil, err
	}
	norm, err := search.NormalizePattern(pattern, flags)
	if err != nil {
		return nil, err
	}
	p := &Pattern{m: len(norm), flags: flags}
	cmp := flags.Comparer()
	for i, c := range norm {
		set := cmp.Set(c)
		set.OrInto(&p.peq, 1<<i)
		set.OrInto(&p.peqR, 1<<(len(norm)-1-i))
	}
	return p, nil
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return p.m
}

// state is one column of the recurrence.
type state struct {
	pv, mv uint64
	score  int
}

func (p *Pattern) start() state {
	return state{pv: ^uint64(0), score: p.m}
}

// step advances s by one text symbol whose match mask is eq.
//
//go:inline
func (s *state) step(eq uint64, last uint64) {
	xv := eq | s.mv
	xh := (((eq & s.pv) + s.pv) ^ s.pv) | eq
	ph := s.mv | ^(xh | s.pv)
	mh := s.pv & xh
	if ph&last != 0 {
		s.score++
	} else if mh&last != 0 {
		s.score--
	}
	ph <<= 1
	mh <<= 1
	s.pv = mh | ^(xv | ph)
	s.mv = ph & xv
}

func (p *Pattern) lastBit() uint64 {
	return 1 << (p.m - 1)
}
