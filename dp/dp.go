// Package dp implements approximate matching with the classic edit-distance
// column recurrence:
//
//	C[0] = startcost
//	C[i] = min(Cprev[i-1] + cost(p[i-1], t), C[i-1] + 1, Cprev[i] + 1)
//
// One column of length m+1 is computed per text byte, keeping only the
// previous and current columns. A forward scan over the pattern finds match
// ends; a backward scan over the reversed pattern, seeded with the cost of the
// text already skipped, finds match starts.
//
// The other matchers find ends faster but delegate start resolution to this
// package through search.StartFinder.
package dp

import (
	"sync"

	"github.com/coregx/agrep/alphabet"
	"github.com/coregx/agrep/search"
)

// Pattern is a compiled DP pattern. It is immutable after New and safe for
// concurrent searches.
type Pattern struct {
	pattern  []byte
	reversed []byte
	flags    search.Flags

	// eq[i] is the set of text bytes that match pattern[i]; req mirrors it
	// for the reversed pattern.
	eq  []alphabet.ByteSet
	req []alphabet.ByteSet

	cols sync.Pool
}

// columns is the per-call scratch pair swapped after every text byte.
type columns struct {
	prev, next []int
}

// Footprint returns the bytes of table memory a pattern of length m needs:
// the forward and reversed match sets plus both pattern copies.
func Footprint(m int) int {
	return 2*m*len(alphabet.ByteSet{})*8 + 2*m
}

// New compiles pattern under flags.
func New(pattern []byte, flags search.Flags) (*Pattern, error) {
	norm, err := search.NormalizePattern(pattern, flags)
	if err != nil {
		return nil, err
	}
	cmp := flags.Comparer()
	p := &Pattern{
		pattern:  norm,
		reversed: search.Reverse(norm),
		flags:    flags,
		eq:       make([]alphabet.ByteSet, len(norm)),
		req:      make([]alphabet.ByteSet, len(norm)),
	}
	sets := cmp.Table(norm)
	for i, c := range norm {
		p.eq[i] = sets[c]
		p.req[len(norm)-1-i] = sets[c]
	}
	m := len(norm)
	p.cols.New = func() any {
		return &columns{prev: make([]int, m+1), next: make([]int, m+1)}
	}
	return p, nil
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return len(p.pattern)
}

// Bytes returns the normalized pattern. The slice must not be modified.
func (p *Pattern) Bytes() []byte {
	return p.pattern
}

// Flags returns the compile flags.
func (p *Pattern) Flags() search.Flags {
	return p.flags
}

func (p *Pattern) getColumns() *columns {
	return p.cols.Get().(*columns)
}

func (p *Pattern) putColumns(c *columns) {
	p.cols.Put(c)
}

// initColumn sets col to the distance of every pattern prefix from the empty
// text.
func initColumn(col []int) {
	for i := range col {
		col[i] = i
	}
}

// nextColumn computes next from prev for text byte t.
func nextColumn(eq []alphabet.ByteSet, startcost int, t byte, prev, next []int) {
	next[0] = startcost
	for i := 1; i < len(next); i++ {
		cost := 1
		if eq[i-1].Contains(t) {
			cost = 0
		}
		v := prev[i-1] + cost
		if w := next[i-1] + 1; w < v {
			v = w
		}
		if w := prev[i] + 1; w < v {
			v = w
		}
		next[i] = v
	}
}
