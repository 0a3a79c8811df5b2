// Package wumanber implements the Wu-Manber bit-parallel approximate
// matcher for patterns of up to 63 symbols.
//
// One shift register per error level k holds, at bit m-1-i, whether pattern
// prefix [0..i] ends at the current text position with at most k edits.
// patmask keeps the bits at and above m set before each shift, which feeds
// the empty prefix into bit m-1 on every step. A match of score k ends at
// the current position when bit 0 of register k is set.
package wumanber

import (
	"sync"

	"github.com/coregx/agrep/search"
)

// MaxLen is the longest pattern the engine accepts. The top bit of the word
// is reserved for the patmask sentinel.
const MaxLen = 63

// Pattern is a compiled Wu-Manber pattern. It is safe for concurrent use.
type Pattern struct {
	m       int
	flags   search.Flags
	patmask uint64
	fwd     [256]uint64 // bit m-1-i: pattern[i] matches the byte
	rev     [256]uint64 // same for the reversed pattern
	regs    sync.Pool
}

// Footprint returns the bytes of table memory a pattern needs.
func Footprint(int) int {
	return 2 * 256 * 8
}

// New compiles pattern under flags. It fails with search.ErrPatternTooLong
// if pattern is longer than MaxLen.
func New(pattern []byte, flags search.Flags) (*Pattern, error) {
	if err := search.CheckLength("wumanber", len(pattern), MaxLen); err != nil {
		return nil, err
	}
	norm, err := search.NormalizePattern(pattern, flags)
	if err != nil {
		return nil, err
	}
	m := len(norm)
	p := &Pattern{
		m:       m,
		flags:   flags,
		patmask: ^(uint64(1)<<m - 1),
	}
	p.regs.New = func() any {
		return &registers{}
	}
	cmp := flags.Comparer()
	for i, c := range norm {
		set := cmp.Set(c)
		set.OrInto(&p.fwd, 1<<(m-1-i))
		set.OrInto(&p.rev, 1<<i)
	}
	return p, nil
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return p.m
}

// registers holds the current and next value of every error level.
type registers struct {
	cur, next []uint64
}

// getRegisters returns registers for errors 0..levels in their state before
// any text: level k holds the k-symbol prefixes, which cost k deletions.
func (p *Pattern) getRegisters(levels int) *registers {
	r := p.regs.Get().(*registers)
	n := levels + 1
	if cap(r.cur) < n {
		r.cur = make([]uint64, n)
		r.next = make([]uint64, n)
	}
	r.cur, r.next = r.cur[:n], r.next[:n]
	for k := range r.cur {
		d := min(k, p.m)
		r.cur[k] = (uint64(1)<<d - 1) << (p.m - d)
	}
	return r
}

func (p *Pattern) putRegisters(r *registers) {
	p.regs.Put(r)
}

// levels returns the highest error level worth tracking for threshold. Every
// position scores at most m, so levels above m are redundant.
func (p *Pattern) levels(threshold int) int {
	return min(threshold, p.m)
}

// advance feeds one text symbol whose match mask is bits and returns the
// score at the new position, or -1 if it exceeds every tracked level.
func (p *Pattern) advance(r *registers, bits uint64) int {
	pm := p.patmask
	cur, next := r.cur, r.next
	next[0] = ((cur[0] | pm) >> 1) & bits
	for k := 1; k < len(cur); k++ {
		next[k] = (((cur[k] | pm) >> 1) & bits) |
			((cur[k-1] | pm) >> 1) |
			((next[k-1] | pm) >> 1) |
			cur[k-1]
	}
	r.cur, r.next = next, cur
	for k, v := range r.cur {
		if v&1 != 0 {
			return k
		}
	}
	return -1
}
