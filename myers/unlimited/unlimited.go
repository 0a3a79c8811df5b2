// Package unlimited implements Myers' bit-parallel edit-distance search for
// patterns of any length.
//
// The recurrence is the one in package myers, carried out on chunk.Vector
// registers of ceil(m/64) words instead of a single uint64. Symbols always
// compare under IUPAC rules: a pattern symbol matches every text byte, in
// either case, whose base set intersects its own.
//
// Only match ends come out of the forward recurrence; FindAll resolves the
// starts with a DP start finder compiled from the same pattern.
package unlimited

import (
	"sync"

	"github.com/coregx/agrep/alphabet"
	"github.com/coregx/agrep/dp"
	"github.com/coregx/agrep/internal/chunk"
	"github.com/coregx/agrep/search"
)

// Pattern is a compiled pattern. It is safe for concurrent use; per-search
// registers come from an internal pool.
type Pattern struct {
	m      int
	words  int
	flags  search.Flags
	peq    []uint64 // 256 rows of words, forward pattern
	peqR   []uint64 // reversed pattern
	starts search.StartFinder
	regs   sync.Pool
}

// Footprint returns the bytes of table memory a pattern of length m needs.
func Footprint(m int) int {
	return 2 * 256 * chunk.Words(m) * 8
}

// New compiles pattern. Symbols outside the IUPAC alphabet fail with
// search.ErrInvalidSymbol unless flags has AnythingElseIsN.
func New(pattern []byte, flags search.Flags) (*Pattern, error) {
	iupac := flags&^(search.ModeASCII|search.IgnoreCase) | search.Pattern4NA
	norm, err := search.NormalizePattern(pattern, iupac)
	if err != nil {
		return nil, err
	}
	starts, err := dp.New(pattern, iupac)
	if err != nil {
		return nil, err
	}

	m := len(norm)
	words := chunk.Words(m)
	p := &Pattern{
		m:      m,
		words:  words,
		flags:  flags,
		peq:    make([]uint64, 256*words),
		peqR:   make([]uint64, 256*words),
		starts: starts,
	}
	p.regs.New = func() any {
		return newRegisters(words)
	}

	sets := iupac.Comparer().Table(norm)
	for i, c := range norm {
		p.mark(sets[c], i, m-1-i)
	}
	return p, nil
}

// mark records a pattern symbol matching set at forward bit i and reverse
// bit ri.
func (p *Pattern) mark(set alphabet.ByteSet, i, ri int) {
	set.Each(func(b byte) {
		p.row(p.peq, b).SetBit(i)
		p.row(p.peqR, b).SetBit(ri)
	})
}

func (p *Pattern) row(table []uint64, c byte) chunk.Vector {
	off := int(c) * p.words
	return chunk.Vector(table[off : off+p.words])
}

// Len returns the pattern length.
func (p *Pattern) Len() int {
	return p.m
}

// registers is the per-search register file.
type registers struct {
	pv, mv, xv, xh, ph, mh chunk.Vector
	score                  int
}

func newRegisters(words int) *registers {
	backing := make([]uint64, 6*words)
	reg := func(i int) chunk.Vector {
		return chunk.Vector(backing[i*words : (i+1)*words : (i+1)*words])
	}
	return &registers{
		pv: reg(0), mv: reg(1), xv: reg(2),
		xh: reg(3), ph: reg(4), mh: reg(5),
	}
}

func (p *Pattern) getRegisters() *registers {
	r := p.regs.Get().(*registers)
	r.reset(p.m)
	return r
}

func (p *Pattern) putRegisters(r *registers) {
	p.regs.Put(r)
}

func (r *registers) reset(m int) {
	r.pv.Fill(^uint64(0))
	r.mv.Fill(0)
	r.score = m
}

// step advances the recurrence by one text symbol whose match vector is eq.
// top is the bit of the last pattern row.
func (r *registers) step(eq chunk.Vector, top int) {
	chunk.Or(r.xv, eq, r.mv)

	chunk.And(r.xh, eq, r.pv)
	chunk.Add(r.xh, r.xh, r.pv)
	chunk.Xor(r.xh, r.xh, r.pv)
	chunk.Or(r.xh, r.xh, eq)

	chunk.Or(r.ph, r.xh, r.pv)
	chunk.Not(r.ph, r.ph)
	chunk.Or(r.ph, r.ph, r.mv)

	chunk.And(r.mh, r.pv, r.xh)

	if r.ph.Bit(top) {
		r.score++
	} else if r.mh.Bit(top) {
		r.score--
	}

	chunk.ShiftLeftOne(r.ph, r.ph)
	chunk.ShiftLeftOne(r.mh, r.mh)

	chunk.Or(r.pv, r.xv, r.ph)
	chunk.Not(r.pv, r.pv)
	chunk.Or(r.pv, r.pv, r.mh)

	chunk.And(r.mv, r.ph, r.xv)
}
