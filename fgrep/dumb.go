package fgrep

import (
	"github.com/coregx/agrep/internal/sparse"
	"github.com/coregx/agrep/search"
	"github.com/coregx/agrep/simd"
)

// maxPrefilterBytes is the most distinct raw first bytes Memchr3 can scan.
const maxPrefilterBytes = 3

// dumb walks the pattern trie from every text offset.
type dumb struct {
	t       *trie
	classOf [256]byte
	lens    []int

	// first lists the raw bytes that can start a match when there are few
	// enough for a Memchr scan; nil disables the prefilter.
	first []byte
	// single is the only pattern when normalization is the identity.
	single []byte
}

func newDumb(norm *normalizer, identity bool, patterns [][]byte) *dumb {
	classOf, stride := classify(norm, patterns)
	d := &dumb{t: newTrie(stride), classOf: classOf, lens: make([]int, len(patterns))}
	for id, p := range patterns {
		d.t.addOutput(d.t.insert(d.classes(p)), id)
		d.lens[id] = len(p)
	}

	if identity && len(patterns) == 1 {
		d.single = patterns[0]
		return d
	}

	starts := sparse.NewSparseSet(256)
	for _, p := range patterns {
		starts.Insert(uint32(p[0]))
	}
	raw := sparse.NewSparseSet(256)
	for b := 0; b < 256; b++ {
		if starts.Contains(uint32(norm[b])) {
			raw.Insert(uint32(b))
		}
	}
	if raw.Len() <= maxPrefilterBytes {
		for _, b := range raw.Values() {
			d.first = append(d.first, byte(b))
		}
	}
	return d
}

// classes maps a normalized pattern to trie classes. Normalized bytes are
// fixed points of the normalizer, so the raw lookup applies.
func (d *dumb) classes(p []byte) []byte {
	out := make([]byte, len(p))
	for i, b := range p {
		out[i] = d.classOf[b]
	}
	return out
}

func (d *dumb) byStart() bool {
	return true
}

// next returns the first offset at or after i where a match can start, or
// -1.
func (d *dumb) next(buf []byte, i int) int {
	if i >= len(buf) {
		return -1
	}
	var j int
	switch len(d.first) {
	case 1:
		j = simd.Memchr(buf[i:], d.first[0])
	case 2:
		j = simd.Memchr2(buf[i:], d.first[0], d.first[1])
	case 3:
		j = simd.Memchr3(buf[i:], d.first[0], d.first[1], d.first[2])
	default:
		return i
	}
	if j < 0 {
		return -1
	}
	return i + j
}

func (d *dumb) findAll(buf []byte, cb Callback) search.Action {
	if d.single != nil {
		return d.findSingle(buf, cb)
	}
	for i := d.next(buf, 0); i >= 0; i = d.next(buf, i+1) {
		node := uint32(0)
		for j := i; j < len(buf); j++ {
			node = d.t.child(node, d.classOf[buf[j]])
			if node == none {
				break
			}
			for _, id := range d.t.out[node] {
				if cb(Match{Position: i, Length: d.lens[id], PatternID: int(id)}) == search.Stop {
					return search.Stop
				}
			}
		}
	}
	return search.Continue
}

// findSingle reports every, possibly overlapping, occurrence of the only
// pattern.
func (d *dumb) findSingle(buf []byte, cb Callback) search.Action {
	for i := 0; i+len(d.single) <= len(buf); {
		j := simd.Memmem(buf[i:], d.single)
		if j < 0 {
			break
		}
		if cb(Match{Position: i + j, Length: len(d.single)}) == search.Stop {
			return search.Stop
		}
		i += j + 1
	}
	return search.Continue
}
