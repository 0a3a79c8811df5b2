package fgrep

import (
	"math"

	"github.com/coregx/agrep/search"
)

// skip is the Boyer-Moore style engine. It aligns a window end e with the
// text, walks the trie of reversed patterns backward from e reporting every
// pattern that ends there, then moves e forward by the smallest distance at
// which another pattern could still end.
//
// For a walk that matched the string u (ending at e), a pattern p can end at
// e+d only if either u occurs inside p ending d symbols before p's end
// (minskip matched), or a prefix of p is a suffix of u (minskip unmatched,
// which is |p| when no prefix overlaps). A walk that fails on its first
// symbol c uses the bad-character distance of c instead.
type skip struct {
	t       *trie
	classOf [256]byte
	lens    []int
	minLen  int
	shift   []int // per node: min(matched, unmatched)
	bad     []int // per class: distance after failing at the root
}

func newSkip(norm *normalizer, patterns [][]byte) *skip {
	classOf, stride := classify(norm, patterns)
	s := &skip{
		t:       newTrie(stride),
		classOf: classOf,
		lens:    make([]int, len(patterns)),
		minLen:  math.MaxInt,
	}

	classes := make([][]byte, len(patterns))
	for id, p := range patterns {
		cp := make([]byte, len(p))
		rev := make([]byte, len(p))
		for i, b := range p {
			cp[i] = classOf[b]
			rev[len(p)-1-i] = cp[i]
		}
		classes[id] = cp
		s.t.addOutput(s.t.insert(rev), id)
		s.lens[id] = len(p)
		s.minLen = min(s.minLen, len(p))
	}

	n := s.t.len()
	matched := make([]int, n)
	prefix := make([]int, n)
	for i := range matched {
		matched[i] = math.MaxInt
		prefix[i] = math.MaxInt
	}
	for _, cp := range classes {
		m := len(cp)
		// Every occurrence of a substring ending before the last symbol.
		for q := 0; q < m-1; q++ {
			node := uint32(0)
			for k := q; k >= 0; k-- {
				if node = s.t.child(node, cp[k]); node == none {
					break
				}
				matched[node] = min(matched[node], m-1-q)
			}
		}
		// Every proper prefix that is a path of the reversed trie.
		for l := 1; l < m; l++ {
			if node, ok := s.t.lookup(reversed(cp[:l])); ok {
				prefix[node] = min(prefix[node], m-l)
			}
		}
	}

	// Parents are allocated before their children, so one ascending pass
	// propagates the unmatched distance down the trie.
	unmatched := make([]int, n)
	unmatched[0] = s.minLen
	for node := 0; node < n; node++ {
		for c := 0; c < stride; c++ {
			if child := s.t.child(uint32(node), byte(c)); child != none {
				unmatched[child] = min(unmatched[node], prefix[child])
			}
		}
	}
	s.shift = make([]int, n)
	for node := range s.shift {
		s.shift[node] = min(matched[node], unmatched[node])
	}

	s.bad = make([]int, stride)
	dist := make([]int, stride)
	for i := range s.bad {
		s.bad[i] = math.MaxInt
	}
	for _, cp := range classes {
		m := len(cp)
		for c := range dist {
			dist[c] = m
		}
		for i := 0; i < m-1; i++ {
			dist[cp[i]] = m - 1 - i
		}
		for c := range s.bad {
			s.bad[c] = min(s.bad[c], dist[c])
		}
	}
	return s
}

func reversed(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}

func (s *skip) byStart() bool {
	return false
}

func (s *skip) findAll(buf []byte, cb Callback) search.Action {
	var window []Match
	for e := s.minLen - 1; e < len(buf); {
		window = window[:0]
		node := uint32(0)
		for i := e; i >= 0; i-- {
			nxt := s.t.child(node, s.classOf[buf[i]])
			if nxt == none {
				break
			}
			node = nxt
			out := s.t.out[node]
			for k := len(out) - 1; k >= 0; k-- {
				id := out[k]
				window = append(window, Match{Position: i, Length: s.lens[id], PatternID: int(id)})
			}
		}
		// The walk finds short patterns first; report longest first, equal
		// patterns by id.
		for k := len(window) - 1; k >= 0; k-- {
			if cb(window[k]) == search.Stop {
				return search.Stop
			}
		}
		if node == 0 {
			e += s.bad[s.classOf[buf[e]]]
		} else {
			e += s.shift[node]
		}
	}
	return search.Continue
}
