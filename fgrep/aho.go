package fgrep

import "github.com/coregx/agrep/search"

// ahoCorasick is the failure-linked automaton. Missing trie edges are filled
// in breadth-first from the failure targets, so the scan takes exactly one
// transition per text byte. Each node's output list holds its own patterns
// followed by those of its failure chain.
type ahoCorasick struct {
	t       *trie
	classOf [256]byte
	lens    []int
}

func newAhoCorasick(norm *normalizer, patterns [][]byte) *ahoCorasick {
	classOf, stride := classify(norm, patterns)
	a := &ahoCorasick{t: newTrie(stride), classOf: classOf, lens: make([]int, len(patterns))}
	for id, p := range patterns {
		cp := make([]byte, len(p))
		for i, b := range p {
			cp[i] = classOf[b]
		}
		a.t.addOutput(a.t.insert(cp), id)
		a.lens[id] = len(p)
	}
	a.link()
	return a
}

// link computes failure links breadth-first and completes the transition
// table. Root children fail to the root; a missing root edge loops back to
// the root, which is already the zero value.
func (a *ahoCorasick) link() {
	t := a.t
	fail := make([]uint32, t.len())
	queue := make([]uint32, 0, t.len())
	for c := 0; c < t.stride; c++ {
		if child := t.child(0, byte(c)); child != none {
			queue = append(queue, child)
		}
	}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		f := fail[node]
		if len(t.out[f]) > 0 {
			t.out[node] = append(t.out[node], t.out[f]...)
		}
		for c := 0; c < t.stride; c++ {
			class := byte(c)
			child := t.child(node, class)
			if child == none {
				t.setChild(node, class, t.child(f, class))
				continue
			}
			fail[child] = t.child(f, class)
			queue = append(queue, child)
		}
	}
}

func (a *ahoCorasick) byStart() bool {
	return false
}

func (a *ahoCorasick) findAll(buf []byte, cb Callback) search.Action {
	node := uint32(0)
	for j, b := range buf {
		node = a.t.child(node, a.classOf[b])
		for _, id := range a.t.out[node] {
			n := a.lens[id]
			if cb(Match{Position: j - n + 1, Length: n, PatternID: int(id)}) == search.Stop {
				return search.Stop
			}
		}
	}
	return search.Continue
}
