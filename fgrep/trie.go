package fgrep

import "github.com/coregx/agrep/internal/conv"

// none marks an absent transition. Node 0 is the root, which is never a
// child, so zero doubles as "no edge".
const none = 0

// trie is an arena of nodes. Transitions are stored densely per node over
// the byte class alphabet: next[node*stride+class].
type trie struct {
	stride int
	next   []uint32
	depth  []int32
	out    [][]uint32 // pattern ids ending at the node
}

func newTrie(stride int) *trie {
	t := &trie{stride: stride}
	t.newNode(0)
	return t
}

func (t *trie) newNode(depth int) uint32 {
	id := conv.IntToUint32(len(t.depth))
	t.next = append(t.next, make([]uint32, t.stride)...)
	t.depth = append(t.depth, int32(depth)) //nolint:gosec // bounded by pattern length
	t.out = append(t.out, nil)
	return id
}

func (t *trie) len() int {
	return len(t.depth)
}

func (t *trie) child(node uint32, class byte) uint32 {
	return t.next[int(node)*t.stride+int(class)]
}

func (t *trie) setChild(node uint32, class byte, to uint32) {
	t.next[int(node)*t.stride+int(class)] = to
}

// insert walks classes from the root, creating nodes as needed, and returns
// the final node.
func (t *trie) insert(classes []byte) uint32 {
	node := uint32(0)
	for i, c := range classes {
		nxt := t.child(node, c)
		if nxt == none {
			nxt = t.newNode(i + 1)
			t.setChild(node, c, nxt)
		}
		node = nxt
	}
	return node
}

// lookup returns the node reached by classes, or false if the path leaves
// the trie.
func (t *trie) lookup(classes []byte) (uint32, bool) {
	node := uint32(0)
	for _, c := range classes {
		node = t.child(node, c)
		if node == none {
			return 0, false
		}
	}
	return node, true
}

// addOutput records that pattern id ends at node.
func (t *trie) addOutput(node uint32, id int) {
	t.out[node] = append(t.out[node], conv.IntToUint32(id))
}
