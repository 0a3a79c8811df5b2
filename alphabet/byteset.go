package alphabet

import "math/bits"

// ByteSet is a set of byte values.
type ByteSet [4]uint64

// Add inserts b.
func (s *ByteSet) Add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

// Contains reports whether b is in the set.
func (s *ByteSet) Contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// Len returns the number of members.
func (s *ByteSet) Len() int {
	return bits.OnesCount64(s[0]) + bits.OnesCount64(s[1]) +
		bits.OnesCount64(s[2]) + bits.OnesCount64(s[3])
}

// Each calls fn for every member in ascending order.
func (s *ByteSet) Each(fn func(b byte)) {
	for w, word := range s {
		for word != 0 {
			i := bits.TrailingZeros64(word)
			fn(byte(w<<6 | i))
			word &= word - 1
		}
	}
}

// OrInto sets bit in table[b] for every member b. This is how a pattern
// position contributes to a per-symbol bit table.
func (s *ByteSet) OrInto(table *[256]uint64, bit uint64) {
	s.Each(func(b byte) { table[b] |= bit })
}
