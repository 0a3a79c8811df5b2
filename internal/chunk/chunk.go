// Package chunk implements fixed-width bit vectors wider than one machine
// word.
//
// A Vector is a []uint64 stored most-significant word first: bit i lives in
// word len-1-i/64 at offset i%64. Arithmetic carries run from the last word
// toward the first, so a Vector behaves like one big unsigned integer of
// 64*len bits.
//
// All binary operations write into dst, which may alias either operand.
// Operands must have the same length; mismatched lengths panic.
package chunk

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// WordBits is the number of bits per word.
const WordBits = 64

// unrolled selects the four-word loop bodies on CPUs with wide registers,
// where the compiler keeps all four lanes in flight.
var unrolled = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// Vector is a multi-word bit vector, most-significant word first.
type Vector []uint64

// Words returns the number of words needed to hold n bits (at least one).
func Words(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + WordBits - 1) / WordBits
}

// New returns a zero vector able to hold n bits.
func New(n int) Vector {
	return make(Vector, Words(n))
}

// Len returns the capacity of v in bits.
func (v Vector) Len() int {
	return len(v) * WordBits
}

func sameLen(a, b Vector) {
	if len(a) != len(b) {
		panic("chunk: vector length mismatch")
	}
}

// Or sets dst = a | b.
func Or(dst, a, b Vector) {
	sameLen(dst, a)
	sameLen(a, b)
	i := 0
	if unrolled {
		for ; i+4 <= len(dst); i += 4 {
			dst[i] = a[i] | b[i]
			dst[i+1] = a[i+1] | b[i+1]
			dst[i+2] = a[i+2] | b[i+2]
			dst[i+3] = a[i+3] | b[i+3]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] | b[i]
	}
}

// And sets dst = a & b.
func And(dst, a, b Vector) {
	sameLen(dst, a)
	sameLen(a, b)
	i := 0
	if unrolled {
		for ; i+4 <= len(dst); i += 4 {
			dst[i] = a[i] & b[i]
			dst[i+1] = a[i+1] & b[i+1]
			dst[i+2] = a[i+2] & b[i+2]
			dst[i+3] = a[i+3] & b[i+3]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] & b[i]
	}
}

// Xor sets dst = a ^ b.
func Xor(dst, a, b Vector) {
	sameLen(dst, a)
	sameLen(a, b)
	i := 0
	if unrolled {
		for ; i+4 <= len(dst); i += 4 {
			dst[i] = a[i] ^ b[i]
			dst[i+1] = a[i+1] ^ b[i+1]
			dst[i+2] = a[i+2] ^ b[i+2]
			dst[i+3] = a[i+3] ^ b[i+3]
		}
	}
	for ; i < len(dst); i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// Not sets dst = ^a.
func Not(dst, a Vector) {
	sameLen(dst, a)
	for i := range dst {
		dst[i] = ^a[i]
	}
}

// Add sets dst = a + b modulo 2^(64*len) and returns the carry out of the
// most-significant word.
func Add(dst, a, b Vector) uint64 {
	sameLen(dst, a)
	sameLen(a, b)
	var carry uint64
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// ShiftLeftOne sets dst = a << 1. The top bit is discarded.
func ShiftLeftOne(dst, a Vector) {
	sameLen(dst, a)
	var carry uint64
	for i := len(dst) - 1; i >= 0; i-- {
		w := a[i]
		dst[i] = w<<1 | carry
		carry = w >> (WordBits - 1)
	}
}

// Copy sets dst = a.
func Copy(dst, a Vector) {
	sameLen(dst, a)
	copy(dst, a)
}

// Fill sets every word of v to w.
func (v Vector) Fill(w uint64) {
	for i := range v {
		v[i] = w
	}
}

// IsZero reports whether no bit of v is set.
func (v Vector) IsZero() bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	return true
}

func (v Vector) locate(i int) (word int, mask uint64) {
	if i < 0 || i >= v.Len() {
		panic("chunk: bit index out of range")
	}
	return len(v) - 1 - i/WordBits, 1 << (uint(i) % WordBits)
}

// Bit reports whether bit i is set. Panics if i is out of range.
func (v Vector) Bit(i int) bool {
	w, m := v.locate(i)
	return v[w]&m != 0
}

// SetBit sets bit i. Panics if i is out of range.
func (v Vector) SetBit(i int) {
	w, m := v.locate(i)
	v[w] |= m
}
