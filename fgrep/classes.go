package fgrep

import (
	"github.com/coregx/agrep/alphabet"
	"github.com/coregx/agrep/internal/conv"
)

// normalizer maps every text or pattern byte to the byte the tries compare.
type normalizer [256]byte

func newNormalizer(flags Flags) (n normalizer, identity bool) {
	identity = true
	for b := 0; b < 256; b++ {
		c := byte(b)
		if flags.Has(TextExpanded2NA) && c <= 4 {
			c = alphabet.Na2Key[c]
		}
		switch {
		case flags.Has(IgnoreCase) && flags.Has(ModeACGT):
			c = alphabet.ToUpper(c)
		case flags.Has(IgnoreCase):
			c = alphabet.ToLower(c)
		}
		n[b] = c
		identity = identity && c == byte(b)
	}
	return n, identity
}

func (n *normalizer) apply(src []byte) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		out[i] = n[b]
	}
	return out
}

// byteClasses maps each byte value to its equivalence class.
//
// Two bytes share a class when no pattern can tell them apart, so the trie
// arena stores one transition per class instead of 256 per node. Bytes that
// occur in no pattern fall into gap classes that have no transitions.
type byteClasses struct {
	classes [256]byte
}

// get returns the class of b.
func (bc *byteClasses) get(b byte) byte {
	return bc.classes[b]
}

// alphabetLen returns the number of classes.
func (bc *byteClasses) alphabetLen() int {
	maxClass := byte(0)
	for _, c := range bc.classes {
		maxClass = max(maxClass, c)
	}
	return int(maxClass) + 1
}

// byteClassSet tracks class boundaries: bit b is set when b and b+1 belong
// to different classes.
type byteClassSet struct {
	bits [4]uint64
}

// setByte gives b a class of its own.
func (bcs *byteClassSet) setByte(b byte) {
	if b > 0 {
		bcs.setBit(b - 1)
	}
	bcs.setBit(b)
}

func (bcs *byteClassSet) setBit(b byte) {
	bcs.bits[b/64] |= 1 << (b % 64)
}

func (bcs *byteClassSet) getBit(b byte) bool {
	return bcs.bits[b/64]&(1<<(b%64)) != 0
}

// byteClasses numbers the classes by walking the boundaries in byte order.
func (bcs *byteClassSet) byteClasses() byteClasses {
	var bc byteClasses
	class := 0
	for b := 0; b < 256; b++ {
		bc.classes[b] = conv.IntToUint8(class)
		if bcs.getBit(byte(b)) && b < 255 {
			class++
		}
	}
	return bc
}

// classify returns the lookup from raw text bytes straight to the class of
// their normalized form, and the number of classes.
func classify(norm *normalizer, patterns [][]byte) (lookup [256]byte, n int) {
	var set byteClassSet
	for _, p := range patterns {
		for _, b := range p {
			set.setByte(b)
		}
	}
	bc := set.byteClasses()
	for b := 0; b < 256; b++ {
		lookup[b] = bc.get(norm[b])
	}
	return lookup, bc.alphabetLen()
}
