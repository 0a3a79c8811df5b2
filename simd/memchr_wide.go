package simd

import (
	"encoding/binary"
)

// The wide scanners test 32 bytes per iteration and only locate the exact
// lane once a block reports a hit, handing the block to the generic scanner.

func memchrWide(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := broadcast(needle)

	i := 0
	for ; i+32 <= n; i += 32 {
		w0 := binary.LittleEndian.Uint64(haystack[i:]) ^ mask
		w1 := binary.LittleEndian.Uint64(haystack[i+8:]) ^ mask
		w2 := binary.LittleEndian.Uint64(haystack[i+16:]) ^ mask
		w3 := binary.LittleEndian.Uint64(haystack[i+24:]) ^ mask
		if zeroBytes(w0)|zeroBytes(w1)|zeroBytes(w2)|zeroBytes(w3) != 0 {
			return i + memchrGeneric(haystack[i:i+32], needle)
		}
	}
	if pos := memchrGeneric(haystack[i:], needle); pos >= 0 {
		return i + pos
	}
	return -1
}

func memchr2Wide(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)

	i := 0
	for ; i+32 <= n; i += 32 {
		var hit uint64
		for k := 0; k < 32; k += 8 {
			w := binary.LittleEndian.Uint64(haystack[i+k:])
			hit |= zeroBytes(w^mask1) | zeroBytes(w^mask2)
		}
		if hit != 0 {
			return i + memchr2Generic(haystack[i:i+32], needle1, needle2)
		}
	}
	if pos := memchr2Generic(haystack[i:], needle1, needle2); pos >= 0 {
		return i + pos
	}
	return -1
}

func memchr3Wide(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	mask3 := broadcast(needle3)

	i := 0
	for ; i+32 <= n; i += 32 {
		var hit uint64
		for k := 0; k < 32; k += 8 {
			w := binary.LittleEndian.Uint64(haystack[i+k:])
			hit |= zeroBytes(w^mask1) | zeroBytes(w^mask2) | zeroBytes(w^mask3)
		}
		if hit != 0 {
			return i + memchr3Generic(haystack[i:i+32], needle1, needle2, needle3)
		}
	}
	if pos := memchr3Generic(haystack[i:], needle1, needle2, needle3); pos >= 0 {
		return i + pos
	}
	return -1
}
