package simd

import (
	"encoding/binary"
	"math/bits"
)

// memchrGeneric scans one 8-byte word per iteration.
//
// Algorithm:
//  1. XOR each word with the broadcast needle so matching lanes become zero
//  2. Detect zero lanes with the borrow trick in zeroBytes
//  3. The lowest flagged lane is the first match
func memchrGeneric(haystack []byte, needle byte) int {
	n := len(haystack)
	mask := broadcast(needle)

	i := 0
	for ; i+8 <= n; i += 8 {
		if z := zeroBytes(binary.LittleEndian.Uint64(haystack[i:]) ^ mask); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

func memchr2Generic(haystack []byte, needle1, needle2 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)

	i := 0
	for ; i+8 <= n; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^mask1) | zeroBytes(w^mask2); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 {
			return i
		}
	}
	return -1
}

func memchr3Generic(haystack []byte, needle1, needle2, needle3 byte) int {
	n := len(haystack)
	mask1 := broadcast(needle1)
	mask2 := broadcast(needle2)
	mask3 := broadcast(needle3)

	i := 0
	for ; i+8 <= n; i += 8 {
		w := binary.LittleEndian.Uint64(haystack[i:])
		if z := zeroBytes(w^mask1) | zeroBytes(w^mask2) | zeroBytes(w^mask3); z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if c := haystack[i]; c == needle1 || c == needle2 || c == needle3 {
			return i
		}
	}
	return -1
}
