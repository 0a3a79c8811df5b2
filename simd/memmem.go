package simd

import "bytes"

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
//
// It is equivalent to bytes.Index. Candidates are found by scanning for the
// rarest needle byte (see SelectRareByte) with Memchr and then verified in
// place.
//
// Example:
//
//	pos := simd.Memmem([]byte("ACGTTGCAWGCA"), []byte("WGC"))
//	// pos == 8
func Memmem(haystack, needle []byte) int {
	m := len(needle)
	n := len(haystack)
	switch {
	case m == 0:
		return 0
	case m > n:
		return -1
	case m == 1:
		return Memchr(haystack, needle[0])
	}

	rare, rareIdx := SelectRareByte(needle)
	// The rare byte can only sit in [rareIdx, n-m+rareIdx].
	from := rareIdx
	last := n - m + rareIdx
	for from <= last {
		pos := Memchr(haystack[from:last+1], rare)
		if pos < 0 {
			return -1
		}
		start := from + pos - rareIdx
		if bytes.Equal(haystack[start:start+m], needle) {
			return start
		}
		from += pos + 1
	}
	return -1
}
