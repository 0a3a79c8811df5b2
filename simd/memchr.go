package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
//
// It is equivalent to bytes.IndexByte.
//
// Example:
//
//	pos := simd.Memchr([]byte("GATTACA"), 'T')
//	// pos == 2
func Memchr(haystack []byte, needle byte) int {
	if wideScan && len(haystack) >= wideMin {
		return memchrWide(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}

// Memchr2 returns the index of the first byte equal to needle1 or needle2,
// or -1 if neither is present.
func Memchr2(haystack []byte, needle1, needle2 byte) int {
	if wideScan && len(haystack) >= wideMin {
		return memchr2Wide(haystack, needle1, needle2)
	}
	return memchr2Generic(haystack, needle1, needle2)
}

// Memchr3 returns the index of the first byte equal to any of the three
// needles, or -1 if none is present.
func Memchr3(haystack []byte, needle1, needle2, needle3 byte) int {
	if wideScan && len(haystack) >= wideMin {
		return memchr3Wide(haystack, needle1, needle2, needle3)
	}
	return memchr3Generic(haystack, needle1, needle2, needle3)
}
