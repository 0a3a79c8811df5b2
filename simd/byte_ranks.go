package simd

// byteRanks orders bytes by how often they are expected in sequence text.
// Lower rank = rarer byte = better anchor for a Memchr scan.
//
// Sequence buffers are dominated by the four bases (either case) and by N
// runs; IUPAC ambiguity codes are uncommon; packed 2NA codes 0..3 are as
// common as the bases they encode. Everything else falls back to a coarse
// printable/non-printable split.
var byteRanks = buildByteRanks()

func buildByteRanks() (r [256]byte) {
	for b := 0; b < 256; b++ {
		switch {
		case b >= 0x20 && b < 0x7f:
			r[b] = 60
		case b == '\n' || b == '\r' || b == '\t':
			r[b] = 40
		default:
			r[b] = 5
		}
	}
	for _, c := range []byte("RYMKSWHBVD") {
		r[c] = 90
		r[c|0x20] = 80
	}
	for _, c := range []byte("ACGTU") {
		r[c] = 250
		r[c|0x20] = 240
	}
	r['N'] = 200
	r['n'] = 190
	for code := 0; code < 4; code++ {
		r[code] = 250
	}
	return r
}

// ByteRank returns the rank of b. Lower values are rarer.
func ByteRank(b byte) byte {
	return byteRanks[b]
}

// SelectRareByte returns the rarest byte of needle and its index. Ties are
// broken toward the last position, which shortens verification for
// right-anchored candidates.
func SelectRareByte(needle []byte) (rare byte, index int) {
	if len(needle) == 0 {
		return 0, -1
	}
	index = len(needle) - 1
	rare = needle[index]
	for i := index - 1; i >= 0; i-- {
		if byteRanks[needle[i]] < byteRanks[rare] {
			rare, index = needle[i], i
		}
	}
	return rare, index
}
