// Package simd provides word-parallel byte search used by the exact-match
// prefilters.
//
// All routines are pure Go SWAR (SIMD Within A Register): eight bytes are
// tested per uint64 operation. On CPUs with wide vector units the scanners
// switch to a loop that tests four words per iteration, which keeps more
// independent loads in flight; the narrow loop is used everywhere else and for
// short inputs.
package simd

import "golang.org/x/sys/cpu"

// wideScan selects the four-word unrolled loops. It is set once at package
// initialization from the CPU feature flags.
var wideScan = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// wideMin is the shortest haystack for which the unrolled loop pays off.
const wideMin = 64

const (
	lo8 = uint64(0x0101010101010101)
	hi8 = uint64(0x8080808080808080)
)

// zeroBytes returns a mask with the high bit set in every byte lane of x that
// is zero. Lanes above the lowest zero lane may report false positives from
// borrow propagation, so only the lowest set bit is meaningful.
//
//go:inline
func zeroBytes(x uint64) uint64 {
	return (x - lo8) &^ x & hi8
}

// broadcast replicates b into every byte lane.
//
//go:inline
func broadcast(b byte) uint64 {
	return uint64(b) * lo8
}
