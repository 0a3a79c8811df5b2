package sw

import (
	"github.com/coregx/agrep/alphabet"
	"github.com/coregx/agrep/search"
)

// Alg selects how NewRefVariation finds the region of ambiguity.
type Alg uint8

const (
	// AlgSW aligns the variant against growing reference windows.
	AlgSW Alg = iota
	// AlgRA rolls the deleted and inserted bases along their repeats.
	AlgRA
)

// String returns the algorithm name.
func (a Alg) String() string {
	switch a {
	case AlgSW:
		return "sw"
	case AlgRA:
		return "ra"
	}
	return "unknown"
}

// RefVariation is a reference variant widened to every reference position
// where the same edit could equally have been placed.
type RefVariation struct {
	// buf holds the allele. For deletions it also holds one reference base
	// on each side, where the reference has one.
	buf            []byte
	alleleOff      int
	alleleLen      int
	alleleStart    int
	alleleLenOnRef int
}

// NewRefVariation describes replacing delLen reference bases at pos with
// insertion. A pure deletion has an empty insertion; a pure insertion has
// delLen 0. The variant is widened over ref by alg.
func NewRefVariation(ref []byte, pos, delLen int, insertion []byte, alg Alg) (*RefVariation, error) {
	if len(ref) == 0 || (len(insertion) == 0 && delLen == 0) {
		return nil, search.Errorf(search.InvalidConfiguration, "refvar: empty variation")
	}
	if pos < 0 || delLen < 0 || pos+delLen > len(ref) {
		return nil, search.Errorf(search.InvalidConfiguration,
			"refvar: deletion [%d,%d) outside reference of length %d", pos, pos+delLen, len(ref))
	}

	var start, n int
	switch alg {
	case AlgSW:
		start, n = regionSW(ref, pos, delLen, insertion)
	case AlgRA:
		start, n = regionRA(ref, pos, delLen, insertion)
	default:
		return nil, search.Errorf(search.InvalidConfiguration, "refvar: unknown algorithm %d", alg)
	}

	v := compose(ref, start, n, insertion, pos, delLen)
	v.alleleStart = start
	v.alleleLenOnRef = n
	if n == 0 && len(insertion) == delLen {
		v.alleleLenOnRef = delLen
	}
	return v, nil
}

// Allele returns the widened allele and its reference position.
func (v *RefVariation) Allele() (allele []byte, start int) {
	return v.buf[v.alleleOff : v.alleleOff+v.alleleLen], v.alleleStart
}

// AlleleLenOnRef returns the number of reference bases the allele replaces.
func (v *RefVariation) AlleleLenOnRef() int {
	return v.alleleLenOnRef
}

// SearchQuery returns the allele with its flanking reference bases, if any,
// and the reference position of the first byte.
func (v *RefVariation) SearchQuery() (query []byte, start int) {
	return v.buf, v.alleleStart - v.alleleOff
}

// SearchQueryLenOnRef returns the number of reference bases SearchQuery
// covers.
func (v *RefVariation) SearchQueryLenOnRef() int {
	return v.alleleLenOnRef + len(v.buf) - v.alleleLen
}

// compose builds the allele for the region [start, start+n) of ref.
func compose(ref []byte, start, n int, insertion []byte, pos, delLen int) *RefVariation {
	endOrig := pos + delLen
	endNew := start + n

	prefixStart, prefixLen, trimL := start, 0, 0
	if start <= pos {
		prefixLen = pos - start
	} else {
		trimL = start - pos
	}
	postfixStart, postfixLen, trimR := endOrig, 0, 0
	if endNew >= endOrig {
		postfixLen = endNew - endOrig
	} else {
		postfixStart = endNew
		trimR = endOrig - endNew
	}

	var expandL, expandR int
	switch {
	case n == 0 && len(insertion) == delLen:
		// Pure substitution: the allele is the insertion as given.
		trimR = 0
	case delLen > len(insertion):
		// Deletions carry one reference base on each side.
		if prefixStart > 0 {
			expandL = 1
			prefixStart--
			prefixLen++
		}
		if postfixStart+postfixLen+1 < len(ref) {
			expandR = 1
			postfixLen++
		}
	}

	trimL = min(trimL, len(insertion))
	mid := insertion[trimL : trimL+max(0, len(insertion)-trimL-trimR)]

	buf := make([]byte, 0, prefixLen+len(mid)+postfixLen)
	buf = append(buf, ref[prefixStart:prefixStart+prefixLen]...)
	buf = append(buf, mid...)
	buf = append(buf, ref[postfixStart:postfixStart+postfixLen]...)
	return &RefVariation{
		buf:       buf,
		alleleOff: expandL,
		alleleLen: len(buf) - expandL - expandR,
	}
}

// regionRA rolls the deletion, then the insertion, left and right while the
// reference repeats them.
func regionRA(ref []byte, pos, delLen int, ins []byte) (start, n int) {
	delStart, delEnd := pos, pos
	if delLen > 0 {
		for delStart > 0 && ref[delStart-1] == ref[delStart-1+delLen] {
			delStart--
		}
		delEnd = pos + delLen
		for delEnd < len(ref) && ref[delEnd] == ref[delEnd-delLen] {
			delEnd++
		}
	}

	insStart, insEnd := pos, pos
	if k := len(ins); k > 0 {
		if delStart > 0 {
			// The first repeat compares against the insertion, the rest
			// against the reference.
			for insStart > 0 {
				at := insStart - 1 - pos + k
				if at < 0 || ref[insStart-1] != ins[at] {
					break
				}
				insStart--
			}
			for insStart > 0 && ref[insStart-1] == ref[insStart-1+k] {
				insStart--
			}
		} else {
			insStart = 0
		}

		if delEnd < len(ref) {
			insEnd = pos + delLen
			for insEnd < len(ref) {
				at := insEnd - pos - delLen
				if at == k || ref[insEnd] != ins[at] {
					break
				}
				insEnd++
			}
			if insEnd-pos-delLen == k {
				for insEnd < len(ref) && ref[insEnd] == ref[insEnd-k] {
					insEnd++
				}
			}
		} else {
			insEnd = len(ref)
		}
	}

	start = min(delStart, insStart)
	end := max(delEnd, insEnd)
	return start, end - start
}

// regionSW aligns the reference with the variant applied against the plain
// reference over a window around pos. While the ambiguous region touches an
// edge of the window that can still grow, that side is doubled and the
// alignment repeated.
func regionSW(ref []byte, pos, delLen int, ins []byte) (start, n int) {
	expL, expR := 1, 1
	prevStart, prevEnd := -1, -1
	sliceStart, sliceEnd := -1, -1
	var m matrix
	for {
		lo := max(0, pos-expL)
		hi := min(len(ref), pos+expR+delLen)
		if lo == sliceStart && hi == sliceEnd {
			break
		}
		sliceStart, sliceEnd = lo, hi
		slice := ref[lo:hi]
		adj := pos - lo

		query := make([]byte, 0, len(slice)-delLen+len(ins))
		query = append(query, slice[:adj]...)
		query = append(query, ins...)
		query = append(query, slice[adj+delLen:]...)

		var indel bool
		start, n, indel = m.bounds(slice, query)
		if !indel {
			start, n = adj, 0
		}

		grow := false
		if start == 0 && (prevStart == -1 || lo != prevStart) {
			expL *= 2
			grow = true
		}
		if start+n == len(slice) && (prevEnd == -1 || hi != prevEnd) {
			expR *= 2
			grow = true
		}
		if !grow {
			break
		}
		prevStart, prevEnd = lo, hi
	}
	return start + sliceStart, n
}

// bounds aligns query (rows) against slice (columns) forward and backward
// and returns the slice region spanned by the differences of both
// alignments. indel is false when the forward alignment has none.
func (m *matrix) bounds(slice, query []byte) (start, n int, indel bool) {
	rows, cols := len(query)+1, len(slice)+1
	cmp := alphabet.Comparer{IgnoreCase: true}

	m.fill(rows, cols, gapConstant, func(i, j int) bool {
		return cmp.Match(slice[j], query[i])
	})
	fwd := m.indelBox()
	if fwd == noBox {
		return 0, 0, false
	}

	m.fill(rows, cols, gapConstant, func(i, j int) bool {
		return cmp.Match(slice[len(slice)-1-j], query[len(query)-1-i])
	})
	colStart, colEnd := fwd.colStart, fwd.colEnd
	if rev := m.indelBox(); rev != noBox {
		colStart = min(len(slice)-rev.colEnd-1, colStart)
		colEnd = max(len(slice)-rev.colStart-1, colEnd)
	}
	return colStart + 1, colEnd - colStart - 1, true
}

// box is the span of a traceback between its first and last difference.
// Fields are -1 when unset.
type box struct {
	rowStart, rowEnd, colStart, colEnd int
}

var noBox = box{-1, -1, -1, -1}

// indelBox traces back from the bottom-right cell to the origin, preferring
// the diagonal, and records where the first and last mismatch or gap sit.
func (m *matrix) indelBox() box {
	b := noBox
	i := len(m.cells)/m.cols - 1
	j := m.cols - 1
	markEnd := func(r, c int) {
		if b.rowEnd == -1 {
			b.rowEnd, b.colEnd = r, c
		}
	}
	prevIndel := false
	for {
		switch {
		case i > 0 && j > 0:
			diag, left, up := m.at(i-1, j-1), m.at(i, j-1), m.at(i-1, j)
			switch {
			case diag >= left && diag >= up:
				mismatch := m.at(i, j)-diag != matchScore
				if mismatch {
					markEnd(i, j)
				}
				i--
				j--
				if prevIndel || mismatch {
					b.rowStart, b.colStart = i, j
				}
				prevIndel = false
			case diag < left:
				markEnd(i, j)
				j--
				prevIndel = true
			default:
				markEnd(i, j)
				i--
				prevIndel = true
			}
		case i > 0:
			markEnd(i, 0)
			b.rowStart, b.colStart = 0, 0
			return b
		case j > 0:
			markEnd(0, j)
			b.rowStart, b.colStart = 0, 0
			return b
		default:
			return b
		}
	}
}
