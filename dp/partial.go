package dp

import (
	"math"

	"github.com/coregx/agrep/alphabet"
)

// Partial-match heuristics for reads that run off either end of a pattern.
// Each one spreads the error budget over the overlap in proportion to its
// length, so a short overlap is allowed fewer errors than the full pattern.

// minOverlap is the shortest overlap the edge heuristics will accept.
const minOverlap = 8

// allowance returns 1 + round(n*errors/d).
func allowance(n, errors, d int) int {
	return 1 + int(math.Round(float64(n)*float64(errors)/float64(d)))
}

// ScanForLeftMatch runs the pattern forward over buf and counts positions
// where the end score improves by one (hits) against all others (misses).
// The scan stops once misses reach 1 + errors*(i+1)/m. It returns the last
// position before the trailing run of misses, or -1 for an empty buffer.
func (p *Pattern) ScanForLeftMatch(errors int, buf []byte) (bestPos, hits, misses int) {
	m := len(p.pattern)
	if m == 0 || len(buf) == 0 {
		return -1, 0, 0
	}
	c := p.getColumns()
	defer p.putColumns(c)

	rate := float64(errors) / float64(m)
	last := m
	trailing := 0
	lastWasMiss := false
	i := 0
	initColumn(c.next)
	for ; i < len(buf); i++ {
		c.prev, c.next = c.next, c.prev
		nextColumn(p.eq, 0, buf[i], c.prev, c.next)

		if last-c.next[m] == 1 {
			hits++
			lastWasMiss = false
			trailing = 0
		} else {
			if lastWasMiss {
				trailing++
			} else {
				trailing = 1
			}
			misses++
			lastWasMiss = true
		}
		last = c.next[m]
		if float64(misses) >= 1+rate*float64(i+1) {
			break
		}
	}
	if i == len(buf) {
		i--
	}
	return i - trailing, hits, misses
}

// HasLeftApproxMatch reports whether a suffix of the pattern matches a prefix
// of buf. Overlaps are tried longest first, down to minOverlap bytes; once
// one is within its allowance, shorter overlaps are taken while they score no
// worse. It returns the overlap length and its score.
func (p *Pattern) HasLeftApproxMatch(errors int, buf []byte) (length, score int, ok bool) {
	m := len(p.pattern)
	for n := min(m, len(buf)); n >= minOverlap; n-- {
		d := globalDistance(p.eq[m-n:], buf[:n], false)
		switch {
		case ok && d <= score:
			length, score = n, d
		case ok:
			return length, score, true
		case d <= allowance(n, errors, m):
			length, score, ok = n, d, true
		}
	}
	return length, score, ok
}

// HasRightApproxMatch reports whether a prefix of the pattern matches a
// suffix of buf, trying overlaps longest first as HasLeftApproxMatch does.
// It returns the buffer position where the overlap starts and its score.
func (p *Pattern) HasRightApproxMatch(errors int, buf []byte) (pos, score int, ok bool) {
	m := len(p.pattern)
	for n := min(m, len(buf)); n >= minOverlap; n-- {
		// The reversed prefix p[:n] is the tail of the reversed pattern.
		d := globalDistance(p.req[m-n:], buf[len(buf)-n:], true)
		switch {
		case ok && d <= score:
			pos, score = len(buf)-n, d
		case ok:
			return pos, score, true
		case d <= allowance(n, errors, m):
			pos, score, ok = len(buf)-n, d, true
		}
	}
	return pos, score, ok
}

// HasInsideApproxMatch reports whether the whole pattern occurs inside buf
// within 1 + round(errors*m/len(buf)) errors. The first qualifying end is
// extended while later ends score no worse. It returns the buffer offset of
// the best end and its score.
func (p *Pattern) HasInsideApproxMatch(errors int, buf []byte) (end, score int, ok bool) {
	m := len(p.pattern)
	if len(buf) == 0 {
		return 0, 0, false
	}
	allowed := allowance(errors, m, len(buf))

	c := p.getColumns()
	defer p.putColumns(c)

	initColumn(c.next)
	for j, t := range buf {
		c.prev, c.next = c.next, c.prev
		nextColumn(p.eq, 0, t, c.prev, c.next)
		d := c.next[m]
		switch {
		case ok && d <= score && d <= allowed:
			end, score = j, d
		case ok:
			return end, score, true
		case d <= allowed:
			end, score, ok = j, d, true
		}
	}
	return end, score, ok
}

// globalDistance is the edit distance between the pattern slice described
// by eq and all of text. When reverse is set, text is read from its end.
func globalDistance(eq []alphabet.ByteSet, text []byte, reverse bool) int {
	n := len(eq)
	prev := make([]int, n+1)
	next := make([]int, n+1)
	initColumn(next)
	for j := range text {
		t := text[j]
		if reverse {
			t = text[len(text)-1-j]
		}
		prev, next = next, prev
		nextColumn(eq, j+1, t, prev, next)
	}
	return next[n]
}
