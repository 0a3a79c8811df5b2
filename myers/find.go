package myers

import "github.com/coregx/agrep/search"

// FindFirst returns the first match within threshold. The end is the first
// in-threshold position, extended while the score improves (or holds, under
// an extend policy). The start is the first position, scanning the reversed
// pattern backward from the end, that reaches the end's score.
func (p *Pattern) FindFirst(threshold int, buf []byte) (search.Match, bool) {
	if p.m == 0 {
		return search.Match{}, false
	}
	last := p.lastBit()
	extend := p.flags.Any(search.ExtendMask)

	s := p.start()
	j := 0
	to := -1
	for ; j < len(buf); j++ {
		s.step(p.peq[buf[j]], last)
		if s.score <= threshold {
			to = j
			break
		}
	}
	if to < 0 {
		return search.Match{}, false
	}
	best := s.score
	for j++; j < len(buf); j++ {
		s.step(p.peq[buf[j]], last)
		if s.score < best || (extend && s.score <= best) {
			best, to = s.score, j
		} else {
			break
		}
	}
	from := p.backward(buf, to, best)
	return search.Match{Position: from, Length: to - from + 1, Score: best}, true
}

// FindBest returns the match with the lowest score anywhere in buf; the
// earliest end wins ties. If no byte of buf matches any pattern symbol the
// result is an empty match at 0 scoring m. It reports false only for an
// empty pattern or buffer.
func (p *Pattern) FindBest(buf []byte) (search.Match, bool) {
	if p.m == 0 || len(buf) == 0 {
		return search.Match{}, false
	}
	last := p.lastBit()
	s := p.start()
	best, to := p.m, -1
	for j, c := range buf {
		s.step(p.peq[c], last)
		if s.score < best {
			best, to = s.score, j
		}
	}
	if to < 0 {
		return search.Match{Score: p.m}, true
	}
	from := p.backward(buf, to, best)
	return search.Match{Position: from, Length: to - from + 1, Score: best}, true
}

// backward runs the reversed pattern from end down to 0 and returns the
// first position whose score is within target, or 0.
func (p *Pattern) backward(buf []byte, end, target int) int {
	last := p.lastBit()
	s := p.start()
	for j := end; j >= 0; j-- {
		s.step(p.peqR[buf[j]], last)
		if s.score <= target {
			return j
		}
	}
	return 0
}

// FindAll reports, for every position whose score is within threshold, the
// match ending there with its start from StartingPosition. Matches are not
// merged.
func (p *Pattern) FindAll(threshold int, buf []byte, cb search.Callback) search.Action {
	if p.m == 0 {
		return search.Continue
	}
	last := p.lastBit()
	s := p.start()
	for j, c := range buf {
		s.step(p.peq[c], last)
		if s.score > threshold {
			continue
		}
		from := p.StartingPosition(buf, j, s.score)
		if cb(search.Match{Position: from, Length: j - from + 1, Score: s.score}) == search.Stop {
			return search.Stop
		}
	}
	return search.Continue
}

// StartingPosition returns the start of a match ending at end with score
// target. It runs the reversed pattern backward until the score rises after
// having reached target, and returns the position before the rise.
//
// Near the start of the buffer the scan can stop at position 0 before the
// score settles, so one fragment may be reported with different starts
// depending on where it sits.
func (p *Pattern) StartingPosition(buf []byte, end, target int) int {
	if p.m == 0 {
		return end + 1
	}
	last := p.lastBit()
	s := p.start()
	prev := p.m
	for j := end; j >= 0; j-- {
		s.step(p.peqR[buf[j]], last)
		if s.score > prev && prev <= target {
			return j + 1
		}
		if j == 0 && s.score <= target {
			return 0
		}
		prev = s.score
	}
	// The score never reached target; fall back to the buffer start.
	return 0
}
