package wumanber

import "github.com/coregx/agrep/search"

// FindFirst returns the first match within threshold. The end is the first
// in-threshold position, extended while the score does not get worse; the
// start comes from a backward scan with the reversed pattern.
func (p *Pattern) FindFirst(threshold int, buf []byte) (search.Match, bool) {
	if p.m == 0 || threshold < 0 {
		return search.Match{}, false
	}
	r := p.getRegisters(p.levels(threshold))
	defer p.putRegisters(r)

	j, to, best := 0, -1, 0
	for ; j < len(buf); j++ {
		if s := p.advance(r, p.fwd[buf[j]]); s >= 0 {
			to, best = j, s
			break
		}
	}
	if to < 0 {
		return search.Match{}, false
	}
	for j++; j < len(buf); j++ {
		s := p.advance(r, p.fwd[buf[j]])
		if s < 0 || s > best {
			break
		}
		to, best = j, s
	}

	from := p.findStart(threshold, buf, to, best)
	return search.Match{Position: from, Length: to - from + 1, Score: best}, true
}

// findStart scans the reversed pattern backward from end. It takes the first
// position scoring within target, then moves left while the score does not
// get worse.
func (p *Pattern) findStart(threshold int, buf []byte, end, target int) int {
	r := p.getRegisters(p.levels(threshold))
	defer p.putRegisters(r)

	from, best := end, target
	found := false
	for i := end; i >= 0; i-- {
		s := p.advance(r, p.rev[buf[i]])
		switch {
		case s >= 0 && s <= best:
			from, best, found = i, s, true
		case found:
			return from
		}
	}
	return from
}

// FindAll reports every match in buf in order. In-threshold ends are folded
// by the extend policy; each reported end gets one start from a backward
// scan.
func (p *Pattern) FindAll(threshold int, buf []byte, cb search.Callback) search.Action {
	if p.m == 0 || threshold < 0 {
		return search.Continue
	}
	r := p.getRegisters(p.levels(threshold))
	defer p.putRegisters(r)

	ext := search.NewExtender(p.flags, func(end, score int) search.Action {
		from := p.findStart(threshold, buf, end, score)
		return cb(search.Match{Position: from, Length: end - from + 1, Score: score})
	})
	for j, c := range buf {
		var act search.Action
		if s := p.advance(r, p.fwd[c]); s >= 0 {
			act = ext.Hit(j, s)
		} else {
			act = ext.Miss()
		}
		if act == search.Stop {
			return search.Stop
		}
	}
	return ext.Flush()
}
