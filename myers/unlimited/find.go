package unlimited

import "github.com/coregx/agrep/search"

// FindFirst returns the first match within threshold. The end is the first
// in-threshold position, extended while the score strictly improves. The
// start is the first position, scanning the reversed pattern backward from
// the end, whose score reaches the end's score.
func (p *Pattern) FindFirst(threshold int, buf []byte) (search.Match, bool) {
	if p.m == 0 {
		return search.Match{}, false
	}
	r := p.getRegisters()
	defer p.putRegisters(r)

	top := p.m - 1
	j, to := 0, -1
	for ; j < len(buf); j++ {
		r.step(p.row(p.peq, buf[j]), top)
		if r.score <= threshold {
			to = j
			break
		}
	}
	if to < 0 {
		return search.Match{}, false
	}
	best := r.score
	for j++; j < len(buf); j++ {
		r.step(p.row(p.peq, buf[j]), top)
		if r.score >= best {
			break
		}
		best, to = r.score, j
	}

	from := p.backward(r, buf, to, best)
	return search.Match{Position: from, Length: to - from + 1, Score: best}, true
}

// FindBest returns the lowest-scoring match in buf; the earliest end wins
// ties. When no position scores below m the result is an empty match at 0
// scoring m. It reports false only for an empty pattern or buffer.
func (p *Pattern) FindBest(buf []byte) (search.Match, bool) {
	if p.m == 0 || len(buf) == 0 {
		return search.Match{}, false
	}
	r := p.getRegisters()
	defer p.putRegisters(r)

	top := p.m - 1
	best, to := p.m, -1
	for j, c := range buf {
		r.step(p.row(p.peq, c), top)
		if r.score < best {
			best, to = r.score, j
		}
	}
	if to < 0 {
		return search.Match{Score: p.m}, true
	}
	from := p.backward(r, buf, to, best)
	return search.Match{Position: from, Length: to - from + 1, Score: best}, true
}

// backward resets r and runs the reversed pattern from end down to 0,
// returning the first position whose score is within target, or 0.
func (p *Pattern) backward(r *registers, buf []byte, end, target int) int {
	r.reset(p.m)
	top := p.m - 1
	for j := end; j >= 0; j-- {
		r.step(p.row(p.peqR, buf[j]), top)
		if r.score <= target {
			return j
		}
	}
	return 0
}

// FindAll reports every match in buf in order. In-threshold ends are folded
// by the extend policy; the starts of each reported end come from the DP
// start finder.
func (p *Pattern) FindAll(threshold int, buf []byte, cb search.Callback) search.Action {
	if p.m == 0 {
		return search.Continue
	}
	r := p.getRegisters()
	defer p.putRegisters(r)

	ext := search.NewExtender(p.flags, func(end, score int) search.Action {
		return p.starts.FindStarts(threshold, buf, end, score, cb)
	})
	top := p.m - 1
	for j, c := range buf {
		r.step(p.row(p.peq, c), top)
		var act search.Action
		if r.score <= threshold {
			act = ext.Hit(j, r.score)
		} else {
			act = ext.Miss()
		}
		if act == search.Stop {
			return search.Stop
		}
	}
	return ext.Flush()
}
