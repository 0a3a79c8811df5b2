package dp

import "github.com/coregx/agrep/search"

// FindEnd scans forward for the first position whose score is within
// threshold, then keeps scanning while the score stays within threshold,
// moving the end to every position that scores no worse than the best so far.
// It returns the best end and its score.
func (p *Pattern) FindEnd(threshold int, buf []byte) (end, score int, ok bool) {
	c := p.getColumns()
	defer p.putColumns(c)

	m := len(p.pattern)
	initColumn(c.next)
	for i, t := range buf {
		c.prev, c.next = c.next, c.prev
		nextColumn(p.eq, 0, t, c.prev, c.next)
		s := c.next[m]
		switch {
		case s <= threshold:
			if !ok || s <= score {
				end, score, ok = i, s, true
			}
		case ok:
			return end, score, true
		}
	}
	return end, score, ok
}

// startLimit is the lowest buffer position a backward scan from end can
// reach within threshold.
func (p *Pattern) startLimit(threshold, end int) int {
	if threshold >= end-len(p.pattern) {
		return 0
	}
	return end - len(p.pattern) - threshold - 1
}

// FindBegin scans backward from end over the reversed pattern and returns
// the lowest position reached while the score stays within threshold.
// Each column starts at the cost of the text skipped after it.
func (p *Pattern) FindBegin(threshold int, buf []byte, end int) (begin int, ok bool) {
	c := p.getColumns()
	defer p.putColumns(c)

	m := len(p.pattern)
	initColumn(c.next)
	for i := end; i >= p.startLimit(threshold, end); i-- {
		c.prev, c.next = c.next, c.prev
		nextColumn(p.req, end-i, buf[i], c.prev, c.next)
		if c.next[m] <= threshold {
			begin, ok = i, true
		} else if ok {
			break
		}
	}
	return begin, ok
}

// FindFirst returns the first match in buf: the best end of the first
// in-threshold run, and the lowest start that reaches it.
func (p *Pattern) FindFirst(threshold int, buf []byte) (search.Match, bool) {
	end, score, ok := p.FindEnd(threshold, buf)
	if !ok {
		return search.Match{}, false
	}
	begin, ok := p.FindBegin(threshold, buf, end)
	if !ok {
		return search.Match{}, false
	}
	return search.Match{Position: begin, Length: end - begin + 1, Score: score}, true
}

// FindAll reports every match in buf in order, folding runs of in-threshold
// ends by the extend policy and resolving each end's starts with FindStarts.
//
// Under AnchorLeft only the first m+threshold+1 bytes are scanned, every
// column is seeded with the cost of the bytes before it, and each end is
// reported as a match starting at 0.
func (p *Pattern) FindAll(threshold int, buf []byte, cb search.Callback) search.Action {
	anchored := p.flags.Has(search.AnchorLeft)
	limit := len(buf)
	emit := func(end, score int) search.Action {
		return p.FindStarts(threshold, buf, end, score, cb)
	}
	if anchored {
		if threshold < limit-len(p.pattern)-1 {
			limit = len(p.pattern) + threshold + 1
		}
		emit = func(end, score int) search.Action {
			return cb(search.Match{Position: 0, Length: end + 1, Score: score})
		}
	}

	c := p.getColumns()
	defer p.putColumns(c)

	m := len(p.pattern)
	ext := search.NewExtender(p.flags, emit)
	initColumn(c.next)
	startcost := 0
	for i := 0; i < limit; i++ {
		c.prev, c.next = c.next, c.prev
		if anchored {
			startcost = i + 1
		}
		nextColumn(p.eq, startcost, buf[i], c.prev, c.next)

		var act search.Action
		if s := c.next[m]; s <= threshold {
			act = ext.Hit(i, s)
		} else {
			act = ext.Miss()
		}
		if act == search.Stop {
			return search.Stop
		}
	}
	return ext.Flush()
}

// FindStarts reports the starts of matches ending at end. It scans backward
// over the reversed pattern, accepting positions within threshold (or within
// the forward score under LeftMaintainScore), and folds accepted starts by
// the extend policy.
func (p *Pattern) FindStarts(threshold int, buf []byte, end, score int, cb search.Callback) search.Action {
	accept := threshold
	if p.flags.Has(search.LeftMaintainScore) {
		accept = score
	}

	c := p.getColumns()
	defer p.putColumns(c)

	m := len(p.pattern)
	ext := search.NewStartExtender(p.flags, func(start, s int) search.Action {
		return cb(search.Match{Position: start, Length: end - start + 1, Score: s})
	})
	initColumn(c.next)
	for i := end; i >= p.startLimit(threshold, end); i-- {
		c.prev, c.next = c.next, c.prev
		nextColumn(p.req, end-i+1, buf[i], c.prev, c.next)
		if s := c.next[m]; s <= accept {
			if ext.Hit(i, s) == search.Stop {
				return search.Stop
			}
		}
	}
	return ext.Flush()
}
