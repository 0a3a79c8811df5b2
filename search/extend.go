package search

// Extender folds a stream of in-threshold positions into matches according
// to the ExtendSame/ExtendBetter policy.
//
// Without a policy every hit is emitted immediately. With a policy, a hit
// opens a pending match; a lower score replaces it and an equal score moves
// its position under ExtendSame. A worse score, or a miss, emits the pending
// match and closes it; the position that caused the flush is dropped.
//
// Forward extenders (match ends) hold the pending match on an equal score
// under ExtendBetter alone. Start extenders (backward scans) flush instead.
//
// The emit function receives the pending position and its score.
type Extender struct {
	extend       bool
	same         bool
	flushOnEqual bool
	pending      bool
	pos          int
	score        int
	emit         func(pos, score int) Action
}

// NewExtender returns a forward Extender for the policy in flags.
func NewExtender(flags Flags, emit func(end, score int) Action) Extender {
	return Extender{
		extend: flags.Any(ExtendMask),
		same:   flags.Has(ExtendSame),
		emit:   emit,
	}
}

// NewStartExtender returns an Extender for backward start scans.
func NewStartExtender(flags Flags, emit func(start, score int) Action) Extender {
	e := NewExtender(flags, emit)
	e.flushOnEqual = true
	return e
}

// Pending reports whether a match is being held.
func (e *Extender) Pending() bool {
	return e.pending
}

// Hit records an in-threshold score at pos.
func (e *Extender) Hit(pos, score int) Action {
	switch {
	case !e.extend:
		return e.emit(pos, score)
	case !e.pending:
		e.pending, e.pos, e.score = true, pos, score
	case score < e.score:
		e.pos, e.score = pos, score
	case score == e.score && e.same:
		e.pos = pos
	case score == e.score && !e.flushOnEqual:
		// hold
	default:
		return e.Flush()
	}
	return Continue
}

// Miss records an out-of-threshold position.
func (e *Extender) Miss() Action {
	return e.Flush()
}

// Flush emits the pending match, if any.
func (e *Extender) Flush() Action {
	if !e.pending {
		return Continue
	}
	e.pending = false
	return e.emit(e.pos, e.score)
}
