// Package agrep finds approximate occurrences of a pattern in a byte buffer.
//
// A match is a substring of the text whose edit distance (insertions,
// deletions and substitutions, each costing one) from the pattern is at most
// a caller-chosen threshold. Four engines share one contract:
//   - AlgDP: the classic column recurrence, any pattern length
//   - AlgMyers: Myers' bit-vector recurrence in one word (pattern <= 64)
//   - AlgMyersUnlimited: the same recurrence over multi-word vectors
//   - AlgWuManber: one shift register per error level (pattern <= 63)
//
// Symbols compare as bytes (ModeASCII, optionally case-folded) or as IUPAC
// nucleotide codes (Pattern4NA), where a pattern symbol matches every text
// base its code covers. Text may hold letters or 2NA codes 0..4
// (TextExpanded2NA).
//
// Basic usage:
//
//	p, err := agrep.Compile("GATTACA", agrep.ModeASCII|agrep.AlgMyers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if m, ok := p.FindFirst(1, []byte("CCGATTTACACC")); ok {
//	    fmt.Println(m.Position, m.End(), m.Score)
//	}
//
// Streaming every match:
//
//	for m := range p.All(2, text) {
//	    fmt.Println(m.Position, m.Score)
//	}
//
// Exact multi-pattern search lives in package fgrep.
package agrep

import (
	"context"
	"iter"
	"log/slog"
	"sync/atomic"

	"github.com/coregx/agrep/dp"
	"github.com/coregx/agrep/myers"
	"github.com/coregx/agrep/myers/unlimited"
	"github.com/coregx/agrep/search"
	"github.com/coregx/agrep/wumanber"
)

// matcher is the search contract every engine implements.
type matcher interface {
	FindFirst(threshold int, buf []byte) (search.Match, bool)
	FindAll(threshold int, buf []byte, cb search.Callback) search.Action
}

// Agrep is a compiled approximate pattern.
//
// An Agrep is safe for concurrent searches. Free must not race with them.
type Agrep struct {
	pattern string
	flags   Flags
	engine  matcher

	// dp is compiled for every engine and serves the partial-match
	// heuristics.
	dp *dp.Pattern

	stats Stats
}

// Stats tracks search counters. Fields are updated atomically.
type Stats struct {
	// Searches counts FindFirst, FindAll and FindBest calls.
	Searches uint64

	// Matches counts matches reported to callers.
	Matches uint64
}

// Compile compiles pattern under flags with otherwise default limits.
//
// Exactly one algorithm flag must be set. Errors are *CompileError wrapping
// a *search.Error or a *ConfigError; test them with errors.Is against
// ErrPatternTooLong, ErrInvalidSymbol, ErrInvalidConfiguration or
// ErrMemoryExhausted.
func Compile(pattern string, flags Flags) (*Agrep, error) {
	config := DefaultConfig()
	config.Flags = flags
	return CompileWithConfig(pattern, config)
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string, flags Flags) *Agrep {
	p, err := Compile(pattern, flags)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// CompileWithConfig compiles pattern under config.
func CompileWithConfig(pattern string, config Config) (*Agrep, error) {
	if err := config.Validate(); err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	flags := config.Flags
	raw := []byte(pattern)
	m := len(raw)

	if config.MaxPatternLen > 0 {
		if err := search.CheckLength("agrep", m, config.MaxPatternLen); err != nil {
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}
	if config.MaxMemory > 0 {
		if need := footprint(flags, m); need > config.MaxMemory {
			err := search.Errorf(search.MemoryExhausted,
				"tables need %d bytes, limit is %d", need, config.MaxMemory)
			return nil, &CompileError{Pattern: pattern, Err: err}
		}
	}

	d, err := dp.New(raw, flags)
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}
	var engine matcher
	switch flags & search.AlgMask {
	case AlgDP:
		engine = d
	case AlgMyers:
		engine, err = myers.New(raw, flags)
	case AlgMyersUnlimited:
		engine, err = unlimited.New(raw, flags)
	case AlgWuManber:
		engine, err = wumanber.New(raw, flags)
	}
	if err != nil {
		return nil, &CompileError{Pattern: pattern, Err: err}
	}

	if config.Logger != nil {
		config.Logger.LogAttrs(context.Background(), slog.LevelDebug, "compiled pattern",
			slog.String("engine", engineName(flags)),
			slog.Int("length", m),
			slog.String("flags", flags.String()),
		)
	}
	return &Agrep{pattern: pattern, flags: flags, engine: engine, dp: d}, nil
}

// footprint estimates the table bytes CompileWithConfig allocates.
func footprint(flags Flags, m int) int {
	need := dp.Footprint(m)
	switch flags & search.AlgMask {
	case AlgMyers:
		need += myers.Footprint(m)
	case AlgMyersUnlimited:
		// The unlimited engine carries its own start finder.
		need += unlimited.Footprint(m) + dp.Footprint(m)
	case AlgWuManber:
		need += wumanber.Footprint(m)
	}
	return need
}

func engineName(flags Flags) string {
	switch flags & search.AlgMask {
	case AlgDP:
		return "dp"
	case AlgMyers:
		return "myers"
	case AlgMyersUnlimited:
		return "myers-unlimited"
	case AlgWuManber:
		return "wumanber"
	}
	return "none"
}

// String returns the source text used to compile the pattern.
func (p *Agrep) String() string {
	return p.pattern
}

// Pattern returns the source text used to compile the pattern.
func (p *Agrep) Pattern() string {
	return p.pattern
}

// Flags returns the compile flags.
func (p *Agrep) Flags() Flags {
	return p.flags
}

// FindFirst returns the first match within threshold. Where the match
// begins and ends is engine specific; see the engine packages.
func (p *Agrep) FindFirst(threshold int, buf []byte) (Match, bool) {
	if p.engine == nil {
		return Match{}, false
	}
	atomic.AddUint64(&p.stats.Searches, 1)
	m, ok := p.engine.FindFirst(threshold, buf)
	if ok {
		atomic.AddUint64(&p.stats.Matches, 1)
	}
	return m, ok
}

// FindAll reports every match within threshold to cb, left to right, until
// cb returns Stop. It returns Stop if the scan was cut short.
func (p *Agrep) FindAll(threshold int, buf []byte, cb Callback) Action {
	if p.engine == nil {
		return Continue
	}
	atomic.AddUint64(&p.stats.Searches, 1)
	var n uint64
	act := p.engine.FindAll(threshold, buf, func(m Match) Action {
		n++
		return cb(m)
	})
	atomic.AddUint64(&p.stats.Matches, n)
	return act
}

// All returns an iterator over the matches of FindAll.
func (p *Agrep) All(threshold int, buf []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		p.FindAll(threshold, buf, func(m Match) Action {
			if !yield(m) {
				return Stop
			}
			return Continue
		})
	}
}

// FindBest returns the lowest-scoring match that FindAll reports. The
// earliest reported match wins ties.
func (p *Agrep) FindBest(threshold int, buf []byte) (Match, bool) {
	if p.engine == nil {
		return Match{}, false
	}
	atomic.AddUint64(&p.stats.Searches, 1)
	var best Match
	found := false
	p.engine.FindAll(threshold, buf, func(m Match) Action {
		if !found || m.Score < best.Score {
			best, found = m, true
		}
		return Continue
	})
	if found {
		atomic.AddUint64(&p.stats.Matches, 1)
	}
	return best, found
}

// HasLeftApproxMatch reports whether buf begins with an approximate copy of
// a pattern suffix. It returns the overlap length and its score.
func (p *Agrep) HasLeftApproxMatch(errors int, buf []byte) (length, score int, ok bool) {
	if p.dp == nil {
		return 0, 0, false
	}
	return p.dp.HasLeftApproxMatch(errors, buf)
}

// HasRightApproxMatch reports whether buf ends with an approximate copy of
// a pattern prefix. It returns the position the overlap starts at and its
// score.
func (p *Agrep) HasRightApproxMatch(errors int, buf []byte) (pos, score int, ok bool) {
	if p.dp == nil {
		return 0, 0, false
	}
	return p.dp.HasRightApproxMatch(errors, buf)
}

// HasInsideApproxMatch reports whether the whole pattern occurs in buf
// within the error budget. It returns the end of the best match.
func (p *Agrep) HasInsideApproxMatch(errors int, buf []byte) (end, score int, ok bool) {
	if p.dp == nil {
		return 0, 0, false
	}
	return p.dp.HasInsideApproxMatch(errors, buf)
}

// Free releases the compiled tables. Later searches find nothing. Free may
// be called more than once.
func (p *Agrep) Free() {
	p.engine = nil
	p.dp = nil
}

// Stats returns a snapshot of the search counters.
func (p *Agrep) Stats() Stats {
	return Stats{
		Searches: atomic.LoadUint64(&p.stats.Searches),
		Matches:  atomic.LoadUint64(&p.stats.Matches),
	}
}

// ResetStats sets the search counters to zero.
func (p *Agrep) ResetStats() {
	atomic.StoreUint64(&p.stats.Searches, 0)
	atomic.StoreUint64(&p.stats.Matches, 0)
}
