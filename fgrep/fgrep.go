// Package fgrep finds every occurrence of a set of fixed patterns.
//
// Three engines share one contract. The dumb engine walks a trie from every
// text offset. The skip engine walks a trie of reversed patterns backward
// from a window end and jumps ahead by precomputed safe distances, in the
// manner of Boyer-Moore. The Aho-Corasick engine runs a failure-linked
// automaton over the text once.
//
// Patterns and text pass through one byte normalization table (case folding,
// 2NA expansion) before comparison, so every engine sees the same alphabet.
package fgrep

import (
	"iter"
	"strings"

	"github.com/coregx/ahocorasick"
	"github.com/grailbio/bio/biosimd"

	"github.com/coregx/agrep/search"
)

// Flags configures an Fgrep.
type Flags uint32

const (
	// ModeASCII compares bytes after normalization.
	ModeASCII Flags = 1 << iota

	// ModeACGT restricts patterns to upper-case A, C, G, T and N.
	ModeACGT

	// IgnoreCase folds letters before comparison (to upper case under
	// ModeACGT, lower case otherwise).
	IgnoreCase

	// TextExpanded2NA reads bytes 0..4 as A, C, G, T, N.
	TextExpanded2NA

	// AlgDumb selects the trie walk from every offset.
	AlgDumb

	// AlgBoyerMoore selects the reversed-trie skip search.
	AlgBoyerMoore

	// AlgAhoCorasick selects the failure-linked automaton.
	AlgAhoCorasick
)

// AlgMask covers the engine selectors.
const AlgMask = AlgDumb | AlgBoyerMoore | AlgAhoCorasick

var flagNames = []struct {
	flag Flags
	name string
}{
	{ModeASCII, "ModeASCII"},
	{ModeACGT, "ModeACGT"},
	{IgnoreCase, "IgnoreCase"},
	{TextExpanded2NA, "TextExpanded2NA"},
	{AlgDumb, "AlgDumb"},
	{AlgBoyerMoore, "AlgBoyerMoore"},
	{AlgAhoCorasick, "AlgAhoCorasick"},
}

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// String renders the set flags joined by "|".
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if len(parts) == 0 {
		return "0"
	}
	return strings.Join(parts, "|")
}

// Match is one occurrence of a pattern.
type Match struct {
	Position  int
	Length    int
	PatternID int // index into the slice given to New
}

// End returns the offset one past the match.
func (m Match) End() int {
	return m.Position + m.Length
}

// Callback receives matches. Returning search.Stop ends the scan.
type Callback func(Match) search.Action

// engine is one scan strategy over the normalized pattern set.
type engine interface {
	findAll(buf []byte, cb Callback) search.Action
	// byStart reports whether matches come out in start order.
	byStart() bool
}

// Fgrep is a compiled pattern set. It is safe for concurrent use until Free.
type Fgrep struct {
	flags    Flags
	norm     normalizer
	identity bool
	patterns [][]byte // normalized
	maxLen   int
	engine   engine

	// automaton answers IsMatch when normalization is the identity.
	automaton *ahocorasick.Automaton
}

// New compiles patterns under flags. Exactly one algorithm flag must be set.
// An empty set, an empty pattern, or a non-ACGTN pattern under ModeACGT is
// rejected.
func New(patterns [][]byte, flags Flags) (*Fgrep, error) {
	if err := validate(patterns, flags); err != nil {
		return nil, err
	}
	f := &Fgrep{flags: flags}
	f.norm, f.identity = newNormalizer(flags)

	f.patterns = make([][]byte, len(patterns))
	for i, p := range patterns {
		np := f.norm.apply(p)
		if flags.Has(ModeACGT) && biosimd.IsNonACGTNPresent(np) {
			return nil, search.Errorf(search.InvalidSymbol, "pattern %d is not upper-case ACGTN: %q", i, p)
		}
		f.patterns[i] = np
		f.maxLen = max(f.maxLen, len(np))
	}

	switch flags & AlgMask {
	case AlgDumb:
		f.engine = newDumb(&f.norm, f.identity, f.patterns)
	case AlgBoyerMoore:
		f.engine = newSkip(&f.norm, f.patterns)
	case AlgAhoCorasick:
		f.engine = newAhoCorasick(&f.norm, f.patterns)
	}

	if f.identity {
		b := ahocorasick.NewBuilder()
		for _, p := range f.patterns {
			b.AddPattern(p)
		}
		if auto, err := b.Build(); err == nil {
			f.automaton = auto
		}
	}
	return f, nil
}

func validate(patterns [][]byte, flags Flags) error {
	switch flags & AlgMask {
	case AlgDumb, AlgBoyerMoore, AlgAhoCorasick:
	default:
		return search.Errorf(search.InvalidConfiguration, "exactly one algorithm flag required, got %v", flags)
	}
	if flags.Has(ModeASCII) == flags.Has(ModeACGT) {
		return search.Errorf(search.InvalidConfiguration, "exactly one of ModeASCII and ModeACGT required, got %v", flags)
	}
	if len(patterns) == 0 {
		return search.Errorf(search.InvalidConfiguration, "empty pattern set")
	}
	for i, p := range patterns {
		if len(p) == 0 {
			return search.Errorf(search.InvalidConfiguration, "pattern %d is empty", i)
		}
	}
	return nil
}

// Len returns the number of patterns.
func (f *Fgrep) Len() int {
	return len(f.patterns)
}

// Flags returns the compile flags.
func (f *Fgrep) Flags() Flags {
	return f.flags
}

// FindAll reports every occurrence in buf. The dumb engine reports in start
// order (shortest first); the others in end order (longest first).
func (f *Fgrep) FindAll(buf []byte, cb Callback) search.Action {
	if f.engine == nil {
		return search.Continue
	}
	return f.engine.findAll(buf, cb)
}

// FindFirst returns the leftmost-starting occurrence, shortest first.
func (f *Fgrep) FindFirst(buf []byte) (Match, bool) {
	if f.engine == nil {
		return Match{}, false
	}
	var best Match
	found := false
	if f.engine.byStart() {
		f.engine.findAll(buf, func(m Match) search.Action {
			best, found = m, true
			return search.Stop
		})
		return best, found
	}
	// End-ordered engines: once a match ends too far right to have started
	// at or before best, nothing later can beat it.
	f.engine.findAll(buf, func(m Match) search.Action {
		if found && m.End()-f.maxLen > best.Position {
			return search.Stop
		}
		if !found || m.Position < best.Position ||
			(m.Position == best.Position && m.Length < best.Length) {
			best, found = m, true
		}
		return search.Continue
	})
	return best, found
}

// IsMatch reports whether any pattern occurs in buf.
func (f *Fgrep) IsMatch(buf []byte) bool {
	if f.engine == nil {
		return false
	}
	if f.automaton != nil {
		return f.automaton.IsMatch(buf)
	}
	_, ok := f.FindFirst(buf)
	return ok
}

// All returns an iterator over the matches of FindAll.
func (f *Fgrep) All(buf []byte) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		f.FindAll(buf, func(m Match) search.Action {
			if !yield(m) {
				return search.Stop
			}
			return search.Continue
		})
	}
}

// Free releases the compiled tables. Later searches find nothing. Free may
// be called more than once.
func (f *Fgrep) Free() {
	f.engine = nil
	f.automaton = nil
	f.patterns = nil
}
