package search

import "fmt"

// Match is one reported occurrence of an approximate pattern.
type Match struct {
	// Position is the offset of the first matched text byte.
	Position int
	// Length is the number of text bytes covered.
	Length int
	// Score is the edit distance of the alignment.
	Score int
}

// End returns the offset one past the last matched byte.
func (m Match) End() int {
	return m.Position + m.Length
}

// String returns a compact "[start,end) score=N" rendering.
func (m Match) String() string {
	return fmt.Sprintf("[%d,%d) score=%d", m.Position, m.End(), m.Score)
}

// Action tells an engine whether to keep scanning after a callback.
type Action uint8

const (
	// Continue resumes the scan.
	Continue Action = iota
	// Stop ends the scan after the current match.
	Stop
)

// Callback receives matches in left-to-right order.
type Callback func(Match) Action

// StartFinder resolves the start positions of matches that end at a known
// position. Engines that only find match ends delegate to one.
type StartFinder interface {
	// FindStarts scans backward from end (inclusive) and reports every
	// start accepted for a match whose forward scan produced score.
	FindStarts(threshold int, buf []byte, end, score int, cb Callback) Action
}
