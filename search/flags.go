// Package search defines the types shared by the approximate matchers: the
// option flags, the match record, the callback contract, typed compile
// errors, and the extend-merge state machine that folds runs of in-threshold
// positions into single matches.
package search

import (
	"strconv"
	"strings"
)

// Flags configures pattern compilation and search behavior.
type Flags uint32

const (
	// ModeASCII compares pattern and text bytes for equality.
	ModeASCII Flags = 1 << iota

	// IgnoreCase folds ASCII case (ModeASCII only).
	IgnoreCase

	// Pattern4NA reads the pattern as IUPAC codes; a pattern symbol matches
	// any text symbol whose base set intersects its own.
	Pattern4NA

	// TextExpanded2NA reads text bytes 0..4 as A, C, G, T, N.
	TextExpanded2NA

	// AnythingElseIsN reads pattern symbols outside the IUPAC alphabet as N
	// instead of rejecting them.
	AnythingElseIsN

	// AnchorLeft only reports matches that begin at buffer position 0.
	AnchorLeft

	// ExtendSame merges consecutive in-threshold positions with the same
	// score into one match, keeping the last of them.
	ExtendSame

	// ExtendBetter merges consecutive in-threshold positions while the score
	// does not get worse. A lower score moves the match; an equal one keeps
	// the earlier position on match ends and closes the match on starts.
	ExtendBetter

	// LeftMaintainScore requires the start search to keep the score found
	// by the end search instead of accepting anything within threshold.
	LeftMaintainScore

	// AlgDP selects the dynamic-programming matcher.
	AlgDP

	// AlgWuManber selects the Wu-Manber shift-vector matcher.
	AlgWuManber

	// AlgMyers selects the Myers bit-vector matcher (pattern <= 64).
	AlgMyers

	// AlgMyersUnlimited selects the multi-word Myers matcher.
	AlgMyersUnlimited
)

// AlgMask covers all algorithm selectors.
const AlgMask = AlgDP | AlgWuManber | AlgMyers | AlgMyersUnlimited

// ExtendMask covers both merge policies.
const ExtendMask = ExtendSame | ExtendBetter

var flagNames = []struct {
	flag Flags
	name string
}{
	{ModeASCII, "ModeASCII"},
	{IgnoreCase, "IgnoreCase"},
	{Pattern4NA, "Pattern4NA"},
	{TextExpanded2NA, "TextExpanded2NA"},
	{AnythingElseIsN, "AnythingElseIsN"},
	{AnchorLeft, "AnchorLeft"},
	{ExtendSame, "ExtendSame"},
	{ExtendBetter, "ExtendBetter"},
	{LeftMaintainScore, "LeftMaintainScore"},
	{AlgDP, "AlgDP"},
	{AlgWuManber, "AlgWuManber"},
	{AlgMyers, "AlgMyers"},
	{AlgMyersUnlimited, "AlgMyersUnlimited"},
}

// Has reports whether all bits of mask are set.
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// Any reports whether any bit of mask is set.
func (f Flags) Any(mask Flags) bool {
	return f&mask != 0
}

// String renders the set flags joined by "|".
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	if rest := f &^ (AlgMyersUnlimited<<1 - 1); rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}
	return strings.Join(parts, "|")
}
