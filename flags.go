package agrep

import "github.com/coregx/agrep/search"

// Flags configures compilation and search. It is search.Flags.
type Flags = search.Flags

// Match is one reported occurrence. It is search.Match.
type Match = search.Match

// Action is returned by callbacks to continue or stop a scan.
type Action = search.Action

// Callback receives matches in left-to-right order.
type Callback = search.Callback

// Callback results.
const (
	Continue = search.Continue
	Stop     = search.Stop
)

// Compile flags; see package search for details.
const (
	ModeASCII         = search.ModeASCII
	IgnoreCase        = search.IgnoreCase
	Pattern4NA        = search.Pattern4NA
	TextExpanded2NA   = search.TextExpanded2NA
	AnythingElseIsN   = search.AnythingElseIsN
	AnchorLeft        = search.AnchorLeft
	ExtendSame        = search.ExtendSame
	ExtendBetter      = search.ExtendBetter
	LeftMaintainScore = search.LeftMaintainScore
	AlgDP             = search.AlgDP
	AlgWuManber       = search.AlgWuManber
	AlgMyers          = search.AlgMyers
	AlgMyersUnlimited = search.AlgMyersUnlimited
)
