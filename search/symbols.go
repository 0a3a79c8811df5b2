package search

import "github.com/coregx/agrep/alphabet"

// Comparer returns the symbol comparison selected by f.
func (f Flags) Comparer() alphabet.Comparer {
	cmp := alphabet.Comparer{Expand2NA: f.Has(TextExpanded2NA)}
	switch {
	case f.Has(ModeASCII):
		cmp.IgnoreCase = f.Has(IgnoreCase)
	case f.Has(Pattern4NA):
		cmp.Mode = alphabet.IUPAC
	}
	return cmp
}

// NormalizePattern returns the pattern as the engines store it: lowercased
// for case-insensitive ASCII, and validated against the IUPAC alphabet for
// Pattern4NA, with unknown symbols read as N under AnythingElseIsN.
func NormalizePattern(pattern []byte, f Flags) ([]byte, error) {
	out := make([]byte, len(pattern))
	for i, c := range pattern {
		switch {
		case f.Has(ModeASCII):
			if f.Has(IgnoreCase) {
				c = alphabet.ToLower(c)
			}
		case f.Has(Pattern4NA):
			if !alphabet.IsIUPAC(c) {
				if !f.Has(AnythingElseIsN) {
					return nil, Errorf(InvalidSymbol, "symbol %q at offset %d is not an IUPAC code", c, i)
				}
				c = 'N'
			}
		}
		out[i] = c
	}
	return out, nil
}

// Reverse returns a reversed copy of b.
func Reverse(b []byte) []byte {
	r := make([]byte, len(b))
	for i, c := range b {
		r[len(b)-1-i] = c
	}
	return r
}
