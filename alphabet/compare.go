package alphabet

// Mode selects how a pattern symbol is compared to a text symbol.
type Mode uint8

const (
	// ASCII compares bytes for equality.
	ASCII Mode = iota
	// IUPAC compares by base set intersection (see Na4Match).
	IUPAC
)

// Comparer decides whether a pattern symbol matches a text byte. The zero
// value compares bytes exactly.
type Comparer struct {
	Mode Mode
	// IgnoreCase folds ASCII case. Only meaningful in ASCII mode; IUPAC
	// comparison is always case-insensitive.
	IgnoreCase bool
	// Expand2NA reads text bytes 0..4 as A, C, G, T, N.
	Expand2NA bool
}

// Match reports whether pattern symbol p matches text byte t.
func (c Comparer) Match(p, t byte) bool {
	if c.Expand2NA {
		t = Expand2NA(t)
	}
	switch c.Mode {
	case IUPAC:
		return Na4Match(p, t)
	default:
		if p == t {
			return true
		}
		return c.IgnoreCase && ToLower(p) == ToLower(t)
	}
}

// Set returns every text byte that p matches.
func (c Comparer) Set(p byte) ByteSet {
	var s ByteSet
	for t := 0; t < 256; t++ {
		if c.Match(p, byte(t)) {
			s.Add(byte(t))
		}
	}
	return s
}

// Table returns the per-symbol match sets for every distinct symbol of
// pattern, indexed by the pattern byte.
func (c Comparer) Table(pattern []byte) map[byte]ByteSet {
	sets := make(map[byte]ByteSet, len(pattern))
	for _, p := range pattern {
		if _, ok := sets[p]; !ok {
			sets[p] = c.Set(p)
		}
	}
	return sets
}
