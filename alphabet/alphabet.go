// Package alphabet holds the nucleotide symbol tables shared by every matcher:
// the IUPAC ambiguity codes, the packed 4-bit (4NA) and 2-bit (2NA) encodings,
// and per-symbol match sets used to fill pattern bit tables.
//
// The tables are process-wide and read-only. They are built on first use
// under a sync.Once, so concurrent first calls are safe.
package alphabet

import "sync"

// Na4Key lists the IUPAC symbols in 4NA code order. The index of a symbol is
// its 4NA code, which is also its base set: A=1, C=2, G=4, T=8.
const Na4Key = " ACMGRSVTWYHKDBN"

// Na2Key lists the symbols for expanded 2NA text bytes 0..4.
const Na2Key = "ACGTN"

// Base bits of a 4NA code.
const (
	BaseA uint8 = 1 << iota
	BaseC
	BaseG
	BaseT
)

var (
	tablesOnce sync.Once
	// codes maps a byte to its 4NA code; 0 for bytes outside the alphabet.
	codes [256]uint8
	// iupac marks bytes that are IUPAC symbols, including the gap code.
	iupac [256]bool
)

func initTables() {
	for code := 1; code < len(Na4Key); code++ {
		c := Na4Key[code]
		codes[c] = uint8(code)
		codes[c|0x20] = uint8(code)
		iupac[c] = true
		iupac[c|0x20] = true
	}
	codes['U'] = BaseT
	codes['u'] = BaseT
	iupac['U'] = true
	iupac['u'] = true
	iupac[' '] = true
	iupac['-'] = true
}

// Code4NA returns the 4NA code of c and whether c is an IUPAC symbol.
// Lowercase letters and U are accepted. The gap symbols ' ' and '-' are
// valid with code 0 (no bases).
func Code4NA(c byte) (code uint8, ok bool) {
	tablesOnce.Do(initTables)
	return codes[c], iupac[c]
}

// IsIUPAC reports whether c is a recognized IUPAC symbol.
func IsIUPAC(c byte) bool {
	tablesOnce.Do(initTables)
	return iupac[c]
}

// Na4Match reports whether pattern symbol p can match text symbol c: either
// they are the same byte or both are IUPAC codes whose base sets intersect.
// It is reflexive and symmetric.
func Na4Match(p, c byte) bool {
	if p == c {
		return true
	}
	tablesOnce.Do(initTables)
	return codes[p]&codes[c] != 0
}

// Expand2NA maps an expanded 2NA text byte (0..4) to its letter. Other bytes
// are returned unchanged.
func Expand2NA(b byte) byte {
	if b < byte(len(Na2Key)) {
		return Na2Key[b]
	}
	return b
}

// ToUpper folds an ASCII letter to uppercase.
func ToUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// ToLower folds an ASCII letter to lowercase.
func ToLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
