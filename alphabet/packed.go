package alphabet

import (
	"fmt"

	"github.com/grailbio/bio/biosimd"
)

// na4Letters maps a 4NA nibble to its uppercase IUPAC letter.
var na4Letters = func() biosimd.NibbleLookupTable {
	var t [16]byte
	copy(t[:], Na4Key)
	return biosimd.MakeNibbleLookupTable(t)
}()

// Unpack2NA expands len(dst) bases from packed 2NA src (four bases per byte,
// first base in the two high bits) into codes 0..3, ready for matchers
// compiled with expanded-2NA text.
func Unpack2NA(dst, src []byte) {
	if need := (len(dst) + 3) / 4; len(src) < need {
		panic(fmt.Sprintf("alphabet: Unpack2NA needs %d source bytes, got %d", need, len(src)))
	}
	for i := range dst {
		shift := 6 - 2*(i&3)
		dst[i] = (src[i>>2] >> shift) & 3
	}
}

// Unpack4NA expands len(dst) symbols from packed 4NA src (two symbols per
// byte, first symbol in the high nibble) into IUPAC letters.
func Unpack4NA(dst, src []byte) {
	need := (len(dst) + 1) / 2
	if len(src) < need {
		panic(fmt.Sprintf("alphabet: Unpack4NA needs %d source bytes, got %d", need, len(src)))
	}
	biosimd.UnpackAndReplaceSeq(dst, src[:need], &na4Letters)
}
