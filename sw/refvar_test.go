package sw

import (
	"errors"
	"testing"

	"github.com/coregx/agrep/search"
)

func TestRefVariation(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		pos    int
		delLen int
		ins    string
		alg    Alg
		want   string
	}{
		{"bounds_ra", "TAACCCTAAC", 0, 5, "TAGG", AlgRA, "TAGG"},
		{"bounds_sw", "TAACCCTAAC", 0, 5, "TAGG", AlgSW, "AGGC"},
		{"inside_ra", "NNNNNNNNNNTAACCCTAAC", 5, 10, "CCCCTTAGG", AlgRA, "CCCCTTAGGC"},
		{"inside_sw", "NNNNNNNNNNTAACCCTAAC", 5, 10, "CCCCTTAGG", AlgSW, "NNNNNCCCCTTAGGCTAA"},
		{"leading_ra", "NNNNNTAACCCTAAC", 0, 10, "CCCCTTAGG", AlgRA, "CCCCTTAGGC"},
		{"leading_sw", "NNNNNTAACCCTAAC", 0, 10, "CCCCTTAGG", AlgSW, "CCCCTTAGGCTAA"},
		{"substitution_ra", "ACGTACGT", 2, 1, "A", AlgRA, "A"},
		{"homopolymer_deletion_ra", "GCAAAATG", 3, 1, "", AlgRA, "AAA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewRefVariation([]byte(tt.ref), tt.pos, tt.delLen, []byte(tt.ins), tt.alg)
			if err != nil {
				t.Fatalf("NewRefVariation: %v", err)
			}
			if got, _ := v.Allele(); string(got) != tt.want {
				t.Errorf("%s allele = %q, want %q", tt.alg, got, tt.want)
			}
		})
	}
}

func TestRefVariationBounds(t *testing.T) {
	tests := []struct {
		name                      string
		ref                       string
		pos, delLen               int
		ins                       string
		alg                       Alg
		alleleStart, alleleOnRef  int
		query                     string
		queryStart, queryLenOnRef int
	}{
		{"replacement_ra", "TAACCCTAAC", 0, 5, "TAGG", AlgRA, 0, 5, "TAGGC", 0, 6},
		{"replacement_sw", "TAACCCTAAC", 0, 5, "TAGG", AlgSW, 1, 5, "TAGGCT", 0, 7},
		{"substitution_ra", "ACGTACGT", 2, 1, "A", AlgRA, 2, 1, "A", 2, 1},
		{"homopolymer_deletion_ra", "GCAAAATG", 3, 1, "", AlgRA, 2, 4, "CAAAT", 1, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewRefVariation([]byte(tt.ref), tt.pos, tt.delLen, []byte(tt.ins), tt.alg)
			if err != nil {
				t.Fatalf("NewRefVariation: %v", err)
			}
			if _, start := v.Allele(); start != tt.alleleStart {
				t.Errorf("allele start = %d, want %d", start, tt.alleleStart)
			}
			if got := v.AlleleLenOnRef(); got != tt.alleleOnRef {
				t.Errorf("AlleleLenOnRef = %d, want %d", got, tt.alleleOnRef)
			}
			query, start := v.SearchQuery()
			if string(query) != tt.query || start != tt.queryStart {
				t.Errorf("SearchQuery = %q at %d, want %q at %d", query, start, tt.query, tt.queryStart)
			}
			if got := v.SearchQueryLenOnRef(); got != tt.queryLenOnRef {
				t.Errorf("SearchQueryLenOnRef = %d, want %d", got, tt.queryLenOnRef)
			}
		})
	}
}

func TestRefVariationErrors(t *testing.T) {
	ref := []byte("ACGTAGCTATGCAGCTCTGATGCAGTCGATCGATCG")
	tests := []struct {
		name   string
		ref    []byte
		pos    int
		delLen int
		ins    string
		alg    Alg
	}{
		{"empty_variation", ref, 0, 0, "", AlgSW},
		{"empty_variation_ra", ref, 0, 0, "", AlgRA},
		{"empty_reference", nil, 0, 0, "A", AlgSW},
		{"negative_position", ref, -1, 1, "", AlgRA},
		{"deletion_past_end", ref, len(ref) - 1, 2, "", AlgRA},
		{"unknown_algorithm", ref, 0, 1, "", Alg(9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRefVariation(tt.ref, tt.pos, tt.delLen, []byte(tt.ins), tt.alg)
			if !errors.Is(err, search.ErrInvalidConfiguration) {
				t.Errorf("err = %v, want ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestAlgString(t *testing.T) {
	if AlgSW.String() != "sw" || AlgRA.String() != "ra" || Alg(9).String() != "unknown" {
		t.Errorf("got %q %q %q", AlgSW, AlgRA, Alg(9))
	}
}
