// Package sw implements Smith-Waterman local alignment search.
//
// The similarity of two sequences is the best score of any local alignment
// between them: a matching symbol pair scores +2, a mismatch -1 and every
// gap symbol -1. Scores never drop below zero, so an alignment restarts
// wherever its running score would turn negative. A perfect match of the
// whole query scores 2*len(query).
//
// The same matrix, with gaps costing -1 regardless of length, drives
// NewRefVariation, which widens a reference variant to its region of
// ambiguity.
package sw

import (
	"sync"

	"github.com/coregx/agrep/alphabet"
	"github.com/coregx/agrep/search"
)

const (
	matchScore    = 2
	mismatchScore = -1
	gapScore      = -1
)

// matrix is a rows x cols similarity matrix. Row 0 and column 0 are zero.
type matrix struct {
	cells  []int
	colMax []int
	cols   int
}

func (m *matrix) at(i, j int) int {
	return m.cells[i*m.cols+j]
}

// gapCost selects how a gap is charged.
type gapCost uint8

const (
	// gapLinear charges every gap symbol.
	gapLinear gapCost = iota
	// gapConstant charges a gap once whatever its length.
	gapConstant
)

// fill scores rows-1 row symbols against cols-1 column symbols. match
// reports whether row symbol i and column symbol j (both 0-based) pair up.
// It returns the first cell, in row-major order, holding the highest score.
func (m *matrix) fill(rows, cols int, gaps gapCost, match func(i, j int) bool) (best, row, col int) {
	n := rows * cols
	if cap(m.cells) < n {
		m.cells = make([]int, n)
	}
	if cap(m.colMax) < cols {
		m.colMax = make([]int, cols)
	}
	m.cells, m.colMax, m.cols = m.cells[:n], m.colMax[:cols], cols
	clear(m.cells[:cols])
	clear(m.colMax)

	// Under gapConstant the best gapped predecessor is the running maximum
	// of the row or column; under gapLinear it is the adjacent cell.
	for i := 1; i < rows; i++ {
		m.cells[i*cols] = 0
		rowMax := 0
		for j := 1; j < cols; j++ {
			sim := mismatchScore
			if match(i-1, j-1) {
				sim = matchScore
			}
			up, left := m.colMax[j], rowMax
			if gaps == gapLinear {
				up, left = m.cells[(i-1)*cols+j], m.cells[i*cols+j-1]
			}
			s := max(0, m.cells[(i-1)*cols+j-1]+sim, up+gapScore, left+gapScore)
			m.cells[i*cols+j] = s
			if s > best {
				best, row, col = s, i, j
			}
			rowMax = max(rowMax, s)
			m.colMax[j] = max(m.colMax[j], s)
		}
	}
	return best, row, col
}

// Pattern is a compiled Smith-Waterman query. It is safe for concurrent
// use; the matrix is pooled per search.
type Pattern struct {
	query []byte
	eq    []alphabet.ByteSet
	pool  sync.Pool
}

// New compiles query under flags. Symbols compare as the flags select; the
// usual choice is ModeASCII|IgnoreCase.
func New(query []byte, flags search.Flags) (*Pattern, error) {
	norm, err := search.NormalizePattern(query, flags)
	if err != nil {
		return nil, err
	}
	p := &Pattern{
		query: norm,
		eq:    make([]alphabet.ByteSet, len(norm)),
	}
	sets := flags.Comparer().Table(norm)
	for i, c := range norm {
		p.eq[i] = sets[c]
	}
	p.pool.New = func() any {
		return &matrix{}
	}
	return p, nil
}

// Len returns the query length.
func (p *Pattern) Len() int {
	return len(p.query)
}

// MaxScore returns the score of a perfect match.
func (p *Pattern) MaxScore() int {
	return matchScore * len(p.query)
}

// FindFirst aligns the query against buf and reports the best local
// alignment if its score reaches threshold. Thresholds above MaxScore are
// lowered to it. Position and Length give the aligned span of buf, traced
// back from the first best-scoring cell; Score is the similarity, higher
// being better. An empty buf never matches.
func (p *Pattern) FindFirst(threshold int, buf []byte) (search.Match, bool) {
	if len(buf) == 0 {
		return search.Match{}, false
	}
	m := p.pool.Get().(*matrix)
	defer p.pool.Put(m)

	score, row, col := m.fill(len(buf)+1, len(p.query)+1, gapLinear, func(i, j int) bool {
		return p.eq[j].Contains(buf[i])
	})
	if score < min(threshold, p.MaxScore()) {
		return search.Match{}, false
	}

	i, j := row, col
	for i > 0 && j > 0 && m.at(i, j) != 0 {
		diag, left, up := m.at(i-1, j-1), m.at(i, j-1), m.at(i-1, j)
		switch {
		case diag >= left && diag >= up:
			i--
			j--
		case diag < left:
			j--
		default:
			i--
		}
	}
	return search.Match{Position: i, Length: row - i, Score: score}, true
}
