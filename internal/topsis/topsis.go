package topsis

import (
	"fmt"
	"math"
)

// ResultRow pairs an alternative's closeness score with its rank. Results
// are aligned with the input matrix by index; they are never reordered.
type ResultRow struct {
	Score float64
	Rank  int
}

// Result holds one ResultRow per input row, in input order.
type Result []ResultRow

// Rank runs the full TOPSIS pipeline over a validated matrix and returns a
// score and rank per row, aligned with the input order. The weight and
// impact counts must match the matrix column count.
func Rank(m Matrix, w Weights, impacts Impacts) (Result, error) {
	if len(m) == 0 || m.Columns() < 2 {
		return nil, fmt.Errorf("%w: need at least 1 row and 2 criteria columns", ErrShape)
	}
	if len(w) != m.Columns() || len(impacts) != m.Columns() {
		return nil, fmt.Errorf("%w (criteria=%d, weights=%d, impacts=%d)",
			ErrCountMismatch, m.Columns(), len(w), len(impacts))
	}

	weighted, err := normalize(m)
	if err != nil {
		return nil, err
	}
	applyWeights(weighted, w)

	best, worst := idealVectors(weighted, impacts)
	dBest, dWorst := distances(weighted, best, worst)
	scores := closeness(dBest, dWorst)
	ranks := assignRanks(scores)

	res := make(Result, len(scores))
	for i := range scores {
		res[i] = ResultRow{Score: scores[i], Rank: ranks[i]}
	}
	return res, nil
}

// normalize divides every column by its Euclidean norm and returns the
// result as a new matrix. A column of all zeros has no defined direction
// and is rejected.
func normalize(m Matrix) (Matrix, error) {
	cols := m.Columns()
	norms := make([]float64, cols)
	for j := 0; j < cols; j++ {
		sum := 0.0
		for i := range m {
			sum += m[i][j] * m[i][j]
		}
		norms[j] = math.Sqrt(sum)
		if norms[j] == 0 {
			return nil, fmt.Errorf("%w: column %d", ErrDegenerateColumn, j+1)
		}
	}

	out := make(Matrix, len(m))
	for i := range m {
		out[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			out[i][j] = m[i][j] / norms[j]
		}
	}
	return out, nil
}

func applyWeights(m Matrix, w Weights) {
	for i := range m {
		for j := range m[i] {
			m[i][j] *= w[j]
		}
	}
}

// idealVectors returns the ideal-best and ideal-worst points of the
// weighted matrix. For benefit criteria the best is the column maximum;
// for cost criteria the assignment is reversed.
func idealVectors(m Matrix, impacts Impacts) (best, worst []float64) {
	cols := m.Columns()
	best = make([]float64, cols)
	worst = make([]float64, cols)
	for j := 0; j < cols; j++ {
		lo, hi := m[0][j], m[0][j]
		for i := range m {
			if m[i][j] < lo {
				lo = m[i][j]
			}
			if m[i][j] > hi {
				hi = m[i][j]
			}
		}
		if impacts[j] == Benefit {
			best[j], worst[j] = hi, lo
		} else {
			best[j], worst[j] = lo, hi
		}
	}
	return best, worst
}

func distances(m Matrix, best, worst []float64) (dBest, dWorst []float64) {
	dBest = make([]float64, len(m))
	dWorst = make([]float64, len(m))
	for i := range m {
		sb, sw := 0.0, 0.0
		for j := range m[i] {
			db := m[i][j] - best[j]
			dw := m[i][j] - worst[j]
			sb += db * db
			sw += dw * dw
		}
		dBest[i] = math.Sqrt(sb)
		dWorst[i] = math.Sqrt(sw)
	}
	return dBest, dWorst
}

// closeness computes dWorst / (dBest + dWorst) per row. A row at zero
// distance from both ideals (only possible when every criterion has a
// single distinct weighted value, e.g. a one-row matrix) is defined to
// score 0.5 rather than NaN.
func closeness(dBest, dWorst []float64) []float64 {
	scores := make([]float64, len(dBest))
	for i := range dBest {
		total := dBest[i] + dWorst[i]
		if total == 0 {
			scores[i] = 0.5
			continue
		}
		scores[i] = dWorst[i] / total
	}
	return scores
}
