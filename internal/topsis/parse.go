package topsis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Matrix is the decision matrix: one row per alternative, one column per
// criterion. All rows have the same length.
type Matrix [][]float64

// Columns returns the number of criteria columns. Zero for an empty matrix.
func (m Matrix) Columns() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Weights holds one positive multiplier per criterion. Weights need not sum
// to one; they are applied as-is after vector normalization.
type Weights []float64

// Impact is the optimization direction of a criterion.
type Impact int

const (
	// Benefit means higher values are better ("+").
	Benefit Impact = iota
	// Cost means lower values are better ("-").
	Cost
)

// Impacts holds one direction per criterion.
type Impacts []Impact

// Input is a fully validated engine input: matrix, weights and impacts with
// matching criteria counts, plus the identifier column carried through
// untouched.
type Input struct {
	IDs     []string
	Matrix  Matrix
	Weights Weights
	Impacts Impacts
}

// ParseInput validates a raw table together with the weights and impacts
// strings and returns the validated triple. rows must be data rows only
// (no header), each with an identifier in the first cell followed by the
// criteria cells. It is a pure parse-and-check step; no arithmetic runs.
func ParseInput(rows [][]string, weights, impacts string) (*Input, error) {
	ids, m, err := ParseTable(rows)
	if err != nil {
		return nil, err
	}
	w, err := ParseWeights(weights)
	if err != nil {
		return nil, err
	}
	imp, err := ParseImpacts(impacts)
	if err != nil {
		return nil, err
	}
	if len(w) != m.Columns() || len(imp) != m.Columns() {
		return nil, fmt.Errorf("%w (criteria=%d, weights=%d, impacts=%d)",
			ErrCountMismatch, m.Columns(), len(w), len(imp))
	}
	return &Input{IDs: ids, Matrix: m, Weights: w, Impacts: imp}, nil
}

// ParseTable splits raw data rows into the identifier column and the
// numeric criteria matrix. Every row needs at least three cells and every
// criteria cell must parse as a finite real number.
func ParseTable(rows [][]string) ([]string, Matrix, error) {
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: no data rows", ErrShape)
	}
	width := len(rows[0])
	if width < 3 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrShape, width)
	}

	ids := make([]string, len(rows))
	m := make(Matrix, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, nil, fmt.Errorf("%w: row %d has %d columns, expected %d", ErrShape, i+1, len(row), width)
		}
		ids[i] = row[0]
		m[i] = make([]float64, width-1)
		for j, cell := range row[1:] {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, nil, fmt.Errorf("%w: row %d column %d is %q", ErrNonNumeric, i+1, j+2, cell)
			}
			m[i][j] = v
		}
	}
	return ids, m, nil
}

// ParseWeights parses a strictly comma-separated list of positive numbers,
// e.g. "1,1,2,0.5".
func ParseWeights(s string) (Weights, error) {
	tokens, err := splitCSV(s, "weights")
	if err != nil {
		return nil, err
	}
	w := make(Weights, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: weights must be numeric values, got %q", ErrFormat, tok)
		}
		if v <= 0 {
			return nil, fmt.Errorf("%w: weights must be positive, got %q", ErrFormat, tok)
		}
		w[i] = v
	}
	return w, nil
}

// ParseImpacts parses a strictly comma-separated list of "+" and "-"
// tokens, e.g. "+,+,-".
func ParseImpacts(s string) (Impacts, error) {
	tokens, err := splitCSV(s, "impacts")
	if err != nil {
		return nil, err
	}
	imp := make(Impacts, len(tokens))
	for i, tok := range tokens {
		switch tok {
		case "+":
			imp[i] = Benefit
		case "-":
			imp[i] = Cost
		default:
			return nil, fmt.Errorf("%w: impacts must be either '+' or '-', got %q", ErrFormat, tok)
		}
	}
	return imp, nil
}

func splitCSV(s, what string) ([]string, error) {
	if !strings.Contains(s, ",") {
		return nil, fmt.Errorf("%w: %s %q are not separated by ',' (comma)", ErrFormat, what, s)
	}
	parts := strings.Split(s, ",")
	tokens := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: %s contain an empty token", ErrFormat, what)
		}
		tokens[i] = p
	}
	return tokens, nil
}
