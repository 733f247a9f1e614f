package topsis

import "errors"

// Every error returned by this package wraps one of these sentinels, so
// callers can classify failures with errors.Is while still receiving a
// message that names the check that failed.
var (
	// ErrShape indicates the input table does not have at least one data
	// row and three columns (one identifier plus two or more criteria).
	ErrShape = errors.New("input file must contain three or more columns")

	// ErrNonNumeric indicates a criteria cell that cannot be parsed as a
	// finite real number.
	ErrNonNumeric = errors.New("from 2nd to last columns must contain numeric values only")

	// ErrFormat indicates a malformed weights or impacts string: not
	// strictly comma-separated, a non-numeric or non-positive weight
	// token, or an impact token other than "+" or "-".
	ErrFormat = errors.New("weights and impacts must be comma-separated")

	// ErrCountMismatch indicates the weight count, impact count and
	// criteria column count are not all equal.
	ErrCountMismatch = errors.New("number of weights, impacts and criteria columns must be the same")

	// ErrDegenerateColumn indicates a criteria column whose values are all
	// zero; its Euclidean norm is zero and normalization is undefined.
	ErrDegenerateColumn = errors.New("criteria column contains only zeros")
)
