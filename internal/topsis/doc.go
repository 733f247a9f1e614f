// Package topsis implements the TOPSIS multi-criteria decision method
// (Technique for Order of Preference by Similarity to Ideal Solution).
//
// Given a decision matrix of alternatives (rows) by numeric criteria
// (columns), a weight per criterion and an optimization direction per
// criterion (benefit or cost), the engine computes a closeness score in
// [0, 1] and a rank for every alternative:
//
//  1. Each column is divided by its Euclidean norm (vector normalization).
//  2. Normalized values are multiplied by the criterion weights.
//  3. The ideal-best and ideal-worst points are taken per column
//     (max/min for benefit criteria, min/max for cost criteria).
//  4. Each row's Euclidean distance to both ideal points is computed.
//  5. The closeness score is dWorst / (dBest + dWorst); rank 1 goes to
//     the highest score.
//
// The pipeline is pure and deterministic. All input problems are reported
// through the sentinel errors in this package before any arithmetic runs,
// except ErrDegenerateColumn which is detected during normalization.
package topsis
