package topsis

import (
	"math"
	"sort"
)

// rankPrecision is the number of decimal places scores are rounded to
// before rank comparison. Two rows share a rank only when their scores are
// exactly equal after this rounding.
const rankPrecision = 4

func roundScore(s float64) float64 {
	pow := math.Pow(10, rankPrecision)
	return math.Round(s*pow) / pow
}

// assignRanks maps each score to a dense rank: 1 for the highest rounded
// score, incremented by one for every distinct rounded score below it. The
// sort is stable, so rows with equal rounded scores keep input order, and
// the returned slice is aligned with the input.
func assignRanks(scores []float64) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return roundScore(scores[order[a]]) > roundScore(scores[order[b]])
	})

	ranks := make([]int, len(scores))
	rank := 0
	prev := math.NaN()
	for _, i := range order {
		r := roundScore(scores[i])
		if r != prev {
			rank++
			prev = r
		}
		ranks[i] = rank
	}
	return ranks
}
