package storage

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes the score distribution of a set of runs.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Median float64
	P90    float64
	Best   int
}

// Summarize computes score statistics. An empty slice yields a zero Summary.
func Summarize(scores []int) Summary {
	if len(scores) == 0 {
		return Summary{}
	}

	xs := make([]float64, len(scores))
	best := scores[0]
	for i, s := range scores {
		xs[i] = float64(s)
		best = max(best, s)
	}
	slices.Sort(xs)

	sum := Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, xs, nil),
		Best:   best,
	}
	if len(xs) > 1 {
		sum.StdDev = stat.StdDev(xs, nil)
	}
	return sum
}

// SummarizeRuns computes score statistics over runs.
func SummarizeRuns(runs []RunRecord) Summary {
	scores := make([]int, len(runs))
	for i, r := range runs {
		scores[i] = r.Score
	}
	return Summarize(scores)
}
