package storage

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	sum := Summarize([]int{9, 2, 4, 4, 5, 5, 7, 4})

	if sum.Count != 8 || sum.Best != 9 {
		t.Errorf("Count/Best = %d/%d, expected 8/9", sum.Count, sum.Best)
	}
	if math.Abs(sum.Mean-5) > 1e-12 {
		t.Errorf("Mean = %f, expected 5", sum.Mean)
	}
	if want := math.Sqrt(32.0 / 7); math.Abs(sum.StdDev-want) > 1e-12 {
		t.Errorf("StdDev = %f, expected %f", sum.StdDev, want)
	}
	if sum.Median != 4 {
		t.Errorf("Median = %f, expected 4", sum.Median)
	}
	if sum.P90 != 9 {
		t.Errorf("P90 = %f, expected 9", sum.P90)
	}
}

func TestSummarizeEdgeCases(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("Summarize(nil) = %+v, expected zero", got)
	}

	one := Summarize([]int{12})
	if one.Count != 1 || one.Mean != 12 || one.StdDev != 0 || one.Median != 12 {
		t.Errorf("Summarize([12]) = %+v", one)
	}
}

func TestSummarizeRuns(t *testing.T) {
	runs := []RunRecord{{Score: 3}, {Score: 11}, {Score: 7}}
	sum := SummarizeRuns(runs)
	if sum.Best != 11 || sum.Median != 7 {
		t.Errorf("SummarizeRuns() = %+v", sum)
	}
}
