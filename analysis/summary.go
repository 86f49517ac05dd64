package analysis

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// TraceSummary condenses the expected-utility trace of one solve.
type TraceSummary struct {
	Entries int
	Mean    float64
	Std     float64
	Min     float64
	Max     float64
}

// Summarize computes the summary of a solve trace. An empty trace
// yields the zero summary.
func Summarize(trace []float64) TraceSummary {
	if len(trace) == 0 {
		return TraceSummary{}
	}
	s := TraceSummary{
		Entries: len(trace),
		Mean:    stat.Mean(trace, nil),
		Min:     floats.Min(trace),
		Max:     floats.Max(trace),
	}
	if len(trace) > 1 {
		s.Std = stat.StdDev(trace, nil)
	}
	return s
}
