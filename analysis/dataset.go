package analysis

import (
	"time"

	"github.com/zeu5/grid-mdp/util"
)

// SweepDataset accumulates one record per solved environment size in a
// benchmark sweep. Saved as JSON at the end of a run.
type SweepDataset struct {
	Sizes      []int
	States     []int
	DurationMS []float64
	AvgUtility []float64
}

func NewSweepDataset() *SweepDataset {
	return &SweepDataset{
		Sizes:      make([]int, 0),
		States:     make([]int, 0),
		DurationMS: make([]float64, 0),
		AvgUtility: make([]float64, 0),
	}
}

func (d *SweepDataset) Add(size, states int, elapsed time.Duration, trace []float64) {
	d.Sizes = append(d.Sizes, size)
	d.States = append(d.States, states)
	d.DurationMS = append(d.DurationMS, float64(elapsed.Microseconds())/1000)
	d.AvgUtility = append(d.AvgUtility, Summarize(trace).Mean)
}

func (d *SweepDataset) Len() int {
	return len(d.Sizes)
}

func (d *SweepDataset) Copy() *SweepDataset {
	return &SweepDataset{
		Sizes:      util.CopyIntSlice(d.Sizes),
		States:     util.CopyIntSlice(d.States),
		DurationMS: util.CopyFloatSlice(d.DurationMS),
		AvgUtility: util.CopyFloatSlice(d.AvgUtility),
	}
}

func (d *SweepDataset) Save(path string) error {
	return util.SaveJson(path, d)
}
