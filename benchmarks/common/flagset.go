package common

import (
	"path"

	"github.com/zeu5/grid-mdp/util"
)

type Flags struct {
	GridFlags
	SweepFlags
	SavePath string
	Seed     int64
	Sweeps   int
	Debug    bool
}

type GridFlags struct {
	Cols         int
	Rows         int
	ObstacleProb float64
	StepReward   float64
	Gamma        float64
}

type SweepFlags struct {
	MinSize  int
	MaxSize  int
	SizeStep int
	Rollouts int
	Horizon  int
}

func DefaultFlags() *Flags {
	return &Flags{
		GridFlags: GridFlags{
			Cols:         5,
			Rows:         5,
			ObstacleProb: 0.1,
			StepReward:   -0.04,
			Gamma:        0.9,
		},
		SweepFlags: SweepFlags{
			MinSize:  2,
			MaxSize:  102,
			SizeStep: 20,
			Rollouts: 10,
			Horizon:  100,
		},
		SavePath: "results",
		Seed:     0,
		Sweeps:   20,
		Debug:    false,
	}
}

func (f *Flags) Record() {
	util.SaveJson(path.Join(f.SavePath, "config.json"), f)
}
