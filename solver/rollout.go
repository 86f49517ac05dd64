package solver

import (
	"fmt"
	"time"

	erand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/zeu5/grid-mdp/core"
)

// RolloutResult is one simulated episode under a fixed policy.
type RolloutResult[S comparable] struct {
	States     []S
	Return     float64 // discounted sum of rewards collected
	Steps      int
	Terminated bool // reached a terminal state before the horizon
}

// Rollout simulates pi from the model's initial state, sampling each
// next state from the outcome distribution, until a terminal state or
// the horizon. A nil src is seeded from the clock.
func Rollout[S, A comparable](m core.Model[S, A], pi map[S]A, horizon int, src erand.Source) (*RolloutResult[S], error) {
	if src == nil {
		src = erand.NewSource(uint64(time.Now().UnixNano()))
	}

	s := m.InitialState()
	res := &RolloutResult[S]{
		States: []S{s},
	}
	discount := 1.0
	for step := 0; step < horizon; step++ {
		res.Return += discount * m.R(s)
		if m.IsTerminal(s) {
			res.Terminated = true
			return res, nil
		}
		outcomes, err := m.T(s, pi[s])
		if err != nil {
			return nil, err
		}
		weights := make([]float64, len(outcomes))
		for i, o := range outcomes {
			weights[i] = o.Prob
		}
		i, ok := sampleuv.NewWeighted(weights, src).Take()
		if !ok {
			return nil, fmt.Errorf("no outcome to sample for state %v", s)
		}
		s = outcomes[i].Next
		res.States = append(res.States, s)
		res.Steps++
		discount *= m.Gamma()
	}
	return res, nil
}
