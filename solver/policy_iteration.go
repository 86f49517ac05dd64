package solver

import (
	"math"
	"math/rand"
	"time"

	"github.com/zeu5/grid-mdp/core"
)

// DefaultSweeps is the number of evaluation passes per outer iteration
// of modified policy iteration.
const DefaultSweeps = 20

// ExpectedUtility is the one-step expected utility of taking a in s:
// the probability-weighted sum of u over the outcome states. u must
// cover every reachable next state.
func ExpectedUtility[S, A comparable](a A, s S, u map[S]float64, m core.Model[S, A]) (float64, error) {
	outcomes, err := m.T(s, a)
	if err != nil {
		return 0, err
	}
	v := 0.0
	for _, o := range outcomes {
		v += o.Prob * u[o.Next]
	}
	return v, nil
}

// Evaluate refines u toward the utility of following pi, by `sweeps`
// full passes of u[s] = R(s) + gamma * EU(pi[s], s, u). Each pass reuses
// values updated earlier in the same pass (Gauss-Seidel); the result is
// the approximation used by modified policy iteration, not the exact
// solution of the linear system. u is mutated in place and returned.
func Evaluate[S, A comparable](pi map[S]A, u map[S]float64, m core.Model[S, A], sweeps int) (map[S]float64, error) {
	states := m.States()
	gamma := m.Gamma()
	for i := 0; i < sweeps; i++ {
		for _, s := range states {
			eu, err := ExpectedUtility(pi[s], s, u, m)
			if err != nil {
				return nil, err
			}
			u[s] = m.R(s) + gamma*eu
		}
	}
	return u, nil
}

// PolicyIteration solves a model by alternating policy evaluation and
// greedy policy improvement until the policy stops changing.
type PolicyIteration[S, A comparable] struct {
	sweeps int
	rand   *rand.Rand
}

// NewPolicyIteration builds a solver. sweeps <= 0 means DefaultSweeps;
// a nil rng is seeded from the clock. The rng only picks the initial
// policy, which does not affect the fixed point.
func NewPolicyIteration[S, A comparable](sweeps int, rng *rand.Rand) *PolicyIteration[S, A] {
	if sweeps <= 0 {
		sweeps = DefaultSweeps
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &PolicyIteration[S, A]{
		sweeps: sweeps,
		rand:   rng,
	}
}

// Solve returns the converged policy together with the trace of maximal
// expected utilities recorded during improvement, one entry per state
// per outer iteration. Both belong to the caller. Any transition lookup
// failure aborts the solve with no partial result.
func (p *PolicyIteration[S, A]) Solve(m core.Model[S, A]) (map[S]A, []float64, error) {
	states := m.States()
	u := make(map[S]float64, len(states))
	pi := make(map[S]A, len(states))
	for _, s := range states {
		u[s] = 0
		actions := m.Actions(s)
		pi[s] = actions[p.rand.Intn(len(actions))]
	}

	trace := make([]float64, 0)
	for {
		if _, err := Evaluate(pi, u, m, p.sweeps); err != nil {
			return nil, nil, err
		}
		unchanged := true
		for _, s := range states {
			var best A
			bestVal := math.Inf(-1)
			for _, a := range m.Actions(s) {
				v, err := ExpectedUtility(a, s, u, m)
				if err != nil {
					return nil, nil, err
				}
				// first action reaching the maximum wins
				if v > bestVal {
					best = a
					bestVal = v
				}
			}
			trace = append(trace, bestVal)
			if best != pi[s] {
				pi[s] = best
				unchanged = false
			}
		}
		if unchanged {
			return pi, trace, nil
		}
	}
}
