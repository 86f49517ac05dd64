package core

import (
	"fmt"
	"math"
)

const probTolerance = 0.001

// CheckConsistency validates the model against its transition table and
// returns every violated invariant. It is diagnostic tooling for tests
// and debugging, never invoked on the solve path.
func (m *MDP[S, A]) CheckConsistency() []error {
	var errs []error

	derived := statesFromTransitions(m.transitions)
	if len(derived) != len(m.stateSet) {
		errs = append(errs, fmt.Errorf("state set has %d states, transition table yields %d", len(m.stateSet), len(derived)))
	} else {
		for _, s := range derived {
			if _, ok := m.stateSet[s]; !ok {
				errs = append(errs, fmt.Errorf("transition table references state %v outside the state set", s))
			}
		}
	}

	if !m.HasState(m.init) {
		errs = append(errs, fmt.Errorf("initial state %v is not in the state set", m.init))
	}

	for s := range m.stateSet {
		if _, ok := m.rewards[s]; !ok {
			errs = append(errs, fmt.Errorf("state %v has no reward entry", s))
		}
	}
	for s := range m.rewards {
		if !m.HasState(s) {
			errs = append(errs, fmt.Errorf("reward entry for unknown state %v", s))
		}
	}

	for t := range m.terminals {
		if !m.HasState(t) {
			errs = append(errs, fmt.Errorf("terminal %v is not in the state set", t))
		}
	}

	for s, actions := range m.transitions {
		for a, outcomes := range actions {
			sum := 0.0
			for _, o := range outcomes {
				sum += o.Prob
			}
			if math.Abs(sum-1) >= probTolerance {
				errs = append(errs, fmt.Errorf("outcome probabilities for state %v, action %v sum to %v", s, a, sum))
			}
		}
	}

	return errs
}
