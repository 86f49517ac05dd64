package core

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

const DefaultGamma = 0.9

var (
	ErrInvalidGamma       = errors.New("discount factor must satisfy 0 < gamma <= 1")
	ErrMissingTransitions = errors.New("transition model is missing")
)

// Outcome is one entry of a transition distribution: the probability of
// ending up in Next.
type Outcome[S comparable] struct {
	Prob float64
	Next S
}

// ActionSpec is either one action list shared by every state or a
// per-state mapping. Resolve through For.
type ActionSpec[S, A comparable] struct {
	uniform  []A
	perState map[S][]A
}

func UniformActions[S, A comparable](actions []A) ActionSpec[S, A] {
	return ActionSpec[S, A]{uniform: actions}
}

func PerStateActions[S, A comparable](actions map[S][]A) ActionSpec[S, A] {
	return ActionSpec[S, A]{perState: actions}
}

func (sp ActionSpec[S, A]) For(s S) []A {
	if sp.uniform != nil {
		return sp.uniform
	}
	return sp.perState[s]
}

// Model is what the solver needs from a decision process. *MDP is the
// general implementation; specializations embed it and may override T.
type Model[S, A comparable] interface {
	States() []S
	InitialState() S
	IsTerminal(S) bool
	Actions(S) []A
	R(S) float64
	T(S, A) ([]Outcome[S], error)
	Gamma() float64
}

// Params collects the pieces of an MDP. Transitions, Rewards and States
// are optional: states are derived from the transition table when
// omitted, rewards default to zero for every state, and a zero Gamma
// means DefaultGamma.
type Params[S, A comparable] struct {
	Init        S
	Actions     ActionSpec[S, A]
	Terminals   []S
	Transitions map[S]map[A][]Outcome[S]
	Rewards     map[S]float64
	States      []S
	Gamma       float64
}

// MDP is a Markov decision process: a state set, per-state actions, a
// transition model T(s,a) returning a list of (probability, next state)
// pairs, a reward per state and a discount factor. Immutable after New.
type MDP[S, A comparable] struct {
	init        S
	actions     ActionSpec[S, A]
	terminals   map[S]struct{}
	transitions map[S]map[A][]Outcome[S]
	rewards     map[S]float64
	states      []S
	stateSet    map[S]struct{}
	gamma       float64

	noAction A
}

func New[S, A comparable](p Params[S, A]) (*MDP[S, A], error) {
	gamma := p.Gamma
	if gamma == 0 {
		gamma = DefaultGamma
	}
	if gamma <= 0 || gamma > 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidGamma, p.Gamma)
	}

	states := p.States
	if states == nil {
		if p.Transitions == nil {
			logrus.Warn("could not derive states from transitions")
		} else {
			states = statesFromTransitions(p.Transitions)
		}
	}
	if len(p.Transitions) == 0 {
		logrus.Warn("transition table is empty")
	}

	rewards := p.Rewards
	if rewards == nil {
		rewards = make(map[S]float64, len(states))
		for _, s := range states {
			rewards[s] = 0
		}
	}

	m := &MDP[S, A]{
		init:        p.Init,
		actions:     p.Actions,
		terminals:   make(map[S]struct{}, len(p.Terminals)),
		transitions: p.Transitions,
		rewards:     rewards,
		states:      states,
		stateSet:    make(map[S]struct{}, len(states)),
		gamma:       gamma,
	}
	for _, t := range p.Terminals {
		m.terminals[t] = struct{}{}
	}
	for _, s := range states {
		m.stateSet[s] = struct{}{}
	}
	return m, nil
}

// statesFromTransitions unions the transition-table keys with every
// next state appearing in any outcome list.
func statesFromTransitions[S, A comparable](transitions map[S]map[A][]Outcome[S]) []S {
	seen := make(map[S]struct{})
	out := make([]S, 0, len(transitions))
	add := func(s S) {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	for s, actions := range transitions {
		add(s)
		for _, outcomes := range actions {
			for _, o := range outcomes {
				add(o.Next)
			}
		}
	}
	return out
}

func (m *MDP[S, A]) States() []S {
	return m.states
}

func (m *MDP[S, A]) InitialState() S {
	return m.init
}

func (m *MDP[S, A]) IsTerminal(s S) bool {
	_, ok := m.terminals[s]
	return ok
}

func (m *MDP[S, A]) HasState(s S) bool {
	_, ok := m.stateSet[s]
	return ok
}

// Actions returns the actions available in s: the no-action sentinel
// alone for terminal states, the configured list otherwise.
func (m *MDP[S, A]) Actions(s S) []A {
	if m.IsTerminal(s) {
		return []A{m.noAction}
	}
	return m.actions.For(s)
}

// R returns the reward for entering s. Zero for unknown states.
func (m *MDP[S, A]) R(s S) float64 {
	return m.rewards[s]
}

// T returns the outcome distribution of taking a in s.
func (m *MDP[S, A]) T(s S, a A) ([]Outcome[S], error) {
	if len(m.transitions) == 0 {
		return nil, ErrMissingTransitions
	}
	outcomes, ok := m.transitions[s][a]
	if !ok {
		return nil, fmt.Errorf("no transition entry for state %v, action %v", s, a)
	}
	return outcomes, nil
}

func (m *MDP[S, A]) Gamma() float64 {
	return m.gamma
}

var _ Model[int, Heading] = &MDP[int, Heading]{}
