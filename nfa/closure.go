package nfa

import "github.com/lexgen/lexgen/internal/stateset"

// NewStateSet allocates a state set sized to hold any subset of n's states.
func (n *NFA) NewStateSet() *stateset.Set {
	return stateset.New(uint32(len(n.States)))
}

// StartSet returns the ε-closure of {n.Start}, the initial configuration
// for simulating n.
func (n *NFA) StartSet() *stateset.Set {
	s := n.NewStateSet()
	s.Insert(uint32(n.Start))
	return EpsilonClosure(n, s)
}

// EpsilonClosure computes the smallest superset of states closed under
// ε-transitions (spec.md §4.B), via an iterative worklist. It is
// idempotent: EpsilonClosure(n, EpsilonClosure(n, s)) == EpsilonClosure(n, s).
func EpsilonClosure(n *NFA, states *stateset.Set) *stateset.Set {
	closure := states.Clone()
	stack := append([]uint32(nil), states.Values()...)

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch st := n.States[id]; st.Kind {
		case KindEpsilon:
			if t := uint32(st.Next); !closure.Contains(t) {
				closure.Insert(t)
				stack = append(stack, t)
			}
		case KindSplit:
			for _, target := range [2]StateID{st.A, st.B} {
				if t := uint32(target); !closure.Contains(t) {
					closure.Insert(t)
					stack = append(stack, t)
				}
			}
		}
	}

	return closure
}

// Move returns the union of c-transitions out of states, without taking the
// ε-closure of the result (callers that need the closure call
// EpsilonClosure separately, per spec.md §4.B).
func Move(n *NFA, states *stateset.Set, c byte) *stateset.Set {
	result := n.NewStateSet()
	for _, id := range states.Values() {
		switch st := n.States[id]; st.Kind {
		case KindChar:
			if st.Char == c {
				result.Insert(uint32(st.Next))
			}
		case KindCharSet:
			if st.Set.Contains(c) {
				result.Insert(uint32(st.Next))
			}
		}
	}
	return result
}

// IsAccepting reports whether states contains n's accept state.
func (n *NFA) IsAccepting(states *stateset.Set) bool {
	return states.Contains(uint32(n.Accept))
}
