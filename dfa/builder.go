package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lexgen/lexgen/internal/stateset"
	"github.com/lexgen/lexgen/nfa"
)

// RuleNFA pairs a compiled NFA with the index of the rule it was compiled
// from. Index order is declaration order and doubles as priority: when two
// rules accept the same maximal-length lexeme, the lower index wins
// (spec.md §4.C, §4.D).
type RuleNFA struct {
	NFA   *nfa.NFA
	Index int
}

// bundle maps a rule index to that rule's live NFA configuration (already
// ε-closed). Rules with no live states are omitted entirely, so an empty
// bundle means "this DFA state is dead" and is never interned.
type bundle map[int]*stateset.Set

// Build runs the multi-NFA subset construction of spec.md §4.C over rnfas,
// in declaration order, and returns the resulting DFA. rnfas must be
// non-empty.
func Build(rnfas []RuleNFA) *DFA {
	interned := make(map[string]int)
	var states []*State
	var bundles []bundle

	intern := func(bd bundle) int {
		key := canonicalKey(bd)
		if id, ok := interned[key]; ok {
			return id
		}
		id := len(states)
		interned[key] = id
		states = append(states, stateFromBundle(bd, rnfas))
		bundles = append(bundles, bd)
		return id
	}

	start := make(bundle, len(rnfas))
	for _, rn := range rnfas {
		set := rn.NFA.StartSet()
		if !set.IsEmpty() {
			start[rn.Index] = set
		}
	}

	d := &DFA{Start: intern(start)}

	for id := 0; id < len(bundles); id++ {
		cur := bundles[id]
		st := states[id]
		for c := alphabetLo; c <= alphabetHi; c++ {
			next := make(bundle)
			for _, rn := range rnfas {
				set, ok := cur[rn.Index]
				if !ok {
					continue
				}
				moved := nfa.Move(rn.NFA, set, byte(c))
				if moved.IsEmpty() {
					continue
				}
				closed := nfa.EpsilonClosure(rn.NFA, moved)
				if !closed.IsEmpty() {
					next[rn.Index] = closed
				}
			}
			if len(next) == 0 {
				continue // no live rule survives c; transition omitted
			}
			nextID := intern(next)
			st.trans[c-alphabetLo] = int32(nextID)
		}
	}

	d.States = states
	return d
}

func stateFromBundle(bd bundle, rnfas []RuleNFA) *State {
	s := newState()
	for _, rn := range rnfas {
		set, ok := bd[rn.Index]
		if !ok {
			continue
		}
		if rn.NFA.IsAccepting(set) {
			s.Accepting = true
			if s.WinningRule == NoRule || rn.Index < s.WinningRule {
				s.WinningRule = rn.Index
			}
			break // rnfas is index-ordered: first hit is the winner
		}
	}
	return s
}

// canonicalKey renders a bundle as a string unique up to the bundle's
// contents, so structurally identical DFA states intern to one. Per-rule
// NFA state ids live in that rule's own id space, so the key is keyed by
// rule index first and by each rule's sorted state ids second.
func canonicalKey(bd bundle) string {
	indices := make([]int, 0, len(bd))
	for i := range bd {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	var sb strings.Builder
	for _, i := range indices {
		fmt.Fprintf(&sb, "%d:", i)
		for _, v := range bd[i].Sorted() {
			fmt.Fprintf(&sb, "%d,", v)
		}
		sb.WriteByte(';')
	}
	return sb.String()
}
