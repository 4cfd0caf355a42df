// Package dfa implements the multi-NFA subset construction of spec.md §4.C:
// given an ordered list of (NFA, rule index) pairs, it builds a single DFA
// that simulates all of them in lockstep, resolving each accepting state to
// the lowest-indexed rule that accepts there (declaration-order priority).
package dfa

import "github.com/lexgen/lexgen/internal/charset"

const (
	alphabetLo   = int(charset.PrintableASCIILo)
	alphabetHi   = int(charset.PrintableASCIIHi)
	alphabetSize = alphabetHi - alphabetLo + 1
)

// NoRule marks a DFA state as non-accepting (WinningRule has no meaning).
const NoRule = -1

// State is one DFA state. Identity (for the builder's interning) is the
// bundle of per-rule NFA state-sets it represents; see Build.
type State struct {
	Accepting   bool
	WinningRule int

	trans [alphabetSize]int32
}

func newState() *State {
	s := &State{WinningRule: NoRule}
	for i := range s.trans {
		s.trans[i] = -1
	}
	return s
}

// Step returns the DFA's transition out of state on c, if any. The
// alphabet is printable ASCII (0x20-0x7E); any other byte has no
// transition, matching spec.md §4.C.
func (s *State) Step(c byte) (next int, ok bool) {
	if c < charset.PrintableASCIILo || c > charset.PrintableASCIIHi {
		return 0, false
	}
	n := s.trans[int(c)-alphabetLo]
	if n < 0 {
		return 0, false
	}
	return int(n), true
}

// DFA is an immutable deterministic automaton over printable ASCII,
// produced once by Build and safe to share across any number of scans.
type DFA struct {
	States []*State
	Start  int
}

// State returns the state at id.
func (d *DFA) State(id int) *State { return d.States[id] }
