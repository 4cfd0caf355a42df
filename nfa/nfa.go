// Package nfa implements Thompson NFA construction from a regex AST
// (spec.md §4.B) along with the ε-closure and move primitives the DFA
// builder (package dfa) needs for multi-pattern subset construction.
//
// States are opaque dense integer IDs rather than pointers: the NFA owns a
// single state table and transitions reference other states only by ID.
// This sidesteps cyclic ownership entirely, the same approach the teacher
// corpus takes for its own NFA state representation.
package nfa

import (
	"fmt"

	"github.com/lexgen/lexgen/internal/charset"
)

// StateID identifies a state within a single NFA.
type StateID uint32

// InvalidState marks the absence of a state (e.g. the target of a
// fragment's "out" Epsilon state before Builder.Patch sets it).
const InvalidState StateID = 1<<32 - 1

// Kind identifies the variant of a State.
type Kind uint8

const (
	// KindMatch is an accepting state with no outgoing transitions.
	KindMatch Kind = iota
	// KindChar transitions to Next on exactly one character (Char).
	KindChar
	// KindCharSet transitions to Next on any character in Set.
	KindCharSet
	// KindEpsilon transitions to Next without consuming input.
	KindEpsilon
	// KindSplit transitions to A and B without consuming input
	// (alternation and quantifier branching).
	KindSplit
)

// State is one NFA state. Which fields are meaningful depends on Kind; see
// the Kind constants.
type State struct {
	Kind Kind
	Char byte
	Set  charset.Set
	Next StateID
	A, B StateID
}

// NFA is an immutable Thompson NFA: a dense state table, one start state,
// and a single accept state (Thompson construction always yields exactly
// one accept state per sub-automaton).
type NFA struct {
	States []State
	Start  StateID
	Accept StateID
}

func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, start: %d, accept: %d}", len(n.States), n.Start, n.Accept)
}
