package nfa

import (
	"github.com/lexgen/lexgen/internal/charset"
	"github.com/lexgen/lexgen/internal/conv"
)

// Builder incrementally constructs an NFA's state table. Compile uses it to
// implement the Thompson construction rules of spec.md §4.B; it is exposed
// separately so tests can build small NFAs directly.
type Builder struct {
	states []State
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	id := StateID(conv.IntToUint32(len(b.states)))
	b.states = append(b.states, s)
	return id
}

// AddMatch adds an accepting state with no outgoing transitions.
func (b *Builder) AddMatch() StateID {
	return b.add(State{Kind: KindMatch})
}

// AddChar adds a state that transitions to next on exactly c.
func (b *Builder) AddChar(c byte, next StateID) StateID {
	return b.add(State{Kind: KindChar, Char: c, Next: next})
}

// AddCharSet adds a state that transitions to next on any character in set.
func (b *Builder) AddCharSet(set charset.Set, next StateID) StateID {
	return b.add(State{Kind: KindCharSet, Set: set, Next: next})
}

// AddEpsilon adds a state with a single unconditional ε-transition to next.
func (b *Builder) AddEpsilon(next StateID) StateID {
	return b.add(State{Kind: KindEpsilon, Next: next})
}

// AddSplit adds a state with ε-transitions to both a and b.
func (b *Builder) AddSplit(a, b2 StateID) StateID {
	return b.add(State{Kind: KindSplit, A: a, B: b2})
}

// Patch rewrites the Next target of an Epsilon state allocated earlier; a
// Split state's A and B targets are left untouched. Thompson construction
// allocates each fragment's dangling "out" Epsilon state before it knows
// its destination, then patches it once the parent wires the fragment in.
func (b *Builder) Patch(id StateID, next StateID) {
	b.states[id].Next = next
}

// MakeAccept converts the state at id (a fragment's dangling "out" state)
// into the NFA's sole accept state, discarding whatever placeholder
// transition it held.
func (b *Builder) MakeAccept(id StateID) {
	b.states[id] = State{Kind: KindMatch}
}

// Build finalizes the NFA with the given start and accept states.
func (b *Builder) Build(start, accept StateID) *NFA {
	return &NFA{States: b.states, Start: start, Accept: accept}
}
