// Package lexer wires the regex parser, NFA builder and DFA builder into
// a single Build entry point, and materializes the result as a
// self-contained, reusable artifact (spec.md §6, §9 "Artifact
// materialization": this implementation keeps the built DFA in-process
// and gob-encodes it for reuse across processes, rather than emitting and
// compiling generated source).
package lexer

import (
	"fmt"

	"github.com/lexgen/lexgen/ast"
	"github.com/lexgen/lexgen/dfa"
	"github.com/lexgen/lexgen/nfa"
	"github.com/lexgen/lexgen/rule"
	"github.com/lexgen/lexgen/scanner"
)

// Lexer is a built scanner: an immutable DFA paired with the rule table
// that gave rise to it (spec.md §4.E). The zero value is not usable;
// construct one with Build.
type Lexer struct {
	DFA   *dfa.DFA
	Rules rule.Table
}

// BuildError reports a regex that failed to compile while building a
// Lexer, naming the offending rule's position in the table.
type BuildError struct {
	RuleIndex int
	Regex     string
	Err       error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("rule %d (%q): %v", e.RuleIndex, e.Regex, e.Err)
}

func (e *BuildError) Unwrap() error { return e.Err }

// Build compiles every rule's regex to an NFA, then runs the multi-NFA
// subset construction (spec.md §4.C), returning an immutable Lexer ready
// to scan. Build-time errors abort construction entirely — no partial
// Lexer is returned (spec.md §7).
func Build(rules rule.Table) (*Lexer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexer: at least one rule is required")
	}

	rnfas := make([]dfa.RuleNFA, len(rules))
	for i, r := range rules {
		node, err := ast.Parse(r.Regex)
		if err != nil {
			return nil, &BuildError{RuleIndex: i, Regex: r.Regex, Err: err}
		}
		rnfas[i] = dfa.RuleNFA{NFA: nfa.Compile(node), Index: i}
	}

	return &Lexer{DFA: dfa.Build(rnfas), Rules: rules}, nil
}

// Scan runs the maximal-munch loop (spec.md §4.D) over input.
func (l *Lexer) Scan(input string) scanner.Result {
	return scanner.Scan(l.DFA, l.Rules, input)
}
