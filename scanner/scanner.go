// Package scanner runs the maximal-munch longest-match loop (spec.md
// §4.D) over a built DFA and rule table, turning an input text into a
// token stream.
package scanner

import (
	"github.com/lexgen/lexgen/dfa"
	"github.com/lexgen/lexgen/rule"
)

// Token is one emitted scan result (spec.md §6's output line, before
// formatting): a token class (empty for the synthetic EOF marker), its
// lexeme (present only when the matching rule kept it), and the 1-based
// line/column of the lexeme's first character.
type Token struct {
	Name   string
	Lexeme string
	Keep   bool
	Line   int
	Column int
	EOF    bool
}

// Diagnostic is a single (ERR)-rule match reported on the error channel;
// scanning continues past it (spec.md §7 kind 4).
type Diagnostic struct {
	Message string
	Line    int
	Column  int
}

// Result is one full scan's output: the token stream plus every
// diagnostic raised along the way, in input order.
type Result struct {
	Tokens      []Token
	Diagnostics []Diagnostic
}

// Scan runs d/table over input (interpreted as a sequence of Unicode code
// points, so line/column tracking is character-based rather than
// byte-based) and returns the resulting token stream and diagnostics.
//
// Only the NFA/DFA alphabet is printable ASCII; any other rune — like any
// byte the DFA has no transition for — takes the no-match path (spec.md
// §6, scanner input).
func Scan(d *dfa.DFA, table rule.Table, input string) Result {
	runes := []rune(input)
	var res Result
	line, col := 1, 1
	pos := 0

	advance := func(n int) {
		for i := 0; i < n; i++ {
			if runes[pos+i] == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
	}

	for pos < len(runes) {
		length, winningRule, ok := longestMatch(d, runes[pos:])
		startLine, startCol := line, col

		if !ok {
			advance(1)
			pos++
			continue
		}

		if length > 0 {
			lexeme := string(runes[pos : pos+length])
			dispatch(&res, table, winningRule, lexeme, startLine, startCol)
			advance(length)
			pos += length
			continue
		}

		// Zero-length guard (spec.md §4.D): a rule matched the empty
		// string. Emit it, then force one character of progress.
		dispatch(&res, table, winningRule, "", startLine, startCol)
		if pos < len(runes) {
			advance(1)
		}
		pos++
	}

	res.Tokens = append(res.Tokens, Token{EOF: true, Line: line, Column: col})
	return res
}

// longestMatch simulates d over the prefix of runes, per spec.md §4.D
// steps 1-4: it walks the DFA one rune at a time, remembering the last
// accepting (length, winning rule) pair seen, and stops at the first rune
// with no transition, at end of input, or at a non-ASCII/non-printable
// rune (which the DFA, by construction, never has a transition for).
func longestMatch(d *dfa.DFA, runes []rune) (length int, winningRule int, ok bool) {
	winningRule = dfa.NoRule
	cur := d.Start

	if st := d.State(cur); st.Accepting {
		length, winningRule, ok = 0, st.WinningRule, true
	}

	for i, r := range runes {
		if r < 0 || r > 0x7F {
			break
		}
		next, stepOK := d.State(cur).Step(byte(r))
		if !stepOK {
			break
		}
		cur = next
		if st := d.State(cur); st.Accepting {
			length, winningRule, ok = i+1, st.WinningRule, true
		}
	}
	return length, winningRule, ok
}

func dispatch(res *Result, table rule.Table, ruleIdx int, lexeme string, line, col int) {
	action := table.Action(ruleIdx)
	switch action.Kind {
	case rule.ActionSkip:
		// discard
	case rule.ActionError:
		res.Diagnostics = append(res.Diagnostics, Diagnostic{Message: action.Message, Line: line, Column: col})
	default: // ActionEmit
		tok := Token{Name: action.Name, Line: line, Column: col, Keep: action.KeepLexeme}
		if action.KeepLexeme {
			tok.Lexeme = lexeme
		}
		res.Tokens = append(res.Tokens, tok)
	}
}
