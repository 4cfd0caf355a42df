// Package rule defines the action a rule takes on match, and the table
// binding each rule's DFA acceptance to that action (spec.md §4.E).
package rule

import (
	"fmt"
	"strings"
)

// ActionKind distinguishes the three things a matched rule can do.
type ActionKind int

const (
	// ActionEmit appends a token record to the scanner's output.
	ActionEmit ActionKind = iota
	// ActionSkip discards the match, emitting nothing.
	ActionSkip
	// ActionError reports a diagnostic on the error channel and emits no token.
	ActionError
)

func (k ActionKind) String() string {
	switch k {
	case ActionEmit:
		return "Emit"
	case ActionSkip:
		return "Skip"
	case ActionError:
		return "Error"
	default:
		return "ActionKind(?)"
	}
}

// Action is what the scanner does when a rule's matched span wins (spec.md
// §3). Only the fields relevant to Kind are meaningful: Name/KeepLexeme for
// ActionEmit, Message for ActionError.
type Action struct {
	Kind       ActionKind
	Name       string
	KeepLexeme bool
	Message    string
}

// Emit builds an ActionEmit action for token class name.
func Emit(name string, keepLexeme bool) Action {
	return Action{Kind: ActionEmit, Name: name, KeepLexeme: keepLexeme}
}

// Skip builds an ActionSkip action.
func Skip() Action { return Action{Kind: ActionSkip} }

// Err builds an ActionError action carrying a diagnostic message.
func Err(message string) Action {
	return Action{Kind: ActionError, Message: message}
}

// Rule pairs a regex source string with the action its match triggers.
// Rules are kept in a slice, never reordered: list position is priority
// (spec.md §3 — lower index wins length ties).
type Rule struct {
	Regex  string
	Action Action
}

// Table is the immutable, priority-ordered rule list the scanner consults
// by DFA winning-rule index (spec.md §4.E).
type Table []Rule

// Action returns the action for rule index i.
func (t Table) Action(i int) Action { return t[i].Action }

// QuoteMessage renders a diagnostic message the way it appears in a spec
// file's `(ERR) "MESSAGE"` action (spec.md §6): wrapped in ASCII double
// quotes, with backslashes, quotes and the common control characters
// escaped so the result round-trips through a spec-file writer. Named
// after, and grounded on, the source generator's escape_string helper —
// reinstated here because messages still need safe rendering for
// diagnostics and for any tooling that re-serializes a rule table.
func QuoteMessage(msg string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(msg); i++ {
		switch c := msg[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// String renders a rule the way it would appear in a spec file, for
// diagnostics and debug dumps.
func (r Rule) String() string {
	switch r.Action.Kind {
	case ActionSkip:
		return fmt.Sprintf("%s (SKIP)", r.Regex)
	case ActionError:
		return fmt.Sprintf("%s (ERR) %s", r.Regex, QuoteMessage(r.Action.Message))
	default:
		return fmt.Sprintf("%s %s %t", r.Regex, r.Action.Name, r.Action.KeepLexeme)
	}
}
