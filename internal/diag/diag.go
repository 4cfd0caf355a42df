// Package diag provides a human-readable dump of a built DFA, for test
// and debugging use. It is deliberately not exposed through either CLI's
// flags (SPEC_FULL.md's design notes decline a --dump-dfa mode); tests
// import it directly when they need to see why a construction produced
// the states it did.
package diag

import (
	"fmt"
	"io"

	"github.com/lexgen/lexgen/dfa"
	"github.com/lexgen/lexgen/internal/charset"
	"github.com/lexgen/lexgen/rule"
)

// Dump writes one line per DFA state to w: its id, whether it accepts and
// under which rule, and its outgoing transitions grouped by destination
// state to keep the printable-ASCII alphabet from flooding the output.
func Dump(w io.Writer, d *dfa.DFA, rules rule.Table) {
	for id := 0; id < len(d.States); id++ {
		st := d.State(id)
		marker := ""
		if id == d.Start {
			marker = " (start)"
		}
		if st.Accepting {
			fmt.Fprintf(w, "state %d%s: accepting, rule %d (%s)\n", id, marker, st.WinningRule, rules[st.WinningRule].Regex)
		} else {
			fmt.Fprintf(w, "state %d%s\n", id, marker)
		}

		byTarget := map[int][]byte{}
		for c := int(charset.PrintableASCIILo); c <= int(charset.PrintableASCIIHi); c++ {
			if next, ok := st.Step(byte(c)); ok {
				byTarget[next] = append(byTarget[next], byte(c))
			}
		}
		for target, chars := range byTarget {
			fmt.Fprintf(w, "    %s -> %d\n", formatCharSpan(chars), target)
		}
	}
}

// formatCharSpan renders a run of character codes as one or more closed
// ranges, e.g. "a-z" or "0-9,A-Z".
func formatCharSpan(chars []byte) string {
	if len(chars) == 0 {
		return ""
	}
	out := ""
	start := chars[0]
	prev := chars[0]
	flush := func(lo, hi byte) {
		if out != "" {
			out += ","
		}
		if lo == hi {
			out += string(lo)
		} else {
			out += string(lo) + "-" + string(hi)
		}
	}
	for _, c := range chars[1:] {
		if c == prev+1 {
			prev = c
			continue
		}
		flush(start, prev)
		start, prev = c, c
	}
	flush(start, prev)
	return out
}
