package diag

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/lexgen/lexgen/ast"
	"github.com/lexgen/lexgen/dfa"
	"github.com/lexgen/lexgen/nfa"
	"github.com/lexgen/lexgen/rule"
)

func TestDumpMentionsEveryState(t *testing.T) {
	table := rule.Table{
		{Regex: "[a-z]+", Action: rule.Emit("WORD", true)},
	}
	node, err := ast.Parse(table[0].Regex)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := dfa.Build([]dfa.RuleNFA{{NFA: nfa.Compile(node), Index: 0}})

	var buf bytes.Buffer
	Dump(&buf, d, table)

	out := buf.String()
	for id := 0; id < len(d.States); id++ {
		marker := "state " + strconv.Itoa(id)
		if !strings.Contains(out, marker) {
			t.Errorf("dump missing %q:\n%s", marker, out)
		}
	}
	if !strings.Contains(out, "(start)") {
		t.Error("dump should mark the start state")
	}
}
