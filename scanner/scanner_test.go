package scanner

import (
	"testing"

	"github.com/lexgen/lexgen/ast"
	"github.com/lexgen/lexgen/dfa"
	"github.com/lexgen/lexgen/nfa"
	"github.com/lexgen/lexgen/rule"
)

// build compiles table into a DFA. Most tests pass exampleTable, the
// end-to-end spec.md §8 scenario:
//
//	hello       GREETING true
//	[a-z]+      WORD     true
//	[ \t\n]+    (SKIP)
//	.           (ERR) "bad input"
func build(t *testing.T, table rule.Table) *dfa.DFA {
	t.Helper()
	rnfas := make([]dfa.RuleNFA, len(table))
	for i, r := range table {
		node, err := ast.Parse(r.Regex)
		if err != nil {
			t.Fatalf("parse %q: %v", r.Regex, err)
		}
		rnfas[i] = dfa.RuleNFA{NFA: nfa.Compile(node), Index: i}
	}
	return dfa.Build(rnfas)
}

func exampleTable() rule.Table {
	return rule.Table{
		{Regex: "hello", Action: rule.Emit("GREETING", true)},
		{Regex: "[a-z]+", Action: rule.Emit("WORD", true)},
		{Regex: "[ \\t\\n]+", Action: rule.Skip()},
		{Regex: ".", Action: rule.Err("bad input")},
	}
}

func tokenStrings(res Result) []string {
	out := make([]string, len(res.Tokens))
	for i, tok := range res.Tokens {
		out[i] = tok.String()
	}
	return out
}

func TestScanGreeting(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "hello")
	want := []string{"GREETING:hello [1,1]", "EOF [1,6]"}
	assertTokens(t, res, want)
}

func TestScanGreetingAndWord(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "hello world")
	want := []string{"GREETING:hello [1,1]", "WORD:world [1,7]", "EOF [1,12]"}
	assertTokens(t, res, want)
}

func TestScanMaximalMunchBeatsPriority(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "helloworld")
	want := []string{"WORD:helloworld [1,1]", "EOF [1,11]"}
	assertTokens(t, res, want)
}

func TestScanMultilineColumnReset(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "hi\nbye")
	want := []string{"WORD:hi [1,1]", "WORD:bye [2,1]", "EOF [2,4]"}
	assertTokens(t, res, want)
}

func TestScanErrorDiagnostic(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "?")
	if len(res.Diagnostics) != 1 || res.Diagnostics[0].Message != "bad input" {
		t.Fatalf("diagnostics = %+v, want one 'bad input'", res.Diagnostics)
	}
	want := []string{"EOF [1,2]"}
	assertTokens(t, res, want)
}

func TestScanEmptyInput(t *testing.T) {
	d := build(t, exampleTable())
	res := Scan(d, exampleTable(), "")
	want := []string{"EOF [1,1]"}
	assertTokens(t, res, want)
}

func TestScanRulePrioritySwap(t *testing.T) {
	// Swapping the first two rules changes which wins a length-5 tie
	// between "hello" and "[a-z]+", since both now match exactly 5 chars.
	table := rule.Table{
		{Regex: "[a-z]+", Action: rule.Emit("WORD", true)},
		{Regex: "hello", Action: rule.Emit("GREETING", true)},
		{Regex: "[ \\t\\n]+", Action: rule.Skip()},
		{Regex: ".", Action: rule.Err("bad input")},
	}
	d := build(t, table)
	res := Scan(d, table, "hello")
	want := []string{"WORD:hello [1,1]", "EOF [1,6]"}
	assertTokens(t, res, want)
}

func assertTokens(t *testing.T, res Result, want []string) {
	t.Helper()
	got := tokenStrings(res)
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
