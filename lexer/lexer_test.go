package lexer

import (
	"path/filepath"
	"testing"

	"github.com/lexgen/lexgen/rule"
)

func sampleRules() rule.Table {
	return rule.Table{
		{Regex: "hello", Action: rule.Emit("GREETING", true)},
		{Regex: "[a-z]+", Action: rule.Emit("WORD", true)},
		{Regex: "[ \\t\\n]+", Action: rule.Skip()},
		{Regex: ".", Action: rule.Err("bad input")},
	}
}

func TestBuildAndScan(t *testing.T) {
	lx, err := Build(sampleRules())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	res := lx.Scan("hello world")
	if len(res.Tokens) != 3 {
		t.Fatalf("tokens = %+v, want 3 (including EOF)", res.Tokens)
	}
	if res.Tokens[0].String() != "GREETING:hello [1,1]" {
		t.Errorf("token 0 = %s", res.Tokens[0].String())
	}
}

func TestBuildRejectsEmptyTable(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatal("expected error building a Lexer with no rules")
	}
}

func TestBuildReportsOffendingRule(t *testing.T) {
	bad := rule.Table{
		{Regex: "good", Action: rule.Emit("GOOD", true)},
		{Regex: "(unterminated", Action: rule.Emit("BAD", true)},
	}
	_, err := Build(bad)
	if err == nil {
		t.Fatal("expected error")
	}
	var buildErr *BuildError
	if be, ok := err.(*BuildError); ok {
		buildErr = be
	} else {
		t.Fatalf("error is not *BuildError: %v", err)
	}
	if buildErr.RuleIndex != 1 {
		t.Errorf("RuleIndex = %d, want 1", buildErr.RuleIndex)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	lx, err := Build(sampleRules())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	path := filepath.Join(t.TempDir(), "lexer.gob")
	if err := lx.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := lx.Scan("hello world")
	got := loaded.Scan("hello world")
	if len(want.Tokens) != len(got.Tokens) {
		t.Fatalf("token count mismatch: got %d, want %d", len(got.Tokens), len(want.Tokens))
	}
	for i := range want.Tokens {
		if want.Tokens[i].String() != got.Tokens[i].String() {
			t.Errorf("token %d: got %s, want %s", i, got.Tokens[i].String(), want.Tokens[i].String())
		}
	}
}
