package rule

import "testing"

func TestQuoteMessage(t *testing.T) {
	cases := map[string]string{
		`bad input`:  `"bad input"`,
		"tab\there":  `"tab\there"`,
		`say "hi"`:   `"say \"hi\""`,
		`back\slash`: `"back\\slash"`,
	}
	for in, want := range cases {
		if got := QuoteMessage(in); got != want {
			t.Errorf("QuoteMessage(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestRuleString(t *testing.T) {
	cases := []struct {
		r    Rule
		want string
	}{
		{Rule{Regex: "[ \\t\\n]+", Action: Skip()}, `[ \t\n]+ (SKIP)`},
		{Rule{Regex: ".", Action: Err("bad input")}, `. (ERR) "bad input"`},
		{Rule{Regex: "hello", Action: Emit("GREETING", true)}, `hello GREETING true`},
	}
	for _, c := range cases {
		if got := c.r.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}
