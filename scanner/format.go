package scanner

import "fmt"

// String renders t the way spec.md §6 specifies for scanner output:
//
//	NAME:lexeme [line,col]   when the rule kept its lexeme
//	NAME [line,col]          when it didn't
//	EOF [line,col]           for the synthetic end-of-input token
func (t Token) String() string {
	if t.EOF {
		return fmt.Sprintf("EOF [%d,%d]", t.Line, t.Column)
	}
	if t.Keep {
		return fmt.Sprintf("%s:%s [%d,%d]", t.Name, t.Lexeme, t.Line, t.Column)
	}
	return fmt.Sprintf("%s [%d,%d]", t.Name, t.Line, t.Column)
}
