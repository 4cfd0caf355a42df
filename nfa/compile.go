package nfa

import (
	"github.com/lexgen/lexgen/ast"
	"github.com/lexgen/lexgen/internal/charset"
)

// Compile builds a Thompson NFA from a regex AST per spec.md §4.B. Every
// AST node compiles to a fragment with one entry state and one dangling
// "out" state; the parent wires fragments together with ε-transitions. The
// outermost fragment's out becomes the NFA's sole accept state.
//
// Quantifiers (Star, Plus, Optional) are built around a single Split state
// reused as the loop/exit decision point, rather than the separate
// loop-start/loop-end states spec.md §4.B's table names — an equivalent,
// more compact construction (the same one the teacher corpus's NFA builder
// calls a "quantifier split"): fewer states, identical accepted language
// and identical ε-closure reachability behavior.
func Compile(node *ast.Node) *NFA {
	b := NewBuilder()
	start, out := compile(b, node)
	b.MakeAccept(out)
	return b.Build(start, out)
}

func compile(b *Builder, node *ast.Node) (in, out StateID) {
	switch node.Kind {
	case ast.KindChar:
		out = b.AddEpsilon(InvalidState)
		in = b.AddChar(node.Char, out)
		return in, out

	case ast.KindDot:
		out = b.AddEpsilon(InvalidState)
		in = b.AddCharSet(charset.Printable(), out)
		return in, out

	case ast.KindCharClass:
		out = b.AddEpsilon(InvalidState)
		set := node.Set
		if node.Negated {
			set = node.Set.Negate(charset.PrintableASCIILo, charset.PrintableASCIIHi)
		}
		in = b.AddCharSet(set, out)
		return in, out

	case ast.KindConcat:
		lin, lout := compile(b, node.Left)
		rin, rout := compile(b, node.Right)
		b.Patch(lout, rin)
		return lin, rout

	case ast.KindAlt:
		lin, lout := compile(b, node.Left)
		rin, rout := compile(b, node.Right)
		out = b.AddEpsilon(InvalidState)
		b.Patch(lout, out)
		b.Patch(rout, out)
		in = b.AddSplit(lin, rin)
		return in, out

	case ast.KindOptional:
		cin, cout := compile(b, node.Child)
		out = b.AddEpsilon(InvalidState)
		b.Patch(cout, out)
		in = b.AddSplit(cin, out)
		return in, out

	case ast.KindStar:
		cin, cout := compile(b, node.Child)
		out = b.AddEpsilon(InvalidState)
		split := b.AddSplit(cin, out)
		b.Patch(cout, split)
		return split, out

	case ast.KindPlus:
		cin, cout := compile(b, node.Child)
		out = b.AddEpsilon(InvalidState)
		split := b.AddSplit(cin, out)
		b.Patch(cout, split)
		return cin, out

	default:
		panic("nfa: compile: unknown ast.Kind")
	}
}
