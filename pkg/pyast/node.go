package pyast

import (
	"context"
	"fmt"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

// Kind names the syntactic category of a node.
type Kind string

const (
	KindModule  Kind = "module"
	KindCall    Kind = "call"
	KindAssign  Kind = "assign"
	KindKeyword Kind = "keyword"
	KindName    Kind = "name"
	KindConst   Kind = "const"
	KindList    Kind = "list"
	KindTuple   Kind = "tuple"
	KindOther   Kind = "other"
)

// Position is a 1-based line and 0-based column.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Column) }

// Node is any syntax tree node.
type Node interface {
	Kind() Kind
	Pos() Position
	// Children returns the direct sub-nodes in source order.
	Children() []Node
}

// Call is a call expression: Func(Args...).
type Call interface {
	Node
	Func() Node
	// Args returns positional arguments and Keyword nodes in source order.
	Args() []Node
}

// Assign is a plain assignment statement. Chained assignments
// (a = b = value) report every target.
type Assign interface {
	Node
	Targets() []Node
	Value() Node
}

// Keyword is a keyword argument inside a call: Arg=Value.
type Keyword interface {
	Node
	Arg() string
	Value() Node
}

// Name is a bare identifier reference.
type Name interface {
	Node
	Ident() string
}

// Const is a literal scalar. Literal returns the decoded value and whether
// the literal is a text string; numbers, booleans, None and bytes report
// their source text and false.
type Const interface {
	Node
	Literal() (string, bool)
}

// Sequence is a list or tuple display.
type Sequence interface {
	Node
	Elts() []Node
}

// Parser turns Python source into a tree.
type Parser interface {
	// Parse returns the module node, or a *SyntaxError when the source is not
	// valid Python.
	Parse(ctx context.Context, src []byte) (Node, error)
}

// SyntaxError reports source that could not be parsed.
type SyntaxError struct {
	Pos Position
	Msg string
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Pos.Line == 0 {
		return "syntax error: " + e.Msg
	}
	return fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
}

// Code returns the error code for this error type.
func (e *SyntaxError) Code() errors.Code {
	return errors.ErrCodeSyntax
}

// Walk visits root and its descendants depth-first in source order. When fn
// returns false the children of that node are skipped.
func Walk(root Node, fn func(Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, c := range root.Children() {
		Walk(c, fn)
	}
}
