package pyast

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// TreeSitter parses Python with the tree-sitter Python grammar.
//
// A new tree-sitter parser is created for every call, so a TreeSitter value
// is safe for concurrent use.
type TreeSitter struct{}

// NewTreeSitter returns the tree-sitter backed Parser.
func NewTreeSitter() *TreeSitter {
	return &TreeSitter{}
}

// Parse normalizes the source encoding, parses it and converts the result
// into a pyast tree. Any ERROR or MISSING node makes the whole source a
// *SyntaxError.
func (p *TreeSitter) Parse(ctx context.Context, src []byte) (Node, error) {
	src, err := Normalize(src)
	if err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, &SyntaxError{Msg: "empty syntax tree"}
	}
	if root.HasError() {
		return nil, firstError(root, src)
	}
	if err := legacySyntax(root, src); err != nil {
		return nil, err
	}

	c := converter{src: src}
	return c.convert(root), nil
}

func firstError(n *sitter.Node, src []byte) *SyntaxError {
	if n.Type() == "ERROR" || n.IsMissing() {
		msg := "unexpected " + quoteSnippet(n.Content(src))
		if n.IsMissing() {
			msg = "missing " + n.Type()
		}
		return &SyntaxError{Pos: position(n), Msg: msg}
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && (c.HasError() || c.IsMissing()) {
			return firstError(c, src)
		}
	}
	return &SyntaxError{Pos: position(n), Msg: "invalid syntax"}
}

// legacySyntax reports Python 2 only statements, which the grammar accepts
// but a Python 3 interpreter rejects: print and exec statements, the
// "except E, e:" clause and "raise E, msg".
func legacySyntax(n *sitter.Node, src []byte) *SyntaxError {
	switch n.Type() {
	case "print_statement":
		if !parenthesizedPrint(n) {
			return &SyntaxError{Pos: position(n), Msg: "print statement: " + quoteSnippet(n.Content(src))}
		}
	case "exec_statement":
		return &SyntaxError{Pos: position(n), Msg: "exec statement: " + quoteSnippet(n.Content(src))}
	case "except_clause":
		for i := 0; i < int(n.ChildCount()); i++ {
			if c := n.Child(i); c != nil && !c.IsNamed() && c.Type() == "," {
				return &SyntaxError{Pos: position(c), Msg: "except clause with comma: " + quoteSnippet(n.Content(src))}
			}
		}
	case "raise_statement":
		if n.NamedChildCount() > 0 && n.NamedChild(0).Type() == "expression_list" {
			return &SyntaxError{Pos: position(n), Msg: "raise with comma: " + quoteSnippet(n.Content(src))}
		}
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if c := n.NamedChild(i); c != nil {
			if err := legacySyntax(c, src); err != nil {
				return err
			}
		}
	}
	return nil
}

// parenthesizedPrint reports whether a print statement is also a valid
// Python 3 call, as in print("x").
func parenthesizedPrint(n *sitter.Node) bool {
	if n.NamedChildCount() != 1 {
		return false
	}
	arg := n.NamedChild(0)
	return arg.Type() == "parenthesized_expression" ||
		(arg.Type() == "tuple" && arg.ChildCount() > 0 && arg.Child(0).Type() == "(")
}

func quoteSnippet(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return fmt.Sprintf("%q", s)
}

func position(n *sitter.Node) Position {
	p := n.StartPoint()
	return Position{Line: int(p.Row) + 1, Column: int(p.Column)}
}

type converter struct {
	src []byte
}

func (c *converter) text(n *sitter.Node) string {
	return n.Content(c.src)
}

// named returns the converted named children, comments excluded.
func (c *converter) named(n *sitter.Node) []Node {
	var out []Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child == nil || child.Type() == "comment" {
			continue
		}
		out = append(out, c.convert(child))
	}
	return out
}

func (c *converter) convert(n *sitter.Node) Node {
	pos := position(n)

	switch n.Type() {
	case "module":
		return NewModule(c.named(n)...)

	case "expression_statement":
		// A statement holding a single assignment is the assignment itself,
		// so that top-level assignments are direct children of the module.
		if n.NamedChildCount() == 1 {
			if inner := n.NamedChild(0); inner.Type() == "assignment" {
				return c.convert(inner)
			}
		}
		return NewOther(pos, c.named(n)...)

	case "assignment":
		return c.assignment(n)

	case "call":
		return c.call(n)

	case "keyword_argument":
		nameNode := n.ChildByFieldName("name")
		valueNode := n.ChildByFieldName("value")
		if nameNode == nil || valueNode == nil {
			return NewOther(pos, c.named(n)...)
		}
		return NewKeyword(pos, c.text(nameNode), c.convert(valueNode))

	case "identifier":
		return NewName(pos, c.text(n))

	case "string":
		return c.str(n)

	case "concatenated_string":
		return c.concatenated(n)

	case "integer", "float", "true", "false", "none":
		return NewScalar(pos, c.text(n))

	case "list":
		return NewList(pos, c.named(n)...)

	case "tuple":
		return NewTuple(pos, c.named(n)...)

	case "parenthesized_expression":
		if inner := c.named(n); len(inner) == 1 {
			return inner[0]
		}
		return NewOther(pos, c.named(n)...)
	}

	return NewOther(pos, c.named(n)...)
}

func (c *converter) assignment(n *sitter.Node) Node {
	pos := position(n)
	var targets []Node
	cur := n
	for cur != nil && cur.Type() == "assignment" {
		left := cur.ChildByFieldName("left")
		right := cur.ChildByFieldName("right")
		if left == nil || right == nil {
			// bare annotation (x: int) binds nothing
			return NewOther(pos, c.named(n)...)
		}
		targets = append(targets, c.convert(left))
		cur = right
	}
	return NewAssign(pos, targets, c.convert(cur))
}

func (c *converter) call(n *sitter.Node) Node {
	pos := position(n)
	fnNode := n.ChildByFieldName("function")
	if fnNode == nil {
		return NewOther(pos, c.named(n)...)
	}
	var args []Node
	if argNode := n.ChildByFieldName("arguments"); argNode != nil {
		if argNode.Type() == "argument_list" {
			args = c.named(argNode)
		} else {
			// f(x for x in y)
			args = []Node{c.convert(argNode)}
		}
	}
	return NewCall(pos, c.convert(fnNode), args...)
}

func (c *converter) str(n *sitter.Node) Node {
	pos := position(n)
	prefix, value, ok := stringLiteral(c.text(n))
	switch {
	case !ok, strings.Contains(prefix, "f"):
		// f-strings are computed at run time
		return NewOther(pos, c.named(n)...)
	case strings.Contains(prefix, "b"):
		return NewScalar(pos, c.text(n))
	}
	return NewString(pos, value)
}

func (c *converter) concatenated(n *sitter.Node) Node {
	pos := position(n)
	var b strings.Builder
	for _, part := range c.named(n) {
		lit, ok := part.(Const)
		if !ok {
			return NewOther(pos, c.named(n)...)
		}
		v, isString := lit.Literal()
		if !isString {
			return NewOther(pos, c.named(n)...)
		}
		b.WriteString(v)
	}
	return NewString(pos, b.String())
}
