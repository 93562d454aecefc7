package setuppy

import (
	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/pyast"
)

// requireKeywords are the setup() keywords that carry dependencies.
var requireKeywords = map[string]bool{
	"install_requires": true,
	"requires":         true,
}

// Walker records what a single traversal of a setup.py tree found.
type Walker struct {
	setupCall pyast.Call
	assigns   map[string]pyast.Node
}

// NewWalker walks root once, recording module-level variable bindings and
// the last call to setup.
func NewWalker(root pyast.Node) *Walker {
	w := &Walker{assigns: make(map[string]pyast.Node)}
	if root == nil {
		return w
	}
	visit := func(n pyast.Node) bool {
		if c, ok := n.(pyast.Call); ok && isSetup(c) {
			w.setupCall = c
		}
		return true
	}
	for _, stmt := range root.Children() {
		if a, ok := stmt.(pyast.Assign); ok {
			for _, target := range a.Targets() {
				if n, ok := target.(pyast.Name); ok {
					w.assigns[n.Ident()] = a.Value()
				}
			}
		}
		pyast.Walk(stmt, visit)
	}
	return w
}

func isSetup(c pyast.Call) bool {
	n, ok := c.Func().(pyast.Name)
	return ok && n.Ident() == "setup"
}

// FoundSetup reports whether the tree contains a call to setup.
func (w *Walker) FoundSetup() bool { return w.setupCall != nil }

// Requires returns the literal requirement strings passed to setup, in
// keyword order.
func (w *Walker) Requires() ([]string, error) {
	if !w.FoundSetup() {
		return nil, errors.New(errors.ErrCodeCouldNotParse, "no call to setup() found")
	}

	var found []string
	for _, arg := range w.setupCall.Args() {
		kw, ok := arg.(pyast.Keyword)
		if !ok || !requireKeywords[kw.Arg()] {
			continue
		}

		value := kw.Value()
		if n, ok := value.(pyast.Name); ok {
			bound, ok := w.assigns[n.Ident()]
			if !ok {
				return nil, errors.New(errors.ErrCodeCouldNotParse,
					"%s=%s at %s: name is not assigned at module level", kw.Arg(), n.Ident(), n.Pos())
			}
			value = bound
		}

		seq, ok := value.(pyast.Sequence)
		if !ok {
			return nil, errors.New(errors.ErrCodeCouldNotParse,
				"%s at %s: unsupported value (%s)", kw.Arg(), kw.Pos(), value.Kind())
		}
		reqs, err := literalStrings(seq)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "%s at %s", kw.Arg(), kw.Pos())
		}
		found = append(found, reqs...)
	}

	if len(found) == 0 {
		return nil, errors.New(errors.ErrCodeCouldNotParse, "setup() at %s declares no requirements", w.setupCall.Pos())
	}
	return found, nil
}

// literalStrings returns the string elements of seq. Numbers, booleans and
// None are ignored; any non-literal element is an error.
func literalStrings(seq pyast.Sequence) ([]string, error) {
	var out []string
	for _, elt := range seq.Elts() {
		c, ok := elt.(pyast.Const)
		if !ok {
			return nil, errors.New(errors.ErrCodeCouldNotParse, "non-literal element (%s) at %s", elt.Kind(), elt.Pos())
		}
		if s, isString := c.Literal(); isString {
			out = append(out, s)
		}
	}
	return out, nil
}
