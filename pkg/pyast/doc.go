// Package pyast exposes a small, engine-neutral view of a Python syntax tree.
//
// The detector never executes Python; it only needs to find calls,
// assignments, keyword arguments, names and literal values. [Node] and its
// narrow views ([Call], [Assign], [Keyword], [Name], [Const], [Sequence])
// describe exactly that surface, and a [Parser] adapter turns source text
// into such a tree. [TreeSitter] is the adapter backed by tree-sitter's
// Python grammar.
//
// Trees are plain Go values: they do not hold on to parser memory and may
// be inspected after the parser is gone.
//
// # Example
//
//	root, err := pyast.NewTreeSitter().Parse(ctx, src)
//	if err != nil {
//	    var se *pyast.SyntaxError
//	    if errors.As(err, &se) {
//	        // broken script
//	    }
//	}
//	pyast.Walk(root, func(n pyast.Node) bool {
//	    if c, ok := n.(pyast.Call); ok { ... }
//	    return true
//	})
package pyast
