// Package semver implements Poetry's version constraint grammar.
//
// pyproject.toml files managed by Poetry declare dependencies with caret,
// tilde, wildcard and comparison constraints ("^1.2", "~2.0", "1.*",
// ">=1,<2 || ^3"). The detector only needs to read such a constraint,
// union several alternatives and render the result in a canonical
// comma-separated comparator form that a requirements line can carry:
//
//	c, _ := semver.ParseConstraint("^2.4")
//	fmt.Println(c) // >=2.4,<3.0
//
// Every constraint is one of [*Version] (an exact pin), [*Range], [*Union]
// or [Empty]. Versions remember how many components were written, so
// "2.4" renders as "2.4" and its next major version as "3.0".
package semver
