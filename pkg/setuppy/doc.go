// Package setuppy extracts install requirements from setup.py scripts
// without executing them.
//
// The script is parsed into a [pyast] tree and walked once. Only literal
// dependency lists are understood: a list or tuple of strings passed as
// install_requires (or the legacy requires) to a call of setup, either
// inline or through a module-level variable:
//
//	REQS = ["requests>=2", "click"]
//	setup(name="x", install_requires=REQS)
//
// Anything computed at runtime (function calls, comprehensions, names that
// are not bound at module level) fails with a COULD_NOT_PARSE error rather
// than returning partial data.
package setuppy
