package detect

import "github.com/matzehuels/reqdetect/pkg/pyast"

// Options configures detection.
type Options struct {
	Logger func(string, ...any) // Progress/diagnostic callback (optional)
	Parser pyast.Parser         // setup.py parser (default: tree-sitter)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	if opts.Parser == nil {
		opts.Parser = pyast.NewTreeSitter()
	}
	return opts
}
