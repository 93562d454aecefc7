package setuppy

import (
	"context"
	"os"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/pyast"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// ExtractDependencies parses src and returns the literal requirement
// strings passed to setup. A syntax error is returned as a COULD_NOT_PARSE
// error wrapping the *pyast.SyntaxError.
func ExtractDependencies(ctx context.Context, parser pyast.Parser, src []byte) ([]string, error) {
	if parser == nil {
		parser = pyast.NewTreeSitter()
	}
	root, err := parser.Parse(ctx, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "parse setup script")
	}
	return NewWalker(root).Requires()
}

// FromSetupPy reads the setup.py at path and parses each declared
// requirement. Entries that are not valid requirement lines are dropped.
func FromSetupPy(ctx context.Context, path string, parser pyast.Parser) ([]*requirement.DetectedRequirement, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "read %s", path)
	}
	lines, err := ExtractDependencies(ctx, parser, src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "%s", path)
	}

	reqs := make([]*requirement.DetectedRequirement, 0, len(lines))
	for _, line := range lines {
		if r := requirement.Parse(line, path); r != nil {
			reqs = append(reqs, r)
		}
	}
	return reqs, nil
}
