package detect

import (
	"context"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
	"github.com/matzehuels/reqdetect/pkg/setuppy"
)

// FromSetupPy reads install_requires from the setup.py at path.
func FromSetupPy(ctx context.Context, path string, opts Options) ([]*requirement.DetectedRequirement, error) {
	opts = opts.WithDefaults()
	return setuppy.FromSetupPy(ctx, path, opts.Parser)
}

// FindRequirements returns the requirements declared under root, sorted by
// name. See the package documentation for the order in which sources are
// tried. It fails with INVALID_PATH when root is not a directory and with
// REQUIREMENTS_NOT_FOUND when no source yields anything.
func FindRequirements(ctx context.Context, root string, opts Options) ([]*requirement.DetectedRequirement, error) {
	opts = opts.WithDefaults()
	if err := errors.ValidateDir(root); err != nil {
		return nil, err
	}

	reqs, err := SetupPy{}.Find(ctx, root, opts)
	switch {
	case err == nil && len(reqs) == 0:
		return nil, errors.New(errors.ErrCodeNotFound, "%s declares no valid requirements", SetupPyName)
	case err == nil:
		opts.Logger("using %s (%d requirements)", SetupPyName, len(reqs))
		requirement.Sort(reqs)
		return reqs, nil
	case !errors.IsNotFound(err):
		opts.Logger("skipping %s: %v", SetupPyName, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reqs, err = Pyproject{}.Find(ctx, root, opts)
	switch {
	case err == nil && len(reqs) > 0:
		opts.Logger("using %s (%d requirements)", PyprojectName, len(reqs))
		requirement.Sort(reqs)
		return reqs, nil
	case err == nil:
		opts.Logger("%s declares no requirements", PyprojectName)
	case !errors.IsNotFound(err):
		opts.Logger("skipping %s: %v", PyprojectName, err)
	}

	var found []*requirement.DetectedRequirement
	for _, loc := range []Locator{RequirementsFile{}, RequirementsDir{}, RequirementsBlob{}} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reqs, err := loc.Find(ctx, root, opts)
		if err != nil {
			if !errors.IsNotFound(err) {
				opts.Logger("skipping %s: %v", loc.Type(), err)
			}
			continue
		}
		opts.Logger("read %d requirements from %s", len(reqs), loc.Type())
		found = append(found, reqs...)
	}

	found = requirement.Dedupe(found)
	if len(found) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "no requirements found in %s", root)
	}
	requirement.Sort(found)
	return found, nil
}
