package detect

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// Locator reads requirements from one kind of declaration source under a
// project root.
type Locator interface {
	// Type returns the source identifier (e.g., "setup.py").
	Type() string
	// Find reads the source under root. It returns a REQUIREMENTS_NOT_FOUND
	// error when the source is absent.
	Find(ctx context.Context, root string, opts Options) ([]*requirement.DetectedRequirement, error)
}

// Names of the files and directories the locators look for.
const (
	SetupPyName         = "setup.py"
	PyprojectName       = "pyproject.toml"
	RequirementsDirName = "requirements"
)

// RequirementsFiles are the list files read from the project root.
var RequirementsFiles = []string{"requirements.txt", "requirements.pip"}

// SetupPy reads install_requires from setup.py.
type SetupPy struct{}

func (SetupPy) Type() string { return SetupPyName }

func (SetupPy) Find(ctx context.Context, root string, opts Options) ([]*requirement.DetectedRequirement, error) {
	path := filepath.Join(root, SetupPyName)
	if !isFile(path) {
		return nil, notFound(path)
	}
	return FromSetupPy(ctx, path, opts)
}

// Pyproject reads dependency tables from pyproject.toml.
type Pyproject struct{}

func (Pyproject) Type() string { return PyprojectName }

func (Pyproject) Find(_ context.Context, root string, opts Options) ([]*requirement.DetectedRequirement, error) {
	path := filepath.Join(root, PyprojectName)
	if !isFile(path) {
		return nil, notFound(path)
	}
	return fromPyproject(path, opts.WithDefaults())
}

// RequirementsFile reads requirements.txt and requirements.pip; both are
// read when both exist.
type RequirementsFile struct{}

func (RequirementsFile) Type() string { return "requirements.txt" }

func (RequirementsFile) Find(_ context.Context, root string, opts Options) ([]*requirement.DetectedRequirement, error) {
	opts = opts.WithDefaults()
	var (
		reqs    []*requirement.DetectedRequirement
		present bool
	)
	for _, name := range RequirementsFiles {
		path := filepath.Join(root, name)
		if !isFile(path) {
			continue
		}
		present = true
		found, err := FromRequirementsTxt(path)
		if err != nil {
			opts.Logger("skipping %s: %v", path, err)
			continue
		}
		reqs = append(reqs, found...)
	}
	if !present {
		return nil, notFound(filepath.Join(root, RequirementsFiles[0]))
	}
	return reqs, nil
}

// RequirementsDir reads every list file in requirements/.
type RequirementsDir struct{}

func (RequirementsDir) Type() string { return RequirementsDirName + "/" }

func (RequirementsDir) Find(_ context.Context, root string, _ Options) ([]*requirement.DetectedRequirement, error) {
	path := filepath.Join(root, RequirementsDirName)
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return nil, notFound(path)
	}
	return FromRequirementsDir(path)
}

// RequirementsBlob reads loosely named list files in the root.
type RequirementsBlob struct{}

func (RequirementsBlob) Type() string { return "*req*s*.txt" }

func (RequirementsBlob) Find(_ context.Context, root string, _ Options) ([]*requirement.DetectedRequirement, error) {
	return FromRequirementsBlob(root)
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func notFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "%s not found", path)
}
