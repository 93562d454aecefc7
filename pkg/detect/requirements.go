package detect

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// pipOptions are installer flags that may start a line in a list file.
var pipOptions = map[string]bool{
	"-i":                true,
	"--index-url":       true,
	"--extra-index-url": true,
	"--no-index":        true,
	"-f":                true,
	"--find-links":      true,
	"-r":                true,
}

var blobRE = regexp.MustCompile(`^(\w*)req(uirement)?s(\w*)\.txt$`)

// FromRequirementsTxt parses a pip requirements file. Blank lines, comments,
// installer options and lines that are not valid requirements are skipped.
func FromRequirementsTxt(path string) ([]*requirement.DetectedRequirement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "open %s", path)
	}
	defer f.Close()

	var reqs []*requirement.DetectedRequirement
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if pipOptions[strings.Fields(line)[0]] {
			continue
		}
		if r := requirement.Parse(line, path); r != nil {
			reqs = append(reqs, r)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "read %s", path)
	}
	return reqs, nil
}

// FromRequirementsDir parses every .txt and .pip file directly inside dir.
// Duplicates across files are removed.
func FromRequirementsDir(dir string) ([]*requirement.DetectedRequirement, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "read %s", dir)
	}

	var reqs []*requirement.DetectedRequirement
	for _, e := range entries {
		name := e.Name()
		if !(strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".pip")) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isFile(path) {
			continue
		}
		found, err := FromRequirementsTxt(path)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, found...)
	}
	return requirement.Dedupe(reqs), nil
}

// FromRequirementsBlob parses loosely named requirement files in dir, such
// as dev_reqs.txt or requirements_docs.txt. Names whose prefix starts with
// "test" or whose suffix ends with "test" are skipped.
func FromRequirementsBlob(dir string) ([]*requirement.DetectedRequirement, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "read %s", dir)
	}

	var reqs []*requirement.DetectedRequirement
	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		if !isBlobName(e.Name()) || !isFile(path) {
			continue
		}
		found, err := FromRequirementsTxt(path)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, found...)
	}
	return reqs, nil
}

func isBlobName(name string) bool {
	m := blobRE.FindStringSubmatch(name)
	if m == nil {
		return false
	}
	return !strings.HasPrefix(m[1], "test") && !strings.HasSuffix(m[3], "test")
}
