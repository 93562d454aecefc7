package detect

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/poetry/semver"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

var (
	poetryKey    = toml.Key{"tool", "poetry"}
	poetryDeps   = toml.Key{"tool", "poetry", "dependencies"}
	poetryDevDep = toml.Key{"tool", "poetry", "dev-dependencies"}
	poetryGroup  = toml.Key{"tool", "poetry", "group"}
)

// FromPyprojectTOML reads the dependencies declared in a pyproject.toml.
//
// Poetry tables are read first: tool.poetry.dependencies, then every
// tool.poetry.group.<name>.dependencies, then tool.poetry.dev-dependencies.
// A later table overrides an earlier one for the same package name. When
// the document has no tool.poetry table, or its tables yield nothing, the
// PEP 621 project.dependencies list is read instead. A missing or empty
// table yields no requirements.
func FromPyprojectTOML(path string, opts Options) ([]*requirement.DetectedRequirement, error) {
	return fromPyproject(path, opts.WithDefaults())
}

func fromPyproject(path string, opts Options) ([]*requirement.DetectedRequirement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "read %s", path)
	}
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCouldNotParse, err, "decode %s", path)
	}

	if !md.IsDefined(poetryKey...) {
		return fromProjectTable(doc, path, opts), nil
	}

	deps := collectPoetryDeps(doc, md)
	var reqs []*requirement.DetectedRequirement
	for _, dep := range deps {
		if strings.EqualFold(dep.name, "python") {
			continue
		}
		line, err := poetryLine(dep.name, dep.spec)
		if err != nil {
			opts.Logger("%s: skipping %s: %v", path, dep.name, err)
			continue
		}
		r := requirement.Parse(line, path)
		if r == nil {
			opts.Logger("%s: skipping %s: %q is not a valid requirement", path, dep.name, line)
			continue
		}
		reqs = append(reqs, r)
	}
	if len(reqs) == 0 {
		// Poetry 2 declares dependencies in the project table.
		return fromProjectTable(doc, path, opts), nil
	}
	return reqs, nil
}

type poetryDep struct {
	name string
	spec any
}

// collectPoetryDeps merges the poetry dependency tables in document order.
// A name seen again keeps its first position but takes the new value.
func collectPoetryDeps(doc map[string]any, md toml.MetaData) []poetryDep {
	var (
		order []string
		specs = make(map[string]any)
	)
	merge := func(table toml.Key) {
		values, _ := lookup(doc, table).(map[string]any)
		for _, name := range tableKeys(md, table) {
			spec, ok := values[name]
			if !ok {
				continue
			}
			if _, seen := specs[name]; !seen {
				order = append(order, name)
			}
			specs[name] = spec
		}
	}

	merge(poetryDeps)
	for _, group := range tableKeys(md, poetryGroup) {
		merge(append(slices.Clone(poetryGroup), group, "dependencies"))
	}
	merge(poetryDevDep)

	deps := make([]poetryDep, len(order))
	for i, name := range order {
		deps[i] = poetryDep{name: name, spec: specs[name]}
	}
	return deps
}

// tableKeys returns the names directly under table in document order.
// Implicit tables only appear through their descendants' keys.
func tableKeys(md toml.MetaData, table toml.Key) []string {
	var names []string
	for _, key := range md.Keys() {
		if len(key) <= len(table) || !slices.Equal(key[:len(table)], table) {
			continue
		}
		name := key[len(table)]
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	return names
}

func lookup(doc map[string]any, key toml.Key) any {
	var cur any = doc
	for _, k := range key {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
	}
	return cur
}

// poetryLine renders one Poetry dependency as a requirement line.
func poetryLine(name string, spec any) (string, error) {
	c, err := constraintFromSpec(spec)
	if err != nil {
		return "", err
	}
	if c == nil || c.IsAny() {
		return name, nil
	}
	s := c.String()
	if !strings.ContainsAny(s, ",<>=") {
		s = "==" + s
	}
	return name + s, nil
}

// constraintFromSpec resolves a dependency value: a constraint string, a
// table with a version field, or a list of either whose constraints are
// unioned. It returns nil when no version is given.
func constraintFromSpec(spec any) (semver.Constraint, error) {
	switch v := spec.(type) {
	case string:
		return semver.ParseConstraint(v)
	case map[string]any:
		version, ok := v["version"].(string)
		if !ok {
			return nil, nil
		}
		return semver.ParseConstraint(version)
	case []map[string]any:
		items := make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
		return unionSpecs(items)
	case []any:
		return unionSpecs(v)
	}
	return nil, errors.New(errors.ErrCodeInvalidConstraint, "unsupported dependency value %T", spec)
}

func unionSpecs(items []any) (semver.Constraint, error) {
	var result semver.Constraint
	for _, item := range items {
		c, err := constraintFromSpec(item)
		if err != nil {
			return nil, err
		}
		switch {
		case c == nil:
		case result == nil:
			result = c
		default:
			result = result.Union(c)
		}
	}
	return result, nil
}

// fromProjectTable reads PEP 621 project.dependencies.
func fromProjectTable(doc map[string]any, path string, opts Options) []*requirement.DetectedRequirement {
	items, _ := lookup(doc, toml.Key{"project", "dependencies"}).([]any)
	var reqs []*requirement.DetectedRequirement
	for _, item := range items {
		line, ok := item.(string)
		if !ok {
			continue
		}
		if r := requirement.Parse(line, path); r != nil {
			reqs = append(reqs, r)
		} else {
			opts.Logger("%s: skipping %q: not a valid requirement", path, line)
		}
	}
	return reqs
}
