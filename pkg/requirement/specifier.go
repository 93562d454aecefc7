package requirement

import (
	"regexp"
	"strings"
)

var (
	nameRE      = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)
	extrasRE    = regexp.MustCompile(`^\[\s*(?:[A-Za-z0-9][A-Za-z0-9._-]*\s*(?:,\s*[A-Za-z0-9][A-Za-z0-9._-]*\s*)*)?\]`)
	specRE      = regexp.MustCompile(`^(===|~=|==|!=|<=|>=|<|>)\s*([^\s,;()]+)`)
	versionRE   = regexp.MustCompile(`^[A-Za-z0-9_.*+!-]+$`)
	directRefRE = regexp.MustCompile(`^([A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?)\s*(?:\[[^\]]*\])?\s*@\s*([A-Za-z][A-Za-z0-9+.-]*://\S*|file:\S+)$`)
)

// parseSpecifier parses "name[extras] (cmp version)(, cmp version)*", with
// the version list optionally wrapped in parentheses. Extras are accepted
// and dropped.
func parseSpecifier(s string) (string, []VersionSpec, bool) {
	name := nameRE.FindString(s)
	if name == "" {
		return "", nil, false
	}
	rest := strings.TrimSpace(s[len(name):])

	if strings.HasPrefix(rest, "[") {
		extras := extrasRE.FindString(rest)
		if extras == "" {
			return "", nil, false
		}
		rest = strings.TrimSpace(rest[len(extras):])
	}
	if rest == "" {
		return name, nil, true
	}

	paren := strings.HasPrefix(rest, "(")
	if paren {
		rest = strings.TrimSpace(rest[1:])
	}

	var specs []VersionSpec
	for {
		m := specRE.FindStringSubmatch(rest)
		if m == nil {
			return "", nil, false
		}
		if m[1] != "===" && !versionRE.MatchString(m[2]) {
			return "", nil, false
		}
		specs = append(specs, VersionSpec{Comparator: m[1], Version: m[2]})
		rest = strings.TrimSpace(rest[len(m[0]):])
		if !strings.HasPrefix(rest, ",") {
			break
		}
		rest = strings.TrimSpace(rest[1:])
	}

	if paren {
		if !strings.HasPrefix(rest, ")") {
			return "", nil, false
		}
		rest = strings.TrimSpace(rest[1:])
	}
	if rest != "" {
		return "", nil, false
	}
	return name, specs, true
}
