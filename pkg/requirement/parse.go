package requirement

import (
	"os"
	"regexp"
	"strings"
)

// hashPrefix starts the continuation lines "poetry export" and pip-compile
// write under a pinned requirement.
const hashPrefix = "--hash"

var (
	commentRE  = regexp.MustCompile(`\s#`)
	editableRE = regexp.MustCompile(`^(?:-e|--editable)\s+`)
)

// bareVCS maps VCS scheme names used without a transport to their compound
// form.
var bareVCS = map[string]string{
	"git": "git+git",
	"svn": "svn+svn",
}

// Parse turns one specifier line into a DetectedRequirement.
//
// location is recorded on the result for traceability and may be empty.
// Parse returns nil for blank lines, hash continuation lines and plain
// specifiers that are not valid.
func Parse(line, location string) *DetectedRequirement {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, hashPrefix) {
		return nil
	}

	// "#egg=" fragments are not comments; a comment needs leading whitespace.
	if loc := commentRE.FindStringIndex(line); loc != nil {
		line = line[:loc[0]]
	}
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), `\`))
	line = editableRE.ReplaceAllString(line, "")
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if m := directRefRE.FindStringSubmatch(line); m != nil {
		_, url := fromURL(strings.TrimSpace(m[2]))
		return &DetectedRequirement{name: m[1], url: url, location: location}
	}

	u := parseURL(line)
	if u.scheme == "" && !isFilePath(line) {
		name, specs, ok := parseSpecifier(line)
		if !ok {
			return nil
		}
		return &DetectedRequirement{name: name, specs: specs, location: location}
	}

	name, url := fromURL(line)
	return &DetectedRequirement{name: name, url: url, location: location}
}

// fromURL splits a URL or path requirement into its egg name and the URL
// without fragment. VCS schemes are stripped before splitting, since the
// remainder is often an scp-style address, and put back afterwards.
func fromURL(raw string) (name, url string) {
	u := parseURL(raw)

	var vcs string
	if strings.Contains(u.scheme, "+") {
		vcs = u.scheme
	} else if compound, ok := bareVCS[u.scheme]; ok {
		vcs = compound
	}
	if vcs != "" {
		prefix := u.scheme + "://"
		if len(raw) >= len(prefix) && strings.EqualFold(raw[:len(prefix)], prefix) {
			raw = raw[len(prefix):]
		}
		u = parseURL(raw)
	}

	name = eggName(u.fragment)
	u.fragment = ""
	url = u.String()
	if vcs != "" {
		url = vcs + "://" + url
	}
	return name, url
}

func isFilePath(s string) bool {
	return strings.ContainsRune(s, '/') ||
		strings.ContainsRune(s, os.PathSeparator) ||
		strings.HasPrefix(s, ".")
}
