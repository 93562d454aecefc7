package semver

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

var (
	versionRE = regexp.MustCompile(`(?i)^v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.(\d+))?[._-]?((?:beta|b|c|pre|rc|alpha|a|dev)(?:[.-]?\d+)*)?(?:[+-]?([0-9a-z-]+(?:\.[0-9a-z-]+)*))?$`)
	preRE     = regexp.MustCompile(`(?i)^(a|alpha|b|beta|c|pre|rc|dev)[-.]?(\d+)?$`)
)

// Version is a parsed version number with up to four numeric components.
type Version struct {
	major, minor, patch, rest int
	precision                 int
	pre                       []string
	build                     []string
	text                      string
}

// ParseVersion parses text such as "1.2", "2.0.0b1" or "1.0+local".
func ParseVersion(text string) (*Version, error) {
	text = strings.TrimSpace(text)
	m := versionRE.FindStringSubmatch(text)
	if m == nil {
		return nil, errors.New(errors.ErrCodeInvalidConstraint, "unable to parse version %q", text)
	}

	v := &Version{text: strings.TrimRight(text, ".")}
	nums := []*int{&v.major, &v.minor, &v.patch, &v.rest}
	for i, part := range m[1:5] {
		if part == "" {
			break
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConstraint, err, "version %q", text)
		}
		*nums[i] = n
		v.precision = i + 1
	}
	v.pre = normalizePre(m[5])
	v.build = normalizeBuild(m[6])
	return v, nil
}

// newVersion builds a version from components and renders its text
// according to precision.
func newVersion(major, minor, patch, precision int) *Version {
	v := &Version{major: major, minor: minor, patch: patch, precision: precision}
	parts := []string{strconv.Itoa(major)}
	if precision >= 2 || minor != 0 {
		parts = append(parts, strconv.Itoa(minor))
		if precision >= 3 || patch != 0 {
			parts = append(parts, strconv.Itoa(patch))
		}
	}
	v.text = strings.Join(parts, ".")
	return v
}

func normalizePre(pre string) []string {
	m := preRE.FindStringSubmatch(pre)
	if m == nil {
		return nil
	}
	modifier := strings.ToLower(m[1])
	switch modifier {
	case "a", "dev":
		modifier = "alpha"
	case "b":
		modifier = "beta"
	case "c", "pre":
		modifier = "rc"
	}
	number := m[2]
	if number == "" {
		number = "0"
	}
	return []string{modifier, number}
}

func normalizeBuild(build string) []string {
	build = strings.TrimPrefix(build, "post")
	if build == "" {
		return nil
	}
	return strings.Split(build, ".")
}

// String returns the version as written.
func (v *Version) String() string { return v.text }

// IsPrerelease reports whether v carries a pre-release tag.
func (v *Version) IsPrerelease() bool { return len(v.pre) > 0 }

// Compare returns -1, 0 or +1 depending on whether v sorts before, equal to
// or after o. Pre-releases sort before their release; builds after.
func (v *Version) Compare(o *Version) int {
	for _, d := range [][2]int{{v.major, o.major}, {v.minor, o.minor}, {v.patch, o.patch}, {v.rest, o.rest}} {
		if c := cmpInt(d[0], d[1]); c != 0 {
			return c
		}
	}
	switch {
	case !v.IsPrerelease() && o.IsPrerelease():
		return 1
	case v.IsPrerelease() && !o.IsPrerelease():
		return -1
	}
	if c := cmpParts(v.pre, o.pre); c != 0 {
		return c
	}
	switch {
	case len(v.build) == 0 && len(o.build) > 0:
		return -1
	case len(v.build) > 0 && len(o.build) == 0:
		return 1
	}
	return cmpParts(v.build, o.build)
}

func (v *Version) stable() *Version {
	if !v.IsPrerelease() {
		return v
	}
	return newVersion(v.major, v.minor, v.patch, 3)
}

func (v *Version) nextMajor() *Version {
	return newVersion(v.major+1, 0, 0, v.precision)
}

func (v *Version) nextMinor() *Version {
	return newVersion(v.major, v.minor+1, 0, v.precision)
}

func (v *Version) nextPatch() *Version {
	return newVersion(v.major, v.minor, v.patch+1, v.precision)
}

// nextBreaking is the first version a caret constraint excludes.
func (v *Version) nextBreaking() *Version {
	if v.major != 0 {
		return v.nextMajor()
	}
	switch {
	case v.minor != 0:
		return v.nextMinor()
	case v.precision == 1:
		return v.nextMajor()
	case v.precision == 2:
		return v.nextMinor()
	}
	return v.nextPatch()
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpParts compares dotted identifiers: numbers numerically and before
// text, a missing part before a present one.
func cmpParts(a, b []string) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		switch {
		case i >= len(a):
			return -1
		case i >= len(b):
			return 1
		}
		if a[i] == b[i] {
			continue
		}
		an, aErr := strconv.Atoi(a[i])
		bn, bErr := strconv.Atoi(b[i])
		switch {
		case aErr == nil && bErr == nil:
			return cmpInt(an, bn)
		case aErr == nil:
			return -1
		case bErr == nil:
			return 1
		}
		return strings.Compare(a[i], b[i])
	}
	return 0
}
