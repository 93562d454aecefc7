package semver

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

const versionPattern = `v?\d+(?:\.\d+){0,3}[0-9A-Za-z.+_-]*`

var (
	orSplitRE    = regexp.MustCompile(`\s*\|\|?\s*`)
	operatorRE   = regexp.MustCompile(`^(?:<>|!=|>=|<=|==|~=|[<>=^~])$`)
	anyRE        = regexp.MustCompile(`(?i)^v?[x*](?:\.[x*])*$`)
	tildeRE      = regexp.MustCompile(`^~\s*(` + versionPattern + `)$`)
	tildePEP440  = regexp.MustCompile(`^~=\s*(` + versionPattern + `)$`)
	caretRE      = regexp.MustCompile(`^\^\s*(` + versionPattern + `)$`)
	wildcardRE   = regexp.MustCompile(`(?i)^(!=|==)?\s*v?(\d+)(?:\.(\d+))?(?:\.(\d+))?(?:\.[x*])+$`)
	comparatorRE = regexp.MustCompile(`^(<>|!=|>=?|<=?|==?)?\s*(` + versionPattern + `|dev)$`)
)

// ParseConstraint parses a Poetry version constraint. Alternatives are
// separated by "||" (or "|"); within one alternative, constraints
// separated by commas or whitespace are intersected.
func ParseConstraint(text string) (Constraint, error) {
	text = strings.TrimSpace(text)
	if text == "" || text == "*" {
		return Any(), nil
	}

	var result Constraint = Empty{}
	for _, alt := range orSplitRE.Split(text, -1) {
		terms := splitTerms(alt)
		if len(terms) == 0 {
			return nil, errors.New(errors.ErrCodeInvalidConstraint, "empty alternative in constraint %q", text)
		}
		var group Constraint = Any()
		for _, term := range terms {
			c, err := parseSingle(term)
			if err != nil {
				return nil, err
			}
			group = group.Intersect(c)
		}
		result = result.Union(group)
	}
	return result, nil
}

// MustParseConstraint is like ParseConstraint but panics on error.
func MustParseConstraint(text string) Constraint {
	c, err := ParseConstraint(text)
	if err != nil {
		panic(err)
	}
	return c
}

// splitTerms splits an alternative on commas and whitespace, keeping a
// lone operator attached to the version that follows it (">= 1.0").
func splitTerms(alt string) []string {
	var terms []string
	for _, piece := range strings.Split(alt, ",") {
		fields := strings.Fields(piece)
		for i := 0; i < len(fields); i++ {
			term := fields[i]
			if operatorRE.MatchString(term) && i+1 < len(fields) {
				i++
				term += fields[i]
			}
			terms = append(terms, term)
		}
	}
	return terms
}

func parseSingle(term string) (Constraint, error) {
	if anyRE.MatchString(term) {
		return Any(), nil
	}

	if m := tildePEP440.FindStringSubmatch(term); m != nil {
		v, err := ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		high := v.stable().nextMinor()
		if v.precision == 2 {
			high = v.stable().nextMajor()
		}
		return NewRange(v, high, true, false), nil
	}

	if m := tildeRE.FindStringSubmatch(term); m != nil {
		v, err := ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		high := v.stable().nextMinor()
		if v.precision == 1 {
			high = v.stable().nextMajor()
		}
		return NewRange(v, high, true, false), nil
	}

	if m := caretRE.FindStringSubmatch(term); m != nil {
		v, err := ParseVersion(m[1])
		if err != nil {
			return nil, err
		}
		return NewRange(v, v.nextBreaking(), true, false), nil
	}

	if m := wildcardRE.FindStringSubmatch(term); m != nil {
		major, _ := strconv.Atoi(m[2])
		var r *Range
		switch {
		case m[3] != "":
			minor, _ := strconv.Atoi(m[3])
			v := newVersion(major, minor, 0, 3)
			r = NewRange(v, v.nextMinor(), true, false)
		case major == 0:
			r = NewRange(nil, newVersion(1, 0, 0, 3), false, false)
		default:
			v := newVersion(major, 0, 0, 3)
			r = NewRange(v, v.nextMajor(), true, false)
		}
		if m[1] == "!=" {
			return fromIntervals(complement(*r)), nil
		}
		return r, nil
	}

	if m := comparatorRE.FindStringSubmatch(term); m != nil {
		text := m[2]
		if text == "dev" {
			text = "0.0-dev"
		}
		v, err := ParseVersion(text)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConstraint, err, "could not parse version constraint %q", term)
		}
		switch m[1] {
		case "<":
			return NewRange(nil, v, false, false), nil
		case "<=":
			return NewRange(nil, v, false, true), nil
		case ">":
			return NewRange(v, nil, false, false), nil
		case ">=":
			return NewRange(v, nil, true, false), nil
		case "!=", "<>":
			return fromIntervals(complement(Range{min: v, max: v, includeMin: true, includeMax: true})), nil
		}
		return v, nil
	}

	return nil, errors.New(errors.ErrCodeInvalidConstraint, "could not parse version constraint %q", term)
}
