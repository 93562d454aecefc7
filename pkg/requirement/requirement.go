package requirement

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/matzehuels/reqdetect/pkg/errors"
)

// VersionSpec is one (comparator, version) pair such as ("==", "1.5.0").
// Versions are opaque strings here.
type VersionSpec struct {
	Comparator string `json:"comparator"`
	Version    string `json:"version"`
}

// String renders the pair without separators, e.g. "==1.5.0".
func (s VersionSpec) String() string { return s.Comparator + s.Version }

// DetectedRequirement is the normalized form of one dependency specifier.
//
// Values are built by [Parse] and never change afterwards. At least one of
// Name and URL is non-empty. Equality, ordering and [DetectedRequirement.Key]
// consider name, url and version specs; the location is informational only.
type DetectedRequirement struct {
	name     string
	url      string
	specs    []VersionSpec
	location string
}

// Name returns the package name, or "" for URL/path requirements without an
// egg name.
func (r *DetectedRequirement) Name() string { return r.name }

// URL returns the VCS/archive URL or filesystem path, or "" for registry
// requirements.
func (r *DetectedRequirement) URL() string { return r.url }

// Location returns the file the requirement was read from, if known.
func (r *DetectedRequirement) Location() string { return r.location }

// VersionSpecs returns a copy of the version constraints in the order they
// were written.
func (r *DetectedRequirement) VersionSpecs() []VersionSpec {
	return slices.Clone(r.specs)
}

// Equal reports whether r and o name the same requirement.
func (r *DetectedRequirement) Equal(o *DetectedRequirement) bool {
	return r.name == o.name && r.url == o.url && slices.Equal(r.specs, o.specs)
}

// Less orders requirements by name; a missing name sorts as "".
func (r *DetectedRequirement) Less(o *DetectedRequirement) bool {
	return r.name < o.name
}

// Key returns a stable identity string composed of name, url and specs.
// Two requirements are Equal exactly when their keys match.
func (r *DetectedRequirement) Key() string {
	var b strings.Builder
	b.WriteString(r.name)
	b.WriteByte(0)
	b.WriteString(r.url)
	for _, s := range r.specs {
		b.WriteByte(0)
		b.WriteString(s.Comparator)
		b.WriteByte(1)
		b.WriteString(s.Version)
	}
	return b.String()
}

func (r *DetectedRequirement) formatSpecs() string {
	parts := make([]string, len(r.specs))
	for i, s := range r.specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

// PipFormat renders r the way it would appear in a requirements file:
// "name", "name>=1,<2", "url#egg=name" or "url".
func (r *DetectedRequirement) PipFormat() (string, error) {
	if r.url != "" {
		if r.name != "" {
			return r.url + "#egg=" + r.name, nil
		}
		return r.url, nil
	}
	if r.name != "" {
		return r.name + r.formatSpecs(), nil
	}
	return "", errors.New(errors.ErrCodeInvalidRequirement, "cannot convert %s to pip format, no name or URL", r)
}

// String returns a human-readable form, e.g. "Django==1.5 (git+https://...)".
func (r *DetectedRequirement) String() string {
	rep := r.name
	if rep == "" {
		rep = "Unknown"
	}
	rep += r.formatSpecs()
	if r.url != "" {
		rep += " (" + r.url + ")"
	}
	return rep
}

// MarshalJSON implements json.Marshaler.
func (r *DetectedRequirement) MarshalJSON() ([]byte, error) {
	specs := r.VersionSpecs()
	if specs == nil {
		specs = []VersionSpec{}
	}
	return json.Marshal(struct {
		Name         string        `json:"name,omitempty"`
		VersionSpecs []VersionSpec `json:"version_specs"`
		URL          string        `json:"url,omitempty"`
		Location     string        `json:"location,omitempty"`
	}{
		Name:         r.name,
		VersionSpecs: specs,
		URL:          r.url,
		Location:     r.location,
	})
}

// Sort orders reqs by name in place. Requirements with equal names keep
// their relative order.
func Sort(reqs []*DetectedRequirement) {
	slices.SortStableFunc(reqs, func(a, b *DetectedRequirement) int {
		return strings.Compare(a.name, b.name)
	})
}

// Dedupe returns reqs with later duplicates (by [DetectedRequirement.Key])
// removed. The first occurrence of each requirement keeps its position.
func Dedupe(reqs []*DetectedRequirement) []*DetectedRequirement {
	seen := make(map[string]bool, len(reqs))
	out := make([]*DetectedRequirement, 0, len(reqs))
	for _, r := range reqs {
		k := r.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	return out
}
