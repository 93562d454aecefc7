package semver

import (
	"slices"
	"strings"
)

// Constraint is a set of versions.
type Constraint interface {
	// IsAny reports whether every version is allowed.
	IsAny() bool
	// IsEmpty reports whether no version is allowed.
	IsEmpty() bool
	Allows(v *Version) bool
	AllowsAll(other Constraint) bool
	AllowsAny(other Constraint) bool
	Intersect(other Constraint) Constraint
	Union(other Constraint) Constraint
	String() string

	// intervals returns the constraint as sorted, disjoint ranges.
	intervals() []Range
}

// Any returns the constraint that allows every version.
func Any() Constraint { return &Range{} }

// Range is a contiguous span of versions. A nil bound is unbounded.
type Range struct {
	min, max               *Version
	includeMin, includeMax bool
}

// NewRange returns the range between min and max.
func NewRange(min, max *Version, includeMin, includeMax bool) *Range {
	return &Range{min: min, max: max, includeMin: includeMin && min != nil, includeMax: includeMax && max != nil}
}

func (r *Range) IsAny() bool        { return r.min == nil && r.max == nil }
func (r *Range) IsEmpty() bool      { return false }
func (r *Range) intervals() []Range { return []Range{*r} }

func (r *Range) Allows(v *Version) bool                { return r.contains(v) }
func (r *Range) AllowsAll(other Constraint) bool       { return allowsAll(r, other) }
func (r *Range) AllowsAny(other Constraint) bool       { return allowsAny(r, other) }
func (r *Range) Intersect(other Constraint) Constraint { return intersect(r, other) }
func (r *Range) Union(other Constraint) Constraint     { return union(r, other) }

func (r *Range) String() string {
	if r.IsAny() {
		return "*"
	}
	var b strings.Builder
	if r.min != nil {
		if r.includeMin {
			b.WriteString(">=")
		} else {
			b.WriteString(">")
		}
		b.WriteString(r.min.text)
	}
	if r.max != nil {
		if r.min != nil {
			b.WriteString(",")
		}
		if r.includeMax {
			b.WriteString("<=")
		} else {
			b.WriteString("<")
		}
		b.WriteString(r.max.text)
	}
	return b.String()
}

func (r *Range) contains(v *Version) bool {
	if r.min != nil {
		c := v.Compare(r.min)
		if c < 0 || (c == 0 && !r.includeMin) {
			return false
		}
	}
	if r.max != nil {
		c := v.Compare(r.max)
		if c > 0 || (c == 0 && !r.includeMax) {
			return false
		}
	}
	return true
}

func (v *Version) IsAny() bool   { return false }
func (v *Version) IsEmpty() bool { return false }
func (v *Version) intervals() []Range {
	return []Range{{min: v, max: v, includeMin: true, includeMax: true}}
}

func (v *Version) Allows(o *Version) bool                { return v.Compare(o) == 0 }
func (v *Version) AllowsAll(other Constraint) bool       { return allowsAll(v, other) }
func (v *Version) AllowsAny(other Constraint) bool       { return allowsAny(v, other) }
func (v *Version) Intersect(other Constraint) Constraint { return intersect(v, other) }
func (v *Version) Union(other Constraint) Constraint     { return union(v, other) }

// Union is a set of two or more disjoint ranges, sorted ascending.
type Union struct {
	ranges []Range
}

func (u *Union) IsAny() bool        { return false }
func (u *Union) IsEmpty() bool      { return false }
func (u *Union) intervals() []Range { return u.ranges }

func (u *Union) Allows(v *Version) bool {
	for i := range u.ranges {
		if u.ranges[i].contains(v) {
			return true
		}
	}
	return false
}

func (u *Union) AllowsAll(other Constraint) bool       { return allowsAll(u, other) }
func (u *Union) AllowsAny(other Constraint) bool       { return allowsAny(u, other) }
func (u *Union) Intersect(other Constraint) Constraint { return intersect(u, other) }
func (u *Union) Union(other Constraint) Constraint     { return union(u, other) }

func (u *Union) String() string {
	if len(u.ranges) == 2 {
		lo, hi := u.ranges[0], u.ranges[1]
		if lo.min == nil && hi.max == nil && !lo.includeMax && !hi.includeMin && lo.max.Compare(hi.min) == 0 {
			return "!=" + lo.max.text
		}
	}
	parts := make([]string, len(u.ranges))
	for i := range u.ranges {
		parts[i] = single(u.ranges[i]).String()
	}
	return strings.Join(parts, " || ")
}

// Empty allows no version.
type Empty struct{}

func (Empty) IsAny() bool                       { return false }
func (Empty) IsEmpty() bool                     { return true }
func (Empty) Allows(*Version) bool              { return false }
func (Empty) AllowsAll(other Constraint) bool   { return other.IsEmpty() }
func (Empty) AllowsAny(Constraint) bool         { return false }
func (Empty) Intersect(Constraint) Constraint   { return Empty{} }
func (Empty) Union(other Constraint) Constraint { return other }
func (Empty) String() string                    { return "<empty>" }
func (Empty) intervals() []Range                { return nil }

func intersect(a, b Constraint) Constraint {
	var out []Range
	for _, x := range a.intervals() {
		for _, y := range b.intervals() {
			if r, ok := intersectRanges(x, y); ok {
				out = append(out, r)
			}
		}
	}
	return fromIntervals(out)
}

func union(a, b Constraint) Constraint {
	out := append(slices.Clone(a.intervals()), b.intervals()...)
	return fromIntervals(out)
}

func allowsAny(a, b Constraint) bool {
	return !intersect(a, b).IsEmpty()
}

func allowsAll(a, b Constraint) bool {
	want := merge(slices.Clone(b.intervals()))
	got := intersect(a, b).intervals()
	return slices.EqualFunc(want, got, sameRange)
}

// fromIntervals collapses ranges into the simplest equivalent constraint.
func fromIntervals(rs []Range) Constraint {
	rs = merge(rs)
	switch len(rs) {
	case 0:
		return Empty{}
	case 1:
		return single(rs[0])
	}
	return &Union{ranges: rs}
}

// single returns r as a *Version when it pins exactly one version.
func single(r Range) Constraint {
	if r.min != nil && r.max != nil && r.includeMin && r.includeMax && r.min.Compare(r.max) == 0 {
		return r.min
	}
	return &r
}

func merge(rs []Range) []Range {
	if len(rs) < 2 {
		return rs
	}
	slices.SortStableFunc(rs, cmpLower)
	out := []Range{rs[0]}
	for _, next := range rs[1:] {
		cur := &out[len(out)-1]
		if !touches(*cur, next) {
			out = append(out, next)
			continue
		}
		if cmpUpper(next, *cur) > 0 {
			cur.max, cur.includeMax = next.max, next.includeMax
		}
	}
	return out
}

// touches reports whether b, which starts no earlier than a, overlaps or
// abuts a.
func touches(a, b Range) bool {
	if a.max == nil || b.min == nil {
		return true
	}
	c := a.max.Compare(b.min)
	return c > 0 || (c == 0 && (a.includeMax || b.includeMin))
}

func intersectRanges(a, b Range) (Range, bool) {
	lo, hi := a, a
	if cmpLower(b, a) > 0 {
		lo = b
	}
	if cmpUpper(b, a) < 0 {
		hi = b
	}
	r := Range{min: lo.min, includeMin: lo.includeMin, max: hi.max, includeMax: hi.includeMax}
	if r.min == nil || r.max == nil {
		return r, true
	}
	c := r.min.Compare(r.max)
	if c > 0 || (c == 0 && !(r.includeMin && r.includeMax)) {
		return Range{}, false
	}
	return r, true
}

// complement returns every version outside r.
func complement(r Range) []Range {
	var out []Range
	if r.min != nil {
		out = append(out, Range{max: r.min, includeMax: !r.includeMin})
	}
	if r.max != nil {
		out = append(out, Range{min: r.max, includeMin: !r.includeMax})
	}
	return out
}

func cmpLower(a, b Range) int {
	switch {
	case a.min == nil && b.min == nil:
		return 0
	case a.min == nil:
		return -1
	case b.min == nil:
		return 1
	}
	if c := a.min.Compare(b.min); c != 0 {
		return c
	}
	switch {
	case a.includeMin == b.includeMin:
		return 0
	case a.includeMin:
		return -1
	}
	return 1
}

func cmpUpper(a, b Range) int {
	switch {
	case a.max == nil && b.max == nil:
		return 0
	case a.max == nil:
		return 1
	case b.max == nil:
		return -1
	}
	if c := a.max.Compare(b.max); c != 0 {
		return c
	}
	switch {
	case a.includeMax == b.includeMax:
		return 0
	case a.includeMax:
		return 1
	}
	return -1
}

func sameRange(a, b Range) bool {
	return cmpLower(a, b) == 0 && cmpUpper(a, b) == 0
}
