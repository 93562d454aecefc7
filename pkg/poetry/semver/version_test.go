package semver

import "testing"

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in        string
		text      string
		precision int
		pre       bool
	}{
		{"1", "1", 1, false},
		{"1.2", "1.2", 2, false},
		{"1.2.3", "1.2.3", 3, false},
		{"1.2.3.4", "1.2.3.4", 4, false},
		{"v2.0", "v2.0", 2, false},
		{"1.0b2", "1.0b2", 2, true},
		{"1.0.0-rc.1", "1.0.0-rc.1", 3, true},
		{"2.0.0.dev1", "2.0.0.dev1", 3, true},
		{"1.0+local.7", "1.0+local.7", 2, false},
		{"1.0.", "1.0", 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			v, err := ParseVersion(tt.in)
			if err != nil {
				t.Fatalf("ParseVersion(%q): %v", tt.in, err)
			}
			if v.String() != tt.text {
				t.Errorf("String() = %q, want %q", v.String(), tt.text)
			}
			if v.precision != tt.precision {
				t.Errorf("precision = %d, want %d", v.precision, tt.precision)
			}
			if v.IsPrerelease() != tt.pre {
				t.Errorf("IsPrerelease() = %v, want %v", v.IsPrerelease(), tt.pre)
			}
		})
	}
}

func TestParseVersionInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.2 3", ">=1.0"} {
		if _, err := ParseVersion(in); err == nil {
			t.Errorf("ParseVersion(%q) succeeded, want error", in)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0", "1.0.0", 0},
		{"1.0", "1.1", -1},
		{"2.0", "1.9.9", 1},
		{"1.0a1", "1.0", -1},
		{"1.0a1", "1.0b1", -1},
		{"1.0rc1", "1.0b2", 1},
		{"1.0a2", "1.0a10", -1},
		{"1.0dev0", "1.0a0", 0},
		{"1.0", "1.0+1", -1},
		{"1.0.0.1", "1.0.0", 1},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			a, b := mustVersion(t, tt.a), mustVersion(t, tt.b)
			if got := a.Compare(b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := b.Compare(a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestNextBreaking(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1.2.3", "2.0.0"},
		{"1.2", "2.0"},
		{"0.2.3", "0.3.0"},
		{"0.0.3", "0.0.4"},
		{"0.0", "0.1"},
		{"0", "1"},
	}
	for _, tt := range tests {
		if got := mustVersion(t, tt.in).nextBreaking().String(); got != tt.want {
			t.Errorf("nextBreaking(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func mustVersion(t *testing.T, s string) *Version {
	t.Helper()
	v, err := ParseVersion(s)
	if err != nil {
		t.Fatalf("ParseVersion(%q): %v", s, err)
	}
	return v
}
