package requirement

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		specs []VersionSpec
		url   string
	}{
		// plain names and versions
		{line: "Django", name: "Django"},
		{line: "celery", name: "celery"},
		{line: "Django==1.5.2", name: "Django", specs: []VersionSpec{{"==", "1.5.2"}}},
		{line: "South>0.8", name: "South", specs: []VersionSpec{{">", "0.8"}}},
		{line: "amqp!=1.0.13", name: "amqp", specs: []VersionSpec{{"!=", "1.0.13"}}},
		{
			line:  "django-gubbins!=1.1.1,>1.1",
			name:  "django-gubbins",
			specs: []VersionSpec{{"!=", "1.1.1"}, {">", "1.1"}},
		},
		{
			line:  "six<1.4,>=1.3.0",
			name:  "six",
			specs: []VersionSpec{{"<", "1.4"}, {">=", "1.3.0"}},
		},
		{line: "requests[security,socks]>=2.0", name: "requests", specs: []VersionSpec{{">=", "2.0"}}},
		{line: "pkg (>=1.0, <2.0)", name: "pkg", specs: []VersionSpec{{">=", "1.0"}, {"<", "2.0"}}},
		{line: "pkg~=1.4.2", name: "pkg", specs: []VersionSpec{{"~=", "1.4.2"}}},
		{line: "pkg==1.0.*", name: "pkg", specs: []VersionSpec{{"==", "1.0.*"}}},
		{line: "  padded >= 3  ", name: "padded", specs: []VersionSpec{{">=", "3"}}},

		// markers, continuations
		{line: `pkg==1.0 ; python_version < "3.8"`, name: "pkg", specs: []VersionSpec{{"==", "1.0"}}},
		{line: `attrs==21.2.0; python_version >= "3.6" \`, name: "attrs", specs: []VersionSpec{{"==", "21.2.0"}}},

		// comments
		{line: "celery == 0.1 # comment", name: "celery", specs: []VersionSpec{{"==", "0.1"}}},
		{line: "celery == 0.1\t# comment", name: "celery", specs: []VersionSpec{{"==", "0.1"}}},
		{line: "celery == 0.1 # pinned, see issue 111", name: "celery", specs: []VersionSpec{{"==", "0.1"}}},
		{
			line:  "somelib == 0.15 # pinned to 0.15 (https://github.com/owner/repo/issues/111)",
			name:  "somelib",
			specs: []VersionSpec{{"==", "0.15"}},
		},
		{line: "http://example.com/somelib.tar.gz # comment", url: "http://example.com/somelib.tar.gz"},
		{
			line: "http://example.com/somelib.tar.gz#egg=somelib # url comment http://foo.com/bar",
			name: "somelib",
			url:  "http://example.com/somelib.tar.gz",
		},

		// paths
		{line: "../somelib", url: "../somelib"},
		{line: "./vendor/pkg", url: "./vendor/pkg"},
		{line: "-e ../somelib", url: "../somelib"},
		{line: "file:///tmp/pkg", url: "file:///tmp/pkg"},

		// VCS and archive URLs
		{
			line: "git+ssh://git@github.com/something/somelib.git",
			url:  "git+ssh://git@github.com/something/somelib.git",
		},
		{
			line: "git+ssh://git@github.com/something/somelib.git#egg=somelib",
			name: "somelib",
			url:  "git+ssh://git@github.com/something/somelib.git",
		},
		{
			line: "git+ssh://git@github.com/x/y.git#egg=y",
			name: "y",
			url:  "git+ssh://git@github.com/x/y.git",
		},
		{
			line: "git://github.com/peeb/django-mollie-ideal.git#egg=mollie",
			name: "mollie",
			url:  "git+git://github.com/peeb/django-mollie-ideal.git",
		},
		{
			line: "--editable git+ssh://git@github.com/something/somelib.git#egg=somelib",
			name: "somelib",
			url:  "git+ssh://git@github.com/something/somelib.git",
		},
		{
			line: "git+https://github.com/org/repo.git@v1.2#egg=repo&subdirectory=src",
			name: "repo",
			url:  "git+https://github.com/org/repo.git@v1.2",
		},
		{line: "http://example.com/somelib.tar.gz", url: "http://example.com/somelib.tar.gz"},
		{
			line: "http://example.com/somelib.tar.gz#egg=somelib",
			name: "somelib",
			url:  "http://example.com/somelib.tar.gz",
		},

		// direct references
		{line: "foo @ https://example.com/foo-1.0.zip", name: "foo", url: "https://example.com/foo-1.0.zip"},
		{line: "foo[bar]@ file:///src/foo", name: "foo", url: "file:///src/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			req := Parse(tt.line, "")
			if req == nil {
				t.Fatalf("Parse(%q) = nil", tt.line)
			}
			if req.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", req.Name(), tt.name)
			}
			if req.URL() != tt.url {
				t.Errorf("URL() = %q, want %q", req.URL(), tt.url)
			}
			if !slices.Equal(req.VersionSpecs(), tt.specs) {
				t.Errorf("VersionSpecs() = %v, want %v", req.VersionSpecs(), tt.specs)
			}
		})
	}
}

func TestParseReturnsNil(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"--hash=sha256:2cf8ab6d1b4a41f7c0e1ce08dcd08f5aaf9c2d8",
		"--hash=sha512:abcdef",
		"this is not a requirement",
		"pkg==",
		"pkg>=1.0,",
		"pkg (>=1.0",
		"pkg[unclosed>=1.0",
		"-pkg",
		"; python_version < '3'",
	}
	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			if req := Parse(line, ""); req != nil {
				t.Errorf("Parse(%q) = %v, want nil", line, req)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	req := Parse("Django==1.5", "requirements/base.txt")
	if req.Location() != "requirements/base.txt" {
		t.Errorf("Location() = %q, want %q", req.Location(), "requirements/base.txt")
	}
}

func TestEggName(t *testing.T) {
	tests := []struct {
		fragment string
		want     string
	}{
		{"egg=somelib", "somelib"},
		{"a=b&c=2", ""},
		{"somelib", ""},
		{"egg=somelib&egg=anotherlib", "somelib"},
		{"a=1&egg=somelib&b=2", "somelib"},
		{"egg=&egg=second", "second"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.fragment, func(t *testing.T) {
			if got := eggName(tt.fragment); got != tt.want {
				t.Errorf("eggName(%q) = %q, want %q", tt.fragment, got, tt.want)
			}
		})
	}
}

func TestParseURLRoundTrip(t *testing.T) {
	tests := []struct {
		raw          string
		wantScheme   string
		wantFragment string
		stripped     string
	}{
		{
			raw:          "http://example.com/index.html?a=b&c=2#some_fragment",
			wantScheme:   "http",
			wantFragment: "some_fragment",
			stripped:     "http://example.com/index.html?a=b&c=2",
		},
		{
			raw:      "git@github.com:org/repo.git",
			stripped: "git@github.com:org/repo.git",
		},
		{
			raw:          "../local#egg=local",
			wantFragment: "egg=local",
			stripped:     "../local",
		},
		{
			raw:        "HTTPS://Example.com",
			wantScheme: "https",
			stripped:   "https://Example.com",
		},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			u := parseURL(tt.raw)
			if u.scheme != tt.wantScheme {
				t.Errorf("scheme = %q, want %q", u.scheme, tt.wantScheme)
			}
			if u.fragment != tt.wantFragment {
				t.Errorf("fragment = %q, want %q", u.fragment, tt.wantFragment)
			}
			u.fragment = ""
			if got := u.String(); got != tt.stripped {
				t.Errorf("String() = %q, want %q", got, tt.stripped)
			}
		})
	}
}
