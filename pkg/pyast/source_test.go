package pyast

import (
	"errors"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name    string
		src     []byte
		want    string
		wantErr bool
	}{
		{"plain utf-8", []byte("x = 1\n"), "x = 1\n", false},
		{"bom stripped", []byte("\xef\xbb\xbfx = 1\n"), "x = 1\n", false},
		{"utf-8 declaration", []byte("# -*- coding: UTF-8 -*-\nx = 'é'\n"), "# -*- coding: UTF-8 -*-\nx = 'é'\n", false},
		{"latin-1 declaration", []byte("# coding=latin-1\nx = '\xe9'\n"), "# coding=latin-1\nx = 'é'\n", false},
		{"declaration on second line", []byte("#!/usr/bin/env python\n# vim: set fileencoding=iso-8859-1 :\nx = '\xe9'\n"), "#!/usr/bin/env python\n# vim: set fileencoding=iso-8859-1 :\nx = 'é'\n", false},
		{"latin-1 is not windows-1252", []byte("# coding: latin-1\nx = '\x80'\n"), "# coding: latin-1\nx = '\u0080'\n", false},
		{"cp1252 declaration", []byte("# coding: cp1252\nx = '\x80'\n"), "# coding: cp1252\nx = '€'\n", false},
		{"invalid utf-8 without declaration", []byte("x = '\xe9'\n"), "", true},
		{"unknown encoding", []byte("# coding: klingon\nx = 1\n"), "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.src)
			if tt.wantErr {
				var se *SyntaxError
				if !errors.As(err, &se) {
					t.Fatalf("Normalize() error = %v, want *SyntaxError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Normalize() error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Normalize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeclaredEncodingIgnoresLaterLines(t *testing.T) {
	src := []byte("import os\n# coding: latin-1\n")
	if got := declaredEncoding(src); got != "" {
		t.Errorf("declaredEncoding() = %q, want empty", got)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct{ in, want string }{
		{`plain`, "plain"},
		{`a\\b`, `a\b`},
		{`quote\"d`, `quote"d`},
		{`\x41é\U0001F600`, "Aé\U0001F600"},
		{`\101`, "A"},
		{`\d`, `\d`},
		{"line\\\ncontinued", "linecontinued"},
	}
	for _, tt := range tests {
		if got := unescape(tt.in); got != tt.want {
			t.Errorf("unescape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
