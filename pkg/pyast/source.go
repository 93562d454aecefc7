package pyast

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

var (
	utf8BOM  = []byte("\xef\xbb\xbf")
	codingRE = regexp.MustCompile(`^[ \t\f]*#.*?coding[:=][ \t]*([-\w.]+)`)
)

// Normalize returns src as UTF-8 without a byte order mark.
//
// A coding declaration in the first two lines ("# -*- coding: latin-1 -*-")
// selects the source encoding. Undeclared sources must already be UTF-8.
func Normalize(src []byte) ([]byte, error) {
	src = bytes.TrimPrefix(src, utf8BOM)

	name := declaredEncoding(src)
	if name == "" || isUTF8Name(name) {
		if !utf8.Valid(src) {
			return nil, &SyntaxError{Msg: "source is not valid UTF-8 and declares no encoding"}
		}
		return src, nil
	}

	enc := lookupEncoding(name)
	if enc == nil {
		return nil, &SyntaxError{Pos: Position{Line: 1}, Msg: "unknown encoding: " + name}
	}
	out, err := enc.NewDecoder().Bytes(src)
	if err != nil {
		return nil, &SyntaxError{Pos: Position{Line: 1}, Msg: "cannot decode source as " + name + ": " + err.Error()}
	}
	return out, nil
}

func declaredEncoding(src []byte) string {
	lines := bytes.SplitN(src, []byte("\n"), 3)
	for i, line := range lines {
		if i == 2 {
			break
		}
		if m := codingRE.FindSubmatch(line); m != nil {
			return string(m[1])
		}
		// The declaration may only follow a comment or blank line.
		if t := bytes.TrimSpace(line); len(t) > 0 && t[0] != '#' {
			break
		}
	}
	return ""
}

func isUTF8Name(name string) bool {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "utf-8", "utf8", "utf-8-sig":
		return true
	}
	return false
}

func lookupEncoding(name string) encoding.Encoding {
	lower := strings.ToLower(name)
	candidates := []string{
		lower,
		strings.ReplaceAll(lower, "_", "-"),
		strings.ReplaceAll(strings.ReplaceAll(lower, "_", ""), "-", ""),
	}
	// IANA names first: WHATWG maps latin-1 to windows-1252.
	for _, c := range candidates {
		if enc, err := ianaindex.IANA.Encoding(c); err == nil && enc != nil {
			return enc
		}
	}
	for _, c := range candidates {
		if enc, err := htmlindex.Get(c); err == nil {
			return enc
		}
	}
	return nil
}
