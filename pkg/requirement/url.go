package requirement

import (
	"net/url"
	"strings"
)

const schemeChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789+-."

// usesNetloc lists schemes whose URLs always render with "//" even when the
// authority is empty (file:///path).
var usesNetloc = map[string]bool{
	"": true, "ftp": true, "http": true, "gopher": true, "nntp": true,
	"telnet": true, "imap": true, "wais": true, "file": true, "mms": true,
	"https": true, "shttp": true, "snews": true, "prospero": true, "rtsp": true,
	"rtspu": true, "rsync": true, "svn": true, "svn+ssh": true, "sftp": true,
	"nfs": true, "git": true, "git+ssh": true, "ws": true, "wss": true,
}

// splitURL is a lenient scheme/netloc/path/query/fragment splitter.
//
// Unlike net/url it never fails and never re-escapes: joining the parts
// again reproduces the input. Requirement lines are frequently not valid
// RFC 3986 URLs (scp-style git remotes, relative paths, spaces).
type splitURL struct {
	scheme   string
	netloc   string
	path     string
	query    string
	fragment string
}

func parseURL(raw string) splitURL {
	var u splitURL
	rest := raw

	if i := strings.IndexByte(rest, ':'); i > 0 && isASCIILetter(rest[0]) {
		valid := true
		for j := 0; j < i; j++ {
			if strings.IndexByte(schemeChars, rest[j]) < 0 {
				valid = false
				break
			}
		}
		if valid {
			u.scheme = strings.ToLower(rest[:i])
			rest = rest[i+1:]
		}
	}

	if strings.HasPrefix(rest, "//") {
		end := len(rest)
		if i := strings.IndexAny(rest[2:], "/?#"); i >= 0 {
			end = i + 2
		}
		u.netloc = rest[2:end]
		rest = rest[end:]
	}

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		u.fragment = rest[i+1:]
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		u.query = rest[i+1:]
		rest = rest[:i]
	}
	u.path = rest
	return u
}

// String joins the parts back together.
func (u splitURL) String() string {
	out := u.path
	if u.netloc != "" || (u.scheme != "" && usesNetloc[u.scheme] && !strings.HasPrefix(out, "//")) {
		if out != "" && out[0] != '/' {
			out = "/" + out
		}
		out = "//" + u.netloc + out
	}
	if u.scheme != "" {
		out = u.scheme + ":" + out
	}
	if u.query != "" {
		out += "?" + u.query
	}
	if u.fragment != "" {
		out += "#" + u.fragment
	}
	return out
}

// eggName extracts the first non-empty "egg" value from a URL fragment such
// as "egg=fish&subdirectory=src".
func eggName(fragment string) string {
	if !strings.Contains(fragment, "=") {
		return ""
	}
	// Malformed pairs are reported but the valid ones are still returned.
	values, _ := url.ParseQuery(fragment)
	for _, v := range values["egg"] {
		if v != "" {
			return v
		}
	}
	return ""
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
