package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/reqdetect/pkg/requirement"
)

// writeTree creates files under a fresh temp dir. Keys are slash-separated
// relative paths.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

// symlink creates link pointing at target, skipping the test where the
// platform refuses.
func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlink: %v", err)
	}
}

func pipLines(t *testing.T, reqs []*requirement.DetectedRequirement) []string {
	t.Helper()
	out := make([]string, len(reqs))
	for i, r := range reqs {
		s, err := r.PipFormat()
		if err != nil {
			t.Fatalf("PipFormat(%v): %v", r, err)
		}
		out[i] = s
	}
	return out
}

func assertLines(t *testing.T, reqs []*requirement.DetectedRequirement, want ...string) {
	t.Helper()
	got := pipLines(t, reqs)
	if len(got) != len(want) {
		t.Fatalf("got %d requirements %q, want %d %q", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
