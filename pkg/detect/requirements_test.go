package detect

import (
	"path/filepath"
	"testing"

	"github.com/matzehuels/reqdetect/pkg/errors"
	"github.com/matzehuels/reqdetect/pkg/requirement"
)

const requirementsTxt = `# a comment
amqp!=1.0.13

Django>=1.5.0
six<1.4,>=1.3.0
South==0.8.2  # pinned, see issue 111
-i https://pypi.example.com/simple
--extra-index-url https://mirror.example.com
-r other.txt
--find-links ./wheels
this is not valid
-e git+https://github.com/x/y.git#egg=y
`

const poetryExport = `click==8.0.1 \
    --hash=sha256:8c04c11192119b1ef78ea049e0a6f0463e4c48ef00a30160c704337586f3ad7a \
    --hash=sha256:fba402a4a47334742d782209a7c79bc448911afe1149d07bdabdf480b3e2f4b6
colorama==0.4.4; platform_system == "Windows" \
    --hash=sha256:9f47eda37229f68eee03b24b9748937c7dc3868f906e8ba69fbcbdd3bc5dc3e2
`

func TestFromRequirementsTxt(t *testing.T) {
	root := writeTree(t, map[string]string{"requirements.txt": requirementsTxt})
	path := filepath.Join(root, "requirements.txt")

	reqs, err := FromRequirementsTxt(path)
	if err != nil {
		t.Fatalf("FromRequirementsTxt: %v", err)
	}
	assertLines(t, reqs,
		"amqp!=1.0.13",
		"Django>=1.5.0",
		"six<1.4,>=1.3.0",
		"South==0.8.2",
		"git+https://github.com/x/y.git#egg=y",
	)
	for _, r := range reqs {
		if r.Location() != path {
			t.Errorf("%s location = %q, want %q", r, r.Location(), path)
		}
	}
}

func TestFromRequirementsTxtPoetryExport(t *testing.T) {
	root := writeTree(t, map[string]string{"requirements.txt": poetryExport})
	reqs, err := FromRequirementsTxt(filepath.Join(root, "requirements.txt"))
	if err != nil {
		t.Fatalf("FromRequirementsTxt: %v", err)
	}
	assertLines(t, reqs, "click==8.0.1", "colorama==0.4.4")
}

func TestFromRequirementsTxtMissing(t *testing.T) {
	_, err := FromRequirementsTxt(filepath.Join(t.TempDir(), "requirements.txt"))
	if !errors.IsCouldNotParse(err) {
		t.Fatalf("error = %v, want COULD_NOT_PARSE", err)
	}
}

func TestFromRequirementsDir(t *testing.T) {
	root := writeTree(t, map[string]string{
		"requirements/base.txt":     "Django==1.5.2\nSouth==0.8.2\n",
		"requirements/dev.pip":      "amqp==1.0.13\nDjango==1.5.2\n",
		"requirements/prod.txt":     "anyjson==0.3.3\n",
		"requirements/README.md":    "not-a-requirement==1\n",
		"requirements/nested/x.txt": "ignored==1\n",
	})

	reqs, err := FromRequirementsDir(filepath.Join(root, "requirements"))
	if err != nil {
		t.Fatalf("FromRequirementsDir: %v", err)
	}
	requirement.Sort(reqs)
	assertLines(t, reqs, "Django==1.5.2", "South==0.8.2", "amqp==1.0.13", "anyjson==0.3.3")
}

func TestFromRequirementsDirSymlink(t *testing.T) {
	root := writeTree(t, map[string]string{
		"common.txt.src":        "flask==2.0\n",
		"requirements/prod.txt": "anyjson==0.3.3\n",
	})
	dir := filepath.Join(root, "requirements")
	symlink(t, filepath.Join("..", "common.txt.src"), filepath.Join(dir, "base.txt"))
	symlink(t, filepath.Join("..", "missing.txt"), filepath.Join(dir, "dangling.txt"))

	reqs, err := FromRequirementsDir(dir)
	if err != nil {
		t.Fatalf("FromRequirementsDir: %v", err)
	}
	requirement.Sort(reqs)
	assertLines(t, reqs, "anyjson==0.3.3", "flask==2.0")
}

func TestFromRequirementsBlobSymlink(t *testing.T) {
	root := writeTree(t, map[string]string{"shared/dev.txt": "anyjson==0.3.3\n"})
	symlink(t, filepath.Join("shared", "dev.txt"), filepath.Join(root, "dev_reqs.txt"))

	reqs, err := FromRequirementsBlob(root)
	if err != nil {
		t.Fatalf("FromRequirementsBlob: %v", err)
	}
	assertLines(t, reqs, "anyjson==0.3.3")
}

func TestFromRequirementsBlob(t *testing.T) {
	root := writeTree(t, map[string]string{
		"requirements.txt":      "amqp==1.0.13\n",
		"dev_reqs.txt":          "anyjson==0.3.3\n",
		"requirements_docs.txt": "django-gubbins==1.1.2\n",
		"testrequirements.txt":  "excluded-prefix==1\n",
		"requirements_test.txt": "excluded-suffix==1\n",
		"requirements-test.txt": "excluded-dash==1\n",
		"notes.txt":             "excluded-name==1\n",
	})

	reqs, err := FromRequirementsBlob(root)
	if err != nil {
		t.Fatalf("FromRequirementsBlob: %v", err)
	}
	requirement.Sort(reqs)
	assertLines(t, reqs, "amqp==1.0.13", "anyjson==0.3.3", "django-gubbins==1.1.2")
}

func TestIsBlobName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"requirements.txt", true},
		{"reqs.txt", true},
		{"dev_requirements.txt", true},
		{"requirements_dev.txt", true},
		{"requires.txt", false},
		{"requirements.pip", false},
		{"testrequirements.txt", false},
		{"test_reqs.txt", false},
		{"requirements_test.txt", false},
		{"requirements-test.txt", false},
		{"requirements-dev.txt", false},
		{"Requirements.txt", false},
	}
	for _, tt := range tests {
		if got := isBlobName(tt.name); got != tt.want {
			t.Errorf("isBlobName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
