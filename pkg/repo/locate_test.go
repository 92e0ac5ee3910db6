package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocate(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "a")
	c := filepath.Join(a, "b", "c")
	if err := os.MkdirAll(c, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.Mkdir(filepath.Join(a, ".git"), 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	tests := []struct {
		name  string
		start string
	}{
		{"nested", c},
		{"start inclusive", a},
		{"unclean path", filepath.Join(c, "..", "..", "b")},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Locate(tc.start)
			if err != nil {
				t.Fatalf("Locate(%q): %v", tc.start, err)
			}
			if got != a {
				t.Errorf("Locate(%q) = %q, want %q", tc.start, got, a)
			}
		})
	}
}

func TestLocate_Nearest(t *testing.T) {
	outer := mustCreate(t)
	inner := filepath.Join(outer.WorktreeDir, "vendor", "inner")
	if err := os.MkdirAll(filepath.Join(inner, ".git"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	deep := filepath.Join(inner, "x")
	if err := os.Mkdir(deep, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	got, err := Locate(deep)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != inner {
		t.Errorf("Locate = %q, want nearest %q", got, inner)
	}
}

func TestLocate_MarkerMustBeDirectory(t *testing.T) {
	outer := mustCreate(t)
	sub := filepath.Join(outer.WorktreeDir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	// A .git file (as used by linked worktrees) is skipped.
	mustWrite(t, filepath.Join(sub, ".git"), "gitdir: elsewhere\n")

	got, err := Locate(sub)
	if err != nil {
		t.Fatalf("Locate: %v", err)
	}
	if got != outer.WorktreeDir {
		t.Errorf("Locate = %q, want %q", got, outer.WorktreeDir)
	}
}

func TestLocate_NotFound(t *testing.T) {
	start := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := os.MkdirAll(start, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	// Guard against a repository above the temp dir on the test machine.
	if found, err := Locate(start); err == nil {
		t.Skipf("temp dir is inside a repository at %s", found)
	}

	_, err := Locate(start)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	var nf *RepositoryNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *RepositoryNotFoundError, got %T", err)
	}
	if filepath.Dir(nf.Path) != nf.Path {
		t.Errorf("last probed path %q is not the filesystem root", nf.Path)
	}
}

func TestDiscover_NotFound(t *testing.T) {
	start := t.TempDir()
	if _, err := Locate(start); err == nil {
		t.Skip("temp dir is inside a repository")
	}
	if _, err := Discover(start); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
