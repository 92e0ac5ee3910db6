package repo

import (
	"fmt"
	"os"
	"strings"

	"github.com/odvcencio/grit/pkg/object"
)

// Repo represents an opened repository. It is not modified after Create or
// Open returns it.
type Repo struct {
	WorktreeDir string        // working directory root
	GitDir      string        // .git/ directory
	Config      *Config       // config as read when the repo was opened
	Store       *object.Store // loose object store
}

func newRepo(worktree string, cfg *Config) *Repo {
	gitDir := metadataDir(worktree)
	return &Repo{
		WorktreeDir: worktree,
		GitDir:      gitDir,
		Config:      cfg,
		Store:       object.NewStore(gitDir),
	}
}

// Head reads .git/HEAD. If the content starts with "ref: ", it returns the
// ref path (e.g., "refs/heads/master"). Otherwise it returns the raw content
// as a detached hash string.
func (r *Repo) Head() (string, error) {
	data, err := os.ReadFile(repoPath(r.GitDir, headFile))
	if err != nil {
		return "", fmt.Errorf("head: %w", err)
	}
	content := strings.TrimRight(string(data), "\n")
	if ref, ok := strings.CutPrefix(content, "ref: "); ok {
		return ref, nil
	}
	return content, nil
}
