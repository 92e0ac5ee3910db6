package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Create makes a new repository at path, which must not exist yet. It
// creates the worktree directory, the .git/ skeleton (branches/, objects/,
// refs/tags/, refs/heads/), the description and HEAD files and a config
// with the core defaults, then validates the result.
//
// If any step fails after the worktree directory was made, the whole
// worktree is removed again before the error is returned.
func Create(path string) (r *Repo, err error) {
	worktree := filepath.Clean(path)

	// Fail if the target already exists, whatever it is.
	if _, err := os.Lstat(worktree); err == nil {
		return nil, &PathError{Op: "create", Path: worktree, Kind: ErrAlreadyExists}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, &PathError{Op: "create", Path: worktree, Kind: ErrIO, Err: err}
	}

	if err := os.Mkdir(worktree, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, &PathError{Op: "create", Path: worktree, Kind: ErrAlreadyExists}
		}
		return nil, &PathError{Op: "create", Path: worktree, Kind: ErrIO, Err: err}
	}
	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.RemoveAll(worktree); rmErr != nil {
			err = errors.Join(err, fmt.Errorf("create: remove partial repository %s: %w", worktree, rmErr))
		}
	}()

	gitDir := metadataDir(worktree)
	if err := mkdir(gitDir); err != nil {
		return nil, err
	}
	for _, segs := range metadataDirs {
		if err := mkdir(repoPath(gitDir, segs...)); err != nil {
			return nil, err
		}
	}

	if err := writeFile(repoPath(gitDir, descriptionFile), defaultDescription); err != nil {
		return nil, err
	}
	if err := writeFile(repoPath(gitDir, headFile), defaultHead); err != nil {
		return nil, err
	}
	if err := DefaultConfig().WriteFile(repoPath(gitDir, configFile)); err != nil {
		return nil, err
	}

	cfg, err := check(worktree)
	if err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}
	return newRepo(worktree, cfg), nil
}

// Open opens the repository whose worktree is exactly path. Nothing is
// created; the repository is validated as by Check.
func Open(path string) (*Repo, error) {
	worktree := filepath.Clean(path)
	cfg, err := check(worktree)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return newRepo(worktree, cfg), nil
}

func mkdir(path string) error {
	if err := os.Mkdir(path, 0o755); err != nil {
		return &PathError{Op: "create", Path: path, Kind: ErrIO, Err: err}
	}
	return nil
}

// writeFile is a variable so tests can inject failures part way through
// Create.
var writeFile = func(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return &PathError{Op: "create", Path: path, Kind: ErrIO, Err: err}
	}
	return nil
}
