package repo

import (
	"errors"
	"io/fs"
	"os"
)

// Validate re-reads the repository from disk and checks its shape and
// config. See Check.
func (r *Repo) Validate() error {
	_, err := check(r.WorktreeDir)
	return err
}

// Check validates the repository rooted at worktree without creating
// anything. It stops at the first violation, checking in order:
//
//  1. worktree is a directory
//  2. branches/, objects/, refs/, refs/tags/ and refs/heads/ under .git/ are directories
//  3. description and HEAD under .git/ are regular files
//  4. config parses and [core] has repositoryformatversion = 0,
//     filemode = false and bare = false
func Check(worktree string) error {
	_, err := check(worktree)
	return err
}

func check(worktree string) (*Config, error) {
	if err := requireDir(worktree); err != nil {
		return nil, err
	}

	gitDir := metadataDir(worktree)
	for _, segs := range metadataDirs {
		if err := requireDir(repoPath(gitDir, segs...)); err != nil {
			return nil, err
		}
	}
	for _, name := range metadataFiles {
		if err := requireFile(repoPath(gitDir, name)); err != nil {
			return nil, err
		}
	}

	path := repoPath(gitDir, configFile)
	if err := requireFile(path); err != nil {
		return nil, err
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.checkCore(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return statError(path, err)
	}
	if !info.IsDir() {
		return &PathError{Op: "validate", Path: path, Kind: ErrWrongShape, Err: errNotDir}
	}
	return nil
}

func requireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return statError(path, err)
	}
	if !info.Mode().IsRegular() {
		return &PathError{Op: "validate", Path: path, Kind: ErrWrongShape, Err: errNotFile}
	}
	return nil
}

func statError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &PathError{Op: "validate", Path: path, Kind: ErrNotFound}
	}
	return &PathError{Op: "validate", Path: path, Kind: ErrIO, Err: err}
}
