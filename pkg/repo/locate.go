package repo

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate searches start and then each of its parents for a directory
// containing a .git/ directory, and returns the first one found. A .git
// entry that is not a directory does not count.
func Locate(start string) (string, error) {
	// Resolve to absolute path for consistent traversal.
	cur, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("locate: abs path: %w", err)
	}

	for {
		info, err := os.Stat(metadataDir(cur))
		if err == nil && info.IsDir() {
			return cur, nil
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return "", &RepositoryNotFoundError{Path: cur}
		}
		cur = parent
	}
}

// Discover locates the repository enclosing start and opens it.
func Discover(start string) (*Repo, error) {
	root, err := Locate(start)
	if err != nil {
		return nil, err
	}
	return Open(root)
}
