package repo

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrWrongShape    = errors.New("wrong file type")
	ErrIO            = errors.New("i/o failure")
	ErrConfigInvalid = errors.New("invalid config")
)

var (
	errNotDir  = errors.New("not a directory")
	errNotFile = errors.New("not a regular file")
)

// PathError records a failed filesystem step. Kind is one of ErrNotFound,
// ErrAlreadyExists, ErrWrongShape or ErrIO; Err, when set, is the
// underlying cause. Both are matched by errors.Is.
type PathError struct {
	Op   string
	Path string
	Kind error
	Err  error
}

func (e *PathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Kind)
	}
	return fmt.Sprintf("%s %s: %v: %v", e.Op, e.Path, e.Kind, e.Err)
}

func (e *PathError) Unwrap() []error {
	if e == nil {
		return nil
	}
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// RepositoryNotFoundError is returned by Locate when no ancestor of the
// start directory holds a metadata directory. Path is the last directory
// probed, normally the filesystem root.
type RepositoryNotFoundError struct {
	Path string
}

func (e *RepositoryNotFoundError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("not a repository (or any parent up to %s)", e.Path)
}

func (e *RepositoryNotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ConfigError describes a config file that cannot be parsed or that
// violates the core invariants. For value mismatches Want and Got hold the
// expected and actual strings.
type ConfigError struct {
	Path    string
	Section string
	Key     string
	Want    string
	Got     string
	Missing bool
	Err     error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := fmt.Sprintf("config %s: %s", e.Path, ErrConfigInvalid)
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", prefix, e.Err)
	case e.Missing && e.Key == "":
		return fmt.Sprintf("%s: missing section [%s]", prefix, e.Section)
	case e.Missing:
		return fmt.Sprintf("%s: missing key %s.%s", prefix, e.Section, e.Key)
	default:
		return fmt.Sprintf("%s: unexpected value for %s.%s: want %q, got %q", prefix, e.Section, e.Key, e.Want, e.Got)
	}
}

func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfigInvalid
}
