package object

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio"
)

// Store is a loose object store with a 2-character fan-out directory
// layout: objects/ab/cdef0123...
type Store struct {
	root string
}

// NewStore creates a Store rooted at the given metadata directory. Fan-out
// directories under objects/ are created lazily on first write.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// objectPath returns the filesystem path for a given hash.
func objectPath(root string, h Hash) string {
	return filepath.Join(root, "objects", string(h[:2]), string(h[2:]))
}

// Path returns the on-disk location of the object with the given hash.
func (s *Store) Path(h Hash) (string, error) {
	if _, err := ParseHash(string(h)); err != nil {
		return "", err
	}
	return objectPath(s.root, h), nil
}

// Has reports whether the store contains an object with the given hash.
func (s *Store) Has(h Hash) bool {
	p, err := s.Path(h)
	if err != nil {
		return false
	}
	info, err := os.Stat(p)
	return err == nil && info.Mode().IsRegular()
}

// Write stores an object and returns its content hash. The id is the SHA-1
// of the uncompressed frame "type len\0content"; the file holds the zlib
// compressed frame. Objects already present are left untouched.
func (s *Store) Write(objType ObjectType, data []byte) (Hash, error) {
	if objType == "" || strings.ContainsAny(string(objType), " \x00") {
		return "", fmt.Errorf("object write: invalid type %q", objType)
	}

	raw := Frame(objType, data)
	h := HashBytes(raw)

	// Fast path: already exists.
	if s.Has(h) {
		return h, nil
	}

	compressed, err := Compress(raw)
	if err != nil {
		return "", fmt.Errorf("object write %s: compress: %w", h, err)
	}

	dir := filepath.Join(s.root, "objects", string(h[:2]))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("object write mkdir: %w", err)
	}
	if err := renameio.WriteFile(objectPath(s.root, h), compressed, 0o444); err != nil {
		return "", fmt.Errorf("object write %s: %w", h, err)
	}
	return h, nil
}

// WriteObject stores obj and returns its hash.
func (s *Store) WriteObject(obj Object) (Hash, error) {
	return s.Write(obj.Type(), obj.Payload())
}

// Read retrieves and decodes the object with the given hash. Missing
// objects wrap fs.ErrNotExist; undecodable bytes yield a *MalformedError;
// unknown type tags yield an *UnsupportedError.
func (s *Store) Read(h Hash) (Object, error) {
	p, err := s.Path(h)
	if err != nil {
		return nil, fmt.Errorf("object read: %w", err)
	}
	compressed, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("object read %s: %w", h, err)
	}
	obj, err := Decode(compressed)
	if err != nil {
		return nil, withLocation(err, h, p)
	}
	return obj, nil
}

// ReadBlob reads an object and checks that it is a blob.
func (s *Store) ReadBlob(h Hash) (*Blob, error) {
	obj, err := s.Read(h)
	if err != nil {
		return nil, err
	}
	// Read only decodes blobs today; the assertion guards later variants.
	b, ok := obj.(*Blob)
	if !ok {
		return nil, &UnsupportedError{Hash: h, Type: obj.Type()}
	}
	return b, nil
}

// IsNotExist reports whether err means the requested object is absent.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
