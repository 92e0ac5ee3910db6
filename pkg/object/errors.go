package object

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHash = errors.New("invalid object id")
	ErrMalformed   = errors.New("malformed object")
	ErrUnsupported = errors.New("unsupported object type")
)

// MalformedError reports an object whose stored bytes cannot be decoded:
// the compression layer failed, a header delimiter is missing, the size is
// not a number, or the size disagrees with the payload.
type MalformedError struct {
	Hash   Hash   // empty when decoding bytes that are not in a store
	Path   string // empty when decoding bytes that are not in a store
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := ErrMalformed.Error()
	if e.Hash != "" {
		msg += " " + string(e.Hash)
	}
	if e.Path != "" {
		msg += fmt.Sprintf(" (%s)", e.Path)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformed
}

// UnsupportedError reports a well-formed object whose type tag this store
// does not decode.
type UnsupportedError struct {
	Hash Hash
	Type ObjectType
}

func (e *UnsupportedError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Hash == "" {
		return fmt.Sprintf("%s %q", ErrUnsupported, e.Type)
	}
	return fmt.Sprintf("object %s: %s %q", e.Hash, ErrUnsupported, e.Type)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// withLocation fills in the store location on decode errors that were
// produced without one.
func withLocation(err error, h Hash, path string) error {
	var me *MalformedError
	if errors.As(err, &me) {
		me.Hash = h
		me.Path = path
		return me
	}
	var ue *UnsupportedError
	if errors.As(err, &ue) {
		ue.Hash = h
		return ue
	}
	return err
}
