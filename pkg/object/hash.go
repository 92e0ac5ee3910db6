package object

import (
	"encoding/hex"
	"fmt"

	"github.com/pjbgf/sha1cd"
)

const HashLen = 40

// ZeroHash is the all-zero object id.
const ZeroHash Hash = "0000000000000000000000000000000000000000"

// HashBytes computes the SHA-1 of data and returns it as a lowercase
// hex-encoded Hash.
func HashBytes(data []byte) Hash {
	h := sha1cd.New()
	h.Write(data)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// HashObject computes the SHA-1 of the framed object "type len\0content".
// The id is always taken over the uncompressed frame.
func HashObject(objType ObjectType, data []byte) Hash {
	h := sha1cd.New()
	h.Write(frameHeader(objType, len(data)))
	h.Write(data)
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// ParseHash validates s as a full object id.
func ParseHash(s string) (Hash, error) {
	if len(s) != HashLen {
		return "", fmt.Errorf("%w: %q: want %d hex characters, got %d", ErrInvalidHash, s, HashLen, len(s))
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return "", fmt.Errorf("%w: %q: invalid character %q at %d", ErrInvalidHash, s, c, i)
		}
	}
	return Hash(s), nil
}

func (h Hash) String() string { return string(h) }
