package object

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// frameHeader returns the "type len\0" prefix for a payload of n bytes.
func frameHeader(objType ObjectType, n int) []byte {
	return []byte(fmt.Sprintf("%s %d\x00", objType, n))
}

// Frame returns the canonical uncompressed form "type len\0payload".
func Frame(objType ObjectType, payload []byte) []byte {
	header := frameHeader(objType, len(payload))
	raw := make([]byte, 0, len(header)+len(payload))
	raw = append(raw, header...)
	return append(raw, payload...)
}

// ParseHeader parses the header of an uncompressed framed object and
// returns it along with the offset of the first payload byte. The declared
// size is checked against the bytes that follow the NUL.
func ParseHeader(raw []byte) (Header, int, error) {
	spaceIdx := bytes.IndexByte(raw, ' ')
	if spaceIdx < 0 {
		return Header{}, 0, &MalformedError{Reason: "missing SPACE in header"}
	}
	nulRel := bytes.IndexByte(raw[spaceIdx+1:], 0)
	if nulRel < 0 {
		return Header{}, 0, &MalformedError{Reason: "missing NUL in header"}
	}
	nulIdx := spaceIdx + 1 + nulRel

	// Invalid UTF-8 in the tag is replaced rather than rejected; such a tag
	// is later reported as unsupported.
	objType := ObjectType(strings.ToValidUTF8(string(raw[:spaceIdx]), "\uFFFD"))

	sizeField := string(raw[spaceIdx+1 : nulIdx])
	size, err := strconv.ParseUint(sizeField, 10, 64)
	if err != nil {
		return Header{}, 0, &MalformedError{
			Reason: fmt.Sprintf("invalid size %q", sizeField),
			Err:    err,
		}
	}

	actual := uint64(len(raw) - (nulIdx + 1))
	if size != actual {
		return Header{}, 0, &MalformedError{
			Reason: fmt.Sprintf("size mismatch (header=%d, actual=%d)", size, actual),
		}
	}

	return Header{Type: objType, Size: size}, nulIdx + 1, nil
}

// Unframe splits an uncompressed framed object into its header and payload.
func Unframe(raw []byte) (Header, []byte, error) {
	hdr, off, err := ParseHeader(raw)
	if err != nil {
		return Header{}, nil, err
	}
	return hdr, raw[off:], nil
}

// Compress deflates data into a zlib stream.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		zw.Close()
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress inflates a complete zlib stream. Loose objects are small
// enough to be buffered whole. Bytes after the end of the stream are an
// error.
func Decompress(data []byte) ([]byte, error) {
	br := bytes.NewReader(data)
	zr, err := zlib.NewReader(br)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	if n := br.Len(); n != 0 {
		return nil, fmt.Errorf("%d bytes of garbage after compressed data", n)
	}
	return raw, nil
}

// Encode frames and compresses obj, returning its id and on-disk bytes.
func Encode(obj Object) (Hash, []byte, error) {
	raw := Frame(obj.Type(), obj.Payload())
	compressed, err := Compress(raw)
	if err != nil {
		return "", nil, fmt.Errorf("encode %s: compress: %w", obj.Type(), err)
	}
	return HashBytes(raw), compressed, nil
}

// Decode inflates and parses on-disk object bytes.
func Decode(compressed []byte) (Object, error) {
	raw, err := Decompress(compressed)
	if err != nil {
		return nil, &MalformedError{Reason: "decompress", Err: err}
	}
	hdr, payload, err := Unframe(raw)
	if err != nil {
		return nil, err
	}
	return newObject(hdr.Type, payload)
}

// newObject dispatches on the type tag.
func newObject(objType ObjectType, payload []byte) (Object, error) {
	switch objType {
	case TypeBlob:
		return &Blob{Data: payload}, nil
	default:
		return nil, &UnsupportedError{Type: objType}
	}
}
