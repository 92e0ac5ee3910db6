package object

import (
	"bytes"
	stdzlib "compress/zlib"
	"errors"
	"strings"
	"testing"
)

func TestFrame(t *testing.T) {
	got := Frame(TypeBlob, []byte("abc"))
	if want := "blob 3\x00abc"; string(got) != want {
		t.Errorf("Frame = %q, want %q", got, want)
	}
	if got := Frame(TypeBlob, nil); string(got) != "blob 0\x00" {
		t.Errorf("Frame(empty) = %q", got)
	}
}

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		want       Header
		wantOff    int
		wantReason string
	}{
		{name: "blob", raw: "blob 3\x00abc", want: Header{Type: TypeBlob, Size: 3}, wantOff: 7},
		{name: "empty payload", raw: "blob 0\x00", want: Header{Type: TypeBlob, Size: 0}, wantOff: 7},
		{name: "payload with delimiters", raw: "blob 4\x00a \x00b", want: Header{Type: TypeBlob, Size: 4}, wantOff: 7},
		{name: "missing space", raw: "blob\x00abc", wantReason: "missing SPACE"},
		{name: "missing nul", raw: "blob 3abc", wantReason: "missing NUL"},
		{name: "empty input", raw: "", wantReason: "missing SPACE"},
		{name: "non numeric size", raw: "blob x\x00abc", wantReason: "invalid size"},
		{name: "negative size", raw: "blob -3\x00abc", wantReason: "invalid size"},
		{name: "empty size", raw: "blob \x00abc", wantReason: "invalid size"},
		{name: "size too large", raw: "blob 4\x00abc", wantReason: "size mismatch"},
		{name: "size too small", raw: "blob 2\x00abc", wantReason: "size mismatch"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hdr, off, err := ParseHeader([]byte(tc.raw))
			if tc.wantReason != "" {
				if !errors.Is(err, ErrMalformed) {
					t.Fatalf("expected ErrMalformed, got %v", err)
				}
				if !strings.Contains(err.Error(), tc.wantReason) {
					t.Errorf("error %q does not contain %q", err, tc.wantReason)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHeader: %v", err)
			}
			if hdr != tc.want {
				t.Errorf("header = %+v, want %+v", hdr, tc.want)
			}
			if off != tc.wantOff {
				t.Errorf("offset = %d, want %d", off, tc.wantOff)
			}
		})
	}
}

func TestParseHeaderLossyType(t *testing.T) {
	hdr, _, err := ParseHeader([]byte("\xffblob 1\x00a"))
	if err != nil {
		t.Fatalf("invalid UTF-8 in the type tag should not be rejected: %v", err)
	}
	if hdr.Type != "\uFFFDblob" {
		t.Errorf("type = %q, want replacement character prefix", hdr.Type)
	}
}

func TestEncodeDecode(t *testing.T) {
	b := &Blob{Data: []byte("Lorem ipsum dolor sit amet.")}
	h, compressed, err := Encode(b)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if h != HashObject(TypeBlob, b.Data) {
		t.Errorf("Encode hash = %s, want %s", h, HashObject(TypeBlob, b.Data))
	}

	obj, err := Decode(compressed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got, ok := obj.(*Blob)
	if !ok {
		t.Fatalf("Decode returned %T, want *Blob", obj)
	}
	if !bytes.Equal(got.Data, b.Data) {
		t.Errorf("Data = %q, want %q", got.Data, b.Data)
	}
}

func TestDecodeStdlibZlib(t *testing.T) {
	var buf bytes.Buffer
	zw := stdzlib.NewWriter(&buf)
	zw.Write([]byte("blob 5\x00hello"))
	zw.Close()

	obj, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if string(obj.Payload()) != "hello" {
		t.Errorf("payload = %q, want %q", obj.Payload(), "hello")
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte("plain bytes")); !errors.Is(err, ErrMalformed) {
		t.Errorf("undecompressable input: expected ErrMalformed, got %v", err)
	}

	compressed, err := Compress([]byte("commit 2\x00hi"))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	obj, err := Decode(compressed)
	if obj != nil || !errors.Is(err, ErrUnsupported) {
		t.Errorf("commit: expected ErrUnsupported and no object, got %v, %v", obj, err)
	}

	valid, err := Compress([]byte("blob 1\x00a"))
	if err != nil {
		t.Fatalf("Compress: %v", err)
	}
	trailing := append(valid, "GARBAGE"...)
	obj, err = Decode(trailing)
	if obj != nil || !errors.Is(err, ErrMalformed) {
		t.Errorf("trailing bytes: expected ErrMalformed and no object, got %v, %v", obj, err)
	}
	if err != nil && !strings.Contains(err.Error(), "garbage") {
		t.Errorf("error %q does not mention the trailing bytes", err)
	}
}
