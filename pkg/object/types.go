package object

// Hash is a 40-character lowercase hex-encoded SHA-1 digest.
type Hash string

// ObjectType is the type tag carried in an object header.
type ObjectType string

const (
	TypeBlob   ObjectType = "blob"
	TypeTree   ObjectType = "tree"
	TypeCommit ObjectType = "commit"
	TypeTag    ObjectType = "tag"
)

// Object is a decoded object. Blob is the only variant the store decodes;
// every other tag is reported with an *UnsupportedError.
type Object interface {
	Type() ObjectType
	Payload() []byte

	object()
}

// Blob holds raw file data.
type Blob struct {
	Data []byte
}

func (b *Blob) Type() ObjectType { return TypeBlob }
func (b *Blob) Payload() []byte  { return b.Data }
func (*Blob) object()            {}

// Header is the parsed "type size" prefix of a framed object.
type Header struct {
	Type ObjectType
	Size uint64
}
