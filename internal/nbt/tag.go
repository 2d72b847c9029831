// Package nbt models the typed tag values carried in dialog payloads.
// Only the in-memory value model lives here; reading and writing the binary
// encoding is the transport's job.
package nbt

// Type identifies a tag variant. Values match the wire type ids.
type Type byte

const (
	TypeEnd       Type = 0
	TypeByte      Type = 1
	TypeShort     Type = 2
	TypeInt       Type = 3
	TypeLong      Type = 4
	TypeFloat     Type = 5
	TypeDouble    Type = 6
	TypeByteArray Type = 7
	TypeString    Type = 8
	TypeList      Type = 9
	TypeCompound  Type = 10
	TypeIntArray  Type = 11
	TypeLongArray Type = 12
)

var typeNames = map[Type]string{
	TypeEnd:       "End",
	TypeByte:      "Byte",
	TypeShort:     "Short",
	TypeInt:       "Int",
	TypeLong:      "Long",
	TypeFloat:     "Float",
	TypeDouble:    "Double",
	TypeByteArray: "ByteArray",
	TypeString:    "String",
	TypeList:      "List",
	TypeCompound:  "Compound",
	TypeIntArray:  "IntArray",
	TypeLongArray: "LongArray",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "Unknown"
}

// Tag is a single immutable tag value. The variants below are the only
// implementations, but pointers to them satisfy the interface too; use Deref
// before switching on the concrete type.
type Tag interface {
	Type() Type
	tag()
}

type (
	End       struct{}
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
	// Compound maps names to tags. Iteration order carries no meaning.
	Compound map[string]Tag
)

// List is a homogeneous sequence of tags. Elem is the declared element type
// and is kept even when the list is empty.
type List struct {
	Elem  Type
	Items []Tag
}

func (End) Type() Type       { return TypeEnd }
func (Byte) Type() Type      { return TypeByte }
func (Short) Type() Type     { return TypeShort }
func (Int) Type() Type       { return TypeInt }
func (Long) Type() Type      { return TypeLong }
func (Float) Type() Type     { return TypeFloat }
func (Double) Type() Type    { return TypeDouble }
func (ByteArray) Type() Type { return TypeByteArray }
func (String) Type() Type    { return TypeString }
func (List) Type() Type      { return TypeList }
func (Compound) Type() Type  { return TypeCompound }
func (IntArray) Type() Type  { return TypeIntArray }
func (LongArray) Type() Type { return TypeLongArray }

func (End) tag()       {}
func (Byte) tag()      {}
func (Short) tag()     {}
func (Int) tag()       {}
func (Long) tag()      {}
func (Float) tag()     {}
func (Double) tag()    {}
func (ByteArray) tag() {}
func (String) tag()    {}
func (List) tag()      {}
func (Compound) tag()  {}
func (IntArray) tag()  {}
func (LongArray) tag() {}

// Deref returns the value variant behind a pointer tag. A nil pointer yields
// a nil Tag. Value variants are returned unchanged.
func Deref(t Tag) Tag {
	switch v := t.(type) {
	case *End:
		if v != nil {
			return *v
		}
	case *Byte:
		if v != nil {
			return *v
		}
	case *Short:
		if v != nil {
			return *v
		}
	case *Int:
		if v != nil {
			return *v
		}
	case *Long:
		if v != nil {
			return *v
		}
	case *Float:
		if v != nil {
			return *v
		}
	case *Double:
		if v != nil {
			return *v
		}
	case *ByteArray:
		if v != nil {
			return *v
		}
	case *String:
		if v != nil {
			return *v
		}
	case *List:
		if v != nil {
			return *v
		}
	case *Compound:
		if v != nil {
			return *v
		}
	case *IntArray:
		if v != nil {
			return *v
		}
	case *LongArray:
		if v != nil {
			return *v
		}
	default:
		return t
	}
	return nil
}

// Bool reports whether the byte is non-zero.
func (b Byte) Bool() bool { return b != 0 }

// BoolByte returns the byte encoding of v.
func BoolByte(v bool) Byte {
	if v {
		return 1
	}
	return 0
}
