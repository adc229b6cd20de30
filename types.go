package layout

// Type is implemented by every value in the type model.
type Type interface {
	Kind() Kind
}

// Endian annotates the byte order of a field. Byte order never changes a
// field's size or alignment; it is carried for reporting only.
type Endian uint8

const (
	EndianNative Endian = iota
	EndianLittle
	EndianBig
)

var endianNames = [...]string{
	EndianNative: "native",
	EndianLittle: "little",
	EndianBig:    "big",
}

func (e Endian) String() string {
	if int(e) < len(endianNames) {
		return endianNames[e]
	}
	return "unknown"
}

type (
	Bool struct{}
	U8   struct{}
	S8   struct{}
	U16  struct{}
	S16  struct{}
	U32  struct{}
	S32  struct{}
	U64  struct{}
	S64  struct{}
	F32  struct{}
	F64  struct{}
)

func (Bool) Kind() Kind { return KindBool }
func (U8) Kind() Kind   { return KindU8 }
func (S8) Kind() Kind   { return KindS8 }
func (U16) Kind() Kind  { return KindU16 }
func (S16) Kind() Kind  { return KindS16 }
func (U32) Kind() Kind  { return KindU32 }
func (S32) Kind() Kind  { return KindS32 }
func (U64) Kind() Kind  { return KindU64 }
func (S64) Kind() Kind  { return KindS64 }
func (F32) Kind() Kind  { return KindF32 }
func (F64) Kind() Kind  { return KindF64 }

// Bits is an integer of Width bits, 1 through 64. It occupies the smallest
// power-of-two byte container that holds the width: 1, 2, 4, or 8 bytes.
type Bits struct {
	Width uint32
}

func (Bits) Kind() Kind { return KindBits }
