package layout

// Field is a named member of a Record or a Union case.
type Field struct {
	Name   string
	Type   Type
	Endian Endian
}

// Record lays its fields out in declaration order, inserting padding so
// every field sits at a multiple of its alignment. Packing 0 keeps natural
// alignment; any other power of two caps each field's alignment at Packing.
type Record struct {
	Name    string
	Fields  []Field
	Packing uint32
}

func (*Record) Kind() Kind { return KindRecord }

// Union overlays all cases at offset zero. Its size is the largest case
// size rounded up to the largest case alignment.
type Union struct {
	Name  string
	Cases []Field
}

func (*Union) Kind() Kind { return KindUnion }

// Array is Count consecutive elements of Elem. Elements repeat at the
// element's stride: its size rounded up to its alignment.
type Array struct {
	Elem  Type
	Count uint32
}

func (*Array) Kind() Kind { return KindArray }
