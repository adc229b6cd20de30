package demo

import (
	"reflect"
	"strings"

	"github.com/wippyai/layout"
)

// S1 declares the wider field first; padding lands after the tail byte.
type S1 struct {
	Field1 uint32
	Field2 uint8
}

// S2 reverses the order; padding moves between the fields.
type S2 struct {
	Field1 uint8
	Field2 uint32
}

// Ordered sorts fields narrow to wide so nothing needs padding.
type Ordered struct {
	A int8
	B int16
	C int32
}

// Disordered interleaves widths and pays for it in padding.
type Disordered struct {
	A int8
	B int32
	C int16
}

// Straddle sandwiches a wide field between two narrow ones.
type Straddle struct {
	A uint16
	B uint64
	C uint16
}

// S1Record is the model twin of S1.
func S1Record() *layout.Record {
	return &layout.Record{
		Name: "S1",
		Fields: []layout.Field{
			{Name: "field1", Type: layout.U32{}},
			{Name: "field2", Type: layout.U8{}},
		},
	}
}

// S2Record is the model twin of S2.
func S2Record() *layout.Record {
	return &layout.Record{
		Name: "S2",
		Fields: []layout.Field{
			{Name: "field1", Type: layout.U8{}},
			{Name: "field2", Type: layout.U32{}},
		},
	}
}

// OrderedRecord is the model twin of Ordered.
func OrderedRecord() *layout.Record {
	return &layout.Record{
		Name: "Ordered",
		Fields: []layout.Field{
			{Name: "a", Type: layout.S8{}},
			{Name: "b", Type: layout.S16{}},
			{Name: "c", Type: layout.S32{}},
		},
	}
}

// DisorderedRecord is the model twin of Disordered.
func DisorderedRecord() *layout.Record {
	return &layout.Record{
		Name: "Disordered",
		Fields: []layout.Field{
			{Name: "a", Type: layout.S8{}},
			{Name: "b", Type: layout.S32{}},
			{Name: "c", Type: layout.S16{}},
		},
	}
}

// StraddleRecord is the model twin of Straddle.
func StraddleRecord() *layout.Record {
	return &layout.Record{
		Name: "Straddle",
		Fields: []layout.Field{
			{Name: "a", Type: layout.U16{}},
			{Name: "b", Type: layout.U64{}},
			{Name: "c", Type: layout.U16{}},
		},
	}
}

// PackedHeaderRecord has no Go twin; Go structs cannot drop alignment.
func PackedHeaderRecord() *layout.Record {
	return &layout.Record{
		Name:    "PackedHeader",
		Packing: 1,
		Fields: []layout.Field{
			{Name: "tag", Type: layout.U8{}},
			{Name: "length", Type: layout.U32{}, Endian: layout.EndianLittle},
			{Name: "checksum", Type: layout.U16{}, Endian: layout.EndianBig},
		},
	}
}

// OverlayUnion has no Go twin; Go has no union types.
func OverlayUnion() *layout.Union {
	return &layout.Union{
		Name: "Overlay",
		Cases: []layout.Field{
			{Name: "word", Type: layout.U32{}},
			{Name: "bytes", Type: &layout.Array{Elem: layout.U8{}, Count: 4}},
			{Name: "wide", Type: layout.U64{}},
		},
	}
}

// Entry pairs a Go struct with its model twin. GoType is nil for shapes Go
// cannot express.
type Entry struct {
	Name   string
	GoType reflect.Type
	Model  layout.Type
	Note   string
}

// Catalog returns the built-in records the inspector browses, S1 and S2
// first.
func Catalog() []Entry {
	return []Entry{
		{
			Name:   "S1",
			GoType: reflect.TypeOf(S1{}),
			Model:  S1Record(),
			Note:   "wide field first, padding after the tail",
		},
		{
			Name:   "S2",
			GoType: reflect.TypeOf(S2{}),
			Model:  S2Record(),
			Note:   "narrow field first, padding between the fields",
		},
		{
			Name:   "Ordered",
			GoType: reflect.TypeOf(Ordered{}),
			Model:  OrderedRecord(),
			Note:   "narrow to wide, no wasted bytes",
		},
		{
			Name:   "Disordered",
			GoType: reflect.TypeOf(Disordered{}),
			Model:  DisorderedRecord(),
			Note:   "interleaved widths, half again the size of Ordered",
		},
		{
			Name:   "Straddle",
			GoType: reflect.TypeOf(Straddle{}),
			Model:  StraddleRecord(),
			Note:   "a wide field between two narrow ones",
		},
		{
			Name:  "PackedHeader",
			Model: PackedHeaderRecord(),
			Note:  "packing 1 strips every gap",
		},
		{
			Name:  "Overlay",
			Model: OverlayUnion(),
			Note:  "all cases share offset zero",
		},
	}
}

// Lookup finds a catalog entry by name, case-insensitively.
func Lookup(name string) (Entry, bool) {
	for _, e := range Catalog() {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Entry{}, false
}
