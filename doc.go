// Package layout models the in-memory layout of record types: sizes,
// alignments, field offsets, and the padding a compiler inserts to keep
// fields aligned.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	layout/          Root package with the type model and Calculator
//	├── bind/        Pairs Go structs with model records via reflection
//	├── demo/        Reference records and the sizeof report
//	├── errors/      Structured error types for debugging
//	└── internal/    Alignment and overflow arithmetic
//
// # Quick Start
//
// Describe a record and calculate its layout:
//
//	rec := &layout.Record{
//	    Name: "header",
//	    Fields: []layout.Field{
//	        {Name: "tag", Type: layout.U8{}},
//	        {Name: "length", Type: layout.U32{}},
//	    },
//	}
//
//	calc := layout.NewCalculator(layout.LP64())
//	info, err := calc.Calculate(rec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(info.Size, info.Align) // 8 4
//
// # Type Model
//
// The model supports:
//
//   - Primitives: bool, u8-u64, s8-s64, f32, f64
//   - Bits: integers of 1 to 64 bits in power-of-two containers
//   - Record: ordered named fields with optional packing
//   - Union: overlapping cases at offset zero
//   - Array: counted repetition at the element stride
//
// # Targets
//
// A Target caps natural alignment, so the same record can be laid out under
// different platform rules:
//
//	layout.Native() // probed from the running platform
//	layout.LP64()   // 8-byte cap, 64-bit Unix-like
//	layout.ILP32()  // 4-byte cap, 32-bit platforms
//	layout.Packed() // 1-byte cap, no padding anywhere
//
// # Thread Safety
//
// Calculator is NOT safe for concurrent use; give each goroutine its own,
// or synchronize access.
package layout
