// Package errors provides structured error types for the layout library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go/model type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseBind, errors.KindTypeMismatch).
//		Path("header", "length").
//		GoType("uint16").
//		ModelType("u32").
//		Detail("field width does not match").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TypeMismatch(errors.PhaseBind, path, "uint16", "u32")
//	err := errors.Overflow(errors.PhaseCalc, path, "array size")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
