// Package bind pairs Go structs with model records.
//
// Bind walks a record's fields, resolves each against a struct field via
// reflection, and records the offset the Go compiler assigned next to the
// offset the model computes for the native target.
//
// Field resolution tries, in order:
//
//  1. a layout:"name" struct tag
//  2. a case-insensitive name match
//  3. the snake_case form of the Go field name
//
// A tagged struct field answers only to its tag; layout:"-" therefore
// excludes a field from matching entirely.
//
// Unions and bit fields have no Go struct equivalent and fail with an
// unsupported error.
package bind
