// Command layout inspects the built-in record catalog: sizes, field
// offsets, and padding under selectable alignment targets, printed as a
// table, as JSON, or browsed interactively.
package main

func main() {
	Execute()
}
