// Package demo holds the reference records behind the sizeof report and the
// inspector catalog.
//
// S1 and S2 carry the same two fields in opposite orders. Their sizes come
// out identical on common targets because the compiler pads S1 after the
// tail byte and S2 between the fields; only the position of the padding
// moves. Each Go struct has a model twin built from layout types, so tests
// can check the calculator against what the compiler actually emits.
//
// The rest of the catalog covers layouts worth inspecting: interleaved
// widths, a wide field between two narrow ones, a packed record, and a
// union. The last two have no Go twin.
package demo
