package demo

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/wippyai/layout/errors"
)

// Fprint writes the size report to w, one line per record, S1 first. Sizes
// come from unsafe.Sizeof so the report states what the compiler actually
// did, not what the model predicts.
func Fprint(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "sizeof(S1) = %d\n", unsafe.Sizeof(S1{})); err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindIO, err, "S1")
	}
	if _, err := fmt.Fprintf(w, "sizeof(S2) = %d\n", unsafe.Sizeof(S2{})); err != nil {
		return errors.Wrap(errors.PhaseReport, errors.KindIO, err, "S2")
	}
	return nil
}
