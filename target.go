package layout

import (
	"unsafe"

	"github.com/wippyai/layout/errors"
)

// Target models the alignment rules of a platform. MaxAlign caps the
// natural alignment of every type: a primitive aligns to min(size, MaxAlign).
// MaxAlign must be a power of two; Calculate rejects anything else.
type Target struct {
	Name     string
	MaxAlign uint32
}

// LP64 matches 64-bit Unix-like platforms where 8-byte scalars align to 8.
func LP64() Target {
	return Target{Name: "lp64", MaxAlign: 8}
}

// ILP32 matches 32-bit platforms where nothing aligns past 4 bytes.
func ILP32() Target {
	return Target{Name: "ilp32", MaxAlign: 4}
}

// Packed places every field at byte granularity with no padding.
func Packed() Target {
	return Target{Name: "packed", MaxAlign: 1}
}

// Native probes the running platform. On 386 a uint64 aligns to 4 bytes,
// so the probe is taken from the widest scalar rather than assumed.
func Native() Target {
	return Target{Name: "native", MaxAlign: uint32(unsafe.Alignof(uint64(0)))}
}

// TargetByName resolves one of the built-in target names: native, lp64,
// ilp32, or packed.
func TargetByName(name string) (Target, error) {
	switch name {
	case "native":
		return Native(), nil
	case "lp64":
		return LP64(), nil
	case "ilp32":
		return ILP32(), nil
	case "packed":
		return Packed(), nil
	default:
		return Target{}, errors.NotFound(errors.PhaseCalc, "target", name)
	}
}

// Targets returns the built-in targets in display order.
func Targets() []Target {
	return []Target{Native(), LP64(), ILP32(), Packed()}
}
