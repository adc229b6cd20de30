package layout

import (
	"go.uber.org/zap"

	"github.com/wippyai/layout/errors"
	"github.com/wippyai/layout/internal/abi"
)

// Info is the computed layout of a type: storage size, required alignment,
// padding inserted at this level, and per-field offsets for records and
// unions.
type Info struct {
	Size      uint32
	Align     uint32
	Padding   uint32
	FieldOffs map[string]uint32
}

// Calculator computes layouts for one target and caches results. Primitives
// are cached by value, composite types by pointer identity.
type Calculator struct {
	target Target
	cache  map[Type]Info
}

// NewCalculator returns a calculator for the given target. A zero target
// falls back to the native platform.
func NewCalculator(target Target) *Calculator {
	if target.MaxAlign == 0 {
		target = Native()
	}
	return &Calculator{
		target: target,
		cache:  make(map[Type]Info),
	}
}

// Target returns the target the calculator lays out for.
func (c *Calculator) Target() Target {
	return c.target
}

// Calculate returns the layout of t on the calculator's target.
func (c *Calculator) Calculate(t Type) (Info, error) {
	if !abi.IsPowerOfTwo(c.target.MaxAlign) {
		return Info{}, errors.New(errors.PhaseDefine, errors.KindInvalidType).
			Detail("target %s max alignment %d is not a power of two", c.target.Name, c.target.MaxAlign).
			Build()
	}
	if t == nil {
		return Info{}, errors.InvalidType(errors.PhaseDefine, nil, "type cannot be nil")
	}

	if cached, ok := c.cache[t]; ok {
		return cached, nil
	}

	info, err := c.calculate(t, nil, make(map[Type]bool))
	if err != nil {
		return Info{}, err
	}

	c.cache[t] = info
	return info, nil
}

// calculate dispatches on the type kind. The visiting set holds every
// composite on the current descent path so cycles surface as errors
// instead of unbounded recursion.
func (c *Calculator) calculate(t Type, path []string, visiting map[Type]bool) (Info, error) {
	switch t.(type) {
	case *Record, *Union, *Array:
		if visiting[t] {
			return Info{}, errors.New(errors.PhaseDefine, errors.KindInvalidType).
				Path(path...).
				Detail("cyclic type definition").
				Build()
		}
		visiting[t] = true
		defer delete(visiting, t)
	}

	switch typ := t.(type) {
	case Bool, U8, S8:
		return c.scalar(1), nil
	case U16, S16:
		return c.scalar(2), nil
	case U32, S32, F32:
		return c.scalar(4), nil
	case U64, S64, F64:
		return c.scalar(8), nil
	case Bits:
		return c.calculateBits(typ, path)
	case *Record:
		return c.calculateRecord(typ, path, visiting)
	case *Union:
		return c.calculateUnion(typ, path, visiting)
	case *Array:
		return c.calculateArray(typ, path, visiting)
	default:
		return Info{}, errors.New(errors.PhaseCalc, errors.KindUnsupported).
			Path(path...).
			Detail("unsupported type: %s", abi.TypeName(t)).
			Build()
	}
}

// scalar caps a primitive's natural alignment at the target maximum.
func (c *Calculator) scalar(size uint32) Info {
	align := size
	if align > c.target.MaxAlign {
		align = c.target.MaxAlign
	}
	return Info{Size: size, Align: align}
}

func (c *Calculator) calculateBits(b Bits, path []string) (Info, error) {
	if b.Width == 0 || b.Width > 64 {
		return Info{}, errors.New(errors.PhaseDefine, errors.KindInvalidType).
			Path(path...).
			Detail("bit width %d out of range 1..64", b.Width).
			Build()
	}
	return c.scalar(bitsStorage(b.Width)), nil
}

// bitsStorage rounds a bit width up to its power-of-two byte container.
func bitsStorage(width uint32) uint32 {
	bytes := (width + 7) / 8
	size := uint32(1)
	for size < bytes {
		size <<= 1
	}
	return size
}

func (c *Calculator) calculateRecord(r *Record, path []string, visiting map[Type]bool) (Info, error) {
	if r.Packing != 0 && !abi.IsPowerOfTwo(r.Packing) {
		return Info{}, errors.New(errors.PhaseDefine, errors.KindInvalidType).
			Path(path...).
			Detail("packing %d is not a power of two", r.Packing).
			Build()
	}
	if len(r.Fields) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	fieldOffs := make(map[string]uint32, len(r.Fields))
	maxAlign := uint32(1)
	offset := uint32(0)
	dataSize := uint32(0)

	for _, field := range r.Fields {
		fieldPath := append(append([]string{}, path...), field.Name)

		if field.Type == nil {
			return Info{}, errors.InvalidType(errors.PhaseDefine, fieldPath, "field type cannot be nil")
		}
		if _, dup := fieldOffs[field.Name]; dup {
			return Info{}, errors.DuplicateField(errors.PhaseDefine, path, field.Name)
		}

		fieldInfo, err := c.calculate(field.Type, fieldPath, visiting)
		if err != nil {
			return Info{}, err
		}

		align := fieldInfo.Align
		if r.Packing != 0 && align > r.Packing {
			align = r.Packing
		}

		aligned, ok := abi.SafeAlignTo(offset, align)
		if !ok {
			return Info{}, errors.Overflow(errors.PhaseCalc, fieldPath, "field offset")
		}
		offset = aligned
		fieldOffs[field.Name] = offset

		if align > maxAlign {
			maxAlign = align
		}

		offset, ok = abi.SafeAddU32(offset, fieldInfo.Size)
		if !ok {
			return Info{}, errors.Overflow(errors.PhaseCalc, fieldPath, "record size")
		}
		dataSize += fieldInfo.Size
	}

	totalSize, ok := abi.SafeAlignTo(offset, maxAlign)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseCalc, path, "record size")
	}

	Logger().Debug("record layout",
		zap.String("record", r.Name),
		zap.String("target", c.target.Name),
		zap.Uint32("size", totalSize),
		zap.Uint32("align", maxAlign))

	return Info{
		Size:      totalSize,
		Align:     maxAlign,
		Padding:   totalSize - dataSize,
		FieldOffs: fieldOffs,
	}, nil
}

func (c *Calculator) calculateUnion(u *Union, path []string, visiting map[Type]bool) (Info, error) {
	if len(u.Cases) == 0 {
		return Info{Size: 0, Align: 1}, nil
	}

	fieldOffs := make(map[string]uint32, len(u.Cases))
	maxAlign := uint32(1)
	maxSize := uint32(0)

	for _, cs := range u.Cases {
		casePath := append(append([]string{}, path...), cs.Name)

		if cs.Type == nil {
			return Info{}, errors.InvalidType(errors.PhaseDefine, casePath, "case type cannot be nil")
		}
		if _, dup := fieldOffs[cs.Name]; dup {
			return Info{}, errors.DuplicateField(errors.PhaseDefine, path, cs.Name)
		}
		fieldOffs[cs.Name] = 0

		caseInfo, err := c.calculate(cs.Type, casePath, visiting)
		if err != nil {
			return Info{}, err
		}

		if caseInfo.Align > maxAlign {
			maxAlign = caseInfo.Align
		}
		if caseInfo.Size > maxSize {
			maxSize = caseInfo.Size
		}
	}

	totalSize, ok := abi.SafeAlignTo(maxSize, maxAlign)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseCalc, path, "union size")
	}

	return Info{
		Size:      totalSize,
		Align:     maxAlign,
		Padding:   totalSize - maxSize,
		FieldOffs: fieldOffs,
	}, nil
}

func (c *Calculator) calculateArray(a *Array, path []string, visiting map[Type]bool) (Info, error) {
	if a.Elem == nil {
		return Info{}, errors.InvalidType(errors.PhaseDefine, path, "array element cannot be nil")
	}

	elemPath := append(append([]string{}, path...), "[elem]")
	elemInfo, err := c.calculate(a.Elem, elemPath, visiting)
	if err != nil {
		return Info{}, err
	}

	stride, ok := abi.SafeAlignTo(elemInfo.Size, elemInfo.Align)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseCalc, path, "array stride")
	}

	size, ok := abi.SafeMulU32(stride, a.Count)
	if !ok {
		return Info{}, errors.Overflow(errors.PhaseCalc, path, "array size")
	}

	return Info{
		Size:    size,
		Align:   elemInfo.Align,
		Padding: size - elemInfo.Size*a.Count,
	}, nil
}

// BitSize returns the width of a type in bits. Bits report their declared
// width; everything else reports eight times its storage size.
func (c *Calculator) BitSize(t Type) (uint64, error) {
	if b, ok := t.(Bits); ok {
		if b.Width == 0 || b.Width > 64 {
			return 0, errors.New(errors.PhaseDefine, errors.KindInvalidType).
				Detail("bit width %d out of range 1..64", b.Width).
				Build()
		}
		return uint64(b.Width), nil
	}

	info, err := c.Calculate(t)
	if err != nil {
		return 0, err
	}
	return uint64(info.Size) * 8, nil
}
