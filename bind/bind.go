package bind

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/wippyai/layout"
	"github.com/wippyai/layout/errors"
)

// Binding pairs a Go struct with a model record, holding the layout of
// both worlds side by side.
type Binding struct {
	GoType  reflect.Type
	Record  *layout.Record
	GoSize  uintptr
	GoAlign uintptr
	Model   layout.Info
	Fields  []BoundField
}

// BoundField records where one field lives in the Go struct and where the
// model places it.
type BoundField struct {
	Name        string // record field name
	GoName      string // matched Go struct field
	GoOffset    uintptr
	ModelOffset uint32
	Nested      *Binding // set for record-typed fields
}

// Bind resolves every field of rec against goType, recording the offsets
// the Go compiler assigned next to the offsets the model computes. The
// model side is laid out on the native target so the columns compare.
func Bind(goType reflect.Type, rec *layout.Record) (*Binding, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseBind, errors.KindInvalidType).
			Detail("Go type cannot be nil").
			Build()
	}
	if rec == nil {
		return nil, errors.New(errors.PhaseBind, errors.KindInvalidType).
			Detail("record cannot be nil").
			Build()
	}

	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	calc := layout.NewCalculator(layout.Native())
	return bind(goType, rec, calc, nil)
}

func bind(goType reflect.Type, rec *layout.Record, calc *layout.Calculator, path []string) (*Binding, error) {
	if goType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(errors.PhaseBind, path, goType.String(), "record")
	}

	model, err := calc.Calculate(rec)
	if err != nil {
		return nil, err
	}

	fields := make([]BoundField, 0, len(rec.Fields))

	for _, field := range rec.Fields {
		goField, found := findGoField(goType, field.Name)
		if !found {
			return nil, errors.FieldMissing(errors.PhaseBind, path, field.Name)
		}

		fieldPath := append(append([]string{}, path...), field.Name)

		bound := BoundField{
			Name:        field.Name,
			GoName:      goField.Name,
			GoOffset:    goField.Offset,
			ModelOffset: model.FieldOffs[field.Name],
		}

		switch typ := field.Type.(type) {
		case *layout.Record:
			nested, err := bind(goField.Type, typ, calc, fieldPath)
			if err != nil {
				return nil, err
			}
			bound.Nested = nested

		case *layout.Array:
			if err := validateArray(typ, goField.Type, fieldPath); err != nil {
				return nil, err
			}

		case *layout.Union:
			return nil, errors.New(errors.PhaseBind, errors.KindUnsupported).
				Path(fieldPath...).
				Detail("union fields have no Go struct equivalent").
				Build()

		case layout.Bits:
			return nil, errors.New(errors.PhaseBind, errors.KindUnsupported).
				Path(fieldPath...).
				Detail("bit fields have no Go struct equivalent").
				Build()

		default:
			if err := validatePrimitive(field.Type.Kind(), goField.Type, fieldPath); err != nil {
				return nil, err
			}
		}

		fields = append(fields, bound)
	}

	return &Binding{
		GoType:  goType,
		Record:  rec,
		GoSize:  goType.Size(),
		GoAlign: uintptr(goType.Align()),
		Model:   model,
		Fields:  fields,
	}, nil
}

func validatePrimitive(kind layout.Kind, goType reflect.Type, path []string) error {
	var valid bool

	switch kind {
	case layout.KindBool:
		valid = goType.Kind() == reflect.Bool
	case layout.KindU8:
		valid = goType.Kind() == reflect.Uint8
	case layout.KindS8:
		valid = goType.Kind() == reflect.Int8
	case layout.KindU16:
		valid = goType.Kind() == reflect.Uint16
	case layout.KindS16:
		valid = goType.Kind() == reflect.Int16
	case layout.KindU32:
		valid = goType.Kind() == reflect.Uint32
	case layout.KindS32:
		valid = goType.Kind() == reflect.Int32
	case layout.KindU64:
		valid = goType.Kind() == reflect.Uint64
	case layout.KindS64:
		valid = goType.Kind() == reflect.Int64
	case layout.KindF32:
		valid = goType.Kind() == reflect.Float32
	case layout.KindF64:
		valid = goType.Kind() == reflect.Float64
	default:
		return errors.New(errors.PhaseBind, errors.KindUnsupported).
			Path(path...).
			Detail("unsupported model kind: %s", kind).
			Build()
	}

	if !valid {
		return errors.TypeMismatch(errors.PhaseBind, path, goType.String(), kind.String())
	}
	return nil
}

// Array elements must be primitive; nested composites have no stable Go
// array equivalent.
func validateArray(arr *layout.Array, goType reflect.Type, path []string) error {
	if goType.Kind() != reflect.Array {
		return errors.TypeMismatch(errors.PhaseBind, path, goType.String(), "array")
	}
	if uint32(goType.Len()) != arr.Count {
		return errors.New(errors.PhaseBind, errors.KindTypeMismatch).
			Path(path...).
			GoType(goType.String()).
			Detail("array has %d elements, model wants %d", goType.Len(), arr.Count).
			Build()
	}
	if arr.Elem == nil {
		return errors.InvalidType(errors.PhaseBind, path, "array element cannot be nil")
	}
	if !arr.Elem.Kind().IsPrimitive() || arr.Elem.Kind() == layout.KindBits {
		return errors.New(errors.PhaseBind, errors.KindUnsupported).
			Path(path...).
			Detail("array elements must be primitive, got %s", arr.Elem.Kind()).
			Build()
	}

	elemPath := append(append([]string{}, path...), "[elem]")
	return validatePrimitive(arr.Elem.Kind(), goType.Elem(), elemPath)
}

// findGoField matches by: 1) layout:"name" tag, 2) case-insensitive, 3) snake_case.
func findGoField(goType reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}

		// an explicit tag renames the field; the Go name no longer counts
		if tag := field.Tag.Get("layout"); tag != "" {
			if tag == name {
				return field, true
			}
			continue
		}

		if strings.EqualFold(field.Name, name) {
			return field, true
		}

		if toSnakeCase(field.Name) == name {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
