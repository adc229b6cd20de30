package layout

import "github.com/wippyai/layout/errors"

// Region is one field's span in a record's byte map. PadBefore counts the
// padding bytes inserted before the field to reach its alignment.
type Region struct {
	Field     string
	Offset    uint32
	Size      uint32
	PadBefore uint32
}

// Regions returns one region per field of rec in declaration order. Trailing
// padding is not a region; it is the gap between the last region's end and
// Info.Size.
func (c *Calculator) Regions(rec *Record) ([]Region, error) {
	if rec == nil {
		return nil, errors.InvalidType(errors.PhaseDefine, nil, "record cannot be nil")
	}

	info, err := c.Calculate(rec)
	if err != nil {
		return nil, err
	}

	regions := make([]Region, 0, len(rec.Fields))
	end := uint32(0)

	for _, field := range rec.Fields {
		fieldInfo, err := c.Calculate(field.Type)
		if err != nil {
			return nil, err
		}

		offset := info.FieldOffs[field.Name]
		regions = append(regions, Region{
			Field:     field.Name,
			Offset:    offset,
			Size:      fieldInfo.Size,
			PadBefore: offset - end,
		})
		end = offset + fieldInfo.Size
	}

	return regions, nil
}
