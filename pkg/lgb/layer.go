package lgb

import "fmt"

// Object count handling: counts above objectCountCeiling are treated as
// corruption and clamped to objectCountClamp with a recorded warning.
const (
	objectCountCeiling = 10000
	objectCountClamp   = 1000
)

// Layer is a named collection of instance objects with editor flags.
type Layer struct {
	ID                uint32
	Name              string
	ObjectTableOffset int32
	ObjectCount       int32
	ToolVisible       bool
	ToolReadOnly      bool
	IsDecorative      bool
	PlatformVisible   bool
	Objects           []InstanceObject

	// Placeholder is true when this layer's record failed to decode and
	// the entry stands in for it; Note carries the failure.
	Placeholder bool
	Note        string
}

// readOffsetTable reads count relative offsets at the current cursor
// position. Entries later resolve against their owning anchor: the layer
// table's own start, or layerStart + objectTableOffset for an object
// table. A negative entry or a short read is table-level corruption and
// fails the whole parse.
func (d *decoder) readOffsetTable(count int, field string) ([]int32, error) {
	offsets := make([]int32, count)
	for i := 0; i < count; i++ {
		pos := d.c.Pos()
		off, err := d.c.ReadI32()
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s entry %d: %w", errTableLevel, field, i, err)
		}
		if off < 0 {
			return nil, fmt.Errorf("%w: %w", errTableLevel,
				&FormatError{Field: fmt.Sprintf("%s[%d]", field, i), Position: pos, Want: ">= 0", Got: fmt.Sprintf("%d", off)})
		}
		offsets[i] = off
	}
	return offsets, nil
}

// readLayerTable reads the layer offset table and resolves every entry.
// Layer offsets are structural: one entry pointing outside the buffer
// invalidates the table, unlike per-object entries which only cost the
// one object.
func (d *decoder) readLayerTable(anchor Anchor, count int) ([]int, error) {
	offsets, err := d.readOffsetTable(count, "layerOffsets")
	if err != nil {
		return nil, err
	}
	positions := make([]int, count)
	for i, off := range offsets {
		pos, err := d.c.Resolve(anchor, off)
		if err != nil {
			return nil, fmt.Errorf("%w: layerOffsets[%d]: %w", errTableLevel, i, err)
		}
		positions[i] = pos
	}
	return positions, nil
}

// decodeLayer reads one layer record at the current cursor position and
// drives its instance-object table.
func (d *decoder) decodeLayer(index int) (Layer, error) {
	layerStart := Anchor(d.c.Pos())

	id, err := d.c.ReadU32()
	if err != nil {
		return Layer{}, fmt.Errorf("reading layer id: %w", err)
	}
	nameOffset, err := d.c.ReadI32()
	if err != nil {
		return Layer{}, fmt.Errorf("reading layer nameOffset: %w", err)
	}
	objectTableOffset, err := d.c.ReadI32()
	if err != nil {
		return Layer{}, fmt.Errorf("reading objectTableOffset: %w", err)
	}
	countPos := d.c.Pos()
	objectCount, err := d.c.ReadI32()
	if err != nil {
		return Layer{}, fmt.Errorf("reading objectCount: %w", err)
	}

	var flags [4]uint8
	for i := range flags {
		flags[i], err = d.c.ReadU8()
		if err != nil {
			return Layer{}, fmt.Errorf("reading layer flags: %w", err)
		}
	}

	if objectCount < 0 {
		return Layer{}, &CountError{Field: "objectCount", Position: countPos, Value: int(objectCount), Min: 0, Max: objectCountCeiling}
	}
	if objectCount > objectCountCeiling {
		d.warnf(index, -1, "objectCount %d exceeds ceiling %d, clamped to %d", objectCount, objectCountCeiling, objectCountClamp)
		objectCount = objectCountClamp
	}
	if objectTableOffset < 0 {
		return Layer{}, &FormatError{Field: "objectTableOffset", Position: int(layerStart) + 8, Want: ">= 0", Got: fmt.Sprintf("%d", objectTableOffset)}
	}

	layer := Layer{
		ID:                id,
		Name:              d.stringAt(layerStart, nameOffset, fmt.Sprintf("Layer_%d", index), index, -1),
		ObjectTableOffset: objectTableOffset,
		ObjectCount:       objectCount,
		ToolVisible:       flags[0] != 0,
		ToolReadOnly:      flags[1] != 0,
		IsDecorative:      flags[2] != 0,
		PlatformVisible:   flags[3] != 0,
		Objects:           []InstanceObject{},
	}

	if objectCount > 0 {
		// The object table's entries do not anchor at the table's own
		// start: they anchor at layerStart + objectTableOffset.
		tablePos, err := d.c.Resolve(layerStart, objectTableOffset)
		if err != nil {
			return Layer{}, fmt.Errorf("%w: object table for layer %d: %w", errTableLevel, index, err)
		}
		if err := d.c.Seek(tablePos); err != nil {
			return Layer{}, fmt.Errorf("%w: object table for layer %d: %w", errTableLevel, index, err)
		}
		objects, err := d.decodeObjectTable(Anchor(tablePos), int(objectCount), index)
		if err != nil {
			return Layer{}, err
		}
		layer.Objects = objects
	}

	return layer, nil
}

// decodeObjectTable reads an instance-object offset table and decodes each
// entry. A single bad entry becomes a placeholder object; its siblings
// still decode.
func (d *decoder) decodeObjectTable(tableAnchor Anchor, count, layerIndex int) ([]InstanceObject, error) {
	offsets, err := d.readOffsetTable(count, "objectOffsets")
	if err != nil {
		return nil, err
	}

	objects := make([]InstanceObject, 0, count)
	for i, off := range offsets {
		if err := d.checkCancelled(); err != nil {
			return nil, err
		}

		pos, err := d.c.Resolve(tableAnchor, off)
		if err == nil {
			err = d.c.Seek(pos)
		}
		if err != nil {
			d.warnf(layerIndex, i, "object offset %d resolves out of bounds: %v", off, err)
			objects = append(objects, d.placeholderObject(layerIndex, i, err))
			continue
		}

		obj, err := d.decodeInstanceObject(layerIndex, i)
		if err != nil {
			if isFatal(err) {
				return nil, err
			}
			d.warnf(layerIndex, i, "object failed to decode: %v", err)
			obj = d.placeholderObject(layerIndex, i, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// placeholderLayer stands in for a layer whose record failed to decode.
// Flag defaults follow the editor's conventions: visible in tool and on
// platform, writable, not decorative.
func (d *decoder) placeholderLayer(index int, cause error) Layer {
	return Layer{
		Name:            fmt.Sprintf("Layer_%d", index),
		ToolVisible:     true,
		PlatformVisible: true,
		Objects:         []InstanceObject{},
		Placeholder:     true,
		Note:            cause.Error(),
	}
}
