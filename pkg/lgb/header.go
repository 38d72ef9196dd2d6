package lgb

import "fmt"

// File layout tags.
const (
	Magic   = "LGB1"
	ChunkID = "LYR1"
)

// maxLayerCount bounds the layer table. A layer group never carries more
// than a few hundred layers; anything past this is corruption.
const maxLayerCount = 1000

// FileHeader is the fixed 12-byte file prologue.
type FileHeader struct {
	Magic      string
	FileSize   int32
	ChunkCount int32
}

// LayerChunk is the layer-group chunk header following the file header.
type LayerChunk struct {
	ChunkID          string
	ChunkSize        int32
	GroupID          int32
	Name             string
	LayerTableOffset int32
	LayerCount       int32
}

// decodeFileHeader reads the file prologue and validates its fields.
func (d *decoder) decodeFileHeader() (FileHeader, error) {
	pos := d.c.Pos()
	magic, err := d.c.ReadBytes(4)
	if err != nil {
		return FileHeader{}, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != Magic {
		return FileHeader{}, &FormatError{Field: "magic", Position: pos, Want: fmt.Sprintf("%q", Magic), Got: fmt.Sprintf("%q", magic)}
	}

	fileSize, err := d.readNonNegativeI32("fileSize")
	if err != nil {
		return FileHeader{}, err
	}
	chunkCount, err := d.readNonNegativeI32("chunkCount")
	if err != nil {
		return FileHeader{}, err
	}

	return FileHeader{Magic: string(magic), FileSize: fileSize, ChunkCount: chunkCount}, nil
}

// decodeLayerChunk reads the chunk header. chunkStart anchors the chunk's
// own name offset and its layer table offset.
func (d *decoder) decodeLayerChunk() (LayerChunk, Anchor, error) {
	chunkStart := Anchor(d.c.Pos())

	id, err := d.c.ReadBytes(4)
	if err != nil {
		return LayerChunk{}, 0, fmt.Errorf("reading chunk id: %w", err)
	}
	if string(id) != ChunkID {
		return LayerChunk{}, 0, &FormatError{Field: "chunkId", Position: int(chunkStart), Want: fmt.Sprintf("%q", ChunkID), Got: fmt.Sprintf("%q", id)}
	}

	chunkSize, err := d.readNonNegativeI32("chunkSize")
	if err != nil {
		return LayerChunk{}, 0, err
	}
	groupID, err := d.c.ReadI32()
	if err != nil {
		return LayerChunk{}, 0, fmt.Errorf("reading groupId: %w", err)
	}
	nameOffset, err := d.c.ReadI32()
	if err != nil {
		return LayerChunk{}, 0, fmt.Errorf("reading chunk nameOffset: %w", err)
	}
	layerTableOffset, err := d.readNonNegativeI32("layerTableOffset")
	if err != nil {
		return LayerChunk{}, 0, err
	}

	layerCountPos := d.c.Pos()
	layerCount, err := d.c.ReadI32()
	if err != nil {
		return LayerChunk{}, 0, fmt.Errorf("reading layerCount: %w", err)
	}
	if layerCount < 0 || layerCount > maxLayerCount {
		return LayerChunk{}, 0, &CountError{Field: "layerCount", Position: layerCountPos, Value: int(layerCount), Min: 0, Max: maxLayerCount}
	}

	name := d.stringAt(chunkStart, nameOffset, "", -1, -1)

	return LayerChunk{
		ChunkID:          string(id),
		ChunkSize:        chunkSize,
		GroupID:          groupID,
		Name:             name,
		LayerTableOffset: layerTableOffset,
		LayerCount:       layerCount,
	}, chunkStart, nil
}

// readNonNegativeI32 reads an int32 that the format requires to be >= 0.
func (d *decoder) readNonNegativeI32(field string) (int32, error) {
	pos := d.c.Pos()
	v, err := d.c.ReadI32()
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", field, err)
	}
	if v < 0 {
		return 0, &FormatError{Field: field, Position: pos, Want: ">= 0", Got: fmt.Sprintf("%d", v)}
	}
	return v, nil
}
