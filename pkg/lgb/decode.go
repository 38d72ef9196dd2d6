package lgb

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// RotationFormat selects how the transform's rotation field is read.
// Layout files are inconsistent between the two encodings, so the choice
// is explicit rather than guessed from the data.
type RotationFormat int

const (
	// RotationQuaternion reads four rotation components (x, y, z, w);
	// the record carries 10 floats. This is the default.
	RotationQuaternion RotationFormat = iota
	// RotationEuler reads three Euler angle components; the record
	// carries 9 floats and the quaternion W slot is forced to 0.
	RotationEuler
)

// Options controls a parse.
type Options struct {
	Rotation RotationFormat
}

// LGB is the decoded layer-group tree. It is plain data: nothing mutates
// it after ParseLGB returns, and decoding the same buffer twice yields
// structurally identical trees.
type LGB struct {
	Header   FileHeader
	Chunk    LayerChunk
	Layers   []Layer
	Warnings []Warning
}

// CountByType returns the number of instance objects per asset type,
// placeholders excluded.
func (g *LGB) CountByType() map[AssetType]int {
	counts := make(map[AssetType]int)
	for _, layer := range g.Layers {
		for _, obj := range layer.Objects {
			if obj.Placeholder {
				continue
			}
			counts[obj.Type]++
		}
	}
	return counts
}

// ObjectCount returns the total number of instance objects, placeholders
// included.
func (g *LGB) ObjectCount() int {
	n := 0
	for _, layer := range g.Layers {
		n += len(layer.Objects)
	}
	return n
}

// decoder carries the state of one parse call. It is single-use and
// exclusively owned by the call stack decoding one buffer.
type decoder struct {
	c        *Cursor
	ctx      context.Context
	opts     Options
	warnings []Warning
}

// ParseLGB decodes a layer-group file from raw bytes with default options.
func ParseLGB(data []byte) (*LGB, error) {
	return ParseLGBWithOptions(context.Background(), data, Options{})
}

// ParseLGBFile decodes a layer-group file from disk.
func ParseLGBFile(path string) (*LGB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading layer-group file: %w", err)
	}
	return ParseLGB(data)
}

// ParseLGBWithOptions decodes a layer-group file from raw bytes. The
// context is checked between layers and between objects; a cancelled
// parse returns ctx.Err() and no tree.
func ParseLGBWithOptions(ctx context.Context, data []byte, opts Options) (*LGB, error) {
	d := &decoder{
		c:    NewCursor(data),
		ctx:  ctx,
		opts: opts,
	}

	header, err := d.decodeFileHeader()
	if err != nil {
		return nil, err
	}

	chunk, chunkStart, err := d.decodeLayerChunk()
	if err != nil {
		return nil, err
	}

	g := &LGB{
		Header: header,
		Chunk:  chunk,
		Layers: make([]Layer, 0, chunk.LayerCount),
	}

	if chunk.LayerCount > 0 {
		tablePos, err := d.c.Resolve(chunkStart, chunk.LayerTableOffset)
		if err != nil {
			return nil, fmt.Errorf("%w: layer table: %w", errTableLevel, err)
		}
		if err := d.c.Seek(tablePos); err != nil {
			return nil, fmt.Errorf("%w: layer table: %w", errTableLevel, err)
		}

		// Layer table entries anchor at the table's own start.
		positions, err := d.readLayerTable(Anchor(tablePos), int(chunk.LayerCount))
		if err != nil {
			return nil, err
		}

		for i, pos := range positions {
			if err := d.checkCancelled(); err != nil {
				return nil, err
			}
			if err := d.c.Seek(pos); err != nil {
				return nil, fmt.Errorf("%w: seeking layer %d: %w", errTableLevel, i, err)
			}

			layer, err := d.decodeLayer(i)
			if err != nil {
				if isFatal(err) {
					return nil, err
				}
				d.warnf(i, -1, "layer failed to decode: %v", err)
				layer = d.placeholderLayer(i, err)
			}
			g.Layers = append(g.Layers, layer)
		}
	}

	g.Warnings = d.warnings
	return g, nil
}

// checkCancelled polls the caller's cancellation signal. Called between
// top-level items only; a single record read is never interrupted.
func (d *decoder) checkCancelled() error {
	select {
	case <-d.ctx.Done():
		return d.ctx.Err()
	default:
		return nil
	}
}

// isFatal reports whether an error must abort the whole parse rather
// than be absorbed into a placeholder: table-level corruption and caller
// cancellation cannot be contained to one entry.
func isFatal(err error) bool {
	return errors.Is(err, errTableLevel) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

// warnf records a recoverable defect against a layer/object index.
func (d *decoder) warnf(layer, object int, format string, args ...any) {
	d.warnings = append(d.warnings, Warning{
		Layer:   layer,
		Object:  object,
		Message: fmt.Sprintf(format, args...),
	})
}

// stringAt resolves a name string anchored at the owning record's start.
// A zero or negative offset, or an unresolvable one, yields the fallback;
// truncation is recorded as a warning. String problems never fail a
// record.
func (d *decoder) stringAt(anchor Anchor, offset int32, fallback string, layer, object int) string {
	s, ok, truncated, err := d.c.ReadStringAt(anchor, offset)
	if err != nil {
		d.warnf(layer, object, "name offset %d unresolvable: %v", offset, err)
		return fallback
	}
	if truncated {
		d.warnf(layer, object, "name truncated at %d bytes", maxStringLen)
	}
	if !ok {
		return fallback
	}
	return s
}
