// Package lgb provides a decoder for layer-group binary scene files.
//
// A layer-group file describes every placed object for one map region:
// background meshes, lights, triggers, paths, markers and similar
// entities, grouped into named layers. The decoder is defensive: a
// corrupt layer or object record is replaced by a placeholder and
// reported as a warning, while corruption in the offset tables that
// structure the file aborts the whole parse.
package lgb

import (
	"errors"
	"fmt"
)

// errTableLevel marks structural corruption. Once an offset table itself is
// bad, every position derived from it is meaningless and the parse cannot
// continue past it.
var errTableLevel = errors.New("offset table corrupt")

// BoundsError reports a read, seek or offset resolution outside the buffer.
type BoundsError struct {
	Position int // absolute byte position of the attempted access
	Need     int // bytes required
	Have     int // bytes available
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("out of bounds at 0x%X: need %d bytes, have %d", e.Position, e.Need, e.Have)
}

// FormatError reports a fixed field holding a malformed value, such as a
// bad magic tag or a negative size.
type FormatError struct {
	Field    string
	Position int // absolute byte position of the field
	Want     string
	Got      string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s at 0x%X: want %s, got %s", e.Field, e.Position, e.Want, e.Got)
}

// CountError reports a count field outside its allowed range.
type CountError struct {
	Field    string
	Position int // absolute byte position of the field
	Value    int
	Min, Max int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%s at 0x%X is %d, allowed range [%d, %d]", e.Field, e.Position, e.Value, e.Min, e.Max)
}

// Warning records a recoverable defect found while decoding. The entry it
// names was replaced by a placeholder, or its string was truncated; the
// surrounding structure decoded normally.
type Warning struct {
	Layer   int // layer index, -1 when not layer-scoped
	Object  int // object index within the layer, -1 when not object-scoped
	Message string
}

func (w Warning) String() string {
	switch {
	case w.Layer < 0:
		return w.Message
	case w.Object < 0:
		return fmt.Sprintf("layer %d: %s", w.Layer, w.Message)
	default:
		return fmt.Sprintf("layer %d, object %d: %s", w.Layer, w.Object, w.Message)
	}
}
