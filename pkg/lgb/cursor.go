package lgb

import (
	"bytes"
	"encoding/binary"
	"math"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/encoding"
)

// maxStringLen caps inline string reads. A name longer than this is
// assumed to be a missing terminator and is truncated.
const maxStringLen = 1000

// Anchor is an absolute byte position that relative offsets resolve
// against. Which position anchors a given offset field depends on the
// structure owning it: name offsets anchor at their record's start, the
// layer table's entries anchor at the table's own start, and an object
// table's entries anchor at layerStart + objectTableOffset.
type Anchor int

// Cursor is a bounded little-endian reader over an in-memory buffer.
// Every read validates the remaining length; positions never go negative
// or past the end of the buffer.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor creates a cursor over data. The buffer is not copied and must
// not be mutated while the cursor is in use.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current absolute position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the total buffer length.
func (c *Cursor) Len() int {
	return len(c.data)
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}

// Seek moves the cursor to an absolute position.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos >= len(c.data) {
		return &BoundsError{Position: pos, Need: 1, Have: 0}
	}
	c.pos = pos
	return nil
}

// Resolve computes anchor + offset and validates that the target lies
// inside the buffer. All anchor arithmetic goes through here so the
// anchoring rules stay in one place.
func (c *Cursor) Resolve(anchor Anchor, offset int32) (int, error) {
	target := int(anchor) + int(offset)
	if target < 0 || target >= len(c.data) {
		return 0, &BoundsError{Position: target, Need: 1, Have: 0}
	}
	return target, nil
}

// ReadBytes returns the next n bytes and advances the cursor.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, &BoundsError{Position: c.pos, Need: n, Have: c.Remaining()}
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// ReadU8 reads one unsigned byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if c.Remaining() < 1 {
		return 0, &BoundsError{Position: c.pos, Need: 1, Have: c.Remaining()}
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

// ReadU32 reads a little-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, &BoundsError{Position: c.pos, Need: 4, Have: c.Remaining()}
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadI32 reads a little-endian int32.
func (c *Cursor) ReadI32() (int32, error) {
	v, err := c.ReadU32()
	return int32(v), err
}

// ReadF32 reads a little-endian float32.
func (c *Cursor) ReadF32() (float32, error) {
	v, err := c.ReadU32()
	return math.Float32frombits(v), err
}

// ReadStringAt reads a null-terminated string at anchor + offset without
// disturbing the cursor position. A zero or negative offset means the
// record has no name; ok is false and the caller substitutes a default.
// Strings longer than maxStringLen, or running into the end of the
// buffer without a terminator, are truncated and reported via truncated.
func (c *Cursor) ReadStringAt(anchor Anchor, offset int32) (s string, ok bool, truncated bool, err error) {
	if offset <= 0 {
		return "", false, false, nil
	}
	start, err := c.Resolve(anchor, offset)
	if err != nil {
		return "", false, false, err
	}

	limit := start + maxStringLen
	if limit > len(c.data) {
		limit = len(c.data)
	}
	raw := c.data[start:limit]
	if idx := bytes.IndexByte(raw, 0); idx >= 0 {
		return encoding.DecodeName(raw[:idx]), true, false, nil
	}
	return encoding.DecodeName(raw), true, true, nil
}
