package lgb

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursor_PrimitiveReads(t *testing.T) {
	data := []byte{
		0x78, 0x56, 0x34, 0x12, // u32 0x12345678
		0xFF, 0xFF, 0xFF, 0xFF, // i32 -1
		0x00, 0x00, 0x80, 0x3F, // f32 1.0
		0x2A, // u8 42
	}
	c := NewCursor(data)

	u, err := c.ReadU32()
	if err != nil || u != 0x12345678 {
		t.Errorf("ReadU32 = %#x, %v", u, err)
	}
	i, err := c.ReadI32()
	if err != nil || i != -1 {
		t.Errorf("ReadI32 = %d, %v", i, err)
	}
	f, err := c.ReadF32()
	if err != nil || f != 1.0 {
		t.Errorf("ReadF32 = %v, %v", f, err)
	}
	b, err := c.ReadU8()
	if err != nil || b != 42 {
		t.Errorf("ReadU8 = %d, %v", b, err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining = %d, want 0", c.Remaining())
	}
}

func TestCursor_ShortReads(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		read func(*Cursor) error
	}{
		{"u32 short", []byte{1, 2, 3}, func(c *Cursor) error { _, err := c.ReadU32(); return err }},
		{"u8 empty", nil, func(c *Cursor) error { _, err := c.ReadU8(); return err }},
		{"f32 short", []byte{1}, func(c *Cursor) error { _, err := c.ReadF32(); return err }},
		{"bytes short", []byte{1, 2}, func(c *Cursor) error { _, err := c.ReadBytes(3); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read(NewCursor(tt.data))
			var berr *BoundsError
			if !errors.As(err, &berr) {
				t.Errorf("expected BoundsError, got %v", err)
			}
		})
	}
}

func TestCursor_ShortReadDoesNotAdvance(t *testing.T) {
	c := NewCursor([]byte{1, 2})
	if _, err := c.ReadU32(); err == nil {
		t.Fatal("expected error")
	}
	if c.Pos() != 0 {
		t.Errorf("failed read moved position to %d", c.Pos())
	}
}

func TestCursor_Seek(t *testing.T) {
	c := NewCursor(make([]byte, 10))

	tests := []struct {
		pos     int
		wantErr bool
	}{
		{0, false},
		{9, false},
		{10, true},
		{-1, true},
		{100, true},
	}

	for _, tt := range tests {
		err := c.Seek(tt.pos)
		if (err != nil) != tt.wantErr {
			t.Errorf("Seek(%d): err = %v, wantErr %v", tt.pos, err, tt.wantErr)
		}
	}
}

func TestCursor_SnapshotRestore(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	c.ReadU32()

	saved := c.Pos()
	if err := c.Seek(0); err != nil {
		t.Fatal(err)
	}
	c.ReadU8()
	if err := c.Seek(saved); err != nil {
		t.Fatal(err)
	}
	if c.Pos() != 4 {
		t.Errorf("restored position = %d, want 4", c.Pos())
	}
}

func TestCursor_Resolve(t *testing.T) {
	c := NewCursor(make([]byte, 100))

	tests := []struct {
		name    string
		anchor  Anchor
		offset  int32
		want    int
		wantErr bool
	}{
		{"zero offset", 10, 0, 10, false},
		{"forward", 10, 50, 60, false},
		{"last byte", 0, 99, 99, false},
		{"at end", 0, 100, 0, true},
		{"past end", 50, 1000, 0, true},
		{"negative target", 10, -20, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Resolve(tt.anchor, tt.offset)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("Resolve = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCursor_ReadStringAt(t *testing.T) {
	data := make([]byte, 64)
	copy(data[10:], "hello\x00world")

	c := NewCursor(data)
	c.Seek(5) // string reads must not disturb the cursor

	s, ok, truncated, err := c.ReadStringAt(Anchor(0), 10)
	if err != nil || !ok || truncated {
		t.Fatalf("ReadStringAt = %q, %v, %v, %v", s, ok, truncated, err)
	}
	if s != "hello" {
		t.Errorf("string = %q, want %q", s, "hello")
	}
	if c.Pos() != 5 {
		t.Errorf("cursor moved to %d", c.Pos())
	}
}

func TestCursor_ReadStringAt_ZeroOrNegativeOffset(t *testing.T) {
	c := NewCursor(make([]byte, 16))

	for _, off := range []int32{0, -1, -100} {
		_, ok, _, err := c.ReadStringAt(Anchor(4), off)
		if err != nil {
			t.Errorf("offset %d: unexpected error %v", off, err)
		}
		if ok {
			t.Errorf("offset %d: ok = true, want false", off)
		}
	}
}

func TestCursor_ReadStringAt_OutOfBounds(t *testing.T) {
	c := NewCursor(make([]byte, 16))
	_, _, _, err := c.ReadStringAt(Anchor(8), 100)
	var berr *BoundsError
	if !errors.As(err, &berr) {
		t.Errorf("expected BoundsError, got %v", err)
	}
}

func TestCursor_ReadStringAt_Truncation(t *testing.T) {
	// A run longer than the cap with no terminator.
	data := append([]byte{0}, bytes.Repeat([]byte{'a'}, maxStringLen+100)...)
	data = append(data, 0)

	c := NewCursor(data)
	s, ok, truncated, err := c.ReadStringAt(Anchor(0), 1)
	if err != nil || !ok {
		t.Fatalf("ReadStringAt failed: %v", err)
	}
	if !truncated {
		t.Error("expected truncation")
	}
	if len(s) != maxStringLen {
		t.Errorf("len = %d, want %d", len(s), maxStringLen)
	}
}

func TestCursor_ReadStringAt_UnterminatedAtBufferEnd(t *testing.T) {
	data := append(make([]byte, 4), []byte("tail")...)

	c := NewCursor(data)
	s, ok, truncated, err := c.ReadStringAt(Anchor(0), 4)
	if err != nil || !ok {
		t.Fatalf("ReadStringAt failed: %v", err)
	}
	if s != "tail" || !truncated {
		t.Errorf("got %q truncated=%v, want %q truncated=true", s, truncated, "tail")
	}
}
