package lgb

import "fmt"

// Payload is the asset-type specific portion of an instance object. All
// implementations are plain data produced during the parse.
type Payload interface {
	Kind() AssetType
}

// GenericPayload is the fallback for unrecognized or reserved tags, and
// for known tags whose variant data failed to decode. Fields always holds
// at least assetType; on a failed variant decode it also carries the
// error and whatever primitives were read before the failure.
type GenericPayload struct {
	Type   AssetType
	Fields map[string]any
}

// Kind returns the raw tag the payload was decoded under.
func (p *GenericPayload) Kind() AssetType { return p.Type }

// PayloadContext gives a payload decoder bounded access to the object's
// trailing data. Reads advance through the record; Path resolves a string
// offset against the object record's start.
type PayloadContext struct {
	c     *Cursor
	start Anchor
	warnf func(format string, args ...any)
}

// I32 reads a little-endian int32.
func (pc *PayloadContext) I32() (int32, error) { return pc.c.ReadI32() }

// U32 reads a little-endian uint32.
func (pc *PayloadContext) U32() (uint32, error) { return pc.c.ReadU32() }

// F32 reads a little-endian float32.
func (pc *PayloadContext) F32() (float32, error) { return pc.c.ReadF32() }

// U8 reads one unsigned byte.
func (pc *PayloadContext) U8() (uint8, error) { return pc.c.ReadU8() }

// Bool reads one byte as a boolean flag.
func (pc *PayloadContext) Bool() (bool, error) {
	b, err := pc.c.ReadU8()
	return b != 0, err
}

// Path reads an int32 string offset and resolves it against the object
// record's start. A zero or negative offset yields an empty path.
func (pc *PayloadContext) Path() (string, error) {
	off, err := pc.c.ReadI32()
	if err != nil {
		return "", err
	}
	s, ok, truncated, err := pc.c.ReadStringAt(pc.start, off)
	if err != nil {
		return "", err
	}
	if truncated {
		pc.warnf("path string at offset %d truncated at %d bytes", off, maxStringLen)
	}
	if !ok {
		return "", nil
	}
	return s, nil
}

// PayloadDecoder decodes the trailing variant data of one instance object.
type PayloadDecoder func(pc *PayloadContext) (Payload, error)

// payloadDecoders is the tag dispatch table. Entries are added in init
// and via RegisterPayloadDecoder; tags without an entry fall back to
// GenericPayload.
var payloadDecoders = map[AssetType]PayloadDecoder{}

// RegisterPayloadDecoder installs a decoder for a tag, replacing any
// existing one. Register before parsing; the table is not synchronized.
func RegisterPayloadDecoder(t AssetType, fn PayloadDecoder) {
	payloadDecoders[t] = fn
}

// decodePayload dispatches a tag to its registered decoder. Variant
// failures never unwind into the object decode: they degrade to a
// GenericPayload carrying the tag and the failure.
func (d *decoder) decodePayload(t AssetType, objStart Anchor, layerIndex, objectIndex int) Payload {
	pc := &PayloadContext{
		c:     d.c,
		start: objStart,
		warnf: func(format string, args ...any) {
			d.warnf(layerIndex, objectIndex, format, args...)
		},
	}

	fn, ok := payloadDecoders[t]
	if !ok {
		return d.genericPayload(t, nil)
	}

	payload, err := fn(pc)
	if err != nil {
		d.warnf(layerIndex, objectIndex, "%s payload failed to decode: %v", t, err)
		return d.genericPayload(t, err)
	}
	return payload
}

// genericPayload builds the key/value fallback. Up to four trailing words
// are captured best-effort as raw diagnostics.
func (d *decoder) genericPayload(t AssetType, cause error) *GenericPayload {
	fields := map[string]any{
		"assetType":     int32(t),
		"assetTypeName": t.String(),
	}
	if cause != nil {
		fields["error"] = cause.Error()
	}
	for i := 0; i < 4 && d.c.Remaining() >= 4; i++ {
		word, err := d.c.ReadU32()
		if err != nil {
			break
		}
		fields[fmt.Sprintf("word%d", i)] = word
	}
	return &GenericPayload{Type: t, Fields: fields}
}
