package lgb

import (
	"context"
	"testing"
)

// payloadFixture builds a buffer whose object record starts at position 0
// with the payload bytes at objPrefixSize, and returns a decoder with the
// cursor positioned at the payload start.
func payloadFixture(t *testing.T, payload []byte, tail []byte) *decoder {
	t.Helper()
	buf := make([]byte, objPrefixSize)
	buf = append(buf, payload...)
	buf = append(buf, tail...)

	d := &decoder{c: NewCursor(buf), ctx: context.Background()}
	if err := d.c.Seek(objPrefixSize); err != nil {
		t.Fatalf("seek: %v", err)
	}
	return d
}

func TestDecodePayload_BGParts(t *testing.T) {
	// Paths live behind the fixed fields; offsets anchor at the record
	// start (position 0 here).
	payload := make([]byte, 10)
	strBase := objPrefixSize + len(payload)
	putI32(payload, 0, int32(strBase))   // asset path offset
	putI32(payload, 4, int32(strBase+9)) // collision path offset
	payload[8] = 1                       // visible
	payload[9] = 0                       // cast shadow
	tail := []byte("bg/a.mdl\x00bg/a_c.pcb\x00")

	d := payloadFixture(t, payload, tail)
	p := d.decodePayload(AssetBG, Anchor(0), 0, 0)

	bg, ok := p.(*BGPartsPayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if bg.AssetPath != "bg/a.mdl" {
		t.Errorf("AssetPath = %q", bg.AssetPath)
	}
	if bg.CollisionAssetPath != "bg/a_c.pcb" {
		t.Errorf("CollisionAssetPath = %q", bg.CollisionAssetPath)
	}
	if !bg.Visible || bg.CastShadow {
		t.Errorf("flags = %+v", bg)
	}
	if bg.Kind() != AssetBG {
		t.Errorf("Kind = %v", bg.Kind())
	}
}

func TestDecodePayload_Light(t *testing.T) {
	payload := make([]byte, 12)
	putI32(payload, 0, 2)    // light type
	putF32(payload, 4, 0.75) // attenuation
	putI32(payload, 8, 0)    // no texture
	d := payloadFixture(t, payload, nil)

	p := d.decodePayload(AssetLayLight, Anchor(0), 0, 0)
	light, ok := p.(*LightPayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if light.LightType != 2 || light.Attenuation != 0.75 || light.TexturePath != "" {
		t.Errorf("light = %+v", light)
	}
}

func TestDecodePayload_ExitRange(t *testing.T) {
	payload := make([]byte, 20)
	putI32(payload, 0, 1)
	putU32(payload, 4, 130)
	putU32(payload, 8, 339)
	putU32(payload, 12, 7001)
	putU32(payload, 16, 7002)
	d := payloadFixture(t, payload, nil)

	p := d.decodePayload(AssetExitRange, Anchor(0), 0, 0)
	exit, ok := p.(*ExitRangePayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if exit.ZoneID != 130 || exit.TerritoryID != 339 || exit.DestInstanceID != 7001 {
		t.Errorf("exit = %+v", exit)
	}
}

func TestDecodePayload_UnknownTag(t *testing.T) {
	payload := make([]byte, 8)
	putU32(payload, 0, 0xAABBCCDD)
	d := payloadFixture(t, payload, nil)

	p := d.decodePayload(AssetType(9999), Anchor(0), 0, 0)
	generic, ok := p.(*GenericPayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if generic.Fields["assetType"] != int32(9999) {
		t.Errorf("assetType field = %v", generic.Fields["assetType"])
	}
	if generic.Fields["word0"] != uint32(0xAABBCCDD) {
		t.Errorf("word0 = %v", generic.Fields["word0"])
	}
	if generic.Kind() != AssetType(9999) {
		t.Errorf("Kind = %v", generic.Kind())
	}
}

func TestDecodePayload_VariantFailureFallsBack(t *testing.T) {
	// ExitRange needs 20 bytes; give it 4. The object survives with a
	// generic payload carrying the error and a warning is recorded.
	payload := make([]byte, 4)
	putI32(payload, 0, 1)
	d := payloadFixture(t, payload, nil)

	p := d.decodePayload(AssetExitRange, Anchor(0), 2, 3)
	generic, ok := p.(*GenericPayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if generic.Fields["error"] == nil {
		t.Error("generic fallback carries no error")
	}
	if generic.Fields["assetType"] != int32(AssetExitRange) {
		t.Errorf("assetType field = %v", generic.Fields["assetType"])
	}

	if len(d.warnings) != 1 {
		t.Fatalf("warnings = %v", d.warnings)
	}
	if d.warnings[0].Layer != 2 || d.warnings[0].Object != 3 {
		t.Errorf("warning scope = %+v", d.warnings[0])
	}
}

func TestRegisterPayloadDecoder_Custom(t *testing.T) {
	const customTag = AssetType(200)
	defer delete(payloadDecoders, customTag)

	type customPayload struct {
		GenericPayload
		Value int32
	}

	RegisterPayloadDecoder(customTag, func(pc *PayloadContext) (Payload, error) {
		v, err := pc.I32()
		if err != nil {
			return nil, err
		}
		return &customPayload{GenericPayload: GenericPayload{Type: customTag}, Value: v}, nil
	})

	payload := make([]byte, 4)
	putI32(payload, 0, 77)
	d := payloadFixture(t, payload, nil)

	p := d.decodePayload(customTag, Anchor(0), 0, 0)
	custom, ok := p.(*customPayload)
	if !ok {
		t.Fatalf("payload type = %T", p)
	}
	if custom.Value != 77 {
		t.Errorf("Value = %d", custom.Value)
	}
}

func TestDecodePayload_PathTypes(t *testing.T) {
	for _, tag := range []AssetType{AssetRoutePath, AssetClientPath, AssetServerPath} {
		payload := make([]byte, 4)
		putI32(payload, 0, 16)
		d := payloadFixture(t, payload, nil)

		p := d.decodePayload(tag, Anchor(0), 0, 0)
		path, ok := p.(*PathPayload)
		if !ok {
			t.Fatalf("%v: payload type = %T", tag, p)
		}
		if path.ControlPointCount != 16 || path.Kind() != tag {
			t.Errorf("%v: path = %+v", tag, path)
		}
	}
}
