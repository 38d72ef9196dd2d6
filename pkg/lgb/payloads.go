package lgb

// Typed payloads for the asset categories the extractor understands.
// Each decoder reads a fixed field sequence from the object's trailing
// data; string-valued fields are stored as offsets anchored at the
// object record's start.

// BGPartsPayload describes a placed background mesh.
type BGPartsPayload struct {
	AssetPath          string
	CollisionAssetPath string
	Visible            bool
	CastShadow         bool
}

func (p *BGPartsPayload) Kind() AssetType { return AssetBG }

// LightPayload describes a placed light source.
type LightPayload struct {
	LightType   int32
	Attenuation float32
	TexturePath string
}

func (p *LightPayload) Kind() AssetType { return AssetLayLight }

// VFXPayload describes a placed particle effect.
type VFXPayload struct {
	AssetPath string
	FadeNear  float32
	FadeFar   float32
	AutoPlay  bool
}

func (p *VFXPayload) Kind() AssetType { return AssetVFX }

// PositionMarkerPayload describes an editor position marker.
type PositionMarkerPayload struct {
	MarkerType int32
	CommentID  int32
}

func (p *PositionMarkerPayload) Kind() AssetType { return AssetPositionMarker }

// SharedGroupPayload references a reusable prefab of objects.
type SharedGroupPayload struct {
	AssetPath     string
	DoorState     int32
	RotationState int32
}

func (p *SharedGroupPayload) Kind() AssetType { return AssetSharedGroup }

// SoundPayload describes a placed sound emitter.
type SoundPayload struct {
	AssetPath string
	Volume    float32
	AutoPlay  bool
}

func (p *SoundPayload) Kind() AssetType { return AssetSound }

// EventNPCPayload describes an event NPC spawn point.
type EventNPCPayload struct {
	BaseID       uint32
	PopTimeStart uint32
	PopTimeEnd   uint32
	BehaviorID   uint32
}

func (p *EventNPCPayload) Kind() AssetType { return AssetEventNPC }

// BattleNPCPayload describes a battle NPC spawn point.
type BattleNPCPayload struct {
	BaseID       uint32
	PopTimeStart uint32
	PopTimeEnd   uint32
	BehaviorID   uint32
	SenseRange   float32
}

func (p *BattleNPCPayload) Kind() AssetType { return AssetBattleNPC }

// AetherytePayload binds a teleport point to its instance record.
type AetherytePayload struct {
	BoundInstanceID uint32
}

func (p *AetherytePayload) Kind() AssetType { return AssetAetheryte }

// EnvSetPayload describes an environment sound/lighting region.
type EnvSetPayload struct {
	AssetPath       string
	BoundInstanceID uint32
	Shape           int32
	Priority        int32
}

func (p *EnvSetPayload) Kind() AssetType { return AssetEnvSet }

// GatheringPayload binds a gathering node to its point record.
type GatheringPayload struct {
	PointID uint32
}

func (p *GatheringPayload) Kind() AssetType { return AssetGathering }

// TreasurePayload describes a treasure coffer spawn.
type TreasurePayload struct {
	NonpopInitZone bool
}

func (p *TreasurePayload) Kind() AssetType { return AssetTreasure }

// PopRangePayload describes a spawn area.
type PopRangePayload struct {
	PopType          int32
	InnerRadiusRatio float32
	Index            uint8
}

func (p *PopRangePayload) Kind() AssetType { return AssetPopRange }

// ExitRangePayload describes a zone-exit trigger volume.
type ExitRangePayload struct {
	ExitType         int32
	ZoneID           uint32
	TerritoryID      uint32
	DestInstanceID   uint32
	ReturnInstanceID uint32
}

func (p *ExitRangePayload) Kind() AssetType { return AssetExitRange }

// TriggerRange is the field block shared by trigger-volume payloads.
type TriggerRange struct {
	Shape           int32
	Priority        int32
	Enabled         bool
	BoundInstanceID uint32
}

// MapRangePayload describes a map-boundary trigger volume.
type MapRangePayload struct {
	TriggerRange
	MapID uint32
}

func (p *MapRangePayload) Kind() AssetType { return AssetMapRange }

// EventRangePayload describes an event trigger volume.
type EventRangePayload struct {
	TriggerRange
}

func (p *EventRangePayload) Kind() AssetType { return AssetEventRange }

// FateRangePayload describes a FATE boundary volume.
type FateRangePayload struct {
	TriggerRange
	FateID uint32
}

func (p *FateRangePayload) Kind() AssetType { return AssetFateRange }

// PathPayload describes a control-point path. The points themselves live
// in a sibling structure; only the count is recorded here.
type PathPayload struct {
	PathType          AssetType
	ControlPointCount int32
}

func (p *PathPayload) Kind() AssetType { return p.PathType }

// CollisionBoxPayload describes a collision volume.
type CollisionBoxPayload struct {
	TriggerRange
	PushPlayerOut bool
}

func (p *CollisionBoxPayload) Kind() AssetType { return AssetCollisionBox }

func init() {
	RegisterPayloadDecoder(AssetBG, decodeBGParts)
	RegisterPayloadDecoder(AssetLayLight, decodeLight)
	RegisterPayloadDecoder(AssetVFX, decodeVFX)
	RegisterPayloadDecoder(AssetPositionMarker, decodePositionMarker)
	RegisterPayloadDecoder(AssetSharedGroup, decodeSharedGroup)
	RegisterPayloadDecoder(AssetSound, decodeSound)
	RegisterPayloadDecoder(AssetEventNPC, decodeEventNPC)
	RegisterPayloadDecoder(AssetBattleNPC, decodeBattleNPC)
	RegisterPayloadDecoder(AssetAetheryte, decodeAetheryte)
	RegisterPayloadDecoder(AssetEnvSet, decodeEnvSet)
	RegisterPayloadDecoder(AssetGathering, decodeGathering)
	RegisterPayloadDecoder(AssetTreasure, decodeTreasure)
	RegisterPayloadDecoder(AssetPopRange, decodePopRange)
	RegisterPayloadDecoder(AssetExitRange, decodeExitRange)
	RegisterPayloadDecoder(AssetMapRange, decodeMapRange)
	RegisterPayloadDecoder(AssetEventRange, decodeEventRange)
	RegisterPayloadDecoder(AssetFateRange, decodeFateRange)
	RegisterPayloadDecoder(AssetCollisionBox, decodeCollisionBox)
	RegisterPayloadDecoder(AssetRoutePath, pathDecoder(AssetRoutePath))
	RegisterPayloadDecoder(AssetClientPath, pathDecoder(AssetClientPath))
	RegisterPayloadDecoder(AssetServerPath, pathDecoder(AssetServerPath))
}

func decodeBGParts(pc *PayloadContext) (Payload, error) {
	p := &BGPartsPayload{}
	var err error
	if p.AssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.CollisionAssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.Visible, err = pc.Bool(); err != nil {
		return nil, err
	}
	if p.CastShadow, err = pc.Bool(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeLight(pc *PayloadContext) (Payload, error) {
	p := &LightPayload{}
	var err error
	if p.LightType, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.Attenuation, err = pc.F32(); err != nil {
		return nil, err
	}
	if p.TexturePath, err = pc.Path(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeVFX(pc *PayloadContext) (Payload, error) {
	p := &VFXPayload{}
	var err error
	if p.AssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.FadeNear, err = pc.F32(); err != nil {
		return nil, err
	}
	if p.FadeFar, err = pc.F32(); err != nil {
		return nil, err
	}
	if p.AutoPlay, err = pc.Bool(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodePositionMarker(pc *PayloadContext) (Payload, error) {
	p := &PositionMarkerPayload{}
	var err error
	if p.MarkerType, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.CommentID, err = pc.I32(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeSharedGroup(pc *PayloadContext) (Payload, error) {
	p := &SharedGroupPayload{}
	var err error
	if p.AssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.DoorState, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.RotationState, err = pc.I32(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeSound(pc *PayloadContext) (Payload, error) {
	p := &SoundPayload{}
	var err error
	if p.AssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.Volume, err = pc.F32(); err != nil {
		return nil, err
	}
	if p.AutoPlay, err = pc.Bool(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeEventNPC(pc *PayloadContext) (Payload, error) {
	p := &EventNPCPayload{}
	var err error
	if p.BaseID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.PopTimeStart, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.PopTimeEnd, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.BehaviorID, err = pc.U32(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeBattleNPC(pc *PayloadContext) (Payload, error) {
	p := &BattleNPCPayload{}
	var err error
	if p.BaseID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.PopTimeStart, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.PopTimeEnd, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.BehaviorID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.SenseRange, err = pc.F32(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeAetheryte(pc *PayloadContext) (Payload, error) {
	id, err := pc.U32()
	if err != nil {
		return nil, err
	}
	return &AetherytePayload{BoundInstanceID: id}, nil
}

func decodeEnvSet(pc *PayloadContext) (Payload, error) {
	p := &EnvSetPayload{}
	var err error
	if p.AssetPath, err = pc.Path(); err != nil {
		return nil, err
	}
	if p.BoundInstanceID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.Shape, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.Priority, err = pc.I32(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeGathering(pc *PayloadContext) (Payload, error) {
	id, err := pc.U32()
	if err != nil {
		return nil, err
	}
	return &GatheringPayload{PointID: id}, nil
}

func decodeTreasure(pc *PayloadContext) (Payload, error) {
	nonpop, err := pc.Bool()
	if err != nil {
		return nil, err
	}
	return &TreasurePayload{NonpopInitZone: nonpop}, nil
}

func decodePopRange(pc *PayloadContext) (Payload, error) {
	p := &PopRangePayload{}
	var err error
	if p.PopType, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.InnerRadiusRatio, err = pc.F32(); err != nil {
		return nil, err
	}
	if p.Index, err = pc.U8(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeExitRange(pc *PayloadContext) (Payload, error) {
	p := &ExitRangePayload{}
	var err error
	if p.ExitType, err = pc.I32(); err != nil {
		return nil, err
	}
	if p.ZoneID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.TerritoryID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.DestInstanceID, err = pc.U32(); err != nil {
		return nil, err
	}
	if p.ReturnInstanceID, err = pc.U32(); err != nil {
		return nil, err
	}
	return p, nil
}

// decodeTriggerRange reads the common trigger-volume field block.
func decodeTriggerRange(pc *PayloadContext) (TriggerRange, error) {
	var r TriggerRange
	var err error
	if r.Shape, err = pc.I32(); err != nil {
		return r, err
	}
	if r.Priority, err = pc.I32(); err != nil {
		return r, err
	}
	if r.Enabled, err = pc.Bool(); err != nil {
		return r, err
	}
	if r.BoundInstanceID, err = pc.U32(); err != nil {
		return r, err
	}
	return r, nil
}

func decodeMapRange(pc *PayloadContext) (Payload, error) {
	r, err := decodeTriggerRange(pc)
	if err != nil {
		return nil, err
	}
	mapID, err := pc.U32()
	if err != nil {
		return nil, err
	}
	return &MapRangePayload{TriggerRange: r, MapID: mapID}, nil
}

func decodeEventRange(pc *PayloadContext) (Payload, error) {
	r, err := decodeTriggerRange(pc)
	if err != nil {
		return nil, err
	}
	return &EventRangePayload{TriggerRange: r}, nil
}

func decodeFateRange(pc *PayloadContext) (Payload, error) {
	r, err := decodeTriggerRange(pc)
	if err != nil {
		return nil, err
	}
	fateID, err := pc.U32()
	if err != nil {
		return nil, err
	}
	return &FateRangePayload{TriggerRange: r, FateID: fateID}, nil
}

func decodeCollisionBox(pc *PayloadContext) (Payload, error) {
	r, err := decodeTriggerRange(pc)
	if err != nil {
		return nil, err
	}
	push, err := pc.Bool()
	if err != nil {
		return nil, err
	}
	return &CollisionBoxPayload{TriggerRange: r, PushPlayerOut: push}, nil
}

// pathDecoder builds a decoder for one of the path-entity tags, which
// share a layout.
func pathDecoder(t AssetType) PayloadDecoder {
	return func(pc *PayloadContext) (Payload, error) {
		count, err := pc.I32()
		if err != nil {
			return nil, err
		}
		return &PathPayload{PathType: t, ControlPointCount: count}, nil
	}
}
