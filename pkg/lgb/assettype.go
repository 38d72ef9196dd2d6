package lgb

import "fmt"

// AssetType is the integer discriminator selecting an instance object's
// payload shape.
type AssetType int32

// Known asset types. Tags 21-35 are reserved slots in the cutscene clip
// range; files in the wild carry them with empty payloads.
const (
	AssetNone                   AssetType = 0
	AssetBG                     AssetType = 1
	AssetAttribute              AssetType = 2
	AssetLayLight               AssetType = 3
	AssetVFX                    AssetType = 4
	AssetPositionMarker         AssetType = 5
	AssetSharedGroup            AssetType = 6
	AssetSound                  AssetType = 7
	AssetEventNPC               AssetType = 8
	AssetBattleNPC              AssetType = 9
	AssetRoutePath              AssetType = 10
	AssetCharacter              AssetType = 11
	AssetAetheryte              AssetType = 12
	AssetEnvSet                 AssetType = 13
	AssetGathering              AssetType = 14
	AssetHelperObject           AssetType = 15
	AssetTreasure               AssetType = 16
	AssetClip                   AssetType = 17
	AssetClipCtrlPoint          AssetType = 18
	AssetClipCamera             AssetType = 19
	AssetClipLight              AssetType = 20
	AssetClipReserve00          AssetType = 21
	AssetClipReserve14          AssetType = 35
	AssetCutAssetOnlySelectable AssetType = 36
	AssetPlayer                 AssetType = 37
	AssetMonster                AssetType = 38
	AssetWeapon                 AssetType = 39
	AssetPopRange               AssetType = 40
	AssetExitRange              AssetType = 41
	AssetLVB                    AssetType = 42
	AssetMapRange               AssetType = 43
	AssetNaviMeshRange          AssetType = 44
	AssetEventObject            AssetType = 45
	AssetDemiHuman              AssetType = 46
	AssetEnvLocation            AssetType = 47
	AssetControlPoint           AssetType = 48
	AssetEventRange             AssetType = 49
	AssetRestBonusRange         AssetType = 50
	AssetQuestMarker            AssetType = 51
	AssetTimeline               AssetType = 52
	AssetObjectBehaviorSet      AssetType = 53
	AssetMovement               AssetType = 54
	AssetEventNPCMovePath       AssetType = 55
	AssetEventNPCStayPath       AssetType = 56
	AssetCollisionBox           AssetType = 57
	AssetDoorRange              AssetType = 58
	AssetLineVFX                AssetType = 59
	AssetSoundEnvSet            AssetType = 60
	AssetCutActionTimeline      AssetType = 61
	AssetCharaScene             AssetType = 62
	AssetCutAction              AssetType = 63
	AssetEquipPreset            AssetType = 64
	AssetClientPath             AssetType = 65
	AssetServerPath             AssetType = 66
	AssetGimmickRange           AssetType = 67
	AssetTargetMarker           AssetType = 68
	AssetChairMarker            AssetType = 69
	AssetClickableRange         AssetType = 70
	AssetPrefetchRange          AssetType = 71
	AssetFateRange              AssetType = 72
	AssetPartyMember            AssetType = 73
	AssetKeepRange              AssetType = 74
	AssetSphereCastRange        AssetType = 75
	AssetIndoorObject           AssetType = 76
	AssetOutdoorObject          AssetType = 77
	AssetEditGroup              AssetType = 78
	AssetStableChocobo          AssetType = 79
)

// assetTypeNames maps known tags to their names. Reserved clip slots and
// anything missing from the table render as Unknown(<tag>).
var assetTypeNames = map[AssetType]string{
	AssetNone:                   "AssetNone",
	AssetBG:                     "BG",
	AssetAttribute:              "Attribute",
	AssetLayLight:               "LayLight",
	AssetVFX:                    "VFX",
	AssetPositionMarker:         "PositionMarker",
	AssetSharedGroup:            "SharedGroup",
	AssetSound:                  "Sound",
	AssetEventNPC:               "EventNPC",
	AssetBattleNPC:              "BattleNPC",
	AssetRoutePath:              "RoutePath",
	AssetCharacter:              "Character",
	AssetAetheryte:              "Aetheryte",
	AssetEnvSet:                 "EnvSet",
	AssetGathering:              "Gathering",
	AssetHelperObject:           "HelperObject",
	AssetTreasure:               "Treasure",
	AssetClip:                   "Clip",
	AssetClipCtrlPoint:          "ClipCtrlPoint",
	AssetClipCamera:             "ClipCamera",
	AssetClipLight:              "ClipLight",
	AssetCutAssetOnlySelectable: "CutAssetOnlySelectable",
	AssetPlayer:                 "Player",
	AssetMonster:                "Monster",
	AssetWeapon:                 "Weapon",
	AssetPopRange:               "PopRange",
	AssetExitRange:              "ExitRange",
	AssetLVB:                    "LVB",
	AssetMapRange:               "MapRange",
	AssetNaviMeshRange:          "NaviMeshRange",
	AssetEventObject:            "EventObject",
	AssetDemiHuman:              "DemiHuman",
	AssetEnvLocation:            "EnvLocation",
	AssetControlPoint:           "ControlPoint",
	AssetEventRange:             "EventRange",
	AssetRestBonusRange:         "RestBonusRange",
	AssetQuestMarker:            "QuestMarker",
	AssetTimeline:               "Timeline",
	AssetObjectBehaviorSet:      "ObjectBehaviorSet",
	AssetMovement:               "Movement",
	AssetEventNPCMovePath:       "EventNPCMovePath",
	AssetEventNPCStayPath:       "EventNPCStayPath",
	AssetCollisionBox:           "CollisionBox",
	AssetDoorRange:              "DoorRange",
	AssetLineVFX:                "LineVFX",
	AssetSoundEnvSet:            "SoundEnvSet",
	AssetCutActionTimeline:      "CutActionTimeline",
	AssetCharaScene:             "CharaScene",
	AssetCutAction:              "CutAction",
	AssetEquipPreset:            "EquipPreset",
	AssetClientPath:             "ClientPath",
	AssetServerPath:             "ServerPath",
	AssetGimmickRange:           "GimmickRange",
	AssetTargetMarker:           "TargetMarker",
	AssetChairMarker:            "ChairMarker",
	AssetClickableRange:         "ClickableRange",
	AssetPrefetchRange:          "PrefetchRange",
	AssetFateRange:              "FateRange",
	AssetPartyMember:            "PartyMember",
	AssetKeepRange:              "KeepRange",
	AssetSphereCastRange:        "SphereCastRange",
	AssetIndoorObject:           "IndoorObject",
	AssetOutdoorObject:          "OutdoorObject",
	AssetEditGroup:              "EditGroup",
	AssetStableChocobo:          "StableChocobo",
}

// String returns a human-readable asset type name.
func (t AssetType) String() string {
	if name, ok := assetTypeNames[t]; ok {
		return name
	}
	if t >= AssetClipReserve00 && t <= AssetClipReserve14 {
		return fmt.Sprintf("ClipReserve%02d", int32(t-AssetClipReserve00))
	}
	return fmt.Sprintf("Unknown(%d)", int32(t))
}

// Known reports whether the tag is part of the closed enumeration,
// reserved clip slots included.
func (t AssetType) Known() bool {
	if _, ok := assetTypeNames[t]; ok {
		return true
	}
	return t >= AssetClipReserve00 && t <= AssetClipReserve14
}
