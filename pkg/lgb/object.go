package lgb

import (
	"fmt"

	"github.com/MalekBael/FFXIV-LGB-Parser/pkg/math"
)

// Transform is a placed object's translation, rotation and scale.
// Rotation holds four components when decoded in quaternion mode; in
// Euler mode the three angle components land in X/Y/Z and W is zero.
type Transform struct {
	Translation math.Vec3
	Rotation    math.Quat
	Scale       math.Vec3
}

// Matrix composes the world matrix, scale first. In Euler mode the
// rotation components are converted from angles before composing.
func (t Transform) Matrix(rotation RotationFormat) math.Mat4 {
	q := t.Rotation
	if rotation == RotationEuler {
		q = math.QuatFromEuler(t.Rotation.X, t.Rotation.Y, t.Rotation.Z)
	}
	return math.TRS(t.Translation, q, t.Scale)
}

// InstanceObject is one placed entity: a mesh, light, trigger, marker or
// similar, with a transform and a type-specific payload.
type InstanceObject struct {
	Type       AssetType
	InstanceID uint32
	Name       string
	Transform  Transform
	Payload    Payload

	// Placeholder is true when this object's record failed to decode and
	// the entry stands in for it; Note carries the failure.
	Placeholder bool
	Note        string
}

// decodeInstanceObject reads one instance-object record at the current
// cursor position: tag, id, name offset, transform, then the tag-specific
// trailing payload.
func (d *decoder) decodeInstanceObject(layerIndex, objectIndex int) (InstanceObject, error) {
	objStart := Anchor(d.c.Pos())

	rawType, err := d.c.ReadI32()
	if err != nil {
		return InstanceObject{}, fmt.Errorf("reading assetType: %w", err)
	}
	instanceID, err := d.c.ReadU32()
	if err != nil {
		return InstanceObject{}, fmt.Errorf("reading instanceId: %w", err)
	}
	nameOffset, err := d.c.ReadI32()
	if err != nil {
		return InstanceObject{}, fmt.Errorf("reading object nameOffset: %w", err)
	}

	transform, err := d.decodeTransform()
	if err != nil {
		return InstanceObject{}, err
	}

	obj := InstanceObject{
		Type:       AssetType(rawType),
		InstanceID: instanceID,
		Name:       d.stringAt(objStart, nameOffset, fmt.Sprintf("Object_%d_%d", layerIndex, objectIndex), layerIndex, objectIndex),
		Transform:  transform,
	}
	obj.Payload = d.decodePayload(obj.Type, objStart, layerIndex, objectIndex)

	return obj, nil
}

// decodeTransform reads translation, rotation and scale in fixed order.
// Quaternion mode reads 10 floats (4-component rotation), Euler mode 9.
func (d *decoder) decodeTransform() (Transform, error) {
	floats := 10
	if d.opts.Rotation == RotationEuler {
		floats = 9
	}

	var v [10]float32
	for i := 0; i < floats; i++ {
		f, err := d.c.ReadF32()
		if err != nil {
			return Transform{}, fmt.Errorf("reading transform float %d: %w", i, err)
		}
		v[i] = f
	}

	if d.opts.Rotation == RotationEuler {
		return Transform{
			Translation: math.Vec3{X: v[0], Y: v[1], Z: v[2]},
			Rotation:    math.Quat{X: v[3], Y: v[4], Z: v[5], W: 0},
			Scale:       math.Vec3{X: v[6], Y: v[7], Z: v[8]},
		}, nil
	}
	return Transform{
		Translation: math.Vec3{X: v[0], Y: v[1], Z: v[2]},
		Rotation:    math.Quat{X: v[3], Y: v[4], Z: v[5], W: v[6]},
		Scale:       math.Vec3{X: v[7], Y: v[8], Z: v[9]},
	}, nil
}

// placeholderObject stands in for an object that failed to decode. The
// transform is identity-shaped so downstream consumers can still place it.
func (d *decoder) placeholderObject(layerIndex, objectIndex int, cause error) InstanceObject {
	rotation := math.Quat{X: 0, Y: 0, Z: 0, W: 1}
	if d.opts.Rotation == RotationEuler {
		rotation.W = 0
	}
	return InstanceObject{
		Type: AssetNone,
		Name: fmt.Sprintf("Object_%d_%d", layerIndex, objectIndex),
		Transform: Transform{
			Rotation: rotation,
			Scale:    math.Vec3{X: 1, Y: 1, Z: 1},
		},
		Payload: &GenericPayload{
			Type:   AssetNone,
			Fields: map[string]any{"error": cause.Error()},
		},
		Placeholder: true,
		Note:        cause.Error(),
	}
}
