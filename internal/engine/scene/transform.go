package scene

import (
	"github.com/chewxy/math32"

	"github.com/studiolumen/deskscene/pkg/math"
)

const degToRad = math32.Pi / 180

// Transform is the placement of one object for one draw call. Rotation
// angles are in degrees.
type Transform struct {
	Scale           math.Vec3
	RotationDegrees math.Vec3
	Translation     math.Vec3
}

// Matrix composes the model matrix as T * Rz * Ry * Rx * S: the object
// is scaled, rotated around X then Y then Z, and finally translated.
func (t Transform) Matrix() math.Mat4 {
	m := math.Translate(t.Translation.X, t.Translation.Y, t.Translation.Z)
	m = m.Mul(math.RotateZ(t.RotationDegrees.Z * degToRad))
	m = m.Mul(math.RotateY(t.RotationDegrees.Y * degToRad))
	m = m.Mul(math.RotateX(t.RotationDegrees.X * degToRad))
	m = m.Mul(math.Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
	return m
}
